package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/campus/internal/events"
	"github.com/alexisbeaulieu97/campus/internal/logger"
	campuserrors "github.com/alexisbeaulieu97/campus/pkg/errors"
)

func validForm() Form {
	return Form{
		FirstName:    " Jane ",
		LastName:     "Smith",
		Email:        "jane@example.com",
		Phone:        "+1 (555) 123-4567",
		Course:       "data-science-python",
		Experience:   "beginner",
		Motivation:   "Switching careers.",
		AgreeToTerms: true,
	}
}

type recorder struct {
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) Subscribe(string, events.Handler) events.Subscription {
	return nil
}

func fixedNow() time.Time {
	return time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
}

func TestSubmitAcceptsValidForm(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	svc := NewService(Options{Publisher: rec, Now: fixedNow})

	receipt, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	require.Equal(t, "Jane Smith", receipt.Name)
	require.Equal(t, "Data Science with Python", receipt.CourseTitle)
	require.Equal(t, fixedNow(), receipt.SubmittedAt)

	require.Len(t, rec.events, 1)
	require.Equal(t, events.RegistrationSubmitted, rec.events[0].Type)
	require.Equal(t, "data-science-python", rec.events[0].Payload["course"])

	recent := svc.Recent()
	require.Len(t, recent, 1)
	require.Equal(t, "2024-02-01", recent[0].Date)
	require.Equal(t, "Data Science with Python", recent[0].Course)
}

func TestSubmitValidationOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Form)
		field  string
		terms  bool
	}{
		{name: "missing first name", mutate: func(f *Form) { f.FirstName = "   " }, field: "firstName"},
		{name: "bad email", mutate: func(f *Form) { f.Email = "jane" }, field: "email"},
		{name: "bad phone", mutate: func(f *Form) { f.Phone = "12" }, field: "phone"},
		{name: "no course", mutate: func(f *Form) { f.Course = "" }, field: "course"},
		{name: "unknown course", mutate: func(f *Form) { f.Course = "basket-weaving" }, field: "course"},
		{name: "bad experience", mutate: func(f *Form) { f.Experience = "guru" }, field: "experience"},
		{
			name:   "field error wins over terms",
			mutate: func(f *Form) { f.Email = ""; f.AgreeToTerms = false },
			field:  "email",
		},
		{name: "terms missing", mutate: func(f *Form) { f.AgreeToTerms = false }, terms: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			svc := NewService(Options{Publisher: rec})
			form := validForm()
			tt.mutate(&form)

			_, err := svc.Submit(context.Background(), form)
			if tt.terms {
				require.ErrorIs(t, err, ErrTermsRequired)
			} else {
				var validationErr *campuserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, tt.field, validationErr.Field)
			}
			require.Empty(t, svc.Recent())
			require.Len(t, rec.events, 1)
			require.Equal(t, events.RegistrationRejected, rec.events[0].Type)
		})
	}
}

func TestSubmitWaitsForLatencyAndHonoursContext(t *testing.T) {
	t.Parallel()

	svc := NewService(Options{Latency: time.Hour, Logger: logger.Nop()})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Submit(ctx, validForm())
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Empty(t, svc.Recent())

	fast := NewService(Options{Latency: time.Millisecond})
	_, err = fast.Submit(context.Background(), validForm())
	require.NoError(t, err)
}

func TestRecentIsNewestFirst(t *testing.T) {
	t.Parallel()

	svc := NewService(Options{})
	first := validForm()
	second := validForm()
	second.FirstName = "John"
	second.Course = "react-mastery"

	_, err := svc.Submit(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), second)
	require.NoError(t, err)

	recent := svc.Recent()
	require.Equal(t, "John Smith", recent[0].Name)
	require.Equal(t, "Jane Smith", recent[1].Name)
}
