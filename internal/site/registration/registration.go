// Package registration validates course registration forms and submits them
// to a simulated endpoint.
package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/campus/internal/config"
	"github.com/alexisbeaulieu97/campus/internal/events"
	"github.com/alexisbeaulieu97/campus/internal/logger"
	"github.com/alexisbeaulieu97/campus/internal/site/content"
	campuserrors "github.com/alexisbeaulieu97/campus/pkg/errors"
)

// ErrTermsRequired is returned when an otherwise valid form has not accepted
// the terms and conditions.
var ErrTermsRequired = errors.New("terms and conditions must be accepted")

// Toast copy shown for each outcome.
const (
	SuccessTitle       = "Registration Successful!"
	SuccessDescription = "Thank you for registering. You will receive a confirmation email shortly."
	TermsTitle         = "Terms Required"
	TermsDescription   = "Please agree to the terms and conditions to proceed."
	InvalidTitle       = "Check Your Details"
)

// Experience levels offered by the form.
var ExperienceLevels = []string{"beginner", "intermediate", "advanced"}

// Form is one registration as entered on the page.
type Form struct {
	FirstName        string `form:"firstName" validate:"required"`
	LastName         string `form:"lastName" validate:"required"`
	Email            string `form:"email" validate:"required,email"`
	Phone            string `form:"phone" validate:"required,phone"`
	Course           string `form:"course" validate:"required"`
	Experience       string `form:"experience" validate:"required,oneof=beginner intermediate advanced"`
	Motivation       string `form:"motivation" validate:"max=2000"`
	AgreeToTerms     bool   `form:"agreeToTerms"`
	AgreeToMarketing bool   `form:"agreeToMarketing"`
}

// Normalize trims surrounding whitespace from every text field.
func (f Form) Normalize() Form {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Course = strings.TrimSpace(f.Course)
	f.Experience = strings.TrimSpace(f.Experience)
	f.Motivation = strings.TrimSpace(f.Motivation)
	return f
}

// Validate checks the fields first and the terms agreement last, so a form
// with both problems reports the field error.
func (f Form) Validate(catalog *content.Catalog) error {
	if err := config.FirstValidationError(config.GetValidator().Struct(f)); err != nil {
		return err
	}
	if catalog != nil {
		if _, ok := catalog.Course(f.Course); !ok {
			return campuserrors.NewValidationError("course", fmt.Sprintf("unknown course %q", f.Course), nil)
		}
	}
	if !f.AgreeToTerms {
		return ErrTermsRequired
	}
	return nil
}

// Receipt confirms an accepted registration.
type Receipt struct {
	Name        string
	Email       string
	CourseID    string
	CourseTitle string
	SubmittedAt time.Time
}

// Options configures a Service.
type Options struct {
	Catalog   *content.Catalog
	Publisher events.Publisher
	Logger    *logger.Logger
	// Latency simulates the round trip to the registration endpoint.
	Latency time.Duration
	Now     func() time.Time
}

// Service is the simulated registration endpoint. Accepted registrations are
// kept in memory for the admin dashboard.
type Service struct {
	catalog   *content.Catalog
	publisher events.Publisher
	log       *logger.Logger
	latency   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	accepted []Receipt
}

// NewService creates a Service.
func NewService(opts Options) *Service {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = content.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		catalog:   catalog,
		publisher: opts.Publisher,
		log:       log,
		latency:   opts.Latency,
		now:       now,
	}
}

// Submit validates form, waits for the simulated endpoint and records the
// registration. It returns a *errors.ValidationError for bad fields,
// ErrTermsRequired, or the context error if ctx ends first.
func (s *Service) Submit(ctx context.Context, form Form) (Receipt, error) {
	form = form.Normalize()
	if err := form.Validate(s.catalog); err != nil {
		s.publish(ctx, events.New(events.RegistrationRejected, "email", form.Email, "reason", err.Error()))
		return Receipt{}, err
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, fmt.Errorf("submit registration: %w", ctx.Err())
		case <-timer.C:
		}
	}

	course, _ := s.catalog.Course(form.Course)
	receipt := Receipt{
		Name:        form.FirstName + " " + form.LastName,
		Email:       form.Email,
		CourseID:    course.ID,
		CourseTitle: course.Title,
		SubmittedAt: s.now(),
	}

	s.mu.Lock()
	s.accepted = append(s.accepted, receipt)
	s.mu.Unlock()

	s.log.With("course", course.ID, "marketing", form.AgreeToMarketing).Info("registration accepted")
	s.publish(ctx, events.New(events.RegistrationSubmitted,
		"email", receipt.Email,
		"course", receipt.CourseID,
		"marketing", form.AgreeToMarketing,
	))
	return receipt, nil
}

// Recent returns accepted registrations newest first, as dashboard rows.
func (s *Service) Recent() []content.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]content.Registration, 0, len(s.accepted))
	for i := len(s.accepted) - 1; i >= 0; i-- {
		r := s.accepted[i]
		rows = append(rows, content.Registration{
			Name:   r.Name,
			Email:  r.Email,
			Course: r.CourseTitle,
			Date:   r.SubmittedAt.Format(time.DateOnly),
		})
	}
	return rows
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Error(err, "publish registration event")
	}
}
