package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/campus/internal/site/admin"
	"github.com/alexisbeaulieu97/campus/internal/site/registration"
	campuserrors "github.com/alexisbeaulieu97/campus/pkg/errors"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/toast"
)

// submitCmd posts form to the registration endpoint off the event loop.
func submitCmd(ctx context.Context, svc *registration.Service, form registration.Form) tea.Cmd {
	return func() tea.Msg {
		receipt, err := svc.Submit(ctx, form)
		return SubmitResultMsg{Receipt: receipt, Err: err}
	}
}

func (s *state) submit() {
	if s.submitting {
		return
	}
	s.submitting = true
	s.enqueue(submitCmd(s.ctx, s.service, s.form()))
	s.enqueue(s.spinner.Tick)
}

func (s *state) finishSubmit(msg SubmitResultMsg) {
	s.submitting = false
	err := msg.Err
	var validationErr *campuserrors.ValidationError
	switch {
	case err == nil:
		s.toasts.Add(toast.Data{
			Title:       registration.SuccessTitle,
			Description: registration.SuccessDescription,
		})
		s.resetForm()
	case errors.Is(err, context.Canceled):
		return
	case errors.Is(err, registration.ErrTermsRequired):
		s.toasts.Add(toast.Data{
			Title:       registration.TermsTitle,
			Description: registration.TermsDescription,
			Variant:     toast.VariantDestructive,
		})
	case errors.As(err, &validationErr):
		s.toasts.Add(toast.Data{
			Title:       registration.InvalidTitle,
			Description: validationErr.Field + " " + validationErr.Message,
			Variant:     toast.VariantDestructive,
		})
	default:
		s.log.Error(err, "submit registration")
		s.toasts.Add(toast.Data{
			Title:       registration.InvalidTitle,
			Description: err.Error(),
			Variant:     toast.VariantDestructive,
		})
	}
}

func (s *state) login() {
	username := s.inputs[fieldUsername].Value()
	password := s.inputs[fieldPassword].Value()
	if err := s.session.Login(s.ctx, username, password); err != nil {
		s.toasts.Add(toast.Data{
			Title:       admin.LoginFailedTitle,
			Description: s.session.FailedDescription(),
			Variant:     toast.VariantDestructive,
		})
		return
	}
	s.inputs[fieldPassword].Reset()
	s.focusKey = "logout"
	s.notice = toast.NewRoot(toast.RootOptions{Duration: s.noticeFor, Clock: s.clock})
	s.notice.Mount()
	s.toasts.Add(toast.Data{
		Title:       admin.LoginSuccessTitle,
		Description: admin.LoginSuccessDescription,
	})
}

func (s *state) logout() {
	s.session.Logout(s.ctx)
	s.dropNotice()
	s.inputs[fieldUsername].Reset()
	s.focusKey = fieldUsername
}

func (s *state) dropNotice() {
	if s.notice != nil {
		s.notice.Unmount()
		s.notice = nil
	}
}
