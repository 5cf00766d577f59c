// Package events carries site events (registrations, logins, toasts) from
// the pages that raise them to whoever subscribes, logging each one.
package events

import "context"

const (
	// RegistrationSubmitted is emitted when the simulated endpoint accepts a form.
	RegistrationSubmitted = "registration.submitted"
	// RegistrationRejected is emitted when a form fails validation or terms.
	RegistrationRejected = "registration.rejected"
	// AdminLoginSucceeded is emitted after a successful credential check.
	AdminLoginSucceeded = "admin.login_succeeded"
	// AdminLoginFailed is emitted after a failed credential check.
	AdminLoginFailed = "admin.login_failed"
	// AdminLoggedOut is emitted when the admin session ends.
	AdminLoggedOut = "admin.logged_out"
	// ToastChanged mirrors toast queue changes.
	ToastChanged = "toast.changed"
)

// Event is something that happened on the site.
type Event struct {
	Type    string
	Payload map[string]any
}

// New builds an Event from alternating key/value pairs.
func New(eventType string, keyvals ...any) Event {
	payload := make(map[string]any, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		if key, ok := keyvals[i].(string); ok {
			payload[key] = keyvals[i+1]
		}
	}
	return Event{Type: eventType, Payload: payload}
}

// Handler reacts to one event. Returned errors are logged and do not stop
// delivery to other handlers.
type Handler func(context.Context, Event) error

// Publisher distributes events synchronously.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler Handler) Subscription
}

// Subscription is a registered handler.
type Subscription interface {
	Unsubscribe()
}
