// Package admin is the demo dashboard login. Credentials come from
// configuration and are compared in memory; there is no real account store.
package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/campus/internal/events"
	"github.com/alexisbeaulieu97/campus/internal/logger"
)

// ErrInvalidCredentials is returned for a wrong username or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Toast copy shown for login outcomes.
const (
	LoginSuccessTitle       = "Login Successful"
	LoginSuccessDescription = "Welcome to the admin dashboard!"
	LoginFailedTitle        = "Login Failed"
)

// Options configures a Session.
type Options struct {
	Username  string
	Password  string
	Publisher events.Publisher
	Logger    *logger.Logger
	Now       func() time.Time
}

// Session tracks whether the dashboard is unlocked.
type Session struct {
	username  string
	password  string
	publisher events.Publisher
	log       *logger.Logger
	now       func() time.Time

	mu       sync.Mutex
	user     string
	loggedIn time.Time
}

// NewSession creates a logged-out session.
func NewSession(opts Options) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		username:  opts.Username,
		password:  opts.Password,
		publisher: opts.Publisher,
		log:       log,
		now:       now,
	}
}

// FailedDescription is the hint shown after a failed login.
func (s *Session) FailedDescription() string {
	return "Invalid credentials. Use " + s.username + "/" + s.password + " for demo."
}

// Login unlocks the session when username and password match.
func (s *Session) Login(ctx context.Context, username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		s.log.With("username", username).Warn("admin login failed")
		s.publish(ctx, events.New(events.AdminLoginFailed, "username", username))
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	s.user = username
	s.loggedIn = s.now()
	s.mu.Unlock()

	s.log.With("username", username).Info("admin logged in")
	s.publish(ctx, events.New(events.AdminLoginSucceeded, "username", username))
	return nil
}

// Logout locks the session. Logging out while logged out does nothing.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	user := s.user
	s.user = ""
	s.loggedIn = time.Time{}
	s.mu.Unlock()

	if user == "" {
		return
	}
	s.publish(ctx, events.New(events.AdminLoggedOut, "username", user))
}

// Authenticated reports whether the dashboard is unlocked.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != ""
}

// User returns the logged-in username and login time.
func (s *Session) User() (string, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.loggedIn
}

func (s *Session) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Error(err, "publish admin event")
	}
}
