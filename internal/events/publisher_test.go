package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/campus/internal/logger"
)

func newTestPublisher(t *testing.T) (*LoggingPublisher, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return NewLoggingPublisher(log), buf
}

func TestPublishLogsPayload(t *testing.T) {
	t.Parallel()

	pub, buf := newTestPublisher(t)
	require.NoError(t, pub.Publish(context.Background(), New(RegistrationSubmitted, "email", "jane@example.com", "course", "data-science")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, RegistrationSubmitted, entry["event_type"])
	require.Equal(t, "jane@example.com", entry["email"])
	require.Equal(t, "data-science", entry["course"])
}

func TestSubscribersRunInOrderAndFailuresAreLogged(t *testing.T) {
	t.Parallel()

	pub, buf := newTestPublisher(t)
	var order []string
	pub.Subscribe(AdminLoginFailed, func(context.Context, Event) error {
		order = append(order, "first")
		return errors.New("handler broke")
	})
	pub.Subscribe(AdminLoginFailed, func(_ context.Context, e Event) error {
		order = append(order, "second:"+e.Payload["username"].(string))
		return nil
	})
	pub.Subscribe(AdminLoginSucceeded, func(context.Context, Event) error {
		order = append(order, "other")
		return nil
	})

	require.NoError(t, pub.Publish(context.Background(), New(AdminLoginFailed, "username", "root")))
	require.Equal(t, []string{"first", "second:root"}, order)
	require.Contains(t, buf.String(), "handler broke")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	pub, _ := newTestPublisher(t)
	calls := 0
	sub := pub.Subscribe(ToastChanged, func(context.Context, Event) error {
		calls++
		return nil
	})
	ctx := context.Background()

	require.NoError(t, pub.Publish(ctx, New(ToastChanged)))
	sub.Unsubscribe()
	require.NoError(t, pub.Publish(ctx, New(ToastChanged)))
	require.Equal(t, 1, calls)
}

func TestNilPublisherAndEmptyEvents(t *testing.T) {
	t.Parallel()

	var pub *LoggingPublisher
	require.NoError(t, pub.Publish(context.Background(), New(ToastChanged)))
	pub.Subscribe(ToastChanged, nil).Unsubscribe()

	live, buf := newTestPublisher(t)
	require.NoError(t, live.Publish(context.Background(), Event{}))
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestNewIgnoresNonStringKeys(t *testing.T) {
	t.Parallel()

	e := New(AdminLoggedOut, 1, "x", "user", "admin", "dangling")
	require.Equal(t, map[string]any{"user": "admin"}, e.Payload)
}
