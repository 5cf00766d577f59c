package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, line string) logEntry {
	t.Helper()
	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"page": "registration", "course": "web-development"})
	log.Info("form submitted")

	entry := decode(t, buf.String())
	require.Equal(t, "form submitted", entry["message"])
	require.Equal(t, "registration", entry["page"])
	require.Equal(t, "web-development", entry["course"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerWithKeyValues(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.With("toast", "abc1234", "kind", "expired", "dangling").Info("toast changed")

	entry := decode(t, buf.String())
	require.Equal(t, "abc1234", entry["toast"])
	require.Equal(t, "expired", entry["kind"])
	require.NotContains(t, entry, "dangling")
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"user": "admin"})
	log.Error(errors.New("invalid credentials"), "login failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	entry := decode(t, lines[0])
	require.Equal(t, "login failed", entry["message"])
	require.Equal(t, "admin", entry["user"])
	require.Equal(t, "invalid credentials", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "loud")
}

func TestLoggerWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "campus.log")
	log, err := New(Options{File: path})
	require.NoError(t, err)

	log.Warn("toast queue closed")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decode(t, strings.TrimSpace(string(data)))
	require.Equal(t, "warn", entry["level"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
		require.NoError(t, nilLogger.Close())
	})

	nop := Nop()
	require.NotPanics(t, func() {
		nop.With("a", 1).Info("ignored")
	})
	require.NoError(t, nop.Close())
}
