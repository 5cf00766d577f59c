package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPrintsHomeWhenNotATerminal(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t)
	require.NoError(t, err)
	require.Contains(t, out, "Transform Your Future with Quality Education")
	require.Contains(t, out, "Browse Courses")
}

func TestSnapshotPages(t *testing.T) {
	t.Parallel()
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"snapshot"}, want: "Why Choose EduCenter?"},
		{args: []string{"snapshot", "courses"}, want: "React.js Mastery"},
		{args: []string{"snapshot", "instructors"}, want: "Our Instructors"},
		{args: []string{"snapshot", "register"}, want: "Course Registration"},
		{args: []string{"snapshot", "admin"}, want: "Admin Login"},
		{args: []string{"snapshot", "register", "--format", "markup"}, want: `role="combobox"`},
		{args: []string{"snapshot", "courses", "--format", "styled", "--width", "120"}, want: "Our Courses"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			require.Contains(t, out, tc.want)
		})
	}
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	t.Parallel()
	cases := [][]string{
		{"snapshot", "blog"},
		{"snapshot", "home", "--format", "pdf"},
		{"snapshot", "home", "--width", "5"},
		{"snapshot", "home", "courses"},
	}
	for _, args := range cases {
		_, _, err := execute(t, args...)
		require.Error(t, err, args)
	}
}

func TestCoursesTableAndFilter(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "courses")
	require.NoError(t, err)
	require.Contains(t, out, "ID")
	require.Contains(t, out, "web-development-fundamentals")
	require.Contains(t, out, "1,250")

	out, _, err = execute(t, "courses", "--level", "advanced")
	require.NoError(t, err)
	require.Contains(t, out, "Advanced")
	require.NotContains(t, out, "Beginner")

	_, _, err = execute(t, "courses", "--level", "expert")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Suggestion")
}

func TestCoursesJSON(t *testing.T) {
	t.Parallel()
	out, _, err := execute(t, "courses", "--json", "--level", "beginner")
	require.NoError(t, err)

	var payload []courseJSON
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.NotEmpty(t, payload)
	for _, c := range payload {
		require.Equal(t, "Beginner", c.Level)
	}
}

func TestConfigErrorsCarrySuggestion(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "campus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toast:\n  duration: -1s\n"), 0o644))

	_, _, err := execute(t, "courses", "--config", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load configuration")
	require.Contains(t, err.Error(), "toast.duration")
}
