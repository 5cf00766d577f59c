package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewMarksFocus(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	out := m.View()
	require.Contains(t, out, "» ")
	require.Contains(t, out, "Home")
	require.Contains(t, out, "Transform Your Future with Quality Education")
}

func TestViewScrollsToFocusedLine(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = updated.(Model)
	m = press(t, m, "4")
	m = focusOn(t, m, "submit")

	out := m.View()
	require.LessOrEqual(t, len(strings.Split(out, "\n")), 20)
	require.Contains(t, out, "Submit Registration")
	require.Positive(t, m.st.offset)
}

func TestViewShowsLiveFieldEditor(t *testing.T) {
	t.Parallel()
	m, _ := newTestModel(t)
	m = press(t, m, "4")
	m = focusOn(t, m, fieldEmail)
	m = typeText(t, m, "ada@")
	require.Contains(t, m.View(), "ada@")
}

func TestSnapshotFormats(t *testing.T) {
	t.Parallel()
	m := NewModel(Options{Page: PageRegister})
	t.Cleanup(m.Close)

	text, err := m.Snapshot(FormatText)
	require.NoError(t, err)
	require.Contains(t, text, "Course Registration")
	require.Contains(t, text, "I agree to the terms and conditions *")

	markup, err := m.Snapshot(FormatMarkup)
	require.NoError(t, err)
	require.Contains(t, markup, `role="checkbox"`)
	require.Contains(t, markup, `id="course-trigger"`)
	require.Contains(t, markup, `aria-expanded="false"`)
	require.NotContains(t, markup, `role="listbox"`)

	styled, err := m.Snapshot(FormatStyled)
	require.NoError(t, err)
	require.Contains(t, styled, "Registration Form")

	_, err = m.Snapshot("pdf")
	require.Error(t, err)
}

func TestParsePage(t *testing.T) {
	t.Parallel()
	for _, page := range Pages() {
		parsed, ok := ParsePage(page.String())
		require.True(t, ok)
		require.Equal(t, page, parsed)
		require.NotEmpty(t, page.Title())
	}
	_, ok := ParsePage("blog")
	require.False(t, ok)
	require.Equal(t, "unknown", Page(42).String())
}
