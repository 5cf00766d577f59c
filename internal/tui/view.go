package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/campus/internal/ui/render"
)

const defaultWidth = 80

// View renders the current state of the model.
func (m Model) View() string {
	s := m.st
	if s.quitting {
		return ""
	}

	tree := s.screen()
	focused, _ := s.resolveFocus(tree)
	markFocus(focused)

	fields := make(map[string]string, 1)
	if focused != nil {
		if id := focused.Props.Data["field"]; id != "" {
			fields[focused.Props.ID] = s.fieldView(id)
		}
	}

	body := render.New(render.Options{Width: s.layoutWidth(), Fields: fields}).Render(tree)
	footer := s.footerView()
	return s.scroll(body, lipgloss.Height(footer)) + "\n" + footer
}

func (s *state) layoutWidth() int {
	if s.width <= 0 {
		return defaultWidth
	}
	return s.width
}

// fieldView draws the live editor of a focused text field.
func (s *state) fieldView(id string) string {
	if id == fieldMotivation {
		s.motivation.Focus()
		return fieldStyle.Render(s.motivation.View())
	}
	in, ok := s.inputs[id]
	if !ok {
		return ""
	}
	in.Focus()
	return fieldStyle.Render("[ " + in.View() + " ]")
}

func (s *state) footerView() string {
	s.help.ShowAll = s.showHelp
	return helpStyle.Render(s.help.View(s.keys))
}

// scroll keeps the focused line on screen when the page is taller than the
// terminal.
func (s *state) scroll(body string, reserved int) string {
	if s.height <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	avail := s.height - reserved - 1
	if avail <= 0 || len(lines) <= avail {
		s.offset = 0
		return body
	}
	for i, line := range lines {
		if strings.Contains(line, "»") {
			if i < s.offset {
				s.offset = i
			} else if i >= s.offset+avail {
				s.offset = i - avail + 1
			}
			break
		}
	}
	s.offset = min(max(s.offset, 0), len(lines)-avail)
	return strings.Join(lines[s.offset:s.offset+avail], "\n")
}
