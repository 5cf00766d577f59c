package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/selectmenu"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	s := m.st
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width
		s.motivation.SetWidth(max(min(msg.Width-8, 72), 20))
		return m, nil
	case timerFiredMsg:
		msg.timer.fire()
		return m, tea.Batch(s.drain(), s.clock.wait())
	case SubmitResultMsg:
		s.finishSubmit(msg)
		return m, s.drain()
	case NavigateMsg:
		s.navigate(msg.Page)
		return m, nil
	case spinner.TickMsg:
		if !s.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, s.quit()
		}
		cmd := s.handleKey(msg)
		return m, tea.Batch(cmd, s.drain())
	case tea.QuitMsg:
		s.quitting = true
		return m, nil
	}
	return m, s.drain()
}

func (s *state) quit() tea.Cmd {
	s.quitting = true
	s.cancel()
	s.dropNotice()
	s.toasts.Close()
	s.clock.stop()
	return tea.Quit
}

func (s *state) handleKey(msg tea.KeyMsg) tea.Cmd {
	tree := s.screen()
	focused, _ := s.resolveFocus(tree)
	if focused != nil && focused.Props.Data["field"] != "" {
		return s.handleFieldKey(tree, focused, msg)
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		return s.quit()
	case key.Matches(msg, s.keys.Help):
		s.showHelp = !s.showHelp
	case key.Matches(msg, s.keys.Pages):
		n, err := strconv.Atoi(msg.String())
		if err == nil && n >= 1 && n <= len(Pages()) {
			s.navigate(Pages()[n-1])
		}
	case key.Matches(msg, s.keys.Next):
		s.moveFocus(tree, 1)
	case key.Matches(msg, s.keys.Prev):
		s.moveFocus(tree, -1)
	case key.Matches(msg, s.keys.Left), key.Matches(msg, s.keys.Right):
		if focused == nil || focused.Props.Role != node.RoleTab {
			return nil
		}
		if key.Matches(msg, s.keys.Left) {
			s.adminTabs.Prev()
		} else {
			s.adminTabs.Next()
		}
		s.focusKey = "admin-trigger-" + s.adminTabs.Value()
	case key.Matches(msg, s.keys.Close):
		for _, sel := range []*selectmenu.Select{s.levels, s.course, s.experience} {
			if sel.IsOpen() {
				sel.SetOpen(false)
			}
		}
	case key.Matches(msg, s.keys.Activate):
		if focused != nil {
			focused.Click()
		}
	}
	return nil
}

// handleFieldKey edits the focused text field. Only focus movement escapes
// the field; everything else is typed into it.
func (s *state) handleFieldKey(tree, focused *node.Node, msg tea.KeyMsg) tea.Cmd {
	id := focused.Props.Data["field"]
	multiline := id == fieldMotivation

	switch msg.String() {
	case "tab":
		s.moveFocus(tree, 1)
		return nil
	case "shift+tab":
		s.moveFocus(tree, -1)
		return nil
	case "down":
		if !multiline {
			s.moveFocus(tree, 1)
			return nil
		}
	case "up":
		if !multiline {
			s.moveFocus(tree, -1)
			return nil
		}
	case "enter":
		if id == fieldPassword {
			s.login()
			return nil
		}
		if !multiline {
			s.moveFocus(tree, 1)
			return nil
		}
	}

	var cmd tea.Cmd
	if multiline {
		s.motivation.Focus()
		*s.motivation, cmd = s.motivation.Update(msg)
		return cmd
	}
	in, ok := s.inputs[id]
	if !ok {
		return nil
	}
	in.Focus()
	*in, cmd = in.Update(msg)
	return cmd
}
