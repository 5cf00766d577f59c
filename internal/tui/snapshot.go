package tui

import (
	"fmt"

	"github.com/alexisbeaulieu97/campus/internal/ui/render"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// Snapshot formats.
const (
	FormatText   = "text"
	FormatMarkup = "markup"
	FormatStyled = "styled"
)

// Formats lists the accepted snapshot formats.
func Formats() []string {
	return []string{FormatText, FormatMarkup, FormatStyled}
}

// Tree returns the node tree of the current page, navigation and toasts
// included.
func (m Model) Tree() *node.Node {
	return m.st.screen()
}

// Snapshot renders the current page once, without focus decoration.
func (m Model) Snapshot(format string) (string, error) {
	tree := m.st.screen()
	switch format {
	case FormatText, "":
		return render.Text(tree), nil
	case FormatMarkup:
		return node.Markup(tree), nil
	case FormatStyled:
		return render.New(render.Options{Width: m.st.layoutWidth()}).Render(tree), nil
	default:
		return "", fmt.Errorf("unknown snapshot format %q", format)
	}
}
