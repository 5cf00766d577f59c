// Package render draws primitive node trees as terminal text.
//
// Layout is block based: element children stack vertically, consecutive
// inline children (spans, links, buttons, tabs) share a line, and
// data-layout="row" or "grid" lays blocks side by side. Styling is keyed on
// tag, role, data-state and a few data attributes set by internal/ui/components.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// FocusedClass marks the node that holds keyboard focus.
const FocusedClass = "focused"

// HighlightedClass marks the option under the cursor in an open listbox.
const HighlightedClass = "highlighted"

const (
	gap         = 2
	minGridCell = 34
)

var inlineTags = map[string]bool{
	"span": true, "a": true, "label": true, "button": true,
	"strong": true, "em": true, "code": true, "input": true,
}

// Options configures a Renderer.
type Options struct {
	Theme Theme
	Width int
	// Fields replaces the rendering of nodes by id, letting a host draw live
	// text inputs in place of their static placeholders.
	Fields map[string]string
}

// Renderer turns node trees into strings.
type Renderer struct {
	theme  Theme
	styles styles
	width  int
	fields map[string]string
}

// New creates a Renderer. Width defaults to 80 columns.
func New(opts Options) *Renderer {
	theme := opts.Theme
	if theme.Palette == nil {
		theme = DefaultTheme()
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	return &Renderer{
		theme:  theme,
		styles: newStyles(theme),
		width:  width,
		fields: opts.Fields,
	}
}

// Width returns the layout width in columns.
func (r *Renderer) Width() int {
	return r.width
}

// Render draws n within the configured width.
func (r *Renderer) Render(n *node.Node) string {
	return strings.TrimRight(r.draw(n, r.width), "\n ")
}

// Text renders n with no styling at all, one block per line. It is the
// fallback for non-interactive output.
func Text(n *node.Node) string {
	var lines []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			lines = append(lines, s)
		}
		current.Reset()
	}
	node.Walk(n, func(cur *node.Node) bool {
		switch {
		case cur.IsText():
			current.WriteString(cur.Text)
		case !cur.IsFragment() && !inlineTags[cur.Tag]:
			flush()
		}
		return true
	})
	flush()
	return strings.Join(lines, "\n")
}

func (r *Renderer) draw(n *node.Node, width int) string {
	if n == nil {
		return ""
	}
	if n.IsText() {
		return n.Text
	}
	if n.IsFragment() {
		return r.children(n.Children, width)
	}
	if n.Props.ID != "" {
		if out, ok := r.fields[n.Props.ID]; ok {
			return r.focus(n, out)
		}
	}

	p := n.Props
	switch {
	case p.Data["indicator"] == "true", p.Data["icon"] == "true":
		return ""
	case p.Role == node.RoleCheckbox:
		return r.focus(n, r.checkbox(n, width))
	case p.Role == node.RoleCombobox:
		return r.focus(n, r.combobox(n, width))
	case p.Role == node.RoleListbox:
		return r.styles.listbox.Width(max(width-2, 10)).Render(r.children(n.Children, width-2))
	case p.Role == node.RoleOption:
		return r.option(n, width)
	case p.Role == node.RoleTab:
		return r.focus(n, r.tab(n))
	case p.Role == node.RoleStatus:
		return r.toast(n, width)
	case p.Role == node.RoleSeparator, n.Tag == "hr":
		return r.styles.muted.Render(strings.Repeat("─", max(width, 1)))
	case p.Data["progress"] != "":
		return r.progress(n, width)
	case p.Data["badge"] != "":
		return r.badge(n)
	case p.Data["part"] == "card":
		return r.card(n, width)
	}

	switch n.Tag {
	case "h1":
		return r.styles.heading.Width(width).Render(n.TextContent())
	case "h2", "h3":
		return r.styles.subheading.Width(width).Render(n.TextContent())
	case "p":
		return r.styles.muted.Width(width).Render(r.children(n.Children, width))
	case "a":
		if p.Data["variant"] != "" {
			return r.focus(n, r.button(n, width))
		}
		return r.focus(n, r.styles.link.Render(r.children(n.Children, width)))
	case "button":
		return r.focus(n, r.button(n, width))
	case "input", "textarea":
		return r.focus(n, r.input(n))
	case "ul":
		return r.list(n, width)
	}
	if p.Data["placeholder"] == "true" {
		return r.styles.muted.Render(r.children(n.Children, width))
	}
	if p.Data["part"] == "title" || p.Data["part"] == "card-title" {
		return r.styles.cardTitle.Render(r.children(n.Children, width))
	}
	if p.Data["part"] == "description" || p.Data["part"] == "card-description" {
		return r.styles.muted.Width(width).Render(r.children(n.Children, width))
	}

	switch p.Data["layout"] {
	case "row":
		return r.row(n.Children, width, len(n.Children))
	case "grid":
		return r.row(n.Children, width, max(1, (width+gap)/(minGridCell+gap)))
	}
	return r.children(n.Children, width)
}

// children stacks block children and joins runs of inline children.
func (r *Renderer) children(children []*node.Node, width int) string {
	var blocks []string
	var line []string
	flush := func() {
		if len(line) > 0 {
			blocks = append(blocks, strings.Join(line, " "))
			line = nil
		}
	}
	for i, child := range children {
		out := r.draw(child, width)
		if out == "" {
			continue
		}
		if child.IsText() {
			if len(line) > 0 && i > 0 && children[i-1].IsText() {
				line[len(line)-1] += out
				continue
			}
			line = append(line, out)
			continue
		}
		if inlineTags[child.Tag] || child.Props.Data["badge"] != "" {
			line = append(line, out)
			continue
		}
		flush()
		blocks = append(blocks, out)
	}
	flush()
	return strings.Join(blocks, "\n")
}

// row lays children out in columns, wrapping after cols cells.
func (r *Renderer) row(children []*node.Node, width, cols int) string {
	var present []*node.Node
	for _, child := range children {
		if child != nil {
			present = append(present, child)
		}
	}
	if len(present) == 0 {
		return ""
	}
	cols = max(1, min(cols, len(present)))
	cell := (width - gap*(cols-1)) / cols
	if cell < 12 {
		cols, cell = 1, width
	}

	var rows []string
	for start := 0; start < len(present); start += cols {
		end := min(start+cols, len(present))
		var cells []string
		for i, child := range present[start:end] {
			out := lipgloss.NewStyle().Width(cell).Render(r.draw(child, cell))
			if i > 0 {
				out = lipgloss.NewStyle().MarginLeft(gap).Render(out)
			}
			cells = append(cells, out)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (r *Renderer) focus(n *node.Node, out string) string {
	if n.Props.Disabled {
		return r.styles.disabled.Render(out)
	}
	if n.Props.HasClass(FocusedClass) {
		return r.styles.focused.Render("» " + out + " «")
	}
	return out
}

func (r *Renderer) checkbox(n *node.Node, width int) string {
	box := "[ ]"
	if n.Props.Checked.IsTrue() {
		box = "[x]"
	}
	label := r.children(n.Children, width-4)
	if label == "" {
		return box
	}
	return box + " " + label
}

func (r *Renderer) combobox(n *node.Node, width int) string {
	value := r.children(n.Children, width-4)
	arrow := "▾"
	if n.Props.Expanded.IsTrue() {
		arrow = "▴"
	}
	return r.styles.field.Render("‹ " + value + " " + arrow + " ›")
}

func (r *Renderer) option(n *node.Node, width int) string {
	mark := "  "
	if n.Props.Selected.IsTrue() {
		mark = "✓ "
	}
	out := mark + r.children(n.Children, width-2)
	switch {
	case n.Props.Data["disabled"] == "true":
		return r.styles.disabled.Render(out)
	case n.Props.HasClass(HighlightedClass):
		return r.styles.focused.Render(out)
	}
	return out
}

func (r *Renderer) tab(n *node.Node) string {
	label := n.TextContent()
	if n.Props.Selected.IsTrue() {
		return r.styles.tabActive.Render(label)
	}
	return r.styles.tabIdle.Render(label)
}

func (r *Renderer) toast(n *node.Node, width int) string {
	style := r.styles.toast
	if n.Props.Data["variant"] == "destructive" {
		style = r.styles.destructive
	}
	w := min(width, 48)
	return style.Width(max(w-2, 10)).Render(r.children(n.Children, w-4))
}

func (r *Renderer) card(n *node.Node, width int) string {
	return r.styles.card.Width(max(width-2, 10)).Render(r.children(n.Children, width-4))
}

func (r *Renderer) button(n *node.Node, width int) string {
	variant := n.Props.Data["variant"]
	style, ok := r.styles.buttons[variant]
	if !ok {
		style = r.styles.buttons["default"]
	}
	label := r.children(n.Children, width)
	if n.Props.Data["part"] == "close" || variant == "link" {
		return style.Render(label)
	}
	return style.Render("[ " + label + " ]")
}

func (r *Renderer) input(n *node.Node) string {
	value := n.Props.Data["value"]
	if value == "" {
		return r.styles.muted.Render("[ " + n.Props.Data["placeholder"] + " ]")
	}
	return r.styles.field.Render("[ " + value + " ]")
}

func (r *Renderer) list(n *node.Node, width int) string {
	var items []string
	for _, child := range n.Children {
		out := r.draw(child, width-2)
		if out == "" {
			continue
		}
		if child.Tag == "li" {
			out = "• " + out
		}
		items = append(items, out)
	}
	return strings.Join(items, "\n")
}

func (r *Renderer) badge(n *node.Node) string {
	family := PaletteFamily(n.Props.Data["badge"])
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Background(r.theme.Shade(family, Shade100)).
		Foreground(r.theme.Shade(family, Shade800))
	return style.Render(n.TextContent())
}

func (r *Renderer) progress(n *node.Node, width int) string {
	ratio, err := strconv.ParseFloat(n.Props.Data["progress"], 64)
	if err != nil {
		ratio = 0
	}
	ratio = min(max(ratio, 0), 1)
	bar := progress.New(
		progress.WithGradient(string(r.theme.Shade(r.theme.Primary, Shade300)), string(r.theme.Shade(r.theme.Primary, Shade700))),
		progress.WithWidth(max(width, 10)),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(ratio)
}
