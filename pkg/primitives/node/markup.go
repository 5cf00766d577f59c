package node

import (
	"html"
	"sort"
	"strconv"
	"strings"
)

// Markup serialises the tree as HTML-like text. Event handlers and refs are
// not part of the output.
func Markup(n *Node) string {
	var b strings.Builder
	writeMarkup(&b, n)
	return b.String()
}

func writeMarkup(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.IsText() {
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	if n.IsFragment() {
		for _, child := range n.Children {
			writeMarkup(b, child)
		}
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, attr := range Attributes(n.Props) {
		b.WriteByte(' ')
		b.WriteString(attr.Name)
		if attr.Value != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(attr.Value))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	for _, child := range n.Children {
		writeMarkup(b, child)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

// Attribute is one rendered name/value pair. Boolean attributes have an
// empty value.
type Attribute struct {
	Name  string
	Value string
}

// Attributes lists the set props in a stable order.
func Attributes(p Props) []Attribute {
	var attrs []Attribute
	add := func(name, value string) {
		if value != "" {
			attrs = append(attrs, Attribute{Name: name, Value: value})
		}
	}

	add("id", p.ID)
	add("class", p.ClassName)
	add("type", p.Type)
	add("href", p.Href)
	add("for", p.HTMLFor)
	add("role", string(p.Role))
	add("aria-label", p.Label)
	add("aria-controls", p.Controls)
	add("aria-labelledby", p.LabelledBy)
	add("aria-haspopup", p.HasPopup)
	add("aria-live", p.Live)
	add("aria-atomic", p.Atomic.String())
	add("aria-checked", p.Checked.String())
	add("aria-selected", p.Selected.String())
	add("aria-expanded", p.Expanded.String())
	if p.Orientation != "" && (p.Role == RoleTablist) {
		add("aria-orientation", p.Orientation)
	}
	if p.TabIndex != nil {
		add("tabindex", strconv.Itoa(*p.TabIndex))
	}
	add("data-state", p.State)
	add("data-orientation", p.Orientation)

	keys := make([]string, 0, len(p.Data))
	for key := range p.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		add("data-"+key, p.Data[key])
	}

	if p.Disabled {
		attrs = append(attrs, Attribute{Name: "disabled"})
	}
	return attrs
}
