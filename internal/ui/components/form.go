package components

import (
	"github.com/alexisbeaulieu97/campus/pkg/primitives/label"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// Input renders a single-line text field. Hosts with live editors replace it
// by id when rendering.
func Input(id, placeholder, value string) *node.Node {
	return node.El("input", node.Props{
		ID:   id,
		Type: "text",
		Data: map[string]string{"field": id, "placeholder": placeholder, "value": value},
	})
}

// Textarea renders a multi-line text field.
func Textarea(id, placeholder, value string) *node.Node {
	return node.El("textarea", node.Props{
		ID:   id,
		Data: map[string]string{"field": id, "placeholder": placeholder, "value": value},
	})
}

// Field renders a labelled form control.
func Field(id, caption string, control *node.Node) *node.Node {
	return node.El("div", node.Props{}.WithData("part", "field"),
		label.For(id, caption),
		control,
	)
}
