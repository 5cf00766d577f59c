// Package label renders an accessible caption for a form control.
package label

import "github.com/alexisbeaulieu97/campus/pkg/primitives/node"

// Root renders a label bound to the control whose id is props.HTMLFor.
func Root(props node.Props, children ...*node.Node) *node.Node {
	return node.El("label", props, children...)
}

// For renders a text label for the control with id.
func For(id, text string) *node.Node {
	return Root(node.Props{HTMLFor: id}, node.Text(text))
}
