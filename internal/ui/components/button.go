package components

import (
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/slot"
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

// ButtonSize specifies the button size.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSmall   ButtonSize = "sm"
	ButtonSizeLarge   ButtonSize = "lg"
)

// ButtonOptions configures Button.
type ButtonOptions struct {
	Variant ButtonVariant
	Size    ButtonSize
	// AsChild renders the single child element with the button's props
	// merged in instead of wrapping it in a button.
	AsChild bool
	Props   node.Props
}

// Button renders a button, or with AsChild the caller's own element styled
// as one. AsChild with anything but one element child panics.
func Button(opts ButtonOptions, children ...*node.Node) *node.Node {
	variant := opts.Variant
	if variant == "" {
		variant = ButtonDefault
	}
	size := opts.Size
	if size == "" {
		size = ButtonSizeDefault
	}
	own := node.Props{
		Data: map[string]string{
			"variant": string(variant),
			"size":    string(size),
		},
	}
	node.Inherit(&own, opts.Props)

	if opts.AsChild {
		return slot.MustMerge(own, nil, children...)
	}
	own.Type = "button"
	return node.El("button", own, children...)
}

// LinkButton renders an anchor styled as a button. onClick handles
// navigation in hosts without real links.
func LinkButton(href, label string, variant ButtonVariant, onClick func()) *node.Node {
	return Button(
		ButtonOptions{Variant: variant, Size: ButtonSizeLarge, AsChild: true},
		node.El("a", node.Props{Href: href, OnClick: onClick}, node.Text(label)),
	)
}
