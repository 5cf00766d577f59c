// Package checkbox implements a boolean toggle.
package checkbox

import (
	"github.com/alexisbeaulieu97/campus/pkg/primitives/controlled"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

const (
	StateChecked   = "checked"
	StateUnchecked = "unchecked"
)

// Options configures a Checkbox. Checked makes the value controlled.
type Options struct {
	Checked         *bool
	DefaultChecked  bool
	OnCheckedChange func(bool)
	Disabled        bool
	Required        bool
	Name            string
	Value           string
	// Props fills attributes the checkbox does not compute itself.
	Props node.Props
}

// Checkbox is a two-state toggle.
type Checkbox struct {
	checked  *controlled.State[bool]
	disabled bool
	required bool
	name     string
	value    string
	props    node.Props
}

// New creates a Checkbox.
func New(opts Options) *Checkbox {
	return &Checkbox{
		checked:  controlled.New(opts.Checked, opts.DefaultChecked, opts.OnCheckedChange),
		disabled: opts.Disabled,
		required: opts.Required,
		name:     opts.Name,
		value:    opts.Value,
		props:    opts.Props,
	}
}

// Toggle inverts the checked value. It does nothing while disabled.
func (c *Checkbox) Toggle() {
	if c.disabled {
		return
	}
	c.checked.Set(!c.checked.Get())
}

// Checked returns the effective value.
func (c *Checkbox) Checked() bool {
	return c.checked.Get()
}

// State returns the data-state marker.
func (c *Checkbox) State() string {
	if c.Checked() {
		return StateChecked
	}
	return StateUnchecked
}

// Sync updates the controlled value; nil makes the checkbox uncontrolled.
func (c *Checkbox) Sync(checked *bool) {
	c.checked.Sync(checked)
}

// SetDisabled enables or disables toggling.
func (c *Checkbox) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// Disabled reports whether toggling is blocked.
func (c *Checkbox) Disabled() bool {
	return c.disabled
}

// Name returns the form field name.
func (c *Checkbox) Name() string {
	return c.name
}

// FormValue returns the submitted value when checked, and "" otherwise.
func (c *Checkbox) FormValue() string {
	if !c.Checked() {
		return ""
	}
	if c.value == "" {
		return "on"
	}
	return c.value
}

// Root renders the toggle button.
func (c *Checkbox) Root(children ...*node.Node) *node.Node {
	props := node.Props{
		Type:     "button",
		Role:     node.RoleCheckbox,
		Checked:  node.FlagOf(c.Checked()),
		State:    c.State(),
		Disabled: c.disabled,
		OnClick:  c.Toggle,
	}
	if c.required {
		props = props.WithData("required", "true")
	}
	node.Inherit(&props, c.props)
	return node.El("button", props, children...)
}

// Indicator renders the mark shown inside the root.
func (c *Checkbox) Indicator(props node.Props, children ...*node.Node) *node.Node {
	own := node.Props{State: c.State()}
	node.Inherit(&own, props)
	return node.El("span", own, children...)
}
