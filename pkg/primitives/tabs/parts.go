package tabs

import (
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// Root wraps the list and panels.
func (t *Tabs) Root(props node.Props, children ...*node.Node) *node.Node {
	own := node.Props{ID: t.id, Orientation: t.orientation}
	node.Inherit(&own, props)
	return node.El("div", own, children...)
}

// List renders the tablist around the triggers. With no children every
// declared tab gets a default trigger.
func (t *Tabs) List(props node.Props, children ...*node.Node) *node.Node {
	own := node.Props{Role: node.RoleTablist, Orientation: t.orientation}
	node.Inherit(&own, props)
	if len(children) == 0 {
		for _, tab := range t.Declared() {
			children = append(children, t.Trigger(tab, node.Props{}))
		}
	}
	return node.El("div", own, children...)
}

// Trigger renders the button that activates tab.
func (t *Tabs) Trigger(tab Tab, props node.Props, children ...*node.Node) *node.Node {
	active := t.IsActive(tab.Value)
	state := StateInactive
	tabIndex := -1
	if active {
		state = StateActive
		tabIndex = 0
	}
	value := tab.Value
	own := node.Props{
		ID:          t.prefixed("trigger", tab.Value),
		Type:        "button",
		Role:        node.RoleTab,
		Selected:    node.FlagOf(active),
		Controls:    t.prefixed("content", tab.Value),
		State:       state,
		Orientation: t.orientation,
		Disabled:    tab.Disabled,
		TabIndex:    node.TabIndex(tabIndex),
		OnClick:     func() { t.Activate(value) },
	}
	node.Inherit(&own, props)
	if len(children) == 0 {
		label := tab.Label
		if label == "" {
			label = tab.Value
		}
		children = []*node.Node{node.Text(label)}
	}
	return node.El("button", own, children...)
}

// Content renders the panel for value, or nil when value is not active.
func (t *Tabs) Content(value string, props node.Props, children ...*node.Node) *node.Node {
	if !t.IsActive(value) {
		return nil
	}
	own := node.Props{
		ID:          t.prefixed("content", value),
		Role:        node.RoleTabpanel,
		LabelledBy:  t.prefixed("trigger", value),
		State:       StateActive,
		Orientation: t.orientation,
		TabIndex:    node.TabIndex(0),
	}
	node.Inherit(&own, props)
	return node.El("div", own, children...)
}

// Panels returns the subset of values whose panel would be present.
func (t *Tabs) Panels(values ...string) []string {
	var present []string
	for _, value := range values {
		if t.IsActive(value) {
			present = append(present, value)
		}
	}
	return present
}
