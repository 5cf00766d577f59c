package selectmenu

import (
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// Trigger renders the combobox button that toggles the dropdown.
func (s *Select) Trigger(props node.Props, children ...*node.Node) *node.Node {
	own := node.Props{
		ID:       s.id + "-trigger",
		Type:     "button",
		Role:     node.RoleCombobox,
		Controls: s.contentID(),
		Expanded: node.FlagOf(s.IsOpen()),
		HasPopup: "listbox",
		State:    s.State(),
		Disabled: s.disabled,
		OnClick:  s.Toggle,
	}
	if s.required {
		own = own.WithData("required", "true")
	}
	node.Inherit(&own, props)
	return node.El("button", own, children...)
}

// ValueText renders the current selection: the matching item label, the raw
// value when no item matches, or placeholder when nothing is selected.
func (s *Select) ValueText(placeholder string) *node.Node {
	value := s.Value()
	if value == "" {
		return node.El("span", node.Props{}.WithData("placeholder", "true"), node.Text(placeholder))
	}
	text := value
	if item, ok := s.lookup(value); ok && item.Label != "" {
		text = item.Label
	}
	return node.El("span", node.Props{}, node.Text(text))
}

// Icon renders the decorative chevron slot inside the trigger.
func (s *Select) Icon(children ...*node.Node) *node.Node {
	return node.El("span", node.Props{State: s.State()}.WithData("icon", "true"), children...)
}

// Content renders the listbox. It returns nil while the select is closed.
func (s *Select) Content(props node.Props, children ...*node.Node) *node.Node {
	if !s.IsOpen() {
		return nil
	}
	own := node.Props{
		ID:         s.contentID(),
		Role:       node.RoleListbox,
		LabelledBy: s.id + "-trigger",
		State:      s.State(),
	}
	node.Inherit(&own, props)
	return node.El("div", own, children...)
}

// Viewport wraps the scrollable region of the content.
func (s *Select) Viewport(children ...*node.Node) *node.Node {
	return node.El("div", node.Props{}.WithData("viewport", "true"), children...)
}

// Item renders one option. Clicking it chooses the item unless it is
// disabled. With no children the item label (or value) is shown.
func (s *Select) Item(item Item, props node.Props, children ...*node.Node) *node.Node {
	selected := s.Selected(item.Value)
	state := ItemUnchecked
	if selected {
		state = ItemChecked
	}
	own := node.Props{
		ID:       s.id + "-option-" + item.Value,
		Role:     node.RoleOption,
		Selected: node.FlagOf(selected),
		State:    state,
		Data:     map[string]string{"value": item.Value},
	}
	if item.Disabled {
		own.Data["disabled"] = "true"
	} else {
		value := item.Value
		own.OnClick = func() { s.Choose(value) }
	}
	node.Inherit(&own, props)

	if len(children) == 0 {
		label := item.Label
		if label == "" {
			label = item.Value
		}
		children = []*node.Node{s.ItemIndicator(item), s.ItemText(label)}
	}
	return node.El("div", own, children...)
}

// Items renders every configured item with default children.
func (s *Select) Items() []*node.Node {
	nodes := make([]*node.Node, 0, len(s.items))
	for _, item := range s.items {
		nodes = append(nodes, s.Item(item, node.Props{}))
	}
	return nodes
}

// ItemText renders an option's label.
func (s *Select) ItemText(text string) *node.Node {
	return node.El("span", node.Props{}, node.Text(text))
}

// ItemIndicator renders the selected mark of an item; it is absent for
// items that are not selected.
func (s *Select) ItemIndicator(item Item, children ...*node.Node) *node.Node {
	if !s.Selected(item.Value) {
		return nil
	}
	return node.El("span", node.Props{State: ItemChecked}.WithData("indicator", "true"), children...)
}

// Group renders a labelled set of items.
func (s *Select) Group(props node.Props, children ...*node.Node) *node.Node {
	own := node.Props{Role: node.RoleGroup}
	node.Inherit(&own, props)
	return node.El("div", own, children...)
}

// Label renders a group caption.
func (s *Select) Label(text string) *node.Node {
	return node.El("div", node.Props{}.WithData("label", "true"), node.Text(text))
}

// Separator renders a divider between groups.
func (s *Select) Separator() *node.Node {
	return node.El("div", node.Props{Role: node.RoleSeparator})
}
