package toast

import (
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// StateOpen is the data-state of a visible toast.
const StateOpen = "open"

// Viewport renders the list of open toasts. Each entry carries its title,
// description, optional action and a close button wired back to the queue.
func (q *Queue) Viewport(props node.Props) *node.Node {
	own := node.Props{TabIndex: node.TabIndex(-1)}
	node.Inherit(&own, props)

	var entries []*node.Node
	for _, item := range q.Toasts() {
		if !item.Open {
			continue
		}
		entries = append(entries, q.entry(item))
	}
	return node.El("ol", own, entries...)
}

func (q *Queue) entry(item Item) *node.Node {
	id := item.ID
	dismiss := func() { q.Remove(id) }

	var action *node.Node
	if item.Action != nil {
		action = ActionButton(*item.Action, dismiss)
	}
	return node.El("li", itemProps(node.Props{
		ID:   "toast-" + id,
		Data: map[string]string{"variant": string(item.Variant)},
	}),
		Title(item.Title),
		Description(item.Description),
		action,
		CloseButton(dismiss),
	)
}

func itemProps(props node.Props) node.Props {
	own := node.Props{
		Role:     node.RoleStatus,
		Live:     "polite",
		Atomic:   node.FlagTrue,
		TabIndex: node.TabIndex(0),
		State:    StateOpen,
	}
	node.Inherit(&own, props)
	return own
}

// Title renders the toast heading. An empty title is absent.
func Title(text string) *node.Node {
	if text == "" {
		return nil
	}
	return node.El("div", node.Props{}.WithData("part", "title"), node.Text(text))
}

// Description renders the toast body. An empty description is absent.
func Description(text string) *node.Node {
	if text == "" {
		return nil
	}
	return node.El("div", node.Props{}.WithData("part", "description"), node.Text(text))
}

// ActionButton renders an action. Selecting it runs OnSelect, then done.
func ActionButton(action Action, done func()) *node.Node {
	selected := func() {
		if action.OnSelect != nil {
			action.OnSelect()
		}
		if done != nil {
			done()
		}
	}
	return node.El("button", node.Props{
		Type:    "button",
		Label:   action.AltText,
		Data:    map[string]string{"part": "action"},
		OnClick: selected,
	}, node.Text(action.Label))
}

// CloseButton renders the dismiss control.
func CloseButton(onClose func()) *node.Node {
	return node.El("button", node.Props{
		Type:    "button",
		Label:   "Close",
		Data:    map[string]string{"part": "close"},
		OnClick: onClose,
	}, node.Text("×"))
}
