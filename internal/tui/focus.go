package tui

import (
	"strconv"

	"github.com/alexisbeaulieu97/campus/internal/ui/render"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// focusable matches elements the focus ring stops at: anything clickable and
// every text field.
func focusable(n *node.Node) bool {
	if n.IsText() || n.IsFragment() || n.Props.Disabled {
		return false
	}
	return n.Props.OnClick != nil || n.Props.Data["field"] != ""
}

// focusKeys names each focusable node: its id, or its tag and text with an
// occurrence suffix for repeats.
func focusKeys(nodes []*node.Node) []string {
	keys := make([]string, len(nodes))
	seen := make(map[string]int, len(nodes))
	for i, n := range nodes {
		key := n.Props.ID
		if key == "" {
			key = n.Tag + ":" + n.TextContent()
		}
		seen[key]++
		if count := seen[key]; count > 1 {
			key += "#" + strconv.Itoa(count)
		}
		keys[i] = key
	}
	return keys
}

// resolveFocus finds the focused node of tree. The remembered key wins; when
// its node is gone (a chosen option, a removed toast) focus falls back to the
// owning trigger, then to the same position.
func (s *state) resolveFocus(tree *node.Node) (*node.Node, string) {
	nodes := tree.FindAll(focusable)
	if len(nodes) == 0 {
		return nil, ""
	}
	keys := focusKeys(nodes)
	index := -1
	for _, want := range []string{s.focusKey, trimFocus(s.focusKey)} {
		if want == "" {
			continue
		}
		for i, key := range keys {
			if key == want {
				index = i
				break
			}
		}
		if index >= 0 {
			break
		}
	}
	if index < 0 {
		index = min(max(s.focus, 0), len(nodes)-1)
	}
	s.focus = index
	s.focusKey = keys[index]
	return nodes[index], keys[index]
}

// moveFocus steps the focus ring by delta with wrap-around.
func (s *state) moveFocus(tree *node.Node, delta int) {
	nodes := tree.FindAll(focusable)
	if len(nodes) == 0 {
		return
	}
	s.resolveFocus(tree)
	keys := focusKeys(nodes)
	s.focus = ((s.focus+delta)%len(nodes) + len(nodes)) % len(nodes)
	s.focusKey = keys[s.focus]
}

// markFocus flags the focused node for the renderer.
func markFocus(n *node.Node) {
	if n == nil {
		return
	}
	class := render.FocusedClass
	if n.Props.Role == node.RoleOption {
		class = render.HighlightedClass
	}
	n.Props = n.Props.WithClass(class)
}
