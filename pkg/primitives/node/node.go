// Package node models the element tree that primitives render into.
//
// A host walks the tree to draw it, dispatches clicks through Click and
// resolves references through Mount. A nil *Node means "absent from the
// tree": El and Fragment drop nil children, which is how a closed select
// or an inactive tab panel disappears.
package node

import (
	"strings"
)

// Role is an ARIA role.
type Role string

const (
	RoleNone      Role = ""
	RoleCheckbox  Role = "checkbox"
	RoleCombobox  Role = "combobox"
	RoleListbox   Role = "listbox"
	RoleOption    Role = "option"
	RoleGroup     Role = "group"
	RoleSeparator Role = "separator"
	RoleTablist   Role = "tablist"
	RoleTab       Role = "tab"
	RoleTabpanel  Role = "tabpanel"
	RoleStatus    Role = "status"
)

// Flag is a tri-state boolean attribute. The zero value means the attribute
// is not set, so a caller-provided value can fill it in.
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagTrue
	FlagFalse
)

// FlagOf converts a bool into a set Flag.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// IsTrue reports whether the flag is set to true.
func (f Flag) IsTrue() bool {
	return f == FlagTrue
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return ""
	}
}

// RefFunc receives the resolved node when a tree is mounted.
type RefFunc func(*Node)

// Props enumerates every attribute a primitive may set on an element.
// Empty fields are unset.
type Props struct {
	ID          string
	ClassName   string
	Role        Role
	Type        string
	Href        string
	HTMLFor     string
	Label       string
	Controls    string
	LabelledBy  string
	HasPopup    string
	Live        string
	Atomic      Flag
	Checked     Flag
	Selected    Flag
	Expanded    Flag
	Disabled    bool
	TabIndex    *int
	State       string
	Orientation string
	Data        map[string]string
	OnClick     func()
}

// HasClass reports whether name is one of the space separated classes.
func (p Props) HasClass(name string) bool {
	for _, class := range strings.Fields(p.ClassName) {
		if class == name {
			return true
		}
	}
	return false
}

// Node is one element, or a text leaf when Tag is "#text".
type Node struct {
	Tag      string
	Props    Props
	Text     string
	Children []*Node
	Ref      RefFunc
}

// TextTag marks text leaves.
const TextTag = "#text"

// El builds an element. Nil children are dropped.
func El(tag string, props Props, children ...*Node) *Node {
	return &Node{Tag: tag, Props: props, Children: compact(children)}
}

// Text builds a text leaf.
func Text(s string) *Node {
	return &Node{Tag: TextTag, Text: s}
}

// Fragment groups children without introducing an element.
func Fragment(children ...*Node) *Node {
	return &Node{Children: compact(children)}
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool {
	return n != nil && n.Tag == TextTag
}

// IsFragment reports whether n only groups its children.
func (n *Node) IsFragment() bool {
	return n != nil && n.Tag == ""
}

// Append adds children, dropping nil ones.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, compact(children)...)
	return n
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Find returns the first node in document order matching pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	Walk(n, func(current *Node) bool {
		if found != nil {
			return false
		}
		if pred(current) {
			found = current
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var matches []*Node
	Walk(n, func(current *Node) bool {
		if pred(current) {
			matches = append(matches, current)
		}
		return true
	})
	return matches
}

// ByRole matches nodes with the given role.
func ByRole(role Role) func(*Node) bool {
	return func(n *Node) bool {
		return n.Props.Role == role
	}
}

// ByID matches the node with the given id.
func ByID(id string) func(*Node) bool {
	return func(n *Node) bool {
		return id != "" && n.Props.ID == id
	}
}

// TextContent concatenates all text leaves below n.
func (n *Node) TextContent() string {
	var b strings.Builder
	Walk(n, func(current *Node) bool {
		if current.IsText() {
			b.WriteString(current.Text)
		}
		return true
	})
	return b.String()
}

// Click dispatches a click to n. Disabled elements and elements without a
// handler ignore it; the return value reports whether a handler ran.
func (n *Node) Click() bool {
	if n == nil || n.Props.Disabled || n.Props.OnClick == nil {
		return false
	}
	n.Props.OnClick()
	return true
}

// Mount resolves references: every Ref in the tree is called with its node,
// parents before children.
func Mount(n *Node) {
	Walk(n, func(current *Node) bool {
		if current.Ref != nil {
			current.Ref(current)
		}
		return true
	})
}

func compact(children []*Node) []*Node {
	out := make([]*Node, 0, len(children))
	for _, child := range children {
		if child != nil {
			out = append(out, child)
		}
	}
	return out
}
