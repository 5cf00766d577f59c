// Package slot forwards a wrapper's props and ref onto its single child, so a
// component can render as whatever element the caller supplies.
package slot

import (
	"github.com/alexisbeaulieu97/campus/pkg/errors"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

const component = "slot"

// Merge returns a copy of the only child with props filled in wherever the
// child leaves a field unset. The child wins every conflict and Data entries
// merge key by key. The returned node's ref calls ref and then the child's
// own ref. Nil children do not count; anything other than exactly one element
// child is a *errors.UsageError.
func Merge(props node.Props, ref node.RefFunc, children ...*node.Node) (*node.Node, error) {
	var only *node.Node
	count := 0
	for _, child := range children {
		if child == nil {
			continue
		}
		only = child
		count++
	}
	switch {
	case count == 0:
		return nil, errors.NewUsageError(component, "expects exactly one child, got none")
	case count > 1:
		return nil, errors.NewUsageError(component, "expects exactly one child, got several")
	case only.IsText() || only.IsFragment():
		return nil, errors.NewUsageError(component, "child must be an element")
	}

	merged := *only
	merged.Props = only.Props.Clone()
	merged.Children = append([]*node.Node(nil), only.Children...)
	node.Inherit(&merged.Props, props)
	merged.Ref = composeRefs(ref, only.Ref)
	return &merged, nil
}

// MustMerge is Merge for callers that construct the child themselves; it
// panics on a usage error.
func MustMerge(props node.Props, ref node.RefFunc, children ...*node.Node) *node.Node {
	merged, err := Merge(props, ref, children...)
	if err != nil {
		panic(err)
	}
	return merged
}

func composeRefs(refs ...node.RefFunc) node.RefFunc {
	var set []node.RefFunc
	for _, ref := range refs {
		if ref != nil {
			set = append(set, ref)
		}
	}
	switch len(set) {
	case 0:
		return nil
	case 1:
		return set[0]
	}
	return func(n *node.Node) {
		for _, ref := range set {
			ref(n)
		}
	}
}
