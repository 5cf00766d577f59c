// Package tabs implements a mutually exclusive panel switcher.
//
// Only the active value is stored. Whether a panel is present is derived from
// it each time the tree is built, so at most one panel is ever rendered.
package tabs

import "github.com/alexisbeaulieu97/campus/pkg/primitives/controlled"

const (
	StateActive   = "active"
	StateInactive = "inactive"

	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Tab declares one trigger.
type Tab struct {
	Value    string
	Label    string
	Disabled bool
}

// Options configures Tabs. Value makes the active tab controlled.
type Options struct {
	ID            string
	Value         *string
	DefaultValue  string
	OnValueChange func(string)
	Orientation   string
	Tabs          []Tab
}

// Tabs is the shared state behind the list, triggers and panels.
type Tabs struct {
	id          string
	value       *controlled.State[string]
	orientation string
	tabs        []Tab
}

// New creates Tabs. Orientation defaults to horizontal.
func New(opts Options) *Tabs {
	orientation := opts.Orientation
	if orientation == "" {
		orientation = Horizontal
	}
	return &Tabs{
		id:          opts.ID,
		value:       controlled.New(opts.Value, opts.DefaultValue, opts.OnValueChange),
		orientation: orientation,
		tabs:        append([]Tab(nil), opts.Tabs...),
	}
}

// Value returns the active tab value.
func (t *Tabs) Value() string {
	return t.value.Get()
}

// IsActive reports whether value is the active tab.
func (t *Tabs) IsActive(value string) bool {
	return t.Value() == value
}

// Orientation returns horizontal or vertical.
func (t *Tabs) Orientation() string {
	return t.orientation
}

// Declared returns a copy of the configured triggers.
func (t *Tabs) Declared() []Tab {
	return append([]Tab(nil), t.tabs...)
}

// Activate makes value the active tab. Activating a declared disabled tab
// does nothing; values that were never declared are accepted and leave every
// panel absent.
func (t *Tabs) Activate(value string) bool {
	if tab, ok := t.lookup(value); ok && tab.Disabled {
		return false
	}
	t.value.Set(value)
	return true
}

// Next activates the following enabled tab, wrapping at the end.
func (t *Tabs) Next() bool {
	return t.step(1)
}

// Prev activates the preceding enabled tab, wrapping at the start.
func (t *Tabs) Prev() bool {
	return t.step(-1)
}

// Sync updates the controlled value; nil releases control.
func (t *Tabs) Sync(value *string) {
	t.value.Sync(value)
}

func (t *Tabs) step(dir int) bool {
	n := len(t.tabs)
	if n == 0 {
		return false
	}
	start := -1
	for i, tab := range t.tabs {
		if tab.Value == t.Value() {
			start = i
			break
		}
	}
	if start < 0 && dir < 0 {
		start = 0
	}
	for i := 1; i <= n; i++ {
		candidate := t.tabs[((start+dir*i)%n+n)%n]
		if candidate.Disabled {
			continue
		}
		if candidate.Value == t.Value() {
			return false
		}
		return t.Activate(candidate.Value)
	}
	return false
}

func (t *Tabs) lookup(value string) (Tab, bool) {
	for _, tab := range t.tabs {
		if tab.Value == value {
			return tab, true
		}
	}
	return Tab{}, false
}

func (t *Tabs) prefixed(kind, value string) string {
	if t.id == "" {
		return kind + "-" + value
	}
	return t.id + "-" + kind + "-" + value
}
