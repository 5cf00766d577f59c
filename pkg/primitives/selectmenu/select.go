// Package selectmenu implements a single-choice dropdown.
//
// A Select owns two independent pieces of state, the selected value and the
// open flag, each of which may be controlled by the caller. Its parts
// (trigger, value text, content, items) are methods on the same *Select, so
// every part reads and writes the one shared state:
//
//	s := selectmenu.New(selectmenu.Options{
//		Items: []selectmenu.Item{{Value: "beginner", Label: "Beginner"}},
//	})
//	tree := node.Fragment(
//		s.Trigger(node.Props{}, s.ValueText("Select a level")),
//		s.Content(node.Props{}, s.Items()...),
//	)
//
// Content is absent from the tree while the select is closed.
package selectmenu

import "github.com/alexisbeaulieu97/campus/pkg/primitives/controlled"

const (
	StateOpen   = "open"
	StateClosed = "closed"

	ItemChecked   = "checked"
	ItemUnchecked = "unchecked"
)

// Item is one selectable option.
type Item struct {
	Value    string
	Label    string
	Disabled bool
}

// Options configures a Select. Value and Open make their state controlled.
type Options struct {
	ID            string
	Value         *string
	DefaultValue  string
	OnValueChange func(string)
	Open          *bool
	DefaultOpen   bool
	OnOpenChange  func(bool)
	Disabled      bool
	Required      bool
	Name          string
	Items         []Item
}

// Select is the shared state behind every select part.
type Select struct {
	id       string
	value    *controlled.State[string]
	open     *controlled.State[bool]
	disabled bool
	required bool
	name     string
	items    []Item
}

// New creates a Select. It starts closed unless DefaultOpen or Open say
// otherwise.
func New(opts Options) *Select {
	id := opts.ID
	if id == "" {
		id = "select"
	}
	return &Select{
		id:       id,
		value:    controlled.New(opts.Value, opts.DefaultValue, opts.OnValueChange),
		open:     controlled.New(opts.Open, opts.DefaultOpen, opts.OnOpenChange),
		disabled: opts.Disabled,
		required: opts.Required,
		name:     opts.Name,
		items:    append([]Item(nil), opts.Items...),
	}
}

// ID returns the select's element id prefix.
func (s *Select) ID() string {
	return s.id
}

// Value returns the effective selected value.
func (s *Select) Value() string {
	return s.value.Get()
}

// IsOpen reports whether the dropdown is open.
func (s *Select) IsOpen() bool {
	return s.open.Get()
}

// State returns the open/closed data-state marker.
func (s *Select) State() string {
	if s.IsOpen() {
		return StateOpen
	}
	return StateClosed
}

// Name returns the form field name.
func (s *Select) Name() string {
	return s.name
}

// Disabled reports whether the select ignores interaction.
func (s *Select) Disabled() bool {
	return s.disabled
}

// SetDisabled enables or disables the select.
func (s *Select) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// SetOpen requests an open-state change.
func (s *Select) SetOpen(open bool) {
	if open && s.disabled {
		return
	}
	s.open.Set(open)
}

// Toggle flips between open and closed.
func (s *Select) Toggle() {
	s.SetOpen(!s.IsOpen())
}

// Choose selects value and closes the dropdown. Disabled or unknown items
// leave the state untouched and Choose reports false.
func (s *Select) Choose(value string) bool {
	if s.disabled {
		return false
	}
	item, ok := s.lookup(value)
	if !ok || item.Disabled {
		return false
	}
	s.value.Set(value)
	if s.IsOpen() {
		s.open.Set(false)
	}
	return true
}

// Selected reports whether value is the current selection.
func (s *Select) Selected(value string) bool {
	return s.Value() == value
}

// SelectedItem returns the configured item matching the current value.
func (s *Select) SelectedItem() (Item, bool) {
	return s.lookup(s.Value())
}

// Choices returns a copy of the configured items.
func (s *Select) Choices() []Item {
	return append([]Item(nil), s.items...)
}

// SetItems replaces the configured items. The current value is kept even if
// it no longer matches an item.
func (s *Select) SetItems(items []Item) {
	s.items = append([]Item(nil), items...)
}

// SyncValue updates the controlled value; nil releases control.
func (s *Select) SyncValue(value *string) {
	s.value.Sync(value)
}

// SyncOpen updates the controlled open flag; nil releases control.
func (s *Select) SyncOpen(open *bool) {
	s.open.Sync(open)
}

// Required reports whether a value must be chosen before submitting.
func (s *Select) Required() bool {
	return s.required
}

func (s *Select) lookup(value string) (Item, bool) {
	for _, item := range s.items {
		if item.Value == value {
			return item, true
		}
	}
	return Item{}, false
}

func (s *Select) contentID() string {
	return s.id + "-content"
}
