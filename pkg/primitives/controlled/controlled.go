// Package controlled resolves whether a piece of widget state is owned by the
// caller (controlled) or by the widget itself (uncontrolled).
//
// Every stateful primitive keeps one State per value it exposes:
//
//	checked := controlled.New(opts.Checked, opts.DefaultChecked, opts.OnCheckedChange)
//	checked.Set(!checked.Get())
//
// When the caller supplies an external value, Get always returns it and Set
// only reports the requested value through the change callback. The caller is
// expected to feed the new value back with Sync, the same way a parent
// re-renders a child with new props.
package controlled

// State holds one controllable value.
type State[T any] struct {
	external *T
	internal T
	onChange func(T)
}

// New creates a State. A nil external pointer makes the state uncontrolled,
// starting from fallback.
func New[T any](external *T, fallback T, onChange func(T)) *State[T] {
	s := &State[T]{internal: fallback, onChange: onChange}
	s.Sync(external)
	return s
}

// Get returns the effective value.
func (s *State[T]) Get() T {
	if s.external != nil {
		return *s.external
	}
	return s.internal
}

// Set requests a new value. Controlled state is never written; the request is
// only echoed to the change callback.
func (s *State[T]) Set(v T) {
	if s.external == nil {
		s.internal = v
	}
	if s.onChange != nil {
		s.onChange(v)
	}
}

// Controlled reports whether the caller owns the value.
func (s *State[T]) Controlled() bool {
	return s.external != nil
}

// Sync replaces the external value. The pointer is copied, so later writes by
// the caller are not observed until the next Sync. Passing nil hands
// ownership back to the state, which resumes from its last internal value.
func (s *State[T]) Sync(external *T) {
	if external == nil {
		s.external = nil
		return
	}
	v := *external
	s.external = &v
}

// OnChange replaces the change callback.
func (s *State[T]) OnChange(fn func(T)) {
	s.onChange = fn
}

// Ptr returns a pointer to v, for passing controlled values inline.
func Ptr[T any](v T) *T {
	return &v
}
