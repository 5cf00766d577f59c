package toast

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/campus/pkg/primitives/controlled"
	"github.com/alexisbeaulieu97/campus/pkg/primitives/node"
)

// RootOptions configures a standalone toast. It starts open unless Open
// says otherwise or DefaultClosed is set.
type RootOptions struct {
	Open          *bool
	DefaultClosed bool
	OnOpenChange  func(bool)
	// Duration closes the toast once mounted. Zero or negative keeps it open.
	Duration time.Duration
	Clock    Clock
}

// Root is a single toast that owns its open state and closing timer,
// independent of any Queue.
type Root struct {
	mu       sync.Mutex
	open     *controlled.State[bool]
	onChange func(bool)
	duration time.Duration
	clock    Clock
	timer    Timer
}

// NewRoot creates a standalone toast.
func NewRoot(opts RootOptions) *Root {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Root{
		open:     controlled.New(opts.Open, !opts.DefaultClosed, nil),
		onChange: opts.OnOpenChange,
		duration: opts.Duration,
		clock:    clock,
	}
}

// IsOpen reports whether the toast is shown.
func (r *Root) IsOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open.Get()
}

// SetOpen requests an open-state change. Closing disarms the timer.
func (r *Root) SetOpen(open bool) {
	r.mu.Lock()
	if !open {
		r.disarm()
	}
	r.open.Set(open)
	r.mu.Unlock()
	r.notify(open)
}

// Sync updates the controlled open flag; nil releases control.
func (r *Root) Sync(open *bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open.Sync(open)
}

// Mount arms the closing timer when the toast is open with a positive
// duration. Mounting again restarts the timer.
func (r *Root) Mount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disarm()
	if !r.open.Get() || r.duration <= 0 {
		return
	}
	var timer Timer
	timer = r.clock.AfterFunc(r.duration, func() {
		r.mu.Lock()
		if r.timer != timer {
			r.mu.Unlock()
			return
		}
		r.timer = nil
		r.open.Set(false)
		r.mu.Unlock()
		r.notify(false)
	})
	r.timer = timer
}

// Unmount disarms the closing timer.
func (r *Root) Unmount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disarm()
}

// Render returns the toast item, or nil while closed.
func (r *Root) Render(props node.Props, children ...*node.Node) *node.Node {
	if !r.IsOpen() {
		return nil
	}
	return node.El("li", itemProps(props), children...)
}

func (r *Root) notify(open bool) {
	if r.onChange != nil {
		r.onChange(open)
	}
}

func (r *Root) disarm() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
