package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/campus/pkg/primitives/toast"
)

// loopClock schedules toast timers on a base clock but runs their callbacks
// on the bubbletea event loop: a fired timer is queued and delivered to
// Update as a timerFiredMsg.
type loopClock struct {
	base  toast.Clock
	fired chan *loopTimer
	done  chan struct{}
	once  sync.Once
}

type loopTimer struct {
	mu      sync.Mutex
	f       func()
	stopped bool
	inner   toast.Timer
}

func newLoopClock(base toast.Clock) *loopClock {
	if base == nil {
		base = toast.SystemClock{}
	}
	return &loopClock{
		base:  base,
		fired: make(chan *loopTimer, 64),
		done:  make(chan struct{}),
	}
}

func (c *loopClock) Now() time.Time {
	return c.base.Now()
}

func (c *loopClock) AfterFunc(d time.Duration, f func()) toast.Timer {
	t := &loopTimer{f: f}
	inner := c.base.AfterFunc(d, func() {
		select {
		case c.fired <- t:
		case <-c.done:
		}
	})
	t.mu.Lock()
	t.inner = inner
	t.mu.Unlock()
	return t
}

// wait blocks until a timer fires and reports it to the event loop.
func (c *loopClock) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case t := <-c.fired:
			return timerFiredMsg{timer: t}
		case <-c.done:
			return nil
		}
	}
}

func (c *loopClock) stop() {
	c.once.Do(func() { close(c.done) })
}

// Stop prevents a queued or future fire from running the callback.
func (t *loopTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	if t.inner != nil {
		t.inner.Stop()
	}
	return true
}

func (t *loopTimer) fire() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	f := t.f
	t.mu.Unlock()
	f()
}
