// Package toast implements a notification queue with timed expiry.
//
// A Queue keeps toasts in insertion order. Each toast with a finite duration
// gets its own timer; when it fires the toast is removed unless it is already
// gone. Removal is idempotent whether it comes from the caller or a timer.
package toast

import (
	"crypto/rand"
	"math/big"
	"slices"
	"sync"
	"time"
)

// DefaultDuration applies when neither the queue nor the toast set one.
const DefaultDuration = 5 * time.Second

// Infinite disables expiry. Any negative duration behaves the same.
const Infinite time.Duration = -1

// Variant selects the toast styling.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Action is the optional button shown in a toast.
type Action struct {
	Label    string
	AltText  string
	OnSelect func()
}

// Item is one toast in the queue.
type Item struct {
	ID          string
	Title       string
	Description string
	Action      *Action
	Variant     Variant
	Open        bool
	Duration    time.Duration
	CreatedAt   time.Time
}

// Data describes a toast to add. A zero Duration uses the queue default.
type Data struct {
	Title       string
	Description string
	Action      *Action
	Variant     Variant
	Duration    time.Duration
}

// Patch lists the fields Update may change; nil fields are left alone.
type Patch struct {
	Title       *string
	Description *string
	Action      *Action
	Variant     *Variant
	Open        *bool
}

// ChangeKind names what happened to the queue.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeUpdated ChangeKind = "updated"
	ChangeRemoved ChangeKind = "removed"
	ChangeExpired ChangeKind = "expired"
)

// Change is reported after every mutation with a snapshot of the queue.
type Change struct {
	Kind   ChangeKind
	ID     string
	Toasts []Item
}

// Options configures a Queue.
type Options struct {
	Duration time.Duration
	Clock    Clock
	NewID    func() string
	OnChange func(Change)
}

// Queue holds the active toasts.
type Queue struct {
	mu       sync.Mutex
	items    []Item
	timers   map[string]*pending
	duration time.Duration
	clock    Clock
	newID    func() string
	onChange func(Change)
}

// NewQueue creates an empty queue.
func NewQueue(opts Options) *Queue {
	q := &Queue{
		timers:   make(map[string]*pending),
		duration: opts.Duration,
		clock:    opts.Clock,
		newID:    opts.NewID,
		onChange: opts.OnChange,
	}
	if q.duration == 0 {
		q.duration = DefaultDuration
	}
	if q.clock == nil {
		q.clock = SystemClock{}
	}
	if q.newID == nil {
		q.newID = RandomID
	}
	return q
}

// Add appends a toast and returns its id. The toast starts open and expires
// after its duration unless the duration is negative.
func (q *Queue) Add(data Data) string {
	q.mu.Lock()
	id := q.newID()
	for q.index(id) >= 0 {
		id = q.newID()
	}

	duration := data.Duration
	if duration == 0 {
		duration = q.duration
	}
	variant := data.Variant
	if variant == "" {
		variant = VariantDefault
	}
	q.items = append(q.items, Item{
		ID:          id,
		Title:       data.Title,
		Description: data.Description,
		Action:      data.Action,
		Variant:     variant,
		Open:        true,
		Duration:    duration,
		CreatedAt:   q.clock.Now(),
	})
	if duration >= 0 {
		p := &pending{}
		q.timers[id] = p
		p.timer = q.clock.AfterFunc(duration, func() { q.expire(id, p) })
	}
	change := q.change(ChangeAdded, id)
	q.mu.Unlock()

	q.notify(change)
	return id
}

// Update merges patch into the toast with id. Unknown ids are ignored.
func (q *Queue) Update(id string, patch Patch) {
	q.mu.Lock()
	i := q.index(id)
	if i < 0 {
		q.mu.Unlock()
		return
	}
	item := &q.items[i]
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Action != nil {
		item.Action = patch.Action
	}
	if patch.Variant != nil {
		item.Variant = *patch.Variant
	}
	if patch.Open != nil {
		item.Open = *patch.Open
	}
	change := q.change(ChangeUpdated, id)
	q.mu.Unlock()

	q.notify(change)
}

// Remove deletes the toast with id and cancels its timer. Unknown ids are
// ignored.
func (q *Queue) Remove(id string) {
	q.drop(id, ChangeRemoved, nil)
}

// Get returns a copy of the toast with id.
func (q *Queue) Get(id string) (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if i := q.index(id); i >= 0 {
		return q.items[i], true
	}
	return Item{}, false
}

// Toasts returns the queue contents oldest first.
func (q *Queue) Toasts() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.items)
}

// Len returns the number of queued toasts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close cancels every pending timer. Queued toasts stay until removed.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, p := range q.timers {
		p.stop()
		delete(q.timers, id)
	}
}

// pending ties a timer to the toast that scheduled it, so a late fire for a
// removed toast cannot remove a newer toast that reuses its id.
type pending struct {
	timer Timer
}

func (p *pending) stop() {
	if p.timer != nil {
		p.timer.Stop()
	}
}

func (q *Queue) expire(id string, p *pending) {
	q.drop(id, ChangeExpired, p)
}

// drop removes id. A non-nil owner must still be the toast's pending timer.
func (q *Queue) drop(id string, kind ChangeKind, owner *pending) {
	q.mu.Lock()
	i := q.index(id)
	if i < 0 || (owner != nil && q.timers[id] != owner) {
		q.mu.Unlock()
		return
	}
	if p, ok := q.timers[id]; ok {
		p.stop()
		delete(q.timers, id)
	}
	q.items = slices.Delete(q.items, i, i+1)
	change := q.change(kind, id)
	q.mu.Unlock()

	q.notify(change)
}

func (q *Queue) index(id string) int {
	return slices.IndexFunc(q.items, func(item Item) bool { return item.ID == id })
}

func (q *Queue) change(kind ChangeKind, id string) Change {
	return Change{Kind: kind, ID: id, Toasts: slices.Clone(q.items)}
}

func (q *Queue) notify(change Change) {
	if q.onChange != nil {
		q.onChange(change)
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomID returns seven random base-36 characters.
func RandomID() string {
	buf := make([]byte, 7)
	limit := big.NewInt(int64(len(idAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			panic("toast: read random id: " + err.Error())
		}
		buf[i] = idAlphabet[n.Int64()]
	}
	return string(buf)
}
