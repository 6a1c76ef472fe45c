package history

import (
	"time"

	"github.com/phanxgames/tactile/timer"
)

// DefaultDebounce is the coalescing window used when NewDebounced is given a
// window <= 0.
const DefaultDebounce = time.Second

// Debounced coalesces rapid pushes into one History entry. A submit that
// arrives more than Window after the previous push is recorded immediately;
// anything sooner is held as pending and flushed once the window expires
// without further submits.
//
// The flush is a deferred task on a timer.Queue, so Debounced does nothing
// until Advance is called. Only one flush is ever pending.
type Debounced[T any] struct {
	hist     *History[T]
	queue    *timer.Queue
	window   time.Duration
	lastPush time.Time
	pending  T
	hasPend  bool
	flush    timer.Handle
}

// NewDebounced wraps h. If queue is nil a private queue is used.
func NewDebounced[T any](h *History[T], queue *timer.Queue, window time.Duration) *Debounced[T] {
	if window <= 0 {
		window = DefaultDebounce
	}
	if queue == nil {
		queue = &timer.Queue{}
	}
	return &Debounced[T]{hist: h, queue: queue, window: window}
}

// History returns the wrapped history.
func (d *Debounced[T]) History() *History[T] {
	return d.hist
}

// Window returns the coalescing window.
func (d *Debounced[T]) Window() time.Duration {
	return d.window
}

// Submit offers a new state observed at now.
func (d *Debounced[T]) Submit(state T, now time.Time) {
	d.queue.Advance(now)
	d.flush.Cancel()

	if d.lastPush.IsZero() || now.Sub(d.lastPush) > d.window {
		d.clearPending()
		d.push(state, now)
		return
	}

	d.pending = state
	d.hasPend = true
	// A late Advance still records the push at its deadline.
	due := now.Add(d.window)
	d.flush = d.queue.Schedule(due, func(time.Time) {
		d.Flush(due)
	})
}

// Advance runs the pending flush if its window has expired.
func (d *Debounced[T]) Advance(now time.Time) {
	d.queue.Advance(now)
}

// Flush records the pending state immediately, if there is one.
func (d *Debounced[T]) Flush(now time.Time) {
	d.flush.Cancel()
	if !d.hasPend {
		return
	}
	state := d.pending
	d.clearPending()
	d.push(state, now)
}

// Pending reports whether a submitted state is waiting to be recorded.
func (d *Debounced[T]) Pending() bool {
	return d.hasPend
}

// Undo flushes any pending state, then steps back.
func (d *Debounced[T]) Undo(now time.Time) T {
	d.Flush(now)
	return d.hist.Undo()
}

// Redo flushes any pending state, then steps forward. A flushed state
// truncates the redo tail, so Redo after a pending edit is a no-op.
func (d *Debounced[T]) Redo(now time.Time) T {
	d.Flush(now)
	return d.hist.Redo()
}

// Current returns the newest state, including one still pending.
func (d *Debounced[T]) Current() T {
	if d.hasPend {
		return d.pending
	}
	return d.hist.Current()
}

func (d *Debounced[T]) push(state T, now time.Time) {
	d.hist.Push(state)
	d.lastPush = now
}

func (d *Debounced[T]) clearPending() {
	var zero T
	d.pending = zero
	d.hasPend = false
}
