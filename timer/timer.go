// Package timer provides a single-threaded queue of cancellable deferred
// tasks. Nothing runs on its own: the owner calls [Queue.Advance] with the
// current time (usually once per game tick, or before handling an input
// event) and every task whose deadline has passed runs synchronously on the
// caller's goroutine.
//
// tactile uses it for the long-press timer, for haptic pattern segments, and
// for the history debounce window.
package timer

import (
	"sort"
	"time"
)

type task struct {
	id uint64
	at time.Time
	fn func(now time.Time)
}

// Queue holds pending tasks ordered by deadline. The zero value is ready to
// use. A Queue must not be shared between goroutines.
type Queue struct {
	tasks  []task
	nextID uint64
	now    time.Time
}

// Handle identifies a scheduled task so it can be cancelled.
type Handle struct {
	id uint64
	q  *Queue
}

// Schedule registers fn to run at the first Advance whose time is at or
// after at.
func (q *Queue) Schedule(at time.Time, fn func(now time.Time)) Handle {
	q.nextID++
	id := q.nextID
	t := task{id: id, at: at, fn: fn}

	// Keep tasks sorted by deadline, FIFO for equal deadlines.
	i := sort.Search(len(q.tasks), func(i int) bool {
		return q.tasks[i].at.After(at)
	})
	q.tasks = append(q.tasks, task{})
	copy(q.tasks[i+1:], q.tasks[i:])
	q.tasks[i] = t
	return Handle{id: id, q: q}
}

// After schedules fn to run d after the queue's last observed time.
func (q *Queue) After(d time.Duration, fn func(now time.Time)) Handle {
	return q.Schedule(q.now.Add(d), fn)
}

// Advance runs every task due at or before now in deadline order. Tasks
// scheduled by a running task are also run if they are already due.
// It returns the number of tasks run.
func (q *Queue) Advance(now time.Time) int {
	if now.After(q.now) {
		q.now = now
	}
	ran := 0
	for len(q.tasks) > 0 && !q.tasks[0].at.After(now) {
		t := q.tasks[0]
		copy(q.tasks, q.tasks[1:])
		q.tasks[len(q.tasks)-1] = task{}
		q.tasks = q.tasks[:len(q.tasks)-1]
		t.fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of tasks waiting to run.
func (q *Queue) Pending() int {
	return len(q.tasks)
}

// Next returns the deadline of the earliest pending task.
func (q *Queue) Next() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].at, true
}

// Clear drops every pending task.
func (q *Queue) Clear() {
	for i := range q.tasks {
		q.tasks[i] = task{}
	}
	q.tasks = q.tasks[:0]
}

func (q *Queue) remove(id uint64) bool {
	for i := range q.tasks {
		if q.tasks[i].id == id {
			copy(q.tasks[i:], q.tasks[i+1:])
			q.tasks[len(q.tasks)-1] = task{}
			q.tasks = q.tasks[:len(q.tasks)-1]
			return true
		}
	}
	return false
}

// Cancel removes the task if it has not run yet. Cancelling twice, or
// cancelling the zero Handle, is a no-op. It reports whether a pending task
// was removed.
func (h Handle) Cancel() bool {
	if h.q == nil {
		return false
	}
	return h.q.remove(h.id)
}

// Active reports whether the task is still waiting to run.
func (h Handle) Active() bool {
	if h.q == nil {
		return false
	}
	for i := range h.q.tasks {
		if h.q.tasks[i].id == h.id {
			return true
		}
	}
	return false
}
