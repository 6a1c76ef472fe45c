// Package history implements a linear undo/redo history and a debounced
// wrapper that coalesces rapid text edits into a single undo step.
package history

// DefaultMaxSize is the history capacity used when New is given a size < 1.
const DefaultMaxSize = 50

// History is a linear sequence of states with a cursor. There is no redo
// tree: pushing after an undo discards every redoable state.
//
// Invariants: Len() >= 1 and 0 <= Index() < Len().
type History[T any] struct {
	states  []T
	index   int
	maxSize int
}

// New returns a History holding only initial. maxSize < 1 selects
// DefaultMaxSize.
func New[T any](initial T, maxSize int) *History[T] {
	if maxSize < 1 {
		maxSize = DefaultMaxSize
	}
	return &History[T]{
		states:  []T{initial},
		maxSize: maxSize,
	}
}

// Push records state as the newest entry. States after the cursor are
// discarded first. When the history overflows, the oldest entry is evicted
// and the cursor shifts down with it.
func (h *History[T]) Push(state T) {
	if h.index < len(h.states)-1 {
		var zero T
		for i := h.index + 1; i < len(h.states); i++ {
			h.states[i] = zero
		}
		h.states = h.states[:h.index+1]
	}
	h.states = append(h.states, state)
	h.index = len(h.states) - 1

	if len(h.states) > h.maxSize {
		over := len(h.states) - h.maxSize
		var zero T
		copy(h.states, h.states[over:])
		for i := len(h.states) - over; i < len(h.states); i++ {
			h.states[i] = zero
		}
		h.states = h.states[:len(h.states)-over]
		h.index -= over
	}
}

// Undo moves the cursor back one entry and returns the state there. At the
// oldest entry it returns the current state unchanged.
func (h *History[T]) Undo() T {
	if h.index > 0 {
		h.index--
	}
	return h.states[h.index]
}

// Redo moves the cursor forward one entry and returns the state there. At
// the newest entry it returns the current state unchanged.
func (h *History[T]) Redo() T {
	if h.index < len(h.states)-1 {
		h.index++
	}
	return h.states[h.index]
}

// Current returns the state under the cursor.
func (h *History[T]) Current() T {
	return h.states[h.index]
}

// CanUndo reports whether Undo would move the cursor.
func (h *History[T]) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether Redo would move the cursor.
func (h *History[T]) CanRedo() bool {
	return h.index < len(h.states)-1
}

// Len returns the number of stored states.
func (h *History[T]) Len() int {
	return len(h.states)
}

// Index returns the cursor position.
func (h *History[T]) Index() int {
	return h.index
}

// MaxSize returns the capacity.
func (h *History[T]) MaxSize() int {
	return h.maxSize
}

// States returns a copy of the stored states, oldest first.
func (h *History[T]) States() []T {
	out := make([]T, len(h.states))
	copy(out, h.states)
	return out
}

// Reset drops every entry and starts over from initial.
func (h *History[T]) Reset(initial T) {
	var zero T
	for i := range h.states {
		h.states[i] = zero
	}
	h.states = append(h.states[:0], initial)
	h.index = 0
}
