// Package history implements a bounded undo/redo log of full-value
// snapshots with a movable cursor, the persistence model behind every
// editable entity in a design session (the wall collection, the boundary
// polygon in progress).
package history

import "reflect"

// DefaultDepth is the maximum number of snapshots retained. Once exceeded,
// the oldest snapshot is evicted on push.
const DefaultDepth = 50

// History is a bounded linear undo/redo stack over snapshot values of
// type T. It always holds at least one entry (the initial state), and the
// entry at the cursor is the current value.
//
// History stores the values it is given; callers that mutate a value after
// pushing it must push a fresh copy, as with any snapshot store.
//
// A History is not safe for concurrent use. The editor session that owns
// the entity is its single writer.
type History[T any] struct {
	stack  []T
	cursor int
	equal  func(a, b T) bool
}

// New returns a history seeded with initial, comparing snapshots with
// reflect.DeepEqual for push deduplication.
func New[T any](initial T) *History[T] {
	return NewFunc(initial, func(a, b T) bool {
		return reflect.DeepEqual(a, b)
	})
}

// NewFunc returns a history seeded with initial, using equal to decide
// whether a pushed snapshot is a no-op. Use this when DeepEqual is wrong
// for T (NaN fields, ignorable fields).
func NewFunc[T any](initial T, equal func(a, b T) bool) *History[T] {
	return &History[T]{stack: []T{initial}, equal: equal}
}

// Current returns the snapshot at the cursor.
func (h *History[T]) Current() T {
	return h.stack[h.cursor]
}

// Len returns the number of retained snapshots.
func (h *History[T]) Len() int {
	return len(h.stack)
}

// CanUndo reports whether Undo would move the cursor.
func (h *History[T]) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would move the cursor.
func (h *History[T]) CanRedo() bool {
	return h.cursor < len(h.stack)-1
}

// Push commits a new snapshot. Pushing a value equal to the current
// snapshot is a no-op and returns false. Otherwise any redo branch beyond
// the cursor is discarded, the snapshot is appended, and the cursor moves
// to it; if the stack would exceed DefaultDepth the oldest entry is
// evicted and the cursor shifts down so it still points at the new entry.
func (h *History[T]) Push(v T) bool {
	if h.equal(v, h.stack[h.cursor]) {
		return false
	}
	h.stack = append(h.stack[:h.cursor+1], v)
	h.cursor++
	if len(h.stack) > DefaultDepth {
		h.stack = h.stack[1:]
		h.cursor--
	}
	return true
}

// Undo moves the cursor one snapshot back, reporting whether it moved.
func (h *History[T]) Undo() bool {
	if h.cursor == 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo moves the cursor one snapshot forward, reporting whether it moved.
func (h *History[T]) Redo() bool {
	if h.cursor >= len(h.stack)-1 {
		return false
	}
	h.cursor++
	return true
}

// Replace overwrites the current snapshot in place without creating a
// history entry or touching the redo branch. Drag gestures call this on
// every pointer move and Push once on pointer-up to commit the final
// state.
func (h *History[T]) Replace(v T) {
	h.stack[h.cursor] = v
}

// Reset discards everything and reseeds the history with initial.
func (h *History[T]) Reset(initial T) {
	h.stack = h.stack[:0]
	h.stack = append(h.stack, initial)
	h.cursor = 0
}
