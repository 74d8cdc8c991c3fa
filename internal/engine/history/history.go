package history

import "github.com/dshills/texted/internal/engine/document"

// DefaultCapacity is the undo depth used when none is configured.
const DefaultCapacity = 100

// Document is the state history snapshots and restores.
type Document interface {
	Snapshot() document.Snapshot
	Restore(document.Snapshot)
}

// History manages undo/redo snapshot stacks.
type History struct {
	undoStack []document.Snapshot
	redoStack []document.Snapshot

	capacity int
}

// New creates a history whose base state is initial.
// A capacity below 1 selects DefaultCapacity.
func New(capacity int, initial document.Snapshot) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{
		undoStack: []document.Snapshot{initial},
		capacity:  capacity,
	}
}

// RecordIfChanged pushes the document's state when it differs from the
// last recorded state. A push clears the redo stack.
func (h *History) RecordIfChanged(doc Document) bool {
	snap := doc.Snapshot()
	if snap.Equal(h.top()) {
		return false
	}

	h.undoStack = append(h.undoStack, snap)
	h.redoStack = nil

	if len(h.undoStack) > h.capacity {
		excess := len(h.undoStack) - h.capacity
		h.undoStack = h.undoStack[excess:]
	}
	return true
}

// Undo restores the previous recorded state.
// It returns false when only the base state remains.
func (h *History) Undo(doc Document) bool {
	if len(h.undoStack) < 2 {
		return false
	}

	h.redoStack = append(h.redoStack, doc.Snapshot())
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	doc.Restore(h.top())
	return true
}

// Redo restores the most recently undone state.
// It returns false when there is nothing to redo.
func (h *History) Redo(doc Document) bool {
	if len(h.redoStack) == 0 {
		return false
	}

	next := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, next)
	doc.Restore(next)
	return true
}

// Reset discards all history and makes initial the base state.
func (h *History) Reset(initial document.Snapshot) {
	h.undoStack = []document.Snapshot{initial}
	h.redoStack = nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 1
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	return len(h.undoStack) - 1
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Capacity returns the maximum number of snapshots kept for undo.
func (h *History) Capacity() int {
	return h.capacity
}

// top returns the last recorded state.
func (h *History) top() document.Snapshot {
	return h.undoStack[len(h.undoStack)-1]
}
