// Package history provides undo/redo for documents.
//
// History keeps whole-document snapshots rather than inverse commands.
// The undo stack's top always mirrors the document's current contents;
// undo moves that snapshot to the redo stack and restores the one below.
//
//	h := history.New(100, doc.Snapshot())
//
//	doc.InsertChar('a')
//	h.RecordIfChanged(doc) // pushes; clears redo
//
//	h.Undo(doc) // back to the empty document
//	h.Redo(doc) // "a" again
//
// # Change Detection
//
// RecordIfChanged compares the document with the undo stack's top line by
// line and pushes only when something differs, so cursor movement and
// failed edits never create undo entries.
//
// # Capacity
//
// The undo stack is bounded. When a push exceeds the capacity the oldest
// snapshot is dropped; the oldest survivor becomes the state undo cannot go
// past.
package history
