// Package document implements the editable text model.
//
// A Document is an ordered list of lines with exactly one active line that
// hosts the cursor. The active line is a gap buffer split at the cursor:
// bytes before the cursor and bytes after it. Inserting or deleting at the
// cursor is O(1); moving the cursor costs one byte transfer per column.
// All other lines are committed, immutable strings.
//
// # Cursor Model
//
// Horizontal movement transfers bytes across the gap. Vertical movement
// commits the active line and places the cursor at the end of the target
// line. A new document has one empty line; a document never has zero lines.
//
// # Snapshots
//
// Snapshot captures line contents (not the cursor). Committed lines are
// shared between snapshots, so taking a snapshot copies only the line
// headers and the active line.
//
// Text is treated as single bytes; there is no multi-byte character
// handling.
package document
