package document

import "strings"

// Snapshot is an immutable copy of a document's line contents.
type Snapshot struct {
	lines []string
}

// NewSnapshot creates a snapshot of the given lines.
func NewSnapshot(lines ...string) Snapshot {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return Snapshot{lines: append([]string(nil), lines...)}
}

// Len returns the number of lines.
func (s Snapshot) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the lines.
func (s Snapshot) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Text returns the snapshot joined with newlines.
func (s Snapshot) Text() string {
	return strings.Join(s.lines, "\n")
}

// Equal reports whether both snapshots hold the same lines.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.lines) != len(other.lines) {
		return false
	}
	for i := range s.lines {
		if s.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}

// Snapshot captures the current line contents.
func (d *Document) Snapshot() Snapshot {
	return Snapshot{lines: d.Lines()}
}

// Restore replaces the document's lines with the snapshot. The active line
// is clamped to the restored line count and the cursor moves to its end.
func (d *Document) Restore(s Snapshot) {
	d.replace(s.lines)
}
