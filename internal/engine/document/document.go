package document

import "strings"

// Document is an ordered list of lines with one active line.
type Document struct {
	// lines holds committed text. lines[active] is stale while the live
	// buffer is being edited; commit writes it back.
	lines  []string
	active int
	live   Line
}

// New creates a document with a single empty line.
func New() *Document {
	return &Document{lines: []string{""}}
}

// FromLines creates a document holding lines with the cursor at the end of
// the first line. An empty slice yields a single empty line.
func FromLines(lines []string) *Document {
	d := &Document{}
	d.replace(lines)
	return d
}

// commit writes the live buffer back into the line store.
func (d *Document) commit() {
	d.lines[d.active] = d.live.Text()
}

// activate makes line i active with the cursor at its end.
func (d *Document) activate(i int) {
	d.active = i
	d.live = newLine(d.lines[i])
}

// replace swaps in new line contents, clamping the active line.
func (d *Document) replace(lines []string) {
	if len(lines) == 0 {
		d.lines = []string{""}
	} else {
		d.lines = append(make([]string, 0, len(lines)), lines...)
	}
	active := d.active
	if active >= len(d.lines) {
		active = len(d.lines) - 1
	}
	d.activate(active)
}

// InsertChar inserts ch at the cursor, uppercasing it when it starts a
// sentence. It returns the byte actually stored.
func (d *Document) InsertChar(ch byte) byte {
	if shouldCapitalize(&d.live) {
		ch = upper(ch)
	}
	d.live.push(ch)
	return ch
}

// InsertText inserts s at the cursor as typed, without capitalization.
func (d *Document) InsertText(s string) {
	for i := 0; i < len(s); i++ {
		d.live.push(s[i])
	}
}

// DeleteForward removes the byte right of the cursor.
// It returns false at the end of the line.
func (d *Document) DeleteForward() bool {
	return d.live.popAfter()
}

// DeleteBackward removes the byte left of the cursor. At the start of a
// line other than the first, the line's remaining text is appended to the
// previous line, the line is removed and the cursor moves to the end of
// the merged line. It returns false at the start of the document.
func (d *Document) DeleteBackward() bool {
	if d.live.popBefore() {
		return true
	}
	if d.active == 0 {
		return false
	}

	merged := d.lines[d.active-1] + d.live.After()
	d.lines = append(d.lines[:d.active], d.lines[d.active+1:]...)
	d.lines[d.active-1] = merged
	d.activate(d.active - 1)
	return true
}

// MoveLeft moves the cursor one byte left within the line.
func (d *Document) MoveLeft() bool {
	return d.live.left()
}

// MoveRight moves the cursor one byte right within the line.
func (d *Document) MoveRight() bool {
	return d.live.right()
}

// MoveUp moves to the end of the previous line.
func (d *Document) MoveUp() bool {
	if d.active == 0 {
		return false
	}
	d.commit()
	d.activate(d.active - 1)
	return true
}

// MoveDown moves to the end of the next line.
func (d *Document) MoveDown() bool {
	if d.active >= len(d.lines)-1 {
		return false
	}
	d.commit()
	d.activate(d.active + 1)
	return true
}

// InsertNewline opens an empty line below the active line and moves the
// cursor onto it. Text right of the cursor stays on the current line.
func (d *Document) InsertNewline() {
	d.commit()
	d.lines = append(d.lines, "")
	copy(d.lines[d.active+2:], d.lines[d.active+1:])
	d.lines[d.active+1] = ""
	d.activate(d.active + 1)
}

// WordBeforeCursor returns the run of non-space bytes immediately left of
// the cursor.
func (d *Document) WordBeforeCursor() string {
	b := d.live.before
	i := len(b)
	for i > 0 && b[i-1] != ' ' {
		i--
	}
	return string(b[i:])
}

// ReplaceWordBeforeCursor replaces the word left of the cursor with word.
// Text right of the cursor is untouched.
func (d *Document) ReplaceWordBeforeCursor(word string) {
	n := len(d.WordBeforeCursor())
	d.live.before = d.live.before[:len(d.live.before)-n]
	d.InsertText(word)
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// ActiveLine returns the index of the line holding the cursor.
func (d *Document) ActiveLine() int {
	return d.active
}

// Column returns the cursor's byte offset within the active line.
func (d *Document) Column() int {
	return len(d.live.before)
}

// Before returns the active line's text left of the cursor.
func (d *Document) Before() string {
	return d.live.Before()
}

// After returns the active line's text right of the cursor.
func (d *Document) After() string {
	return d.live.After()
}

// Line returns the text of line i.
func (d *Document) Line(i int) string {
	if i == d.active {
		return d.live.Text()
	}
	return d.lines[i]
}

// Lines returns the text of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	out[d.active] = d.live.Text()
	return out
}

// Text returns the document joined with newlines.
func (d *Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

// WordCount returns the number of whitespace-separated words.
func (d *Document) WordCount() int {
	n := 0
	for i := range d.lines {
		n += len(strings.Fields(d.Line(i)))
	}
	return n
}
