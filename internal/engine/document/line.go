package document

// Line is a gap buffer split at the cursor.
//
// before holds the bytes left of the cursor in order. after holds the bytes
// right of the cursor in reverse order, so the byte adjacent to the cursor
// is the last element of both slices.
type Line struct {
	before []byte
	after  []byte
}

// newLine returns a line holding text with the cursor at its end.
func newLine(text string) Line {
	return Line{before: []byte(text)}
}

// Text returns the full line.
func (l *Line) Text() string {
	buf := make([]byte, 0, len(l.before)+len(l.after))
	buf = append(buf, l.before...)
	for i := len(l.after) - 1; i >= 0; i-- {
		buf = append(buf, l.after[i])
	}
	return string(buf)
}

// Before returns the text left of the cursor.
func (l *Line) Before() string {
	return string(l.before)
}

// After returns the text right of the cursor.
func (l *Line) After() string {
	buf := make([]byte, len(l.after))
	for i := range l.after {
		buf[i] = l.after[len(l.after)-1-i]
	}
	return string(buf)
}

// Len returns the line length in bytes.
func (l *Line) Len() int {
	return len(l.before) + len(l.after)
}

func (l *Line) push(b byte) {
	l.before = append(l.before, b)
}

func (l *Line) popBefore() bool {
	if len(l.before) == 0 {
		return false
	}
	l.before = l.before[:len(l.before)-1]
	return true
}

func (l *Line) popAfter() bool {
	if len(l.after) == 0 {
		return false
	}
	l.after = l.after[:len(l.after)-1]
	return true
}

func (l *Line) left() bool {
	if len(l.before) == 0 {
		return false
	}
	b := l.before[len(l.before)-1]
	l.before = l.before[:len(l.before)-1]
	l.after = append(l.after, b)
	return true
}

func (l *Line) right() bool {
	if len(l.after) == 0 {
		return false
	}
	b := l.after[len(l.after)-1]
	l.after = l.after[:len(l.after)-1]
	l.before = append(l.before, b)
	return true
}

// lastByte returns the byte n positions left of the cursor (0 = adjacent).
func (l *Line) lastByte(n int) (byte, bool) {
	i := len(l.before) - 1 - n
	if i < 0 {
		return 0, false
	}
	return l.before[i], true
}
