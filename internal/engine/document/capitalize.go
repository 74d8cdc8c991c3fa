package document

// isSentenceEnd reports whether b terminates a sentence.
func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// ShouldCapitalize reports whether the next byte typed on the active line
// starts a sentence: at the start of the line, directly after '.', '!' or
// '?', or after a single space that follows one of them.
func (d *Document) ShouldCapitalize() bool {
	return shouldCapitalize(&d.live)
}

func shouldCapitalize(l *Line) bool {
	last, ok := l.lastByte(0)
	if !ok {
		return true
	}
	if isSentenceEnd(last) {
		return true
	}
	if last == ' ' {
		prev, ok := l.lastByte(1)
		return ok && isSentenceEnd(prev)
	}
	return false
}

// upper maps ASCII lowercase letters to uppercase.
func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
