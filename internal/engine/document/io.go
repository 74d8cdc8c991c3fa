package document

import (
	"bufio"
	"fmt"
	"io"
)

// maxLineBytes bounds a single line when reading.
const maxLineBytes = 1 << 20

// WriteTo writes each line followed by a newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for i := range d.lines {
		written, err := bw.WriteString(d.Line(i))
		n += int64(written)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Read builds a document with one line per input record.
// CRLF line endings are accepted.
func Read(r io.Reader) (*Document, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return FromLines(lines), nil
}
