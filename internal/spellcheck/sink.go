package spellcheck

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Sink receives flagged words.
type Sink interface {
	Record(token string, suggestions []string) error
}

// FormatRecord renders one log record.
func FormatRecord(token string, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(token)
	sb.WriteString(" -> Suggestions:\n")
	for _, s := range suggestions {
		sb.WriteString(s)
		sb.WriteByte(' ')
	}
	sb.WriteString("\n\n")
	return sb.String()
}

// FileSink appends records to a file, opening it for each record so the
// log can be rotated or removed while the editor runs.
type FileSink struct {
	path string
}

// NewFileSink creates a sink appending to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the log file path.
func (s *FileSink) Path() string {
	return s.path
}

// Record appends a record. If the file cannot be opened nothing is written
// and the error is returned.
func (s *FileSink) Record(token string, suggestions []string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open spellcheck log %s: %w", s.path, err)
	}

	if _, err := io.WriteString(f, FormatRecord(token, suggestions)); err != nil {
		f.Close()
		return fmt.Errorf("write spellcheck log %s: %w", s.path, err)
	}
	return f.Close()
}

// WriterSink writes records to an io.Writer.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Record writes a record.
func (s *WriterSink) Record(token string, suggestions []string) error {
	_, err := io.WriteString(s.w, FormatRecord(token, suggestions))
	return err
}

// Discard is a sink that drops every record.
var Discard Sink = discard{}

type discard struct{}

func (discard) Record(string, []string) error { return nil }
