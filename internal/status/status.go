// Package status writes the word-count status file.
//
// The file holds a single line, "Current Word Count: <n>", rewritten after
// every edit so external tools can follow along.
package status

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer rewrites the status file. A Writer with an empty path does nothing.
type Writer struct {
	path string
	last int
	have bool
}

// NewWriter creates a writer for path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the status file path.
func (w *Writer) Path() string {
	return w.path
}

// Format renders the status line for n words.
func Format(n int) string {
	return fmt.Sprintf("Current Word Count: %d", n)
}

// Update writes n unless it matches the last value written.
func (w *Writer) Update(n int) error {
	if w.path == "" || (w.have && w.last == n) {
		return nil
	}
	if err := w.write(n); err != nil {
		return err
	}
	w.last, w.have = n, true
	return nil
}

// Reset writes a count of zero unconditionally. Called on exit.
func (w *Writer) Reset() error {
	if w.path == "" {
		return nil
	}
	if err := w.write(0); err != nil {
		return err
	}
	w.last, w.have = 0, true
	return nil
}

// write replaces the file atomically via a temp file in the same directory.
func (w *Writer) write(n int) error {
	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, ".status-*")
	if err != nil {
		return fmt.Errorf("write status %s: %w", w.path, err)
	}
	name := tmp.Name()

	if _, err := tmp.WriteString(Format(n)); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write status %s: %w", w.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("write status %s: %w", w.path, err)
	}
	if err := os.Rename(name, w.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("write status %s: %w", w.path, err)
	}
	return nil
}
