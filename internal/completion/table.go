// Package completion provides the fixed prefix-to-word expansion table.
//
// Unlike the dictionary, which offers several candidates for a prefix, the
// completion table maps a short prefix to exactly one word, so a completion
// can be applied without asking the user to choose.
package completion

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrFrozen is returned when a frozen table is modified.
var ErrFrozen = errors.New("completion table is frozen")

// Table maps prefixes to full words.
type Table struct {
	entries map[string]string
	frozen  bool
}

// New creates an empty table.
func New() *Table {
	return &Table{entries: make(map[string]string)}
}

// NewDefault creates a table holding the built-in entries.
func NewDefault() *Table {
	t := &Table{entries: make(map[string]string, len(defaultEntries))}
	for k, v := range defaultEntries {
		t.entries[k] = v
	}
	return t
}

// Set adds or replaces an entry.
func (t *Table) Set(prefix, word string) error {
	if t.frozen {
		return ErrFrozen
	}
	if prefix == "" || word == "" {
		return fmt.Errorf("completion entry %q -> %q: prefix and word must be non-empty", prefix, word)
	}
	t.entries[prefix] = word
	return nil
}

// Freeze makes the table read-only.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether the table is read-only.
func (t *Table) Frozen() bool {
	return t.frozen
}

// Lookup returns the word for an exact prefix.
func (t *Table) Lookup(prefix string) (string, bool) {
	word, ok := t.entries[prefix]
	return word, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Prefixes returns all keys in sorted order.
func (t *Table) Prefixes() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge reads a YAML mapping of prefix to word from r and overlays it on
// the table. Existing prefixes are replaced.
//
//	add: address
//	doc: document
func (t *Table) Merge(r io.Reader) (int, error) {
	if t.frozen {
		return 0, ErrFrozen
	}

	var overlay map[string]string
	if err := yaml.NewDecoder(r).Decode(&overlay); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("parse completions: %w", err)
	}

	for prefix, word := range overlay {
		if err := t.Set(prefix, word); err != nil {
			return 0, err
		}
	}
	return len(overlay), nil
}

// MergeFile overlays the YAML file at path on the table.
func (t *Table) MergeFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open completions %s: %w", path, err)
	}
	defer f.Close()

	n, err := t.Merge(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
