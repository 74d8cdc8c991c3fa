package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LoadStats summarizes a Load call.
type LoadStats struct {
	// Records is the number of lines read.
	Records int
	// Inserted is the number of new words added.
	Inserted int
	// Duplicates counts records that were already present.
	Duplicates int
	// Rejected counts records that are not lowercase ASCII words.
	Rejected int
}

// Load reads newline-delimited words from r and inserts each record as is.
// CRLF line endings are accepted.
func (d *Dictionary) Load(r io.Reader) (LoadStats, error) {
	var stats LoadStats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := scanner.Text()
		stats.Records++

		before := d.words
		if !d.Insert(word) {
			stats.Rejected++
			continue
		}
		if d.words == before {
			stats.Duplicates++
		} else {
			stats.Inserted++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading words: %w", err)
	}
	return stats, nil
}

// LoadFile loads the word list at path.
// When the file cannot be opened the dictionary is left unchanged and the
// error is returned; callers treat that as an empty dictionary.
func (d *Dictionary) LoadFile(path string) (LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	stats, err := d.Load(f)
	if err != nil {
		return stats, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return stats, nil
}
