package spellcheck

import (
	"bufio"
	"fmt"
	"io"
)

// Report summarizes a Scan.
type Report struct {
	Words   int // tokens checked
	Unknown int // tokens recorded to the sink
}

// Scan checks every whitespace-separated word of r and records the unknown
// ones to sink in order of appearance.
func (c *Checker) Scan(r io.Reader, sink Sink) (Report, error) {
	var rep Report

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		f, ok := c.Check(sc.Text())
		if !ok {
			continue
		}
		rep.Words++
		if f.Known {
			continue
		}
		rep.Unknown++
		if err := sink.Record(f.Token, f.Suggestions); err != nil {
			return rep, fmt.Errorf("record %q: %w", f.Token, err)
		}
	}
	if err := sc.Err(); err != nil {
		return rep, fmt.Errorf("scan: %w", err)
	}
	return rep, nil
}
