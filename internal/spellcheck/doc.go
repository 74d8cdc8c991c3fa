// Package spellcheck flags unknown words and records correction hints.
//
// A Checker normalizes a typed token, looks it up in a dictionary and, for
// unknown words, asks the dictionary for suggestions sharing the token's
// first two letters. Flagged words are written to a Sink as text records:
//
//	helo -> Suggestions:
//	hello help helm
//
// Each suggestion is followed by a single space and every record ends with
// a blank line.
package spellcheck
