package spellcheck

import "github.com/dshills/texted/internal/dictionary"

// Lookup is the dictionary surface the checker needs.
type Lookup interface {
	Contains(word string) bool
	Suggest(prefix string) []string
}

// Finding is the outcome of checking one token.
type Finding struct {
	// Token is the normalized word that was looked up.
	Token string
	// Known reports whether Token is in the dictionary.
	Known bool
	// Suggestions holds corrections for unknown tokens.
	Suggestions []string
}

// Checker checks tokens against a dictionary.
type Checker struct {
	dict Lookup
}

// NewChecker creates a checker backed by dict.
func NewChecker(dict Lookup) *Checker {
	return &Checker{dict: dict}
}

// Check normalizes token and looks it up. The second result is false when
// nothing is left to check after normalization.
func (c *Checker) Check(token string) (Finding, bool) {
	word := dictionary.Normalize(token)
	if word == "" {
		return Finding{}, false
	}

	f := Finding{Token: word, Known: c.dict.Contains(word)}
	if !f.Known {
		f.Suggestions = c.dict.Suggest(dictionary.SuggestionPrefix(word))
	}
	return f, true
}
