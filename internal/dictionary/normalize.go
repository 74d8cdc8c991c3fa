package dictionary

// Normalize prepares a typed token for lookup: ASCII punctuation is
// removed and uppercase ASCII letters are lowered.
//
//	Normalize("Hello,") == "hello"
//	Normalize("don't")  == "dont"
func Normalize(token string) string {
	out := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		b := token[i]
		if isPunct(b) {
			continue
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out = append(out, b)
	}
	return string(out)
}

// SuggestionPrefix returns the prefix used to look up corrections for a
// misspelled token: its first two bytes, or the whole token when shorter.
func SuggestionPrefix(token string) string {
	if len(token) > 2 {
		return token[:2]
	}
	return token
}

// isPunct matches the C locale ispunct set: printable, non-alphanumeric,
// non-space ASCII.
func isPunct(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	}
	return false
}
