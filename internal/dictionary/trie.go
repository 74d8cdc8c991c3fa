package dictionary

// MaxSuggestions is the maximum number of words returned by Suggest.
const MaxSuggestions = 5

// alphabetSize is the number of symbols a trie edge can carry ('a'..'z').
const alphabetSize = 26

// node is a single trie vertex.
type node struct {
	children [alphabetSize]*node
	isWord   bool
}

// Dictionary is a trie of lowercase ASCII words.
type Dictionary struct {
	root  *node
	words int
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{root: &node{}}
}

// index returns the child slot for b, or -1 if b is outside the alphabet.
func index(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}

// Valid reports whether word can be inserted: it must be non-empty and
// consist only of lowercase ASCII letters.
func Valid(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if index(word[i]) < 0 {
			return false
		}
	}
	return true
}

// Insert adds word to the dictionary.
// Words that are empty or contain anything other than 'a'..'z' are
// rejected and leave the trie untouched. Inserting an existing word is a
// no-op. The return value reports whether the word was accepted.
func (d *Dictionary) Insert(word string) bool {
	if !Valid(word) {
		return false
	}

	cur := d.root
	for i := 0; i < len(word); i++ {
		idx := index(word[i])
		if cur.children[idx] == nil {
			cur.children[idx] = &node{}
		}
		cur = cur.children[idx]
	}

	if !cur.isWord {
		cur.isWord = true
		d.words++
	}
	return true
}

// Contains reports whether word was inserted.
func (d *Dictionary) Contains(word string) bool {
	n := d.walk(word)
	return n != nil && n.isWord
}

// HasPrefix reports whether any inserted word starts with prefix.
func (d *Dictionary) HasPrefix(prefix string) bool {
	return d.walk(prefix) != nil
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return d.words
}

// walk follows s from the root and returns the node it ends on,
// or nil when the path leaves the trie.
func (d *Dictionary) walk(s string) *node {
	cur := d.root
	for i := 0; i < len(s); i++ {
		idx := index(s[i])
		if idx < 0 || cur.children[idx] == nil {
			return nil
		}
		cur = cur.children[idx]
	}
	return cur
}

// frame is one pending vertex of the suggestion walk.
type frame struct {
	n    *node
	word []byte
}

// Suggest returns up to MaxSuggestions words that start with prefix.
//
// Words are produced in depth-first order with children visited from 'a'
// to 'z', and a vertex's own word emitted before any of its descendants.
// An unknown prefix yields an empty result.
func (d *Dictionary) Suggest(prefix string) []string {
	start := d.walk(prefix)
	if start == nil {
		return nil
	}

	var results []string
	stack := []frame{{n: start, word: []byte(prefix)}}
	for len(stack) > 0 && len(results) < MaxSuggestions {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.n.isWord {
			results = append(results, string(top.word))
		}

		// Push in reverse so 'a' is popped first.
		for i := alphabetSize - 1; i >= 0; i-- {
			child := top.n.children[i]
			if child == nil {
				continue
			}
			word := make([]byte, len(top.word)+1)
			copy(word, top.word)
			word[len(top.word)] = byte('a' + i)
			stack = append(stack, frame{n: child, word: word})
		}
	}
	return results
}
