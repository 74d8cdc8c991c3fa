// Package dictionary provides the word list used by the spellchecker.
//
// Words are stored in a 26-way trie over the lowercase ASCII alphabet.
// The dictionary supports two queries:
//
//   - Contains reports exact membership.
//   - Suggest returns up to MaxSuggestions words starting with a prefix,
//     ordered by a depth-first walk that visits letters a through z.
//
// The ordering is alphabetical by the letters following the prefix, so a
// word always precedes the longer words it is a prefix of:
//
//	d := dictionary.New()
//	d.Insert("cat")
//	d.Insert("car")
//	d.Insert("cap")
//	d.Suggest("ca") // [cap car cat]
//
// A Dictionary is built once (Insert, Load, LoadFile) and then only read.
// Reads do not mutate the trie, so a built Dictionary may be shared freely.
package dictionary
