// Package trie provides a prefix tree over lowercase ASCII words.
//
// What:
//
//   - Trie: 26-way branching tree where each path from the root spells
//     a prefix and marked nodes end stored words.
//   - Membership (Search), prefix matching (StartsWith), pruning
//     removal (Remove), enumeration in lexicographic order (Words,
//     WordsWithPrefix), counting (CountWords, CountWithPrefix), and
//     LongestCommonPrefix.
//
// Why:
//
//   - Prefix queries in O(len(prefix)) regardless of how many words
//     are stored — the structure IS the index.
//   - Autocomplete, spell checking, and routing tables are the classic
//     consumers.
//
// Alphabet:
//
// Only 'a'..'z' is accepted; any other character in a word or prefix
// returns ErrInvalidRune and leaves the trie untouched. The empty
// string is a valid word.
//
// Complexity:
//
//   - Insert, Search, StartsWith, Remove: O(len(word))
//   - Words, WordsWithPrefix, CountWithPrefix: O(matched subtree)
//   - CountWords, IsEmpty: O(1)
//
// Errors:
//
//   - ErrInvalidRune  input contains a character outside 'a'..'z'
//
// Usage:
//
//	tr := trie.New()
//	_ = tr.Insert("car")
//	_ = tr.Insert("card")
//	ok, _ := tr.StartsWith("ca") // true
//	words, _ := tr.WordsWithPrefix("car") // [car card]
//
// Thread safety: None. Synchronize externally for concurrent use.
package trie
