// Package trie implements a lowercase-ASCII prefix tree with word
// enumeration, counting, and pruning removal.
package trie

import (
	"errors"
	"fmt"
)

// alphabet is the fan-out per node: the 26 lowercase ASCII letters.
const alphabet = 26

// ErrInvalidRune is returned when an input word or prefix contains a
// character outside 'a'..'z'.
var ErrInvalidRune = errors.New("trie: character outside 'a'..'z'")

// trieNode is one branching point; a child slot is nil until a word
// needs it.
type trieNode struct {
	children [alphabet]*trieNode
	isWord   bool
}

// Trie is a prefix tree over lowercase ASCII words. Inserting the same
// word twice is idempotent. The zero value is an empty trie ready for
// use.
type Trie struct {
	root  trieNode
	words int
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{}
}

// index maps a byte to its child slot, or reports it invalid.
func index(c byte) (int, error) {
	if c < 'a' || c > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRune, c)
	}

	return int(c - 'a'), nil
}

// Insert adds word to the trie, creating nodes along its path.
// The empty string is a valid word marked at the root. Returns
// ErrInvalidRune (and changes nothing) when word contains a character
// outside 'a'..'z'.
// Complexity: O(len(word)).
func (t *Trie) Insert(word string) error {
	// validate first so a bad word never half-builds a path
	for i := 0; i < len(word); i++ {
		if _, err := index(word[i]); err != nil {
			return err
		}
	}

	cur := &t.root
	for i := 0; i < len(word); i++ {
		idx, _ := index(word[i])
		if cur.children[idx] == nil {
			cur.children[idx] = &trieNode{}
		}
		cur = cur.children[idx]
	}
	if !cur.isWord {
		cur.isWord = true
		t.words++
	}

	return nil
}

// walk descends the path spelled by s, returning nil when the path
// does not exist.
func (t *Trie) walk(s string) (*trieNode, error) {
	cur := &t.root
	for i := 0; i < len(s); i++ {
		idx, err := index(s[i])
		if err != nil {
			return nil, err
		}
		if cur.children[idx] == nil {
			return nil, nil
		}
		cur = cur.children[idx]
	}

	return cur, nil
}

// Search reports whether word was inserted as a complete word.
// Complexity: O(len(word)).
func (t *Trie) Search(word string) (bool, error) {
	n, err := t.walk(word)
	if err != nil {
		return false, err
	}

	return n != nil && n.isWord, nil
}

// StartsWith reports whether any stored word begins with prefix.
// Every trie matches the empty prefix once it holds at least one word.
// Complexity: O(len(prefix)).
func (t *Trie) StartsWith(prefix string) (bool, error) {
	n, err := t.walk(prefix)
	if err != nil {
		return false, err
	}
	if n == nil {
		return false, nil
	}

	return n.isWord || hasAnyWord(n), nil
}

// hasAnyWord reports whether some descendant of n ends a word.
func hasAnyWord(n *trieNode) bool {
	for _, child := range n.children {
		if child == nil {
			continue
		}
		if child.isWord || hasAnyWord(child) {
			return true
		}
	}

	return false
}

// Remove deletes word from the trie and prunes any branch left
// wordless, so abandoned paths stop matching StartsWith. Reports
// whether the word was present.
// Complexity: O(len(word)).
func (t *Trie) Remove(word string) (bool, error) {
	for i := 0; i < len(word); i++ {
		if _, err := index(word[i]); err != nil {
			return false, err
		}
	}

	removed := removeAt(&t.root, word, 0)
	if removed {
		t.words--
	}

	return removed, nil
}

// removeAt unmarks the word below n and reports success; it prunes a
// child when the subtree below it holds no words after the removal.
func removeAt(n *trieNode, word string, depth int) bool {
	if depth == len(word) {
		if !n.isWord {
			return false
		}
		n.isWord = false

		return true
	}

	idx, _ := index(word[depth])
	child := n.children[idx]
	if child == nil {
		return false
	}
	if !removeAt(child, word, depth+1) {
		return false
	}
	if !child.isWord && isBare(child) {
		n.children[idx] = nil
	}

	return true
}

// isBare reports whether n has no children at all.
func isBare(n *trieNode) bool {
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}

	return true
}

// WordsWithPrefix returns every stored word beginning with prefix, in
// lexicographic order. A dead-end prefix yields an empty, non-nil
// slice.
// Complexity: O(len(prefix) + output size).
func (t *Trie) WordsWithPrefix(prefix string) ([]string, error) {
	n, err := t.walk(prefix)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0)
	if n == nil {
		return out, nil
	}
	collect(n, []byte(prefix), &out)

	return out, nil
}

// Words returns every stored word in lexicographic order.
// Complexity: O(total stored characters).
func (t *Trie) Words() []string {
	out := make([]string, 0, t.words)
	collect(&t.root, nil, &out)

	return out
}

// collect appends the words below n to out, depth-first in child
// order, which is alphabetical by construction.
func collect(n *trieNode, path []byte, out *[]string) {
	if n.isWord {
		*out = append(*out, string(path))
	}
	for i, child := range n.children {
		if child != nil {
			collect(child, append(path, byte('a'+i)), out)
		}
	}
}

// CountWords returns the number of distinct words stored.
// Complexity: O(1) — maintained by Insert and Remove.
func (t *Trie) CountWords() int { return t.words }

// CountWithPrefix returns how many stored words begin with prefix.
// Complexity: O(len(prefix) + subtree size).
func (t *Trie) CountWithPrefix(prefix string) (int, error) {
	n, err := t.walk(prefix)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, nil
	}

	return countBelow(n), nil
}

// countBelow counts word markers in the subtree rooted at n.
func countBelow(n *trieNode) int {
	total := 0
	if n.isWord {
		total++
	}
	for _, child := range n.children {
		if child != nil {
			total += countBelow(child)
		}
	}

	return total
}

// LongestCommonPrefix returns the longest prefix shared by every
// stored word: the path walked while each node has exactly one child
// and no word ends early. An empty trie yields "".
// Complexity: O(result length).
func (t *Trie) LongestCommonPrefix() string {
	if t.words == 0 {
		return ""
	}
	var prefix []byte
	cur := &t.root
	for !cur.isWord {
		next := -1
		for i, child := range cur.children {
			if child == nil {
				continue
			}
			if next >= 0 {
				return string(prefix) // branch point
			}
			next = i
		}
		if next < 0 {
			break
		}
		prefix = append(prefix, byte('a'+next))
		cur = cur.children[next]
	}

	return string(prefix)
}

// IsEmpty reports whether the trie stores no words.
func (t *Trie) IsEmpty() bool { return t.words == 0 }
