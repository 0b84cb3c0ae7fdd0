package trie_test

import (
	"fmt"

	"github.com/nartvell/gostructs/trie"
)

// ExampleTrie autocompletes against a small dictionary.
func ExampleTrie() {
	tr := trie.New()
	for _, w := range []string{"go", "goal", "golf", "grape"} {
		_ = tr.Insert(w)
	}

	matches, _ := tr.WordsWithPrefix("go")
	fmt.Println(matches)

	n, _ := tr.CountWithPrefix("g")
	fmt.Println("g-words:", n)

	fmt.Println("common:", tr.LongestCommonPrefix())

	// Output:
	// [go goal golf]
	// g-words: 4
	// common: g
}
