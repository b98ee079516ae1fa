// Package trie implements a prefix tree over the letters A-Z.
//
// The trie is the pruning structure for the board search: every partial
// path across the board descends the trie one letter at a time, and a
// missing child proves that no dictionary word starts with the current
// prefix, so the whole subtree of longer paths can be skipped.
//
// Children are stored in a fixed 26-slot array rather than a map. The
// alphabet is known up front and the array form keeps descent a single
// indexed load per letter.
//
// A trie is built once, before any search, and is read-only afterwards.
package trie

// alphabet is the number of child slots per node (letters A-Z).
const alphabet = 26

// Node is one prefix position in the trie. A node exists for a prefix
// iff some inserted word has that prefix.
type Node struct {
	children [alphabet]*Node
	terminal bool
}

// Trie indexes a set of uppercase words by prefix.
type Trie struct {
	root  *Node
	words int
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: &Node{}}
}

// Root returns the node for the empty prefix.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of distinct words inserted.
func (t *Trie) Len() int {
	return t.words
}

// Insert adds word to the trie, creating missing nodes along the way.
// Inserting the same word again is a no-op. The word must be nonempty
// and consist only of the uppercase letters A-Z; dictionary loading is
// responsible for normalization and filtering.
func (t *Trie) Insert(word string) {
	node := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'A'
		if node.children[idx] == nil {
			node.children[idx] = &Node{}
		}
		node = node.children[idx]
	}
	if !node.terminal {
		node.terminal = true
		t.words++
	}
}

// Child returns the child of n for letter c, or nil if no inserted word
// continues the prefix with c. The returned handle can be descended
// further without re-walking from the root, so an m-letter path costs
// O(m) lookups total.
func (n *Node) Child(c byte) *Node {
	if c < 'A' || c > 'Z' {
		return nil
	}
	return n.children[c-'A']
}

// Terminal reports whether the prefix ending at n is itself a complete
// dictionary word.
func (n *Node) Terminal() bool {
	return n.terminal
}

// Contains reports whether word was inserted into the trie.
func (t *Trie) Contains(word string) bool {
	node := t.root
	for i := 0; i < len(word); i++ {
		node = node.Child(word[i])
		if node == nil {
			return false
		}
	}
	return node.terminal
}

// HasPrefix reports whether any inserted word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	node := t.root
	for i := 0; i < len(prefix); i++ {
		node = node.Child(prefix[i])
		if node == nil {
			return false
		}
	}
	return true
}
