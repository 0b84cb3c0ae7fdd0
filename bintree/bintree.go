// Package bintree implements an integer binary tree with BST
// operations, the four classic traversals, and shape diagnostics.
package bintree

import (
	"errors"

	"github.com/nartvell/gostructs/queue"
)

// ErrEmpty is returned by Min and Max on an empty tree.
var ErrEmpty = errors.New("bintree: empty tree")

// treeNode is one node of the tree.
type treeNode struct {
	val         int
	left, right *treeNode
}

// Tree is a binary tree of ints. Values added with Insert keep the
// binary-search-tree property; InsertLevelOrder fills positions
// breadth-first instead and may break it — IsBST tells the two shapes
// apart. The zero value is an empty tree ready for use.
type Tree struct {
	root *treeNode
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Insert adds v as a BST: smaller values go left, larger go right.
// Duplicates land in the right subtree.
// Complexity: O(h), h the tree height.
func (t *Tree) Insert(v int) {
	t.root = bstInsert(t.root, v)
	t.size++
}

func bstInsert(n *treeNode, v int) *treeNode {
	if n == nil {
		return &treeNode{val: v}
	}
	if v < n.val {
		n.left = bstInsert(n.left, v)
	} else {
		n.right = bstInsert(n.right, v)
	}

	return n
}

// InsertLevelOrder adds each value at the first free position in
// breadth-first order, building a complete tree. The BST property is
// not maintained.
// Complexity: O(n) per value.
func (t *Tree) InsertLevelOrder(vs []int) {
	for _, v := range vs {
		t.insertAtFirstGap(v)
		t.size++
	}
}

// insertAtFirstGap walks the tree breadth-first and hangs v off the
// first node missing a child.
func (t *Tree) insertAtFirstGap(v int) {
	if t.root == nil {
		t.root = &treeNode{val: v}

		return
	}
	frontier := queue.New[*treeNode]()
	frontier.Enqueue(t.root)
	for {
		// Dequeue cannot fail: every visited node enqueues its children.
		n, _ := frontier.Dequeue()
		if n.left == nil {
			n.left = &treeNode{val: v}

			return
		}
		if n.right == nil {
			n.right = &treeNode{val: v}

			return
		}
		frontier.Enqueue(n.left)
		frontier.Enqueue(n.right)
	}
}

// Search reports whether v occurs in the tree, descending by the BST
// property. Only reliable on trees built with Insert.
// Complexity: O(h).
func (t *Tree) Search(v int) bool {
	n := t.root
	for n != nil {
		switch {
		case v == n.val:
			return true
		case v < n.val:
			n = n.left
		default:
			n = n.right
		}
	}

	return false
}

// Remove deletes one occurrence of v, rewiring by the standard BST
// three cases: leaf, single child, or in-order successor replacement.
// Reports whether a node was removed.
// Complexity: O(h).
func (t *Tree) Remove(v int) bool {
	var removed bool
	t.root = bstDelete(t.root, v, &removed)
	if removed {
		t.size--
	}

	return removed
}

func bstDelete(n *treeNode, v int, removed *bool) *treeNode {
	if n == nil {
		return nil
	}
	switch {
	case v < n.val:
		n.left = bstDelete(n.left, v, removed)
	case v > n.val:
		n.right = bstDelete(n.right, v, removed)
	default:
		*removed = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// two children: lift the in-order successor, delete it below
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.val = succ.val
		var dummy bool
		n.right = bstDelete(n.right, succ.val, &dummy)
	}

	return n
}

// InOrder returns left-root-right traversal; ascending on a BST.
// Complexity: O(n).
func (t *Tree) InOrder() []int {
	out := make([]int, 0, t.size)
	var walk func(*treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.val)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PreOrder returns root-left-right traversal.
// Complexity: O(n).
func (t *Tree) PreOrder() []int {
	out := make([]int, 0, t.size)
	var walk func(*treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		out = append(out, n.val)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// PostOrder returns left-right-root traversal.
// Complexity: O(n).
func (t *Tree) PostOrder() []int {
	out := make([]int, 0, t.size)
	var walk func(*treeNode)
	walk = func(n *treeNode) {
		if n == nil {
			return
		}
		walk(n.left)
		walk(n.right)
		out = append(out, n.val)
	}
	walk(t.root)

	return out
}

// LevelOrder returns breadth-first traversal, top row to bottom.
// Complexity: O(n).
func (t *Tree) LevelOrder() []int {
	out := make([]int, 0, t.size)
	if t.root == nil {
		return out
	}
	frontier := queue.New[*treeNode]()
	frontier.Enqueue(t.root)
	for !frontier.IsEmpty() {
		n, _ := frontier.Dequeue()
		out = append(out, n.val)
		if n.left != nil {
			frontier.Enqueue(n.left)
		}
		if n.right != nil {
			frontier.Enqueue(n.right)
		}
	}

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path;
// an empty tree has height 0.
// Complexity: O(n).
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *treeNode) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Count returns the number of nodes.
func (t *Tree) Count() int { return t.size }

// IsEmpty reports whether the tree holds no nodes.
func (t *Tree) IsEmpty() bool { return t.size == 0 }

// Min returns the smallest value, the leftmost node of a BST.
// Returns ErrEmpty on an empty tree.
// Complexity: O(h).
func (t *Tree) Min() (int, error) {
	if t.root == nil {
		return 0, ErrEmpty
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.val, nil
}

// Max returns the largest value, the rightmost node of a BST.
// Returns ErrEmpty on an empty tree.
// Complexity: O(h).
func (t *Tree) Max() (int, error) {
	if t.root == nil {
		return 0, ErrEmpty
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.val, nil
}

// IsBST reports whether every node's value lies strictly between the
// bounds inherited from its ancestors. An empty tree qualifies.
// Complexity: O(n).
func (t *Tree) IsBST() bool {
	return isBST(t.root, nil, nil)
}

// isBST carries exclusive bounds as pointers so no sentinel value is
// ever off limits.
func isBST(n *treeNode, lo, hi *int) bool {
	if n == nil {
		return true
	}
	if lo != nil && n.val <= *lo {
		return false
	}
	if hi != nil && n.val >= *hi {
		return false
	}

	return isBST(n.left, lo, &n.val) && isBST(n.right, &n.val, hi)
}

// IsBalanced reports whether every node's subtree heights differ by at
// most one.
// Complexity: O(n), heights computed bottom-up.
func (t *Tree) IsBalanced() bool {
	_, ok := balancedHeight(t.root)

	return ok
}

func balancedHeight(n *treeNode) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := balancedHeight(n.left)
	if !lok {
		return 0, false
	}
	rh, rok := balancedHeight(n.right)
	if !rok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}

	return 1 + max(lh, rh), true
}

// Diameter returns the number of edges on the longest path between any
// two nodes.
// Complexity: O(n).
func (t *Tree) Diameter() int {
	best := 0
	diameterHeight(t.root, &best)

	return best
}

// diameterHeight returns the node-count height of n while folding the
// best through-path (left height + right height edges) into best.
func diameterHeight(n *treeNode, best *int) int {
	if n == nil {
		return 0
	}
	lh := diameterHeight(n.left, best)
	rh := diameterHeight(n.right, best)
	if lh+rh > *best {
		*best = lh + rh
	}

	return 1 + max(lh, rh)
}
