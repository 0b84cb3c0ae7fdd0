// Package bintree provides an integer binary tree that doubles as a
// binary search tree.
//
// What:
//
//   - Insert / Search / Remove: classic BST operations with in-order
//     successor deletion.
//   - InsertLevelOrder: fills the first free position breadth-first,
//     building complete trees regardless of value order.
//   - Traversals: InOrder, PreOrder, PostOrder, LevelOrder.
//   - Diagnostics: Height, Count, Min, Max, IsBST, IsBalanced,
//     Diameter.
//
// Why:
//
//   - One node type serves both uses: ordered storage with O(h)
//     lookups, and arbitrary-shape trees for traversal and shape
//     analysis. IsBST reports which contract currently holds.
//
// Conventions:
//
//   - Height counts nodes: a single node has height 1, the empty tree 0.
//   - Diameter counts edges on the longest node-to-node path.
//   - IsBST demands strict inequality, so duplicate values break the
//     property even though Insert places them rightward.
//
// Complexity:
//
//   - Insert, Search, Remove, Min, Max: O(h), h the height
//     (O(n) worst case — the tree does not self-balance)
//   - Traversals, Height, IsBST, IsBalanced, Diameter: O(n)
//
// Errors:
//
//   - ErrEmpty  Min or Max on an empty tree
//
// Usage:
//
//	t := bintree.New()
//	for _, v := range []int{5, 3, 8, 1} {
//	    t.Insert(v)
//	}
//	fmt.Println(t.InOrder()) // [1 3 5 8]
//
// Thread safety: None. Synchronize externally for concurrent use.
package bintree
