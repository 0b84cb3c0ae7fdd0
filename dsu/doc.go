// Package dsu implements a disjoint-set union (union-find) over dense
// integer elements 0..n-1.
//
// What:
//
//   - DSU: partition of {0..n-1} into mergeable sets.
//   - Find: representative lookup with iterative path halving.
//   - Union / UnionBySize: merge two sets, by rank or by size; both
//     report whether a merge happened.
//   - Connected, SetSize, Count: observables over the partition.
//   - Reset: back to n singleton sets without reallocating.
//
// Why:
//
//   - Kruskal's spanning-tree construction accepts an edge exactly when
//     its endpoints lie in different sets.
//   - Connectivity queries over a stream of link events run in near
//     constant amortized time.
//
// Complexity:
//
//   - Find, Union, UnionBySize, Connected, SetSize: O(α(n)) amortized,
//     where α is the inverse Ackermann function.
//   - Count: O(1). Reset: O(n).
//
// Errors:
//
//   - ErrBadSize              New called with a negative size
//   - ErrElementOutOfRange    element outside [0, n)
//
// Usage:
//
//	d, _ := dsu.New(5)
//	_, _ = d.Union(0, 1)
//	_, _ = d.Union(3, 4)
//	ok, _ := d.Connected(0, 1) // true
//	n := d.Count()             // 3 sets: {0,1} {2} {3,4}
//
// Thread safety: None. Synchronize externally for concurrent use.
package dsu
