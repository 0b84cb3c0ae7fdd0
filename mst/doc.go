// Package mst computes minimum spanning forests of a graph.Graph using
// Prim's and Kruskal's algorithms.
//
// What:
//
//   - Prim: grows one tree per component from the lowest-index
//     unvisited vertex, keyed by the cheapest connecting edge in a
//     binary min-heap. Returns the forest's total weight and the
//     number of trees grown.
//   - Kruskal: sorts every undirected edge candidate by weight and
//     accepts those joining two different components of a disjoint-set
//     union. Returns the accepted edges and their total weight.
//
// Why:
//
//   - Cheapest wiring of a network that must touch every node.
//   - Both algorithms agree on the forest total, which makes them
//     natural cross-checks for each other.
//
// Undirected reading:
//
// The graph container stores directed records; both algorithms read
// them symmetrically. AddEdge(u, v, w) alone contributes the full
// undirected edge u—v, and a mirrored pair of records still counts as
// one edge (the second record can only close a cycle). Parallel
// records relax or sort individually, so the cheapest of a bundle
// always wins. Self-loops never join a tree.
//
// Disconnected graphs:
//
// Neither function reports disconnection as an error. Prim grows one
// tree per component and returns the tree count, so trees > 1 is the
// explicit signal; Kruskal's forest simply spans each component. The
// totals match on every input.
//
// Complexity:
//
//   - Prim:    O(E log V) time, O(V + E) memory.
//   - Kruskal: O(E log E + E·α(V)) time, O(V + E) memory.
//
// Errors:
//
//   - ErrNilGraph  the graph pointer is nil.
//
// Usage:
//
//	g, _ := graph.New(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 3)
//	_ = g.AddEdge(2, 3, 4)
//
//	total, trees, err := mst.Prim(g)
//	// total == 7, trees == 1
//
//	edges, total, err := mst.Kruskal(g)
//	// edges span the same forest, total == 7
//
// Thread safety: None. Synchronize externally for concurrent use.
package mst
