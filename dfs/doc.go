// Package dfs implements depth-first traversal, cycle detection, and
// topological ordering over a graph.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, recording vertices in pre-order. Supports:
//   - Pre-order and post-order hooks
//   - Depth limiting
//   - Neighbor filtering
//   - Full traversal across disconnected components
//   - HasCycleDirected: reports whether the directed graph contains a
//     cycle, using White/Gray/Black vertex coloring with back-edge
//     detection.
//   - HasCycleUndirected: reads the directed storage as an undirected
//     graph (a mirrored pair of records is one logical edge) and
//     reports self-loops, parallel edges, or any longer cycle found by
//     a parent-skipping DFS.
//   - TopologicalSort: computes a linear vertex ordering of a DAG via
//     Kahn's algorithm, returning ErrCycleDetected when no such
//     ordering exists.
//
// Why:
//
//   - Determine safe execution orders for dependency graphs
//   - Detect cycles before they become infinite loops downstream
//   - Provide the traversal backbone for connectivity analysis
//
// Determinism:
//
// DFS visits neighbors in edge-insertion order; disconnected roots and
// Kahn's source queue are seeded in ascending index order. Identical
// graphs always produce identical results.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black visitation markers
//   - Option: functional options for DFS behavior
//   - Options: hooks, MaxDepth, FilterNeighbor, FullTraversal
//   - Result: pre-order, Parent links, Discovered set
//
// Complexity:
//
//   - DFS:                 Time O(V+E), Memory O(V)
//   - HasCycleDirected:    Time O(V+E), Memory O(V)
//   - HasCycleUndirected:  Time O(V²+E), Memory O(V)
//   - TopologicalSort:     Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilGraph          graph pointer is nil
//   - ErrVertexOutOfRange  source vertex outside [0, V)
//   - ErrCycleDetected     graph is not a DAG
//   - hook errors          propagated from OnVisit or OnExit
//
// Usage:
//
//	g, _ := graph.New(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(1, 3, 1)
//
//	res, err := dfs.DFS(g, 0)
//	// res.Order == [0 1 3 2]
//
//	order, err := dfs.TopologicalSort(g)
//	// order == [0 1 2 3]
package dfs
