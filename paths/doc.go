// Package paths provides shortest-path algorithms over a graph.Graph:
// single-source Dijkstra and Bellman-Ford, and all-pairs Floyd-Warshall.
//
// What:
//
//   - Dijkstra: non-negative weights, binary min-heap with lazy
//     decrease-key, optional early exit at a target vertex. Produces a
//     Tree of distances and parent links.
//   - BellmanFord: tolerates negative weights, V-1 relaxation rounds
//     plus a detection round that flags reachable negative cycles.
//   - FloydWarshall: dense V×V distance matrix built directly from the
//     weight matrix, diagonal pinned to zero.
//
// Why:
//
//   - Route costs, hop budgets, and reachability all reduce to
//     shortest-path queries.
//   - The three algorithms trade generality for speed: Dijkstra is the
//     fast path, Bellman-Ford the negative-weight fallback, and
//     Floyd-Warshall the all-pairs closure.
//
// Determinism:
//
// Relaxation follows adjacency-list insertion order (Dijkstra), the
// u-ascending edge snapshot (Bellman-Ford), or the k→i→j triple loop
// (Floyd-Warshall). Identical graphs always produce identical trees
// and matrices.
//
// Choosing an algorithm:
//
//   - weights ≥ 0, one source:            Dijkstra     O((V+E) log V)
//   - weights may be negative, one source: BellmanFord  O(V·E)
//   - every pair at once:                  FloydWarshall O(V³)
//
// Unreachable vertices carry the exported Inf distance. Tree.PathTo
// rebuilds an explicit vertex path from the parent links.
//
// Errors:
//
//   - ErrNilGraph          graph pointer is nil
//   - ErrVertexOutOfRange  source or target outside [0, V)
//   - ErrNegativeWeight    negative edge given to Dijkstra
//
// Usage:
//
//	g, _ := graph.New(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 3)
//
//	tree, err := paths.Dijkstra(g, 0)
//	// tree.Dist == [0 4 7], tree.PathTo(2) == [0 1 2]
//
//	all, err := paths.FloydWarshall(g)
//	// all[0][2] == 7
package paths
