// Package connectivity analyzes the component structure of a
// graph.Graph: weakly-connected components, bipartiteness, and
// Kosaraju's strongly connected components.
//
// What:
//
//   - Components / ComponentCount: weakly-connected components — the
//     directed records are read symmetrically, so u→v alone joins u
//     and v into one component. Each component lists its vertices in
//     ascending order; components are ordered by smallest member.
//   - IsBipartite: BFS two-coloring of the symmetric reading; a color
//     conflict or any self-loop means not bipartite.
//   - StronglyConnectedComponents: Kosaraju's two-pass algorithm over
//     the directed records — finish-order DFS, transpose, collection
//     DFS in reverse finish order.
//
// Why:
//
//   - Components answers "which vertices could ever interact", the
//     loosest notion of connection in a directed graph.
//   - Bipartiteness gates matching algorithms and 2-colorable layouts.
//   - SCCs condense a digraph into a DAG of mutually-reachable groups.
//
// Directed input:
//
// Components and IsBipartite deliberately ignore edge direction; only
// StronglyConnectedComponents distinguishes u→v from v→u. Parallel
// records and mirrored pairs never change any verdict here.
//
// Complexity:
//
//   - Components / ComponentCount:      O(V + E) time, O(V) memory.
//   - IsBipartite:                      O(V + E) time, O(V) memory.
//   - StronglyConnectedComponents:      O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrNilGraph  the graph pointer is nil.
//
// Usage:
//
//	g, _ := graph.New(5)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 0, 1)
//	_ = g.AddEdge(2, 3, 1)
//
//	comps, _ := connectivity.Components(g)
//	// [[0 1] [2 3] [4]]
//
//	sccs, _ := connectivity.StronglyConnectedComponents(g)
//	// [[0 1] [2] [3] [4]]
//
// Thread safety: None. Synchronize externally for concurrent use.
package connectivity
