// Package graph provides the core in-memory graph container used by every
// algorithm package in gostructs: a fixed-size directed multigraph over dense
// integer vertices, maintained simultaneously as an insertion-ordered
// adjacency list and a dense V×V weight matrix.
//
// Overview:
//
//   - Vertices are the integers 0..V-1, fixed at construction. There is no
//     vertex catalog to grow or shrink; RemoveVertex empties a slot but never
//     renumbers.
//   - Every edge is stored twice, in lockstep: once as an adjacency-list entry
//     (preserving insertion order and parallel edges) and once as a matrix
//     cell (giving O(1) presence and weight lookups). Each mutator updates
//     both, so the two views never disagree.
//   - Parallel edges and self-loops are always permitted. The matrix cell for
//     a repeated (u,v) pair holds the most recently added weight; the list
//     keeps every record.
//   - A separate presence grid disambiguates "edge with weight 0" from
//     "no edge", so HasEdge is exact for all weights.
//
// When to use:
//
//   - As the input type for the traversal and algorithm packages
//     (bfs, dfs, paths, mst, connectivity).
//   - Whenever a problem is naturally indexed by small dense integers and
//     needs both ordered neighbor iteration and constant-time edge tests.
//
// Mutation contract:
//
//   - All mutators return an error; out-of-range endpoints yield
//     ErrVertexOutOfRange and leave the graph untouched.
//   - WithLenientBounds() restores the legacy contract where out-of-range
//     mutations are silently ignored (nil error, no change). Read queries
//     always report bad indices regardless of mode.
//
// Performance and complexity:
//
//   - AddEdge: O(1) amortized. RemoveEdge: O(deg(u)). RemoveVertex: O(V + E).
//   - HasEdge / Weight: O(1). Neighbors / NeighborIDs: O(deg(u)) copy.
//   - Transpose / Clone / MakeUndirected: O(V² + E).
//   - Space: O(V² + E). The dense matrix makes this container a poor fit for
//     very large sparse graphs; it trades memory for exact O(1) edge tests.
//
// Thread safety:
//
//   - None. A Graph must be confined to one goroutine or synchronized
//     externally; every operation is synchronous and allocation-predictable.
package graph
