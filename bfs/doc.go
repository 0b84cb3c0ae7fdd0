// Package bfs provides breadth-first search over a graph.Graph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist: hop distance from the source per vertex (-1 when unreached)
//   - Parent: predecessor in the BFS tree (-1 for the source and unreached vertices)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//   - Foundation for connectivity, matching, and reachability analyses.
//
// Determinism
//
//	Because graph.NeighborIDs returns neighbors in adjacency-list insertion
//	order, and BFS enqueues them in that order, the visit sequence is fully
//	reproducible. Parallel edges enqueue a vertex only once.
//
// Weights
//
//	Edge weights are ignored; BFS measures distance in edge count. Use the
//	paths package when weights matter.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue plus the dense Dist and Parent slices)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // handle ErrNilGraph, ErrVertexOutOfRange, ErrOptionViolation, or hook errors
//	}
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, 0,
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): no-op hooks, no depth limit, no filtering.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):      hook before a vertex is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting a vertex.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrNilGraph          if the graph pointer is nil.
//   - ErrVertexOutOfRange  if the source index is outside [0, VertexCount).
//   - ErrOptionViolation   if an invalid Option is supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
