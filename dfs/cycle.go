// Package dfs implements cycle detection for directed and undirected
// readings of a graph.Graph, using depth-first search with three-color
// marking and back-edge detection.
package dfs

import "github.com/nartvell/gostructs/graph"

// HasCycleDirected reports whether g, read as a directed graph, contains
// a cycle. Detection is by back-edge: a DFS that reaches a Gray vertex
// has found a path back into the recursion stack. Self-loops count.
//
// Complexity: O(V + E).
func HasCycleDirected(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	n := g.VertexCount()
	state := make([]int, n) // all start White

	for v := 0; v < n; v++ {
		if state[v] == White && directedVisit(g, v, state) {
			return true, nil
		}
	}

	return false, nil
}

// directedVisit recursively explores from v and reports a back-edge.
func directedVisit(g *graph.Graph, v int, state []int) bool {
	state[v] = Gray
	neighbors, _ := g.NeighborIDs(v)
	for _, nbr := range neighbors {
		switch state[nbr] {
		case Gray:
			return true
		case White:
			if directedVisit(g, nbr, state) {
				return true
			}
		}
	}
	state[v] = Black

	return false
}

// HasCycleUndirected reports whether g, read as an undirected multigraph,
// contains a cycle.
//
// The undirected reading treats a v→u record as the mirror of a u→v
// record rather than as a parallel edge, so symmetrized graphs are not
// misreported. Genuine parallelism is per side: two u→v records form a
// two-edge cycle between u and v. Self-loops always count.
//
// Detection runs in three stages:
//  1. any self-loop record ⇒ cycle;
//  2. any adjacency list holding the same destination twice ⇒ cycle;
//  3. parent-skip DFS over the symmetrized simple graph ⇒ cycle on
//     reaching a visited non-parent vertex.
//
// Complexity: O(V² + E) (the symmetric neighbor scan is matrix-driven).
func HasCycleUndirected(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	n := g.VertexCount()

	// 1+2) Self-loops and same-side duplicates.
	dup := make(map[int]bool, n)
	for u := 0; u < n; u++ {
		clear(dup)
		ids, _ := g.NeighborIDs(u)
		for _, v := range ids {
			if v == u {
				return true, nil
			}
			if dup[v] {
				return true, nil
			}
			dup[v] = true
		}
	}

	// 3) Parent-skip DFS over presence, both directions merged.
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		if !visited[v] && undirectedVisit(g, v, -1, visited) {
			return true, nil
		}
	}

	return false, nil
}

// undirectedVisit explores the symmetrized simple graph from v and
// reports a visited non-parent neighbor. At most one edge joins any pair
// here, so skipping the parent vertex skips exactly one edge occurrence.
func undirectedVisit(g *graph.Graph, v, parent int, visited []bool) bool {
	visited[v] = true
	n := g.VertexCount()
	for u := 0; u < n; u++ {
		if u == v || u == parent {
			continue
		}
		if !g.HasEdge(v, u) && !g.HasEdge(u, v) {
			continue
		}
		if visited[u] {
			return true
		}
		if undirectedVisit(g, u, v, visited) {
			return true
		}
	}

	return false
}
