// Package paths implements the Floyd-Warshall all-pairs shortest-path
// algorithm over the dense weight matrix of a graph.Graph.
package paths

import "github.com/nartvell/gostructs/graph"

// FloydWarshall computes the V×V matrix of shortest distances between
// every ordered pair of vertices.
//
// The base matrix starts at Inf, with zeros on the diagonal and the
// stored weight wherever an edge exists. Self-loop records are skipped:
// dist[i][i] stays 0 even when a loop edge is present, so the diagonal
// keeps its reach-yourself-for-free meaning. For parallel edges the
// matrix cell already holds the last stored weight, which is what the
// overlay uses.
//
// Negative weights are allowed and no cycle check is performed; a
// negative diagonal entry in the result is the caller's signal that a
// negative cycle runs through that vertex.
//
// Returns ErrNilGraph for a nil graph. An empty graph yields an empty,
// non-nil matrix.
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g *graph.Graph) ([][]int64, error) {
	// 1) Validate input
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()

	// 2) Base matrix: Inf everywhere, 0 on the diagonal
	dist := make([][]int64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			dist[i][j] = Inf
		}
		dist[i][i] = 0
	}

	// 3) Overlay direct edges, leaving the diagonal untouched
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if w, ok := g.Weight(u, v); ok {
				dist[u][v] = w
			}
		}
	}

	// 4) Grow allowed intermediates one vertex at a time. The Inf
	// guards double as overflow protection.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == Inf {
					continue
				}
				if cand := dist[i][k] + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	return dist, nil
}
