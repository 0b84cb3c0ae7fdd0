package graph

import (
	"strconv"
	"strings"
)

// AdjacencyList renders the adjacency lists as one line per vertex in the
// form "u: (v,w) (v,w)", preserving insertion order. Intended for
// debugging and golden tests, not for parsing.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() string {
	var b strings.Builder
	for u := 0; u < g.n; u++ {
		b.WriteString(strconv.Itoa(u))
		b.WriteByte(':')
		for _, he := range g.adj[u] {
			b.WriteString(" (")
			b.WriteString(strconv.Itoa(he.to))
			b.WriteByte(',')
			b.WriteString(strconv.FormatInt(he.weight, 10))
			b.WriteByte(')')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// AdjacencyMatrix renders the dense weight matrix as V lines of V
// space-separated weights. Cells without an edge print as 0, which is
// indistinguishable from a present zero-weight edge; use HasEdge when
// exactness matters.
// Complexity: O(V²).
func (g *Graph) AdjacencyMatrix() string {
	var b strings.Builder
	for u := 0; u < g.n; u++ {
		for v := 0; v < g.n; v++ {
			if v > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(g.weight[u][v], 10))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
