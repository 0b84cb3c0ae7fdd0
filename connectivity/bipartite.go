package connectivity

import (
	"github.com/nartvell/gostructs/graph"
	"github.com/nartvell/gostructs/queue"
)

// color states for the two-coloring sweep.
const (
	uncolored int8 = -1
	red       int8 = 0
	blue      int8 = 1
)

// IsBipartite reports whether the vertices of g can be split into two
// sets with every edge crossing between them.
//
// Edges are read symmetrically, the standard undirected notion: u→v
// forces u and v into opposite sets regardless of direction. Every
// component is checked. A self-loop makes the graph non-bipartite
// immediately; parallel records change nothing. An empty graph is
// bipartite. Returns ErrNilGraph for a nil graph.
//
// Complexity: O(V + E) time, O(V) memory.
func IsBipartite(g *graph.Graph) (bool, error) {
	// 1. Validate input
	if g == nil {
		return false, ErrNilGraph
	}
	n := g.VertexCount()

	// 2. A self-loop is an odd cycle of length one
	for v := 0; v < n; v++ {
		if g.HasEdge(v, v) {
			return false, nil
		}
	}

	// 3. Two-color each component by BFS
	tr := g.Transpose()
	color := make([]int8, n)
	for i := range color {
		color[i] = uncolored
	}
	frontier := queue.New[int]()

	for root := 0; root < n; root++ {
		if color[root] != uncolored {
			continue
		}
		color[root] = red
		frontier.Enqueue(root)

		for !frontier.IsEmpty() {
			u, _ := frontier.Dequeue()
			next := 1 - color[u] // flip red↔blue

			out, _ := g.NeighborIDs(u)
			in, _ := tr.NeighborIDs(u)
			for _, v := range append(out, in...) {
				switch color[v] {
				case uncolored:
					color[v] = next
					frontier.Enqueue(v)
				case color[u]:
					frontier.Clear()

					return false, nil
				}
			}
		}
	}

	return true, nil
}
