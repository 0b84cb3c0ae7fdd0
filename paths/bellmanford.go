// Package paths implements the Bellman-Ford single-source shortest-path
// algorithm, which tolerates negative edge weights and reports negative
// cycles.
package paths

import (
	"fmt"

	"github.com/nartvell/gostructs/graph"
)

// BellmanFord computes the shortest-path tree of g rooted at src by
// V-1 rounds of edge relaxation, then runs one extra round to detect
// a negative-weight cycle reachable from src.
//
// Returns:
//
//   - tree: distances and parents; Inf where unreachable. When a
//     negative cycle exists the affected distances are not meaningful,
//     but the tree is still returned for inspection.
//   - negCycle: true if some relaxation still succeeds after V-1
//     rounds.
//   - err: ErrNilGraph or ErrVertexOutOfRange for invalid input.
//
// Edges relax in a fixed order (source vertex ascending, records in
// insertion order), so ties resolve deterministically. Parallel edges
// relax record by record; self-loops can never improve a distance
// unless negative, in which case the detection round reports them.
//
// Complexity: O(V·E) time, O(V) space.
func BellmanFord(g *graph.Graph, src int) (*Tree, bool, error) {
	// 1) Validate input
	if g == nil {
		return nil, false, ErrNilGraph
	}
	n := g.VertexCount()
	if src < 0 || src >= n {
		return nil, false, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, src)
	}

	// 2) Initialize distances; snapshot the edge list once
	tree := newTree(n)
	tree.Dist[src] = 0
	edges := g.Edges()

	// 3) Relax every edge V-1 times. After round i, all shortest paths
	// using at most i edges are final.
	for round := 1; round < n; round++ {
		improved := false
		for _, e := range edges {
			if tree.Dist[e.From] == Inf {
				continue
			}
			if cand := tree.Dist[e.From] + e.Weight; cand < tree.Dist[e.To] {
				tree.Dist[e.To] = cand
				tree.Parent[e.To] = e.From
				improved = true
			}
		}
		// settled early: no later round can change anything
		if !improved {
			break
		}
	}

	// 4) Detection round: any remaining improvement proves a reachable
	// negative cycle.
	for _, e := range edges {
		if tree.Dist[e.From] == Inf {
			continue
		}
		if tree.Dist[e.From]+e.Weight < tree.Dist[e.To] {
			return tree, true, nil
		}
	}

	return tree, false, nil
}
