// Package mst implements Kruskal's minimum-spanning-forest algorithm:
// candidates sorted by weight, accepted greedily through a disjoint-set
// union.
package mst

import (
	"sort"

	"github.com/nartvell/gostructs/dsu"
	"github.com/nartvell/gostructs/graph"
)

// Kruskal computes a minimum spanning forest of g and returns the
// accepted edge records, in acceptance order, together with their total
// weight.
//
// The directed storage is read as undirected: every edge record is one
// undirected candidate, so a mirrored pair u→v / v→u enters the sort
// twice and the later occurrence is rejected by the union step as a
// cycle edge. Self-loops are skipped outright. Candidates sort by
// weight ascending with a stable sort, so ties keep snapshot order
// (source ascending, insertion order within a source) and the result
// is deterministic.
//
// Disconnected graphs are not an error: the accepted set spans every
// component and the total is the forest weight, matching Prim. Negative
// weights are fine.
//
// Returns ErrNilGraph for a nil graph. An empty graph yields an empty,
// non-nil edge slice and total 0.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func Kruskal(g *graph.Graph) ([]graph.Edge, int64, error) {
	// 1. Validate input
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.VertexCount()

	// 2. Snapshot candidates, dropping self-loops
	all := g.Edges()
	cands := make([]graph.Edge, 0, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		cands = append(cands, e)
	}

	// 3. Stable sort keeps snapshot order between equal weights
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].Weight < cands[j].Weight
	})

	// 4. Greedy accept through the partition.
	// dsu.New cannot fail: a vertex count is never negative.
	part, _ := dsu.New(n)
	forest := make([]graph.Edge, 0, n)
	var total int64
	for _, e := range cands {
		// Union cannot fail: endpoints are in range by construction.
		merged, _ := part.Union(e.From, e.To)
		if !merged {
			continue
		}
		forest = append(forest, e)
		total += e.Weight
		// one set left: every further candidate closes a cycle
		if part.Count() == 1 {
			break
		}
	}

	return forest, total, nil
}
