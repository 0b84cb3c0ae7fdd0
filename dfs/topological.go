// Package dfs provides topological ordering of directed acyclic graphs
// via Kahn's in-degree algorithm.
package dfs

import (
	"github.com/nartvell/gostructs/graph"
	"github.com/nartvell/gostructs/queue"
)

// TopologicalSort computes a linear ordering of all vertices such that
// for every edge u→v, u appears before v.
//
// The ordering is built with Kahn's algorithm: vertices of in-degree
// zero are consumed from a FIFO queue seeded in ascending index order,
// so the result is deterministic for a given graph. Parallel edges
// contribute their full multiplicity to in-degrees and are consumed
// record by record.
//
// If g is nil, returns ErrNilGraph. If a cycle prevents the ordering
// from covering every vertex, returns (nil, ErrCycleDetected); callers
// that only inspect the slice still observe the empty-order convention.
// An empty graph yields an empty, non-nil order.
//
// Complexity: O(V + E). Memory: O(V).
func TopologicalSort(g *graph.Graph) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()

	// 2. Count in-degrees, one per edge record
	indeg := make([]int, n)
	for u := 0; u < n; u++ {
		ids, _ := g.NeighborIDs(u)
		for _, v := range ids {
			indeg[v]++
		}
	}

	// 3. Seed the queue with every source vertex, ascending
	ready := queue.New[int]()
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			ready.Enqueue(v)
		}
	}

	// 4. Consume sources, releasing their successors
	order := make([]int, 0, n)
	for !ready.IsEmpty() {
		v, _ := ready.Dequeue()
		order = append(order, v)
		ids, _ := g.NeighborIDs(v)
		for _, nbr := range ids {
			indeg[nbr]--
			if indeg[nbr] == 0 {
				ready.Enqueue(nbr)
			}
		}
	}

	// 5. A short order means some vertices never reached in-degree zero
	if len(order) < n {
		return nil, ErrCycleDetected
	}

	return order, nil
}
