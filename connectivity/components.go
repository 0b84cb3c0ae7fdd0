// Package connectivity implements weakly-connected component discovery
// by breadth-first search over the symmetric reading of the graph.
package connectivity

import (
	"errors"
	"sort"

	"github.com/nartvell/gostructs/graph"
	"github.com/nartvell/gostructs/queue"
)

// ErrNilGraph indicates that a nil *graph.Graph was passed to an
// analysis function.
var ErrNilGraph = errors.New("connectivity: graph is nil")

// Components partitions the vertices of g into weakly-connected
// components: directed records are read symmetrically, so a single
// u→v record joins u and v.
//
// Each component's vertices come back in ascending order, and the
// components themselves are ordered by smallest member. An empty graph
// yields an empty, non-nil partition. Returns ErrNilGraph for a nil
// graph.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *graph.Graph) ([][]int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()

	// 2. Transpose once so in-records read like out-records
	tr := g.Transpose()

	// 3. BFS-flood from each unvisited vertex, ascending.
	// The flood root is always its component's minimum: every smaller
	// index was already swept into an earlier component.
	visited := make([]bool, n)
	frontier := queue.New[int]()
	comps := make([][]int, 0)
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		comp := floodFrom(g, tr, root, visited, frontier)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// ComponentCount returns the number of weakly-connected components of g.
// Same traversal as Components, without collecting the members.
// Complexity: O(V + E).
func ComponentCount(g *graph.Graph) (int, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}

// floodFrom collects every vertex reachable from root when edges are
// read in both directions, marking visited as it goes.
func floodFrom(g, tr *graph.Graph, root int, visited []bool, frontier *queue.Queue[int]) []int {
	visited[root] = true
	frontier.Enqueue(root)
	comp := make([]int, 0, 1)

	for !frontier.IsEmpty() {
		// Dequeue cannot fail: the loop guards on IsEmpty.
		u, _ := frontier.Dequeue()
		comp = append(comp, u)

		out, _ := g.NeighborIDs(u)
		in, _ := tr.NeighborIDs(u)
		for _, v := range append(out, in...) {
			if !visited[v] {
				visited[v] = true
				frontier.Enqueue(v)
			}
		}
	}

	return comp
}
