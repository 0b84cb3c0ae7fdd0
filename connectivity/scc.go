package connectivity

import (
	"sort"

	"github.com/nartvell/gostructs/graph"
)

// StronglyConnectedComponents partitions the vertices of g into
// maximal sets of mutually reachable vertices, using Kosaraju's
// two-pass algorithm:
//
//  1. DFS over every vertex in ascending order, pushing each onto a
//     stack as it finishes;
//  2. transpose the graph;
//  3. pop the stack and DFS the transpose from each unvisited vertex —
//     every sweep collects exactly one component.
//
// Each component's vertices come back in ascending order; the
// components follow second-pass discovery order, which is compatible
// with a topological order of the condensation. Parallel records and
// self-loops are harmless. An empty graph yields an empty, non-nil
// partition. Returns ErrNilGraph for a nil graph.
//
// Complexity: O(V + E) time, O(V) memory.
func StronglyConnectedComponents(g *graph.Graph) ([][]int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()

	// 2. First pass: finish-order stack over the original orientation
	finish := make([]int, 0, n)
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		if !visited[v] {
			finishOrderVisit(g, v, visited, &finish)
		}
	}

	// 3. Second pass: sweep the transpose in reverse finish order
	tr := g.Transpose()
	for i := range visited {
		visited[i] = false
	}
	sccs := make([][]int, 0)
	for i := len(finish) - 1; i >= 0; i-- {
		v := finish[i]
		if visited[v] {
			continue
		}
		comp := make([]int, 0, 1)
		collectVisit(tr, v, visited, &comp)
		sort.Ints(comp)
		sccs = append(sccs, comp)
	}

	return sccs, nil
}

// finishOrderVisit explores from v and appends v to finish after all of
// its descendants, the classic post-order push.
func finishOrderVisit(g *graph.Graph, v int, visited []bool, finish *[]int) {
	visited[v] = true
	ids, _ := g.NeighborIDs(v)
	for _, u := range ids {
		if !visited[u] {
			finishOrderVisit(g, u, visited, finish)
		}
	}
	*finish = append(*finish, v)
}

// collectVisit gathers every vertex reachable from v in the transpose
// into comp.
func collectVisit(tr *graph.Graph, v int, visited []bool, comp *[]int) {
	visited[v] = true
	*comp = append(*comp, v)
	ids, _ := tr.NeighborIDs(v)
	for _, u := range ids {
		if !visited[u] {
			collectVisit(tr, u, visited, comp)
		}
	}
}
