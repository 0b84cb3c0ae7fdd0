// Package paths implements Dijkstra's shortest-path algorithm over the
// adjacency list of a graph.Graph.
//
// Dijkstra computes minimum-cost paths from a single source to every
// reachable vertex, requiring non-negative edge weights. Vertices are
// finalized in order of increasing distance via a binary min-heap with
// the lazy-decrease-key strategy: improved distances push duplicate
// heap entries, and stale entries are skipped on pop.
package paths

import (
	"container/heap"
	"fmt"

	"github.com/nartvell/gostructs/graph"
)

// Dijkstra computes the shortest-path tree of g rooted at src.
//
// Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. src must lie in [0, VertexCount) (ErrVertexOutOfRange).
//  3. No edge may carry a negative weight (ErrNegativeWeight); the
//     whole edge set is scanned up front to fail fast.
//
// Parallel edges relax record by record, so the cheapest of a bundle
// wins regardless of matrix overwrite order. Zero-weight edges are
// traversed normally. With WithTarget, the search stops as soon as the
// target's distance is final; other entries may remain unfinished.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *graph.Graph, src int, opts ...Option) (*Tree, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph pointer
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source and target indices
	n := g.VertexCount()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, src)
	}
	if cfg.Target != -1 && (cfg.Target < 0 || cfg.Target >= n) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexOutOfRange, cfg.Target)
	}

	// 4) Pre-scan every edge record; Dijkstra's invariant needs w ≥ 0
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Initialize runner state and run the main loop
	r := &runner{
		g:       g,
		target:  cfg.Target,
		tree:    newTree(n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(src)
	r.process()

	return r.tree, nil
}

// newTree allocates a Tree with every distance Inf and every parent -1.
func newTree(n int) *Tree {
	t := &Tree{
		Dist:   make([]int64, n),
		Parent: make([]int, n),
	}
	for i := 0; i < n; i++ {
		t.Dist[i] = Inf
		t.Parent[i] = -1
	}

	return t
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph
	target  int    // early-exit vertex, -1 for none
	tree    *Tree  // distances and parents under construction
	visited []bool // finalized vertices
	pq      nodePQ // min-heap with lazy deletion
}

// init seeds the source at distance zero.
func (r *runner) init(src int) {
	r.tree.Dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{v: src, dist: 0})
}

// process pops vertices in increasing distance order and relaxes their
// out-edges until the heap drains or the target is finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Extract the closest pending vertex
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.v

		// 2) Skip stale entries left behind by lazy decrease-key
		if r.visited[u] {
			continue
		}

		// 3) Finalize u; its distance can no longer improve
		r.visited[u] = true
		if u == r.target {
			return
		}

		// 4) Relax all outgoing edge records of u
		r.relax(u)
	}
}

// relax attempts to improve the distance of every neighbor of u through
// the records of u's adjacency list, one parallel edge at a time.
func (r *runner) relax(u int) {
	// Neighbors cannot fail: u came off the heap, so it is in range.
	edges, _ := r.g.Neighbors(u)
	base := r.tree.Dist[u]
	for _, e := range edges {
		cand := base + e.Weight
		// strict improvement only, equal distances push no duplicates
		if cand >= r.tree.Dist[e.To] {
			continue
		}
		r.tree.Dist[e.To] = cand
		r.tree.Parent[e.To] = u
		heap.Push(&r.pq, &nodeItem{v: e.To, dist: cand})
	}
}

// nodeItem pairs a vertex with its tentative distance for heap ordering.
type nodeItem struct {
	v    int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Improved
// distances push fresh entries; outdated ones are filtered on pop via
// the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
