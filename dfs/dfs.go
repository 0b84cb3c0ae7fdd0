// Package dfs implements depth-first search (single-source and forest)
// on a graph.Graph, with pre- and post-order hooks, depth and neighbor
// limits, and full-graph traversal.
package dfs

import (
	"fmt"

	"github.com/nartvell/gostructs/graph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *graph.Graph // underlying graph
	opts  Options      // traversal options
	res   *Result      // result collector
}

// DFS performs depth-first search on graph g starting from src, recording
// vertices in discovery (pre-order) sequence. Neighbors are explored in
// adjacency-list insertion order. If opts include WithFullTraversal, the
// walk restarts from every unvisited vertex in ascending order once the
// source tree is exhausted.
//
// Returns ErrNilGraph or ErrVertexOutOfRange for invalid input, or any
// error produced by the OnVisit/OnExit hooks.
// Complexity: O(V + E).
func DFS(g *graph.Graph, src int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify the source index
	n := g.VertexCount()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, src)
	}

	// 4. Initialize result with capacity hints
	res := &Result{
		Order:      make([]int, 0, n),
		Parent:     make([]int, n),
		Discovered: make([]bool, n),
	}
	for i := range res.Parent {
		res.Parent[i] = -1
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: the source tree first, then the rest of the forest
	if err := w.traverse(src, -1, 0); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Discovered[v] {
				if err := w.traverse(v, -1, 0); err != nil {
					return res, err
				}
			}
		}
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex v, discovered from parent at the given depth,
// recursing into neighbors. It honors the depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(v, parent, depth int) error {
	// 1. Depth limit: stop before entering
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 2. Mark discovered, link the tree, record pre-order
	w.res.Discovered[v] = true
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Explore neighbors in insertion order.
	// NeighborIDs cannot fail: v is always in range here.
	neighbors, _ := w.graph.NeighborIDs(v)
	for _, nbr := range neighbors {
		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.opts.SkippedNeighbors++
			continue
		}
		// Recurse on unvisited
		if !w.res.Discovered[nbr] {
			if err := w.traverse(nbr, v, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	return nil
}
