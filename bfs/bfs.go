// Package bfs provides breadth-first search over a graph.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop distance from a source vertex,
// with optional hooks, depth limiting, and neighbor filtering. Edge
// weights are ignored.
package bfs

import (
	"fmt"

	"github.com/nartvell/gostructs/graph"
	"github.com/nartvell/gostructs/queue"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *graph.Graph
	opts     Options
	frontier *queue.Queue[queueItem]
	res      *Result
}

// BFS runs breadth-first search on g starting from src,
// applying any number of functional Options.
// Returns ErrNilGraph or ErrVertexOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Neighbor expansion follows adjacency-list insertion order; parallel
// edges enqueue a vertex once. Complexity: O(V + E).
func BFS(g *graph.Graph, src int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate source vertex
	n := g.VertexCount()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d", ErrVertexOutOfRange, src)
	}

	// Prepare walker
	w := &walker{
		graph:    g,
		opts:     o,
		frontier: queue.New[queueItem](),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Dist[i] = -1
		w.res.Parent[i] = -1
	}

	// Seed queue with the source (its own parent stays -1)
	w.enqueue(src, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent, calls OnEnqueue,
// and adds it to the frontier.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Dist[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.frontier.Enqueue(queueItem{v: v, depth: d})
}

// loop processes the frontier until empty or a hook error.
func (w *walker) loop() error {
	for !w.frontier.IsEmpty() {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	// Dequeue cannot fail: the loop guards on IsEmpty.
	item, _ := w.frontier.Dequeue()
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors walks the adjacency list of item.v in insertion order,
// applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	// NeighborIDs cannot fail here: item.v came off the queue, so it is in range.
	neighbors, _ := w.graph.NeighborIDs(item.v)
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}
		// first time seen?
		if w.res.Dist[nbr] < 0 {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}
}
