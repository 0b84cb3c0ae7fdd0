// Package dfs defines types and options for depth-first traversal,
// including pre-/post-order hooks, depth limiting, neighbor filtering,
// and full-graph (forest) traversal.
package dfs

import "errors"

// Vertex visitation states shared by the traversal, cycle detection, and
// topological sort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrNilGraph is returned when a nil *graph.Graph is passed to DFS,
	// TopologicalSort, or the cycle checks.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates that the source index is outside
	// [0, VertexCount).
	ErrVertexOutOfRange = errors.New("dfs: source vertex out of range")

	// ErrCycleDetected indicates that a cycle prevented TopologicalSort
	// from producing an ordering.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, src, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	// Returning an error aborts traversal with that error.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before the
	// walk recurses into it. Return true to traverse, false to skip.
	FilterNeighbor func(neighbor int) bool

	// FullTraversal, if true, restarts DFS from every unvisited vertex in
	// ascending index order after the source tree is exhausted, covering
	// disconnected components. Default is false.
	FullTraversal bool

	// SkippedNeighbors counts neighbors skipped by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns an Options struct with:
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() Options {
	return Options{
		OnVisit:          nil,
		OnExit:           nil,
		MaxDepth:         -1,
		FilterNeighbor:   nil,
		FullTraversal:    false,
		SkippedNeighbors: 0,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first discovered.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a vertex's descendants have been fully explored.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(neighbor) == false, that neighbor is skipped and counted in
// SkippedNeighbors.
func WithFilterNeighbor(fn func(neighbor int) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS restarts from each unvisited vertex, covering
// disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []int

	// Parent holds the vertex from which each vertex was first discovered,
	// -1 for tree roots and unreached vertices.
	Parent []int

	// Discovered flags which vertices were reached during the traversal.
	Discovered []bool

	// SkippedNeighbors reports how many neighbors were skipped due to
	// FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
