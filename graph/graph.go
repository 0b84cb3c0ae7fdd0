// Package graph declares the Graph container, its sentinel errors,
// construction options, and the New constructor.
package graph

import "errors"

// Sentinel errors for graph construction and access.
var (
	// ErrBadVertexCount indicates New was called with a negative vertex count.
	ErrBadVertexCount = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an operation referenced a vertex index
	// outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)

// Edge is the public snapshot of one directed edge record.
//
// Queries return Edge values copied out of internal storage; mutating a
// returned Edge never affects the graph.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the cost associated with the edge. Zero and negative
	// weights are stored verbatim; algorithms that cannot handle them
	// reject the graph at their own entry points.
	Weight int64
}

// halfedge is the adjacency-list record: destination plus weight.
// The source is implied by the owning list.
type halfedge struct {
	to     int
	weight int64
}

// Graph is a fixed-size directed multigraph over vertices 0..n-1,
// stored as both an insertion-ordered adjacency list and a dense matrix.
//
// Invariants maintained by every mutator:
//   - present[u][v] == true  ⇔  adj[u] contains at least one record to v.
//   - weight[u][v] holds the weight of the most recently added (u,v) record,
//     or 0 when present[u][v] is false.
//   - len(adj) == len(weight) == len(present) == n at all times.
type Graph struct {
	n       int
	lenient bool

	adj     [][]halfedge // insertion-ordered out-edges per vertex
	weight  [][]int64    // dense V×V weights, last write wins
	present [][]bool     // dense V×V presence, exact for weight 0
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithLenientBounds makes mutators silently ignore out-of-range endpoints
// instead of returning ErrVertexOutOfRange. Read queries are unaffected and
// always report bad indices.
func WithLenientBounds() Option {
	return func(g *Graph) { g.lenient = true }
}

// New creates a graph with vertices 0..n-1 and no edges.
// n == 0 yields a valid empty graph; n < 0 returns ErrBadVertexCount.
//
// All three representations are allocated up front, so construction is
// O(n²) time and space.
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{
		n:       n,
		adj:     make([][]halfedge, n),
		weight:  make([][]int64, n),
		present: make([][]bool, n),
	}
	for i := 0; i < n; i++ {
		g.weight[i] = make([]int64, n)
		g.present[i] = make([]bool, n)
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}

// boundsErr maps an out-of-range mutation to the configured contract:
// nil in lenient mode, ErrVertexOutOfRange otherwise.
func (g *Graph) boundsErr() error {
	if g.lenient {
		return nil
	}

	return ErrVertexOutOfRange
}
