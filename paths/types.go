// Package paths defines the shared types, options, and sentinel errors
// for the shortest-path algorithms.
package paths

import (
	"errors"
	"math"
)

// Inf marks an unreachable vertex in every distance structure produced
// by this package.
const Inf = math.MaxInt64

// Sentinel errors returned by the shortest-path implementations.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrVertexOutOfRange indicates a source or target index outside
	// [0, VertexCount).
	ErrVertexOutOfRange = errors.New("paths: vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was found
	// where the algorithm forbids one.
	ErrNegativeWeight = errors.New("paths: negative edge weight encountered")
)

// Tree is a shortest-path tree rooted at the source vertex passed to
// Dijkstra or BellmanFord.
type Tree struct {
	// Dist holds the minimum distance from the source to each vertex,
	// Inf where unreachable.
	Dist []int64

	// Parent holds the predecessor of each vertex on its shortest path,
	// -1 for the source and for unreachable vertices.
	Parent []int
}

// PathTo reconstructs the shortest path from the source to dest by
// walking Parent links. Returns nil when dest is out of range or
// unreachable. The source itself yields a one-element path.
// Complexity: O(path length).
func (t *Tree) PathTo(dest int) []int {
	// 1. Reject silly input
	if dest < 0 || dest >= len(t.Dist) || t.Dist[dest] == Inf {
		return nil
	}

	// 2. Walk backwards to the root
	path := []int{dest}
	for v := t.Parent[dest]; v != -1; v = t.Parent[v] {
		path = append(path, v)
	}

	// 3. Reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Options configures the behavior of Dijkstra.
//
// Target – optional vertex at which the search stops early; -1 explores
// the whole reachable set.
type Options struct {
	Target int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithTarget stops the search as soon as v's distance is finalized.
// Distances of vertices farther than v are left unfinished (possibly
// Inf). The index is validated against the graph inside Dijkstra.
func WithTarget(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// DefaultOptions returns an Options struct with no early-exit target.
func DefaultOptions() Options {
	return Options{Target: -1}
}
