// Package mst defines the sentinel errors for minimum-spanning-forest
// computation.
package mst

import "errors"

// ErrNilGraph indicates that a nil *graph.Graph was passed to Prim or
// Kruskal.
var ErrNilGraph = errors.New("mst: graph is nil")
