package graph_test

import (
	"math/rand"
	"testing"

	"github.com/nartvell/gostructs/graph"
)

// BenchmarkAddEdge measures the amortized insertion cost on a mid-size graph.
func BenchmarkAddEdge(b *testing.B) {
	const V = 1000
	g, _ := graph.New(V)
	rnd := rand.New(rand.NewSource(42))

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(rnd.Intn(V), rnd.Intn(V), int64(i))
	}
}

// BenchmarkHasEdge measures the constant-time matrix probe.
func BenchmarkHasEdge(b *testing.B) {
	const (
		V = 1000
		E = 5000
	)
	rnd := rand.New(rand.NewSource(42))
	g, _ := graph.New(V)
	for k := 0; k < E; k++ {
		_ = g.AddEdge(rnd.Intn(V), rnd.Intn(V), 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(i%V, (i*7)%V)
	}
}

// BenchmarkNeighbors measures the snapshot cost for a busy vertex.
func BenchmarkNeighbors(b *testing.B) {
	const deg = 256
	g, _ := graph.New(deg + 1)
	for v := 1; v <= deg; v++ {
		_ = g.AddEdge(0, v, int64(v))
	}

	b.ReportAllocs()
	b.SetBytes(int64(deg))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}

// BenchmarkTranspose measures the full-reversal copy on a sparse graph.
func BenchmarkTranspose(b *testing.B) {
	const (
		V = 500
		E = 4000
	)
	rnd := rand.New(rand.NewSource(42))
	g, _ := graph.New(V)
	for k := 0; k < E; k++ {
		_ = g.AddEdge(rnd.Intn(V), rnd.Intn(V), int64(k))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Transpose()
	}
}
