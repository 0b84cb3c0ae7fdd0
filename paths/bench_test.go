package paths_test

import (
	"math/rand"
	"testing"

	"github.com/nartvell/gostructs/graph"
	"github.com/nartvell/gostructs/paths"
)

// benchGraph builds a seeded random simple digraph for benchmarking.
func benchGraph(v, tries int) *graph.Graph {
	rng := rand.New(rand.NewSource(11))
	g, _ := graph.New(v)
	seen := make(map[[2]int]bool, tries)
	for i := 0; i < tries; i++ {
		a, b := rng.Intn(v), rng.Intn(v)
		if a == b || seen[[2]int{a, b}] {
			continue
		}
		seen[[2]int{a, b}] = true
		_ = g.AddEdge(a, b, int64(rng.Intn(1000)))
	}

	return g
}

// BenchmarkDijkstra_Sparse measures the heap-driven search on a sparse
// random graph (E ≈ 4V).
func BenchmarkDijkstra_Sparse(b *testing.B) {
	g := benchGraph(2000, 8000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = paths.Dijkstra(g, 0)
	}
}

// BenchmarkDijkstra_Target stops early at a mid-distance vertex.
func BenchmarkDijkstra_Target(b *testing.B) {
	g := benchGraph(2000, 8000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = paths.Dijkstra(g, 0, paths.WithTarget(1000))
	}
}

// BenchmarkBellmanFord_Sparse exercises the V·E relaxation loop.
func BenchmarkBellmanFord_Sparse(b *testing.B) {
	g := benchGraph(500, 2000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = paths.BellmanFord(g, 0)
	}
}

// BenchmarkFloydWarshall_Dense runs the cubic closure on a dense graph.
func BenchmarkFloydWarshall_Dense(b *testing.B) {
	g := benchGraph(128, 128*64)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = paths.FloydWarshall(g)
	}
}
