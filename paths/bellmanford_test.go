package paths_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nartvell/gostructs/graph"
	"github.com/nartvell/gostructs/paths"
)

func TestBellmanFord_NilGraph(t *testing.T) {
	if _, _, err := paths.BellmanFord(nil, 0); !errors.Is(err, paths.ErrNilGraph) {
		t.Fatalf("nil graph: want ErrNilGraph, got %v", err)
	}
}

func TestBellmanFord_SourceOutOfRange(t *testing.T) {
	g, _ := graph.New(2)
	if _, _, err := paths.BellmanFord(g, 2); !errors.Is(err, paths.ErrVertexOutOfRange) {
		t.Fatalf("src=2: want ErrVertexOutOfRange, got %v", err)
	}
}

func TestBellmanFord_WeightedDAG(t *testing.T) {
	g := buildWeightedDAG()

	tree, negCycle, err := paths.BellmanFord(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if negCycle {
		t.Fatal("no negative cycle exists in the DAG")
	}
	if want := []int64{0, 4, 2, 9, 5, 20}; !reflect.DeepEqual(tree.Dist, want) {
		t.Errorf("Dist: want %v, got %v", want, tree.Dist)
	}
}

// TestBellmanFord_NegativeEdge routes through a negative edge that
// Dijkstra would reject: 0→2→1 costs 5-3=2, beating the direct 4.
func TestBellmanFord_NegativeEdge(t *testing.T) {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 5)
	_ = g.AddEdge(2, 1, -3)

	tree, negCycle, err := paths.BellmanFord(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if negCycle {
		t.Fatal("single negative edge is not a cycle")
	}
	if want := []int64{0, 2, 5}; !reflect.DeepEqual(tree.Dist, want) {
		t.Errorf("Dist: want %v, got %v", want, tree.Dist)
	}
	if tree.Parent[1] != 2 {
		t.Errorf("Parent[1]: want 2, got %d", tree.Parent[1])
	}
	if want := []int{0, 2, 1}; !reflect.DeepEqual(tree.PathTo(1), want) {
		t.Errorf("PathTo(1): want %v, got %v", want, tree.PathTo(1))
	}
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, -1)
	_ = g.AddEdge(2, 1, -1)

	tree, negCycle, err := paths.BellmanFord(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !negCycle {
		t.Fatal("1→2→1 loses weight every lap; want negCycle=true")
	}
	if tree == nil {
		t.Fatal("tree must still be returned for inspection")
	}
}

// TestBellmanFord_UnreachableNegativeCycle keeps the negative cycle in a
// component the source cannot reach; the Inf guard must mask it.
func TestBellmanFord_UnreachableNegativeCycle(t *testing.T) {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 3, 2)
	_ = g.AddEdge(1, 2, -1)
	_ = g.AddEdge(2, 1, -1)

	tree, negCycle, err := paths.BellmanFord(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if negCycle {
		t.Fatal("cycle is unreachable from 0; want negCycle=false")
	}
	if tree.Dist[1] != paths.Inf || tree.Dist[2] != paths.Inf {
		t.Errorf("unreachable distances must stay Inf, got %v", tree.Dist)
	}
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	g, _ := graph.New(2)
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(1, 1, -2)

	_, negCycle, err := paths.BellmanFord(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !negCycle {
		t.Fatal("a reachable negative self-loop is a negative cycle")
	}
}

// TestBellmanFord_AgreesWithDijkstra checks the two single-source
// algorithms coincide when both are applicable.
func TestBellmanFord_AgreesWithDijkstra(t *testing.T) {
	g := buildWeightedDAG()

	bf, _, err := paths.BellmanFord(g, 2)
	if err != nil {
		t.Fatalf("BellmanFord: %v", err)
	}
	dj, err := paths.Dijkstra(g, 2)
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if !reflect.DeepEqual(bf.Dist, dj.Dist) {
		t.Errorf("distance mismatch: BellmanFord %v, Dijkstra %v", bf.Dist, dj.Dist)
	}
}
