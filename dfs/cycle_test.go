package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nartvell/gostructs/dfs"
	"github.com/nartvell/gostructs/graph"
)

func TestHasCycleDirected_NilGraph(t *testing.T) {
	_, err := dfs.HasCycleDirected(nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

func TestHasCycleDirected_Empty(t *testing.T) {
	g, _ := graph.New(0)

	cyclic, err := dfs.HasCycleDirected(g)
	assert.NoError(t, err)
	assert.False(t, cyclic)
}

// TestHasCycleDirected_DAG confirms the shared six-vertex network is
// acyclic under the directed reading.
func TestHasCycleDirected_DAG(t *testing.T) {
	g := buildWeightedDAG()

	cyclic, err := dfs.HasCycleDirected(g)
	assert.NoError(t, err)
	assert.False(t, cyclic)
}

func TestHasCycleDirected_SelfLoop(t *testing.T) {
	g, _ := graph.New(2)
	_ = g.AddEdge(1, 1, 1)

	cyclic, err := dfs.HasCycleDirected(g)
	assert.NoError(t, err)
	assert.True(t, cyclic)
}

func TestHasCycleDirected_BackEdge(t *testing.T) {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 0, 1)

	cyclic, err := dfs.HasCycleDirected(g)
	assert.NoError(t, err)
	assert.True(t, cyclic)
}

// TestHasCycleDirected_Diamond checks that two directed paths meeting at a
// sink (a cross edge, not a back edge) are not mistaken for a cycle.
func TestHasCycleDirected_Diamond(t *testing.T) {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(2, 3, 1)

	cyclic, err := dfs.HasCycleDirected(g)
	assert.NoError(t, err)
	assert.False(t, cyclic)
}

func TestHasCycleDirected_ParallelEdges(t *testing.T) {
	g, _ := graph.New(2)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 1, 2)

	cyclic, err := dfs.HasCycleDirected(g)
	assert.NoError(t, err)
	assert.False(t, cyclic, "parallel one-way records are not a directed cycle")
}

// TestHasCycleDirected_DisconnectedCycle places the cycle in a component
// unreachable from vertex 0.
func TestHasCycleDirected_DisconnectedCycle(t *testing.T) {
	g, _ := graph.New(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 4, 1)
	_ = g.AddEdge(4, 2, 1)

	cyclic, err := dfs.HasCycleDirected(g)
	assert.NoError(t, err)
	assert.True(t, cyclic)
}

func TestHasCycleUndirected_NilGraph(t *testing.T) {
	_, err := dfs.HasCycleUndirected(nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

// TestHasCycleUndirected_MirroredPair verifies that u→v plus v→u reads as
// a single undirected edge, not as a two-edge cycle.
func TestHasCycleUndirected_MirroredPair(t *testing.T) {
	g, _ := graph.New(2)
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(1, 0, 3)

	cyclic, err := dfs.HasCycleUndirected(g)
	assert.NoError(t, err)
	assert.False(t, cyclic)
}

// TestHasCycleUndirected_AsymmetricMirror keeps different weights on the
// two directions; it is still one logical edge.
func TestHasCycleUndirected_AsymmetricMirror(t *testing.T) {
	g, _ := graph.New(2)
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(1, 0, 9)

	cyclic, err := dfs.HasCycleUndirected(g)
	assert.NoError(t, err)
	assert.False(t, cyclic)
}

// TestHasCycleUndirected_ParallelSameSide adds the duplicate on one side,
// which is genuine parallelism and therefore a two-edge cycle.
func TestHasCycleUndirected_ParallelSameSide(t *testing.T) {
	g, _ := graph.New(2)
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(0, 1, 8)

	cyclic, err := dfs.HasCycleUndirected(g)
	assert.NoError(t, err)
	assert.True(t, cyclic)
}

func TestHasCycleUndirected_SelfLoop(t *testing.T) {
	g, _ := graph.New(1)
	_ = g.AddEdge(0, 0, 1)

	cyclic, err := dfs.HasCycleUndirected(g)
	assert.NoError(t, err)
	assert.True(t, cyclic)
}

func TestHasCycleUndirected_Triangle(t *testing.T) {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 0, 1)
	g.MakeUndirected()

	cyclic, err := dfs.HasCycleUndirected(g)
	assert.NoError(t, err)
	assert.True(t, cyclic)
}

func TestHasCycleUndirected_Tree(t *testing.T) {
	g, _ := graph.New(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(1, 3, 1)
	_ = g.AddEdge(1, 4, 1)
	g.MakeUndirected()

	cyclic, err := dfs.HasCycleUndirected(g)
	assert.NoError(t, err)
	assert.False(t, cyclic)
}

// TestHasCycleUndirected_DisconnectedCycle hides the cycle in the second
// component to prove every component is scanned.
func TestHasCycleUndirected_DisconnectedCycle(t *testing.T) {
	g, _ := graph.New(5)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 4, 1)
	_ = g.AddEdge(4, 2, 1)
	g.MakeUndirected()

	cyclic, err := dfs.HasCycleUndirected(g)
	assert.NoError(t, err)
	assert.True(t, cyclic)
}
