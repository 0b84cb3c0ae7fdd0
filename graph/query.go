package graph

// VertexCount returns the number of vertex slots, fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return g.n
}

// EdgeCount returns the number of directed edge records.
// Parallel edges count individually.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for u := 0; u < g.n; u++ {
		total += len(g.adj[u])
	}

	return total
}

// HasEdge reports whether at least one u→v record exists.
// Exact even for zero-weight edges; out-of-range indices report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return g.present[u][v]
}

// Weight returns the matrix weight of edge u→v and whether it exists.
// Under parallel edges the matrix keeps the most recently added weight.
// Absent edges and out-of-range indices yield (0, false).
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (int64, bool) {
	if !g.inRange(u) || !g.inRange(v) {
		return 0, false
	}
	if !g.present[u][v] {
		return 0, false
	}

	return g.weight[u][v], true
}

// OutDegree returns the number of out-edge records of u,
// counting parallel edges individually.
func (g *Graph) OutDegree(u int) (int, error) {
	if !g.inRange(u) {
		return 0, ErrVertexOutOfRange
	}

	return len(g.adj[u]), nil
}

// Neighbors returns u's out-edges as full Edge values, in insertion order,
// parallel edges included. The slice is freshly allocated.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.inRange(u) {
		return nil, ErrVertexOutOfRange
	}
	out := make([]Edge, len(g.adj[u]))
	for i, he := range g.adj[u] {
		out[i] = Edge{From: u, To: he.to, Weight: he.weight}
	}

	return out, nil
}

// NeighborIDs returns the destination indices of u's out-edges, in
// insertion order, parallel edges included.
// Complexity: O(deg(u)).
func (g *Graph) NeighborIDs(u int) ([]int, error) {
	if !g.inRange(u) {
		return nil, ErrVertexOutOfRange
	}
	out := make([]int, len(g.adj[u]))
	for i, he := range g.adj[u] {
		out[i] = he.to
	}

	return out, nil
}

// Edges returns a snapshot of every edge record: sources ascending,
// insertion order within each source.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for u := 0; u < g.n; u++ {
		for _, he := range g.adj[u] {
			out = append(out, Edge{From: u, To: he.to, Weight: he.weight})
		}
	}

	return out
}
