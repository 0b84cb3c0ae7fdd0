package graph

// AddEdge inserts a directed edge u→v with the given weight.
//
// Parallel edges append another list record; the matrix cell keeps the
// latest weight. Self-loops are permitted. Weight 0 and negative weights
// are stored verbatim.
//
// Out-of-range endpoints return ErrVertexOutOfRange (nil and no-op under
// WithLenientBounds). Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.inRange(u) || !g.inRange(v) {
		return g.boundsErr()
	}
	g.adj[u] = append(g.adj[u], halfedge{to: v, weight: w})
	g.weight[u][v] = w
	g.present[u][v] = true

	return nil
}

// RemoveEdge deletes every u→v record and clears the matrix cell.
// Removing an absent edge is a no-op, not an error.
//
// Surviving records keep their insertion order.
// Complexity: O(deg(u)).
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return g.boundsErr()
	}
	// Compact in place, dropping all records to v.
	kept := g.adj[u][:0]
	for _, he := range g.adj[u] {
		if he.to != v {
			kept = append(kept, he)
		}
	}
	g.adj[u] = kept
	g.weight[u][v] = 0
	g.present[u][v] = false

	return nil
}

// RemoveVertex detaches v from the graph: its out-edges are cleared and
// every u→v edge is removed. The slot itself remains, so VertexCount is
// unchanged and no indices shift; v simply becomes isolated.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(v int) error {
	if !g.inRange(v) {
		return g.boundsErr()
	}
	// 1) Drop all out-edges of v; zero its matrix row.
	g.adj[v] = nil
	for j := 0; j < g.n; j++ {
		g.weight[v][j] = 0
		g.present[v][j] = false
	}
	// 2) Drop all in-edges u→v; zero the matrix column.
	for u := 0; u < g.n; u++ {
		if u == v || !g.present[u][v] {
			continue
		}
		kept := g.adj[u][:0]
		for _, he := range g.adj[u] {
			if he.to != v {
				kept = append(kept, he)
			}
		}
		g.adj[u] = kept
		g.weight[u][v] = 0
		g.present[u][v] = false
	}

	return nil
}

// Clear removes every edge while keeping all vertex slots.
// The error return is always nil; it exists for mutator-surface symmetry.
// Complexity: O(V²).
func (g *Graph) Clear() error {
	for u := 0; u < g.n; u++ {
		g.adj[u] = nil
		for v := 0; v < g.n; v++ {
			g.weight[u][v] = 0
			g.present[u][v] = false
		}
	}

	return nil
}
