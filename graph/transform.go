package graph

// Transpose returns a new graph with every edge reversed: each u→v record
// becomes v→u with the same weight. Parallel edges are reversed
// individually and the receiver is left untouched.
//
// Record order in the result follows the scan: sources ascending in the
// original, insertion order within each source.
// Complexity: O(V² + E).
func (g *Graph) Transpose() *Graph {
	t := newLike(g)
	for u := 0; u < g.n; u++ {
		for _, he := range g.adj[u] {
			t.adj[he.to] = append(t.adj[he.to], halfedge{to: u, weight: he.weight})
			t.weight[he.to][u] = he.weight
			t.present[he.to][u] = true
		}
	}

	return t
}

// MakeUndirected symmetrizes the edge set in place: for every u→v record
// with no v→u record present, one reverse edge v→u is added carrying the
// forward weight.
//
// The pass works over a snapshot of the current records, so reverse edges
// added during the pass are not themselves mirrored again. Pairs that
// already exist in both directions are left untouched, even when their
// weights differ. Self-loops are their own reverse and never duplicated.
// Complexity: O(V² + E).
func (g *Graph) MakeUndirected() error {
	snapshot := g.Edges()
	for _, e := range snapshot {
		if g.present[e.To][e.From] {
			continue
		}
		g.adj[e.To] = append(g.adj[e.To], halfedge{to: e.From, weight: e.Weight})
		g.weight[e.To][e.From] = e.Weight
		g.present[e.To][e.From] = true
	}

	return nil
}

// Clone returns a deep copy: adjacency lists, weight matrix, presence grid,
// and configuration are all duplicated. Mutations on either graph never
// affect the other.
// Complexity: O(V² + E).
func (g *Graph) Clone() *Graph {
	c := newLike(g)
	for u := 0; u < g.n; u++ {
		if len(g.adj[u]) > 0 {
			c.adj[u] = make([]halfedge, len(g.adj[u]))
			copy(c.adj[u], g.adj[u])
		}
		copy(c.weight[u], g.weight[u])
		copy(c.present[u], g.present[u])
	}

	return c
}

// newLike allocates an empty graph with g's size and configuration.
func newLike(g *Graph) *Graph {
	t := &Graph{
		n:       g.n,
		lenient: g.lenient,
		adj:     make([][]halfedge, g.n),
		weight:  make([][]int64, g.n),
		present: make([][]bool, g.n),
	}
	for i := 0; i < g.n; i++ {
		t.weight[i] = make([]int64, g.n)
		t.present[i] = make([]bool, g.n)
	}

	return t
}
