// Package mst implements Prim's minimum-spanning-forest algorithm,
// growing each tree from the lowest-index unvisited vertex using a
// min-heap over vertex keys.
package mst

import (
	"container/heap"
	"math"

	"github.com/nartvell/gostructs/graph"
)

// infKey marks a vertex not yet connected to the growing tree.
const infKey = math.MaxInt64

// Prim computes the total weight of a minimum spanning forest of g.
//
// The directed storage is read as undirected: each vertex's incident
// records are the union of its out-records and (via a one-time
// transpose) its in-records, so AddEdge(u, v, w) contributes the same
// undirected edge regardless of direction. Parallel and mirrored
// records relax one by one, letting the cheapest of a bundle win.
// Self-loops never join a tree.
//
// Disconnected graphs are not an error: the algorithm restarts from
// every unvisited vertex in ascending order and reports the number of
// trees grown, so trees > 1 is the disconnection signal. Negative
// weights are fine.
//
// Returns ErrNilGraph for a nil graph. An empty graph yields (0, 0).
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *graph.Graph) (total int64, trees int, err error) {
	// 1. Validate input
	if g == nil {
		return 0, 0, ErrNilGraph
	}
	n := g.VertexCount()

	// 2. Transpose once so in-records read like out-records
	tr := g.Transpose()

	// 3. Initialize keys, membership, and an empty heap
	key := make([]int64, n)
	for i := range key {
		key[i] = infKey
	}
	inTree := make([]bool, n)
	pq := make(keyPQ, 0, n)
	heap.Init(&pq)

	// 4. Grow one tree per component, roots in ascending order
	for root := 0; root < n; root++ {
		if inTree[root] {
			continue
		}
		trees++
		key[root] = 0
		heap.Push(&pq, &keyItem{v: root, key: 0})

		for pq.Len() > 0 {
			item := heap.Pop(&pq).(*keyItem)
			u := item.v
			// stale entry: u already joined with a cheaper key
			if inTree[u] {
				continue
			}
			inTree[u] = true
			total += key[u]

			// relax both directions of every incident record
			out, _ := g.Neighbors(u)
			in, _ := tr.Neighbors(u)
			for _, e := range append(out, in...) {
				if !inTree[e.To] && e.Weight < key[e.To] {
					key[e.To] = e.Weight
					heap.Push(&pq, &keyItem{v: e.To, key: e.Weight})
				}
			}
		}
	}

	return total, trees, nil
}

// keyItem pairs a vertex with its cheapest known connection cost.
type keyItem struct {
	v   int
	key int64
}

// keyPQ is a min-heap of *keyItem ordered by key ascending, with lazy
// deletion of superseded entries.
type keyPQ []*keyItem

func (pq keyPQ) Len() int           { return len(pq) }
func (pq keyPQ) Less(i, j int) bool { return pq[i].key < pq[j].key }
func (pq keyPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *keyPQ) Push(x interface{}) { *pq = append(*pq, x.(*keyItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (pq *keyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
