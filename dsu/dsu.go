// Package dsu implements disjoint-set union with path halving and
// union by rank or size.
package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned by New for a negative element count.
	ErrBadSize = errors.New("dsu: negative element count")

	// ErrElementOutOfRange indicates an element outside [0, n).
	ErrElementOutOfRange = errors.New("dsu: element out of range")
)

// DSU is a partition of the elements 0..n-1 into disjoint sets.
// The zero value is an empty partition; construct with New.
type DSU struct {
	parent []int
	rank   []int // height bound used by Union
	size   []int // element count per root, kept current by both unions
	count  int   // number of disjoint sets
}

// New creates a partition of n singleton sets {0} .. {n-1}.
// Returns ErrBadSize when n is negative; n == 0 is a valid empty
// partition.
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Find returns the representative of the set containing x, halving the
// path on the way up: every visited element is re-pointed at its
// grandparent, so later lookups shortcut the walk.
func (d *DSU) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return 0, err
	}
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x, nil
}

// Union merges the sets containing x and y by rank: the shallower tree
// hangs under the deeper root. Reports false when the elements already
// share a set.
func (d *DSU) Union(x, y int) (bool, error) {
	px, err := d.Find(x)
	if err != nil {
		return false, err
	}
	py, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if px == py {
		return false, nil
	}

	// attach by rank, bumping on ties
	switch {
	case d.rank[px] < d.rank[py]:
		px, py = py, px
	case d.rank[px] == d.rank[py]:
		d.rank[px]++
	}
	d.parent[py] = px
	d.size[px] += d.size[py]
	d.count--

	return true, nil
}

// UnionBySize merges the sets containing x and y by size: the smaller
// set hangs under the larger root. Reports false when the elements
// already share a set.
func (d *DSU) UnionBySize(x, y int) (bool, error) {
	px, err := d.Find(x)
	if err != nil {
		return false, err
	}
	py, err := d.Find(y)
	if err != nil {
		return false, err
	}
	if px == py {
		return false, nil
	}

	if d.size[px] < d.size[py] {
		px, py = py, px
	}
	d.parent[py] = px
	d.size[px] += d.size[py]
	d.count--

	return true, nil
}

// Connected reports whether x and y lie in the same set.
func (d *DSU) Connected(x, y int) (bool, error) {
	px, err := d.Find(x)
	if err != nil {
		return false, err
	}
	py, err := d.Find(y)
	if err != nil {
		return false, err
	}

	return px == py, nil
}

// SetSize returns the number of elements in the set containing x.
func (d *DSU) SetSize(x int) (int, error) {
	px, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[px], nil
}

// Count returns the current number of disjoint sets.
func (d *DSU) Count() int { return d.count }

// Len returns the total number of elements in the partition.
func (d *DSU) Len() int { return len(d.parent) }

// Reset restores n singleton sets, reusing the existing storage.
func (d *DSU) Reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.rank[i] = 0
		d.size[i] = 1
	}
	d.count = len(d.parent)
}

// check validates that x addresses an element of the partition.
func (d *DSU) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d (size %d)", ErrElementOutOfRange, x, len(d.parent))
	}

	return nil
}
