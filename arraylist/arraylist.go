// Package arraylist implements a generic dynamic array with ordered
// helpers.
package arraylist

import (
	"errors"
	"sort"

	"golang.org/x/exp/constraints"
)

// Sentinel errors reported by list accessors.
var (
	// ErrEmpty is returned by Min and Max on an empty list.
	ErrEmpty = errors.New("arraylist: empty list")

	// ErrIndexOutOfRange is returned by positional operations for an
	// index outside the valid range.
	ErrIndexOutOfRange = errors.New("arraylist: index out of range")
)

// List is a growable array of ordered elements. Ordering unlocks the
// search and extremum helpers; storage itself is plain slice append.
// The zero value is an empty list ready for use.
type List[T constraints.Ordered] struct {
	items []T
}

// New returns an empty list.
func New[T constraints.Ordered]() *List[T] {
	return &List[T]{}
}

// Append adds v at the end of the list.
// Complexity: amortized O(1).
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Insert places v at position i, shifting later elements right.
// i == Len() appends. Returns ErrIndexOutOfRange outside [0, Len].
// Complexity: O(n).
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > len(l.items) {
		return ErrIndexOutOfRange
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v

	return nil
}

// RemoveAt deletes and returns the element at position i, shifting
// later elements left. Returns ErrIndexOutOfRange outside [0, Len).
// Complexity: O(n).
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero, ErrIndexOutOfRange
	}
	v := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]

	return v, nil
}

// Get returns the element at position i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	return l.items[i], nil
}

// Set overwrites the element at position i.
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[i] = v

	return nil
}

// IndexOf returns the position of the first occurrence of v, or -1.
// Complexity: O(n).
func (l *List[T]) IndexOf(v T) int {
	for i, x := range l.items {
		if x == v {
			return i
		}
	}

	return -1
}

// Contains reports whether v occurs in the list.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Count returns the number of occurrences of v.
// Complexity: O(n).
func (l *List[T]) Count(v T) int {
	c := 0
	for _, x := range l.items {
		if x == v {
			c++
		}
	}

	return c
}

// Sort orders the elements ascending, in place.
// Complexity: O(n log n).
func (l *List[T]) Sort() {
	sort.Slice(l.items, func(i, j int) bool { return l.items[i] < l.items[j] })
}

// IsSorted reports whether the elements are in ascending order.
// Complexity: O(n).
func (l *List[T]) IsSorted() bool {
	for i := 1; i < len(l.items); i++ {
		if l.items[i] < l.items[i-1] {
			return false
		}
	}

	return true
}

// Reverse flips the element order in place.
// Complexity: O(n).
func (l *List[T]) Reverse() {
	for i, j := 0, len(l.items)-1; i < j; i, j = i+1, j-1 {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	}
}

// RotateLeft shifts every element k positions toward the front,
// wrapping around. Negative k rotates right. A no-op on lists shorter
// than two elements.
// Complexity: O(n).
func (l *List[T]) RotateLeft(k int) {
	n := len(l.items)
	if n < 2 {
		return
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	rotated := make([]T, 0, n)
	rotated = append(rotated, l.items[k:]...)
	rotated = append(rotated, l.items[:k]...)
	copy(l.items, rotated)
}

// Min returns the smallest element. Returns ErrEmpty on an empty list.
// Complexity: O(n).
func (l *List[T]) Min() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	best := l.items[0]
	for _, x := range l.items[1:] {
		if x < best {
			best = x
		}
	}

	return best, nil
}

// Max returns the largest element. Returns ErrEmpty on an empty list.
// Complexity: O(n).
func (l *List[T]) Max() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	best := l.items[0]
	for _, x := range l.items[1:] {
		if x > best {
			best = x
		}
	}

	return best, nil
}

// Len reports the number of elements currently stored.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// Clear removes all elements, keeping the allocated capacity.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// ToSlice returns the elements front-to-back as a fresh slice.
func (l *List[T]) ToSlice() []T {
	return append([]T(nil), l.items...)
}
