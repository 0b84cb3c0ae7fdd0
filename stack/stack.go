// Package stack implements a generic slice-backed LIFO stack.
package stack

import "errors"

// Sentinel errors reported by stack accessors.
var (
	// ErrEmpty is returned by Pop, Top, and Bottom on an empty stack.
	ErrEmpty = errors.New("stack: empty stack")

	// ErrIndexOutOfRange is returned by At for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("stack: index out of range")
)

// Stack is a LIFO container over a slice; the last element of the
// backing slice is the top. The zero value is ready for use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places v on top of the stack.
// Complexity: amortized O(1).
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// Returns ErrEmpty on an empty stack.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	last := len(s.items) - 1
	v := s.items[last]
	s.items[last] = zero // release the reference
	s.items = s.items[:last]

	return v, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.items[len(s.items)-1], nil
}

// Bottom returns the oldest element, the one pushed first.
func (s *Stack[T]) Bottom() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.items[0], nil
}

// At returns the element i positions below the top; At(0) is the top.
// Returns ErrIndexOutOfRange for an index outside [0, Len).
func (s *Stack[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, ErrIndexOutOfRange
	}

	return s.items[len(s.items)-1-i], nil
}

// Len reports the number of elements currently stored.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear removes all elements, keeping the allocated capacity.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Reverse flips the stack in place: the bottom becomes the top.
// Complexity: O(n).
func (s *Stack[T]) Reverse() {
	for i, j := 0, len(s.items)-1; i < j; i, j = i+1, j-1 {
		s.items[i], s.items[j] = s.items[j], s.items[i]
	}
}

// Swap exchanges the contents of s and other in O(1).
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.items, other.items = other.items, s.items
}

// ToSlice returns the elements top-first as a fresh slice.
// Complexity: O(n).
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, len(s.items))
	for i, v := range s.items {
		out[len(s.items)-1-i] = v
	}

	return out
}

// Equal reports whether a and b hold the same elements in the same
// order. A free function rather than a method so Stack itself stays
// unconstrained by comparability.
func Equal[T comparable](a, b *Stack[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, v := range a.items {
		if b.items[i] != v {
			return false
		}
	}

	return true
}
