// Package linkedlist implements a generic singly linked list with
// merge sort, rotation, and cycle detection.
package linkedlist

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors reported by list accessors.
var (
	// ErrEmpty is returned by PopFront and Middle on an empty list.
	ErrEmpty = errors.New("linkedlist: empty list")

	// ErrIndexOutOfRange is returned by NthFromEnd for a position
	// outside [1, Len].
	ErrIndexOutOfRange = errors.New("linkedlist: index out of range")
)

// node is one cell of the chain.
type node[T constraints.Ordered] struct {
	val  T
	next *node[T]
}

// List is a singly linked chain of ordered elements, tracked by head
// pointer and length. The zero value is an empty list ready for use.
type List[T constraints.Ordered] struct {
	head *node[T]
	size int
}

// New returns an empty list.
func New[T constraints.Ordered]() *List[T] {
	return &List[T]{}
}

// PushFront prepends v.
// Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{val: v, next: l.head}
	l.size++
}

// PushBack appends v.
// Complexity: O(n) — the list keeps no tail pointer.
func (l *List[T]) PushBack(v T) {
	nn := &node[T]{val: v}
	l.size++
	if l.head == nil {
		l.head = nn

		return
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = nn
}

// PopFront removes and returns the first element.
// Returns ErrEmpty on an empty list.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	v := l.head.val
	l.head = l.head.next
	l.size--

	return v, nil
}

// InsertSorted places v before the first element greater than it,
// keeping an ascending list ascending.
// Complexity: O(n).
func (l *List[T]) InsertSorted(v T) {
	l.size++
	if l.head == nil || v <= l.head.val {
		l.head = &node[T]{val: v, next: l.head}

		return
	}
	cur := l.head
	for cur.next != nil && cur.next.val < v {
		cur = cur.next
	}
	cur.next = &node[T]{val: v, next: cur.next}
}

// Remove deletes the first occurrence of v and reports whether one was
// found.
// Complexity: O(n).
func (l *List[T]) Remove(v T) bool {
	if l.head == nil {
		return false
	}
	if l.head.val == v {
		l.head = l.head.next
		l.size--

		return true
	}
	for cur := l.head; cur.next != nil; cur = cur.next {
		if cur.next.val == v {
			cur.next = cur.next.next
			l.size--

			return true
		}
	}

	return false
}

// Reverse flips the chain in place by re-pointing every link.
// Complexity: O(n).
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// Sort orders the elements ascending with a top-down merge sort: split
// at the middle via slow/fast pointers, sort each half, splice the
// sorted halves back together. Stable.
// Complexity: O(n log n) time, O(log n) stack.
func (l *List[T]) Sort() {
	l.head = mergeSort(l.head)
}

// mergeSort recursively splits and merges the chain headed by h.
func mergeSort[T constraints.Ordered](h *node[T]) *node[T] {
	if h == nil || h.next == nil {
		return h
	}

	// 1. Cut at the middle: slow lands on the last node of the left half
	slow, fast := h, h.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil

	// 2. Sort halves, then merge
	return mergeSorted(mergeSort(h), mergeSort(right))
}

// mergeSorted splices two ascending chains into one, left-biased on
// ties so the sort stays stable.
func mergeSorted[T constraints.Ordered](a, b *node[T]) *node[T] {
	var dummy node[T]
	tail := &dummy
	for a != nil && b != nil {
		if b.val < a.val {
			tail.next = b
			b = b.next
		} else {
			tail.next = a
			a = a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

// Middle returns the middle element; for an even length the second of
// the two middles. Returns ErrEmpty on an empty list.
// Complexity: O(n).
func (l *List[T]) Middle() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	return slow.val, nil
}

// NthFromEnd returns the n-th element counted from the back; n == 1 is
// the last element. Returns ErrIndexOutOfRange for n outside [1, Len].
// Complexity: O(n), single pass with two offset cursors.
func (l *List[T]) NthFromEnd(n int) (T, error) {
	var zero T
	if n < 1 || n > l.size {
		return zero, ErrIndexOutOfRange
	}

	// lead runs n nodes ahead; when it falls off, trail is n from the end
	lead := l.head
	for i := 0; i < n; i++ {
		lead = lead.next
	}
	trail := l.head
	for lead != nil {
		lead = lead.next
		trail = trail.next
	}

	return trail.val, nil
}

// Rotate shifts every element k positions toward the front, wrapping
// the cut prefix onto the back. Negative k rotates the other way.
// A no-op on lists shorter than two elements.
// Complexity: O(n).
func (l *List[T]) Rotate(k int) {
	if l.size < 2 {
		return
	}
	k = ((k % l.size) + l.size) % l.size
	if k == 0 {
		return
	}

	// 1. Find the node before the cut point
	prev := l.head
	for i := 1; i < k; i++ {
		prev = prev.next
	}
	newHead := prev.next
	prev.next = nil

	// 2. Append the old prefix after the remainder
	cur := newHead
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = l.head
	l.head = newHead
}

// Unique collapses runs of equal adjacent elements into one, the
// classic dedupe for sorted lists.
// Complexity: O(n).
func (l *List[T]) Unique() {
	for cur := l.head; cur != nil && cur.next != nil; {
		if cur.next.val == cur.val {
			cur.next = cur.next.next
			l.size--
		} else {
			cur = cur.next
		}
	}
}

// HasCycle reports whether following next links ever loops back,
// using Floyd's slow/fast cursors. Lists built through the public API
// are always acyclic; the check exists for chains spliced by hand.
// Complexity: O(n) time, O(1) memory.
func (l *List[T]) HasCycle() bool {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return true
		}
	}

	return false
}

// Len reports the number of elements currently stored.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops the whole chain.
func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
}

// ToSlice returns the elements front-to-back as a fresh slice.
// Complexity: O(n).
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.val)
	}

	return out
}
