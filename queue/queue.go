// Package queue implements a generic growable circular-buffer FIFO.
package queue

import "errors"

// initialCap is the buffer size allocated by New before any growth.
const initialCap = 4

// ErrEmpty is returned by Dequeue, Front, and Back on an empty queue.
var ErrEmpty = errors.New("queue: empty queue")

// Queue is a FIFO container over a circular buffer. The zero value is
// not ready for use; construct with New.
type Queue[T any] struct {
	buf  []T
	head int // index of the front element
	tail int // index of the next free slot
	size int
}

// New returns an empty queue with a small pre-allocated buffer.
func New[T any]() *Queue[T] {
	return &Queue[T]{buf: make([]T, initialCap)}
}

// Enqueue appends v at the rear of the queue, growing the buffer if full.
// Complexity: amortized O(1).
func (q *Queue[T]) Enqueue(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.size++
}

// Dequeue removes and returns the front element.
// Returns ErrEmpty on an empty queue.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmpty
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // release the reference
	q.head = (q.head + 1) % len(q.buf)
	q.size--

	return v, nil
}

// Front returns the element at the head without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.buf[q.head], nil
}

// Back returns the most recently enqueued element without removing it.
func (q *Queue[T]) Back() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	// tail points at the next free slot, so the rear element sits one
	// position behind it, modulo the buffer length.
	rear := (q.tail - 1 + len(q.buf)) % len(q.buf)

	return q.buf[rear], nil
}

// Len reports the number of elements currently stored.
func (q *Queue[T]) Len() int { return q.size }

// Cap reports the current buffer capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Clear removes all elements, keeping the current capacity.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.head, q.tail, q.size = 0, 0, 0
}

// ToSlice returns the elements in front-to-rear order as a fresh slice.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}

	return out
}

// grow doubles the buffer and re-linearizes elements to index zero.
func (q *Queue[T]) grow() {
	next := make([]T, 2*len(q.buf))
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
	q.tail = q.size
}
