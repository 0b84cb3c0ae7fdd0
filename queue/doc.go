// Package queue provides a generic FIFO queue backed by a growable
// circular buffer.
//
// What:
//
//   - Queue[T]: first-in first-out container with amortized O(1)
//     Enqueue and O(1) Dequeue, Front, and Back.
//   - The buffer starts at a small fixed capacity and doubles when
//     full, re-linearizing the elements so the front returns to
//     index zero.
//
// Why:
//
//   - Breadth-first traversal and Kahn's topological sort both consume
//     a FIFO frontier; this queue is their backing store.
//   - A ring layout avoids the O(n) front-removal cost of a bare slice
//     and the per-element allocation of a linked list.
//
// Complexity:
//
//   - Enqueue:  amortized O(1), worst case O(n) on growth
//   - Dequeue:  O(1)
//   - Front, Back, Len, Cap, IsEmpty: O(1)
//   - ToSlice:  O(n)
//
// Errors:
//
//   - ErrEmpty  Dequeue, Front, or Back on an empty queue
//
// Usage:
//
//	q := queue.New[string]()
//	q.Enqueue("a")
//	q.Enqueue("b")
//	v, _ := q.Dequeue() // "a"
//
// Thread safety: None. Synchronize externally for concurrent use.
package queue
