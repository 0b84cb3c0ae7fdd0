// Package linkedlist provides a generic singly linked list over
// ordered element types.
//
// What:
//
//   - List[T]: head-tracked chain with PushFront, PushBack, PopFront,
//     ordered insertion (InsertSorted), and value removal.
//   - Classic pointer exercises as first-class operations: in-place
//     Reverse, stable merge Sort, slow/fast Middle, two-cursor
//     NthFromEnd, Rotate, sorted-run Unique, and Floyd's HasCycle.
//
// Why:
//
//   - O(1) front insertion and O(1) removal-after-cursor are the
//     structural advantages a slice cannot offer.
//   - Merge sort is the natural list sort: splitting by slow/fast
//     cursors and splicing merges costs no extra element storage.
//
// Complexity:
//
//   - PushFront, PopFront:         O(1)
//   - PushBack, InsertSorted, Remove, Reverse, Middle, NthFromEnd,
//     Rotate, Unique, HasCycle, ToSlice: O(n)
//   - Sort:                        O(n log n)
//
// Errors:
//
//   - ErrEmpty            PopFront or Middle on an empty list
//   - ErrIndexOutOfRange  NthFromEnd outside [1, Len]
//
// Usage:
//
//	l := linkedlist.New[int]()
//	l.PushBack(3)
//	l.PushFront(1)
//	l.InsertSorted(2)
//	fmt.Println(l.ToSlice()) // [1 2 3]
//
// Thread safety: None. Synchronize externally for concurrent use.
package linkedlist
