// Package arraylist provides a generic dynamic array over ordered
// element types.
//
// What:
//
//   - List[T]: slice-backed sequence with positional access (Get, Set,
//     Insert, RemoveAt) and linear search (IndexOf, Contains, Count).
//   - Ordered helpers: Sort, IsSorted, Min, Max — available because
//     the element type is constrained to constraints.Ordered.
//   - Reordering: Reverse and wrapping RotateLeft.
//
// Why:
//
//   - The workhorse sequence type: contiguous storage, cache-friendly
//     scans, amortized O(1) growth.
//   - Constraining to ordered elements lets the extremum and sorting
//     helpers live on the type instead of every call site.
//
// Complexity:
//
//   - Append:                amortized O(1)
//   - Get, Set, Len:         O(1)
//   - Insert, RemoveAt, IndexOf, Min, Max, Reverse, RotateLeft: O(n)
//   - Sort:                  O(n log n)
//
// Errors:
//
//   - ErrEmpty            Min or Max on an empty list
//   - ErrIndexOutOfRange  positional access outside the valid range
//
// Usage:
//
//	l := arraylist.New[int]()
//	l.Append(3)
//	l.Append(1)
//	l.Sort()
//	v, _ := l.Get(0) // 1
//
// Thread safety: None. Synchronize externally for concurrent use.
package arraylist
