// Package stack provides a generic LIFO stack backed by a slice.
//
// What:
//
//   - Stack[T]: last-in first-out container with amortized O(1) Push
//     and O(1) Pop, Top, and Bottom.
//   - Positional reads via At (0 is the top), plus Reverse, Swap, and
//     a top-first ToSlice snapshot.
//   - Equal compares two stacks element-wise; it is a free function so
//     the element type only needs comparability when equality is
//     actually asked for.
//
// Why:
//
//   - The push/pop discipline backs parenthesis matching, undo
//     histories, and iterative depth-first traversal.
//   - A slice with the top at the end makes every hot operation a
//     bounds check away from a single index expression.
//
// Complexity:
//
//   - Push:     amortized O(1)
//   - Pop, Top, Bottom, At, Len, IsEmpty, Swap: O(1)
//   - Reverse, ToSlice, Equal: O(n)
//
// Errors:
//
//   - ErrEmpty            Pop, Top, or Bottom on an empty stack
//   - ErrIndexOutOfRange  At with an index outside [0, Len)
//
// Usage:
//
//	s := stack.New[int]()
//	s.Push(1)
//	s.Push(2)
//	v, _ := s.Pop() // 2
//
// Thread safety: None. Synchronize externally for concurrent use.
package stack
