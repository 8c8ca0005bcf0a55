// Package order computes index permutations that sort a slice of numbers
// without moving the numbers themselves.
//
// # Algorithm
//
// Every strategy works on an index array initialised to 0..n-1 and compares
// values through it. The available strategies are:
//   - QuickSort: two-way Hoare partition around the middle element
//   - QuickSort3Way: Dutch national flag partition, the default; equal keys
//     are gathered in one pass and never revisited, so dense duplicate runs
//     cost O(n)
//   - Insertion: insertion sort, stable, used directly for tiny inputs
//   - ShellCiura, ShellSedgewick, ShellTokuda: shellsort over a gap
//     sequence, iterative
//   - Merge: insertion-sorted blocks merged bottom-up, stable
//
// Quicksort variants hand subranges of InsertionCutoff or fewer elements to
// insertion sort. Their recursion is capped at 2*ceil(log2(n+1)) levels,
// after which the remaining subrange is finished with heapsort, and only the
// smaller side of each partition is recursed.
//
// # Example Usage
//
//	perm := order.Order([]float64{3, 1, 2, 1})
//	// perm is [1 3 2 0] or [3 1 2 0]
//
//	perm, err := order.OrderWith(values, order.Merge)
//	// equal values keep their input order
package order
