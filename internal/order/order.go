package order

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the closed set of element types the engine orders. Values must
// not contain NaN.
type Number interface {
	constraints.Integer | constraints.Float
}

// InsertionCutoff is the subrange length at or below which the quicksort
// variants switch to insertion sort.
const InsertionCutoff = 20

// Order returns the permutation that sorts values ascending, using the
// default strategy. values is not modified.
func Order[T Number](values []T) []int {
	perm := identity(len(values))
	quickSort3Way(values, perm, maxDepth(len(perm)))
	return perm
}

// OrderWith is Order with an explicit strategy.
func OrderWith[T Number](values []T, s Strategy) ([]int, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	perm := identity(len(values))
	if len(perm) < 2 {
		return perm, nil
	}
	switch s {
	case Auto, QuickSort3Way:
		quickSort3Way(values, perm, maxDepth(len(perm)))
	case QuickSort:
		quickSort(values, perm, maxDepth(len(perm)))
	case Insertion:
		insertionSort(values, perm)
	case ShellCiura:
		shellSort(values, perm, ciuraGaps(len(perm)))
	case ShellSedgewick:
		shellSort(values, perm, sedgewickGaps(len(perm)))
	case ShellTokuda:
		shellSort(values, perm, tokudaGaps(len(perm)))
	case Merge:
		mergeSort(values, perm)
	}
	return perm, nil
}

// IsOrdered reports whether perm is a permutation of 0..len(values)-1 that
// visits values in non-decreasing order.
func IsOrdered[T Number](values []T, perm []int) bool {
	if len(perm) != len(values) {
		return false
	}
	seen := make([]bool, len(perm))
	for k, ix := range perm {
		if ix < 0 || ix >= len(perm) || seen[ix] {
			return false
		}
		seen[ix] = true
		if k > 0 && values[ix] < values[perm[k-1]] {
			return false
		}
	}
	return true
}

func identity(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// maxDepth returns 2*ceil(lg(n+1)), the recursion budget before heapsort.
func maxDepth(n int) int {
	var depth int
	for i := n; i > 0; i >>= 1 {
		depth++
	}
	return depth * 2
}
