package order

// quickSort sorts perm by values with a two-way Hoare partition around the
// middle element.
func quickSort[T Number](values []T, perm []int, depth int) {
	for len(perm) > InsertionCutoff {
		if depth == 0 {
			heapSort(values, perm)
			return
		}
		depth--
		m := partitionHoare(values, perm)
		if m < len(perm)-m {
			quickSort(values, perm[:m], depth)
			perm = perm[m:]
		} else {
			quickSort(values, perm[m:], depth)
			perm = perm[:m]
		}
	}
	insertionSort(values, perm)
}

// partitionHoare returns m with 0 < m < len(perm) such that every value in
// perm[:m] is <= pivot and every value in perm[m:] is >= pivot.
func partitionHoare[T Number](values []T, perm []int) int {
	p := values[perm[len(perm)/2]]
	i, j := 0, len(perm)-1
	for {
		for values[perm[i]] < p {
			i++
		}
		for p < values[perm[j]] {
			j--
		}
		if i >= j {
			return i
		}
		perm[i], perm[j] = perm[j], perm[i]
		i++
		j--
	}
}

// quickSort3Way sorts perm by values, collapsing each pivot's equal run in
// one pass.
func quickSort3Way[T Number](values []T, perm []int, depth int) {
	for len(perm) > InsertionCutoff {
		if depth == 0 {
			heapSort(values, perm)
			return
		}
		depth--
		lt, gt := partition3Way(values, perm)
		if lt < len(perm)-gt {
			quickSort3Way(values, perm[:lt], depth)
			perm = perm[gt:]
		} else {
			quickSort3Way(values, perm[gt:], depth)
			perm = perm[:lt]
		}
	}
	insertionSort(values, perm)
}

// partition3Way returns (lt, gt) where:
//   - values of perm[:lt] < pivot
//   - values of perm[lt:gt] == pivot
//   - values of perm[gt:] > pivot
func partition3Way[T Number](values []T, perm []int) (int, int) {
	pivot := medianOf3(values, perm)
	lt, i, gt := 0, 0, len(perm)
	for i < gt {
		v := values[perm[i]]
		if v < pivot {
			perm[lt], perm[i] = perm[i], perm[lt]
			lt++
			i++
		} else if v > pivot {
			gt--
			perm[i], perm[gt] = perm[gt], perm[i]
		} else {
			i++
		}
	}
	return lt, gt
}

func medianOf3[T Number](values []T, perm []int) T {
	n := len(perm)
	a, b, c := values[perm[0]], values[perm[n/2]], values[perm[n-1]]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}

func heapSort[T Number](values []T, perm []int) {
	n := len(perm)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(values, perm, i, n)
	}
	for i := n - 1; i > 0; i-- {
		perm[0], perm[i] = perm[i], perm[0]
		siftDown(values, perm, 0, i)
	}
}

func siftDown[T Number](values []T, perm []int, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && values[perm[left]] > values[perm[largest]] {
			largest = left
		}
		if right < n && values[perm[right]] > values[perm[largest]] {
			largest = right
		}
		if largest == i {
			return
		}
		perm[i], perm[largest] = perm[largest], perm[i]
		i = largest
	}
}
