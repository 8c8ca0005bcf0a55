package order

// insertionSort is a stable insertion sort over the index array.
func insertionSort[T Number](values []T, perm []int) {
	for i := 1; i < len(perm); i++ {
		it := perm[i]
		j := i
		for ; j > 0 && values[it] < values[perm[j-1]]; j-- {
			perm[j] = perm[j-1]
		}
		perm[j] = it
	}
}

// shellSort runs one gapped insertion pass per gap, largest gap first.
// gaps must be ascending and start with 1.
func shellSort[T Number](values []T, perm []int, gaps []int) {
	for g := len(gaps) - 1; g >= 0; g-- {
		gap := gaps[g]
		for i := gap; i < len(perm); i++ {
			it := perm[i]
			j := i
			for ; j >= gap && values[it] < values[perm[j-gap]]; j -= gap {
				perm[j] = perm[j-gap]
			}
			perm[j] = it
		}
	}
}

// mergeBlock is the run length insertion-sorted before merging starts.
const mergeBlock = 8

// mergeSort is a stable bottom-up merge sort. It allocates one scratch
// index buffer of len(perm).
func mergeSort[T Number](values []T, perm []int) {
	n := len(perm)
	for a := 0; a < n; a += mergeBlock {
		insertionSort(values, perm[a:min(a+mergeBlock, n)])
	}
	if n <= mergeBlock {
		return
	}

	src, dst := perm, make([]int, n)
	inScratch := false
	for width := mergeBlock; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			merge(values, src[lo:mid], src[mid:hi], dst[lo:hi])
		}
		src, dst = dst, src
		inScratch = !inScratch
	}
	if inScratch {
		copy(perm, src)
	}
}

// merge writes the stable merge of left and right into out. Ties take from
// left first.
func merge[T Number](values []T, left, right, out []int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if values[right[j]] < values[left[i]] {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	k += copy(out[k:], left[i:])
	copy(out[k:], right[j:])
}
