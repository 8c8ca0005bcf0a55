package order

import "math"

// ciuraBase is Ciura's empirically tuned sequence; beyond it gaps grow by
// a factor of 2.25.
var ciuraBase = [...]int{1, 4, 10, 23, 57, 132, 301, 701}

// ciuraGaps returns the ascending Ciura gaps smaller than n.
func ciuraGaps(n int) []int {
	gaps := []int{1}
	for _, g := range ciuraBase[1:] {
		if g >= n {
			return gaps
		}
		gaps = append(gaps, g)
	}
	for g := int(float64(gaps[len(gaps)-1]) * 2.25); g < n; g = int(float64(g) * 2.25) {
		gaps = append(gaps, g)
	}
	return gaps
}

// sedgewickGaps returns Sedgewick's 1986 gaps 1, 4^k + 3*2^(k-1) + 1
// smaller than n.
func sedgewickGaps(n int) []int {
	gaps := []int{1}
	for k := 1; k < 16; k++ {
		g := 1<<(2*k) + 3<<(k-1) + 1
		if g >= n {
			break
		}
		gaps = append(gaps, g)
	}
	return gaps
}

// tokudaGaps returns Tokuda's gaps ceil((9*(9/4)^k - 4) / 5) smaller than n.
func tokudaGaps(n int) []int {
	gaps := []int{1}
	for k := 1; ; k++ {
		g := int(math.Ceil((9*math.Pow(2.25, float64(k)) - 4) / 5))
		if g >= n {
			return gaps
		}
		gaps = append(gaps, g)
	}
}
