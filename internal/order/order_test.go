package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
	"pgregory.net/rand"
	"pgregory.net/rapid"
)

// patterns returns inputs that stress partition-based sorts.
func patterns(n int, rnd *rand.Rand) map[string][]int64 {
	random := make([]int64, n)
	dups := make([]int64, n)
	sorted := make([]int64, n)
	reverse := make([]int64, n)
	same := make([]int64, n)
	organ := make([]int64, n)
	for i := 0; i < n; i++ {
		random[i] = int64(rnd.Uint64n(1 << 40))
		dups[i] = int64(rnd.Intn(4))
		sorted[i] = int64(i)
		reverse[i] = int64(n - i)
		same[i] = 7
		organ[i] = int64(min(i, n-i))
	}
	return map[string][]int64{
		"random":  random,
		"dups":    dups,
		"sorted":  sorted,
		"reverse": reverse,
		"same":    same,
		"organ":   organ,
	}
}

func TestOrderWithAllStrategies(t *testing.T) {
	rnd := rand.New(1)
	sizes := []int{0, 1, 2, 3, 7, 8, 19, 20, 21, 64, 100, 1000, 5000}
	for _, s := range Strategies() {
		for _, n := range sizes {
			for name, values := range patterns(n, rnd) {
				orig := slices.Clone(values)
				perm, err := OrderWith(values, s)
				require.NoError(t, err)
				require.True(t, IsOrdered(values, perm), "%s n=%d %s", s, n, name)
				require.Equal(t, orig, values, "%s must not mutate input", s)
			}
		}
	}
}

func TestOrderEmptyAndSingle(t *testing.T) {
	perm := Order([]float64{})
	require.NotNil(t, perm)
	require.Empty(t, perm)

	perm = Order[float64](nil)
	require.Empty(t, perm)

	require.Equal(t, []int{0}, Order([]float64{42}))
}

func TestOrderSmallExample(t *testing.T) {
	perm := Order([]float64{3, 1, 2, 1})
	require.Len(t, perm, 4)
	require.ElementsMatch(t, []int{1, 3}, perm[:2])
	require.Equal(t, []int{2, 0}, perm[2:])
}

func TestOrderStableStrategiesKeepTieOrder(t *testing.T) {
	rnd := rand.New(2)
	for _, s := range []Strategy{Insertion, Merge} {
		require.True(t, s.IsStable())
		for _, n := range []int{2, 9, 17, 100, 1234} {
			values := make([]int, n)
			for i := range values {
				values[i] = rnd.Intn(5)
			}
			perm, err := OrderWith(values, s)
			require.NoError(t, err)
			for k := 1; k < n; k++ {
				if values[perm[k]] == values[perm[k-1]] {
					require.Less(t, perm[k-1], perm[k], "%s n=%d", s, n)
				}
			}
		}
	}
}

func TestOrderUnknownStrategy(t *testing.T) {
	_, err := OrderWith([]int{1, 2}, Strategy(99))
	require.True(t, errors.Is(err, ErrUnknownStrategy))

	_, err = OrderWith([]int{1, 2}, Strategy(-1))
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	_, err := ParseStrategy("Merge")
	require.ErrorIs(t, err, ErrUnknownStrategy)
	_, err = ParseStrategy("bogosort")
	require.ErrorIs(t, err, ErrUnknownStrategy)
	require.Equal(t, "Strategy(42)", Strategy(42).String())

	var s Strategy
	require.NoError(t, s.UnmarshalText([]byte("shell-tokuda")))
	require.Equal(t, ShellTokuda, s)
	require.Error(t, s.UnmarshalText([]byte("nope")))
}

func TestOrderAdversarialDepth(t *testing.T) {
	// median-of-3 killer style input: the depth cap must still terminate
	// with a sorted permutation
	n := 1 << 14
	values := make([]int32, n)
	for i := range values {
		if i%2 == 0 {
			values[i] = int32(i)
		} else {
			values[i] = int32(n - i)
		}
	}
	for _, s := range []Strategy{QuickSort, QuickSort3Way} {
		perm, err := OrderWith(values, s)
		require.NoError(t, err)
		require.True(t, IsOrdered(values, perm))
	}
}

func TestHeapSortFallback(t *testing.T) {
	values := []float32{5, -1, 3, 3, 0, 9, 2, 2, 2, 8, -7}
	perm := identity(len(values))
	quickSort3Way(values, perm, 0)
	require.True(t, IsOrdered(values, perm))

	perm = identity(len(values))
	heapSort(values, perm)
	require.True(t, IsOrdered(values, perm))
}

func TestGapSequences(t *testing.T) {
	require.Equal(t, []int{1, 4, 10, 23, 57, 132, 301, 701, 1577}, ciuraGaps(2000))
	require.Equal(t, []int{1, 8, 23, 77, 281, 1073}, sedgewickGaps(4000))
	require.Equal(t, []int{1, 4, 9, 20, 46, 103, 233, 525, 1182}, tokudaGaps(2000))
	for _, gaps := range [][]int{ciuraGaps(1), sedgewickGaps(1), tokudaGaps(1)} {
		require.Equal(t, []int{1}, gaps)
	}
}

func TestMaxDepth(t *testing.T) {
	require.Equal(t, 0, maxDepth(0))
	require.Equal(t, 2, maxDepth(1))
	require.Equal(t, 4, maxDepth(2))
	require.Equal(t, 22, maxDepth(1500))
}

func TestIsOrdered(t *testing.T) {
	values := []int{2, 1, 3}
	require.True(t, IsOrdered(values, []int{1, 0, 2}))
	require.False(t, IsOrdered(values, []int{0, 1, 2}))
	require.False(t, IsOrdered(values, []int{1, 1, 2}))
	require.False(t, IsOrdered(values, []int{1, 0}))
	require.False(t, IsOrdered(values, []int{1, 0, 5}))
}

func TestOrderProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), 0, 500).Draw(t, "values")
		// fold onto a small grid to get plenty of ties
		if rapid.Bool().Draw(t, "coarse") {
			for i := range values {
				values[i] = float64(int64(values[i]) % 13)
			}
		}
		s := rapid.SampledFrom(Strategies()).Draw(t, "strategy")
		orig := slices.Clone(values)

		perm, err := OrderWith(values, s)
		require.NoError(t, err)
		require.True(t, IsOrdered(values, perm))
		require.Equal(t, orig, values)

		sorted := slices.Clone(values)
		slices.Sort(sorted)
		for k, ix := range perm {
			require.Equal(t, sorted[k], values[ix])
		}
	})
}
