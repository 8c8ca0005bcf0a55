package rank

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fastrank-go/internal/order"
)

func TestResolveScattersThroughPermutation(t *testing.T) {
	values := []float64{3, 1, 2, 1}
	perm := []int{1, 3, 2, 0}
	got, err := Resolve(values, perm, Average, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 1.5, 3, 1.5}, got)

	got, err = Resolve(values, perm, First, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 1, 3, 2}, got)

	// First follows the permutation, not the input order
	got, err = Resolve(values, []int{3, 1, 2, 0}, First, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 2, 3, 1}, got)
}

func TestResolveTrailingRun(t *testing.T) {
	values := []int{1, 9, 9, 9}
	perm := order.Order(values)
	for p, want := range map[TiePolicy][]float64{
		Average: {1, 3, 3, 3},
		Min:     {1, 2, 2, 2},
		Max:     {1, 4, 4, 4},
	} {
		got, err := Resolve(values, perm, p, nil)
		require.NoError(t, err)
		require.Equal(t, want, got, "policy %s", p)
	}
}

func TestResolveTrailingSingleton(t *testing.T) {
	values := []int{4, 4, 8}
	got, err := Resolve(values, order.Order(values), Max, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2, 3}, got)
}
