package rank

import (
	"fmt"

	"pgregory.net/rand"

	"fastrank-go/internal/order"
)

// Resolve turns a sorting permutation of values into ranks, in the original
// order of values. perm must satisfy order.IsOrdered(values, perm). A nil rnd
// with the Random policy draws from a freshly seeded generator.
func Resolve[T order.Number](values []T, perm []int, ties TiePolicy, rnd *rand.Rand) ([]float64, error) {
	if !ties.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(ties))
	}
	n := len(values)
	if len(perm) != n {
		return nil, fmt.Errorf("%w: %d values, %d indices", ErrLengthMismatch, n, len(perm))
	}
	ranks := make([]float64, n)
	if n == 0 {
		return ranks, nil
	}
	if ties == Random && rnd == nil {
		rnd = rand.New()
	}

	r := resolver{ranks: ranks, perm: perm, ties: ties, rnd: rnd}
	b := values[perm[0]]
	ib := 0
	for i := 1; i < n; i++ {
		if values[perm[i]] != b {
			r.closeRun(ib, i)
			b = values[perm[i]]
			ib = i
		}
	}
	r.closeRun(ib, n) // trailing run
	return ranks, nil
}

type resolver struct {
	ranks []float64
	perm  []int
	ties  TiePolicy
	rnd   *rand.Rand
}

// closeRun ranks perm[ib:i], whose natural ranks are ib+1..i.
func (r *resolver) closeRun(ib, i int) {
	if ib == i-1 {
		r.ranks[r.perm[ib]] = float64(i)
		return
	}
	switch r.ties {
	case Average:
		r.fill(ib, i, float64(i-1+ib+2)/2)
	case Min:
		r.fill(ib, i, float64(ib+1))
	case Max:
		r.fill(ib, i, float64(i))
	case First:
		for j := ib; j < i; j++ {
			r.ranks[r.perm[j]] = float64(j + 1)
		}
	case Random:
		for j := ib; j < i; j++ {
			r.ranks[r.perm[j]] = float64(j + 1)
		}
		// Fisher-Yates over the run's members
		for k := i - ib - 1; k > 0; k-- {
			s := r.rnd.Intn(k + 1)
			a, b := r.perm[ib+k], r.perm[ib+s]
			r.ranks[a], r.ranks[b] = r.ranks[b], r.ranks[a]
		}
	}
}

func (r *resolver) fill(ib, i int, rank float64) {
	for j := ib; j < i; j++ {
		r.ranks[r.perm[j]] = rank
	}
}
