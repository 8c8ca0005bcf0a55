package rank

import (
	"fmt"

	"pgregory.net/rand"

	"fastrank-go/internal/order"
)

// Option configures a single ranking call.
type Option func(*options)

type options struct {
	strategy order.Strategy
	rnd      *rand.Rand
}

// WithStrategy selects the sort strategy. The default, order.Auto, uses the
// three-way quicksort, or the stable merge sort for the First policy.
func WithStrategy(s order.Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithRand sets the generator consumed by the Random policy. Passing a
// seeded generator makes Random reproducible.
func WithRand(rnd *rand.Rand) Option {
	return func(o *options) { o.rnd = rnd }
}

// Rank returns the rank of every element of values, in input order.
// Ranks start at 1; ties are resolved by the given policy.
// values is not modified and must not contain NaN.
func Rank[T order.Number](values []T, ties TiePolicy, opts ...Option) ([]float64, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	strategy, err := strategyFor(ties, o.strategy)
	if err != nil {
		return nil, err
	}
	perm, err := order.OrderWith(values, strategy)
	if err != nil {
		return nil, err
	}
	return Resolve(values, perm, ties, o.rnd)
}

// RankInts is Rank for the policies whose ranks are whole numbers.
func RankInts[T order.Number](values []T, ties TiePolicy, opts ...Option) ([]int, error) {
	if ties == Average {
		return nil, ErrFractionalRanks
	}
	ranks, err := Rank(values, ties, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(ranks))
	for i, r := range ranks {
		out[i] = int(r)
	}
	return out, nil
}

// RankBools ranks booleans as false=0, true=1.
func RankBools(values []bool, ties TiePolicy, opts ...Option) ([]float64, error) {
	ints := make([]uint8, len(values))
	for i, v := range values {
		if v {
			ints[i] = 1
		}
	}
	return Rank(ints, ties, opts...)
}

// RankAny dispatches on the dynamic slice type of values. It accepts slices
// of any integer kind, float32, float64 and bool, and returns
// ErrUnsupportedType for anything else.
func RankAny(values any, ties TiePolicy, opts ...Option) ([]float64, error) {
	switch v := values.(type) {
	case []float64:
		return Rank(v, ties, opts...)
	case []float32:
		return Rank(v, ties, opts...)
	case []int:
		return Rank(v, ties, opts...)
	case []int8:
		return Rank(v, ties, opts...)
	case []int16:
		return Rank(v, ties, opts...)
	case []int32:
		return Rank(v, ties, opts...)
	case []int64:
		return Rank(v, ties, opts...)
	case []uint:
		return Rank(v, ties, opts...)
	case []uint8:
		return Rank(v, ties, opts...)
	case []uint16:
		return Rank(v, ties, opts...)
	case []uint32:
		return Rank(v, ties, opts...)
	case []uint64:
		return Rank(v, ties, opts...)
	case []bool:
		return RankBools(v, ties, opts...)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, values)
}

// Percentiles maps ranks to 0..100, rank 1 being 0.
// percentile = 100 * (rank-1)/(n-1) for n>1, else 100.
func Percentiles(ranks []float64) []float64 {
	n := len(ranks)
	out := make([]float64, n)
	for i, r := range ranks {
		if n > 1 {
			out[i] = 100.0 * (r - 1) / float64(n-1)
		} else {
			out[i] = 100.0
		}
	}
	return out
}

func strategyFor(ties TiePolicy, s order.Strategy) (order.Strategy, error) {
	if !ties.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(ties))
	}
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", order.ErrUnknownStrategy, int(s))
	}
	if ties != First {
		return s, nil
	}
	if s == order.Auto {
		return order.Merge, nil
	}
	if !s.IsStable() {
		return 0, fmt.Errorf("%w: %s", ErrUnstableFirst, s)
	}
	return s, nil
}
