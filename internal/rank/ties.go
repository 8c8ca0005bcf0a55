// Package rank assigns 1-based statistical ranks to numeric sequences,
// resolving runs of equal values with a caller-selected TiePolicy.
package rank

import (
	"errors"
	"fmt"
)

// TiePolicy is the rule used to rank the members of a run of equal values.
type TiePolicy string

// Supported tie policies. For a tied run occupying natural ranks a..b:
const (
	// Average gives every member (a+b)/2.
	Average TiePolicy = "average"

	// First gives a, a+1, ..., b in input order. Requires a stable sort.
	First TiePolicy = "first"

	// Random gives a..b in an order drawn uniformly at random.
	Random TiePolicy = "random"

	// Max gives every member b.
	Max TiePolicy = "max"

	// Min gives every member a.
	Min TiePolicy = "min"
)

// Policies lists every tie policy.
var Policies = []TiePolicy{Average, First, Random, Max, Min}

// Errors returned by the ranking functions.
var (
	// ErrUnknownPolicy is returned for a tie policy outside Policies.
	ErrUnknownPolicy = errors.New("unknown tie policy")

	// ErrUnsupportedType is returned by RankAny for element types that have
	// no numeric order, such as strings or complex numbers.
	ErrUnsupportedType = errors.New("unsupported element type")

	// ErrUnstableFirst is returned when First is combined with a sort
	// strategy that does not keep equal values in input order.
	ErrUnstableFirst = errors.New("tie policy first requires a stable sort strategy")

	// ErrFractionalRanks is returned when integer ranks are requested with
	// the Average policy.
	ErrFractionalRanks = errors.New("average ranks are fractional")

	// ErrLengthMismatch is returned when a permutation does not match its
	// values.
	ErrLengthMismatch = errors.New("permutation length mismatch")
)

// ParsePolicy maps a case-sensitive keyword to its TiePolicy.
func ParsePolicy(name string) (TiePolicy, error) {
	p := TiePolicy(name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return p, nil
}

// Valid reports whether p is one of Policies.
func (p TiePolicy) Valid() bool {
	switch p {
	case Average, First, Random, Max, Min:
		return true
	}
	return false
}

func (p TiePolicy) String() string { return string(p) }

// Integral reports whether p always produces whole-number ranks.
func (p TiePolicy) Integral() bool { return p.Valid() && p != Average }
