package order

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned for a Strategy value or name outside the
// supported set.
var ErrUnknownStrategy = errors.New("unknown sort strategy")

// Strategy selects the algorithm OrderWith uses to build the permutation.
// All strategies satisfy the same contract; they differ in cost profile and
// in whether equal keys keep their input order.
type Strategy int

const (
	// Auto picks QuickSort3Way.
	Auto Strategy = iota
	QuickSort
	QuickSort3Way
	Insertion
	ShellCiura
	ShellSedgewick
	ShellTokuda
	// Merge is the stable strategy for callers that need ties in input order.
	Merge

	numStrategies
)

var strategyNames = [numStrategies]string{
	Auto:           "auto",
	QuickSort:      "quicksort",
	QuickSort3Way:  "quicksort3",
	Insertion:      "insertion",
	ShellCiura:     "shell-ciura",
	ShellSedgewick: "shell-sedgewick",
	ShellTokuda:    "shell-tokuda",
	Merge:          "merge",
}

// Strategies returns every supported strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, numStrategies)
	for s := Auto; s < numStrategies; s++ {
		out = append(out, s)
	}
	return out
}

// ParseStrategy maps a strategy name, as returned by String, back to its
// value. Names are case-sensitive.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool { return s >= Auto && s < numStrategies }

// IsStable reports whether s keeps equal values in ascending index order.
// Auto is not stable because it resolves to QuickSort3Way.
func (s Strategy) IsStable() bool { return s == Insertion || s == Merge }

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(strategyNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
