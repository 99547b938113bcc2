package intersect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/partbench/represent"
)

// ErrUnknownStrategy is returned for names or values outside the Strategy enum.
var ErrUnknownStrategy = errors.New("intersect: unknown strategy")

// Strategy selects an intersection algorithm.
type Strategy int

const (
	// Sequence scans node slices linearly.
	Sequence Strategy = iota
	// Set looks nodes up in hash sets.
	Set
	// Frozen walks the collection of distinct frozen node sets.
	Frozen
	// Roaring intersects compressed bitmaps.
	Roaring
	// Bitset intersects dense bitsets.
	Bitset
)

var strategyNames = [...]string{
	Sequence: "sequence",
	Set:      "set",
	Frozen:   "frozen",
	Roaring:  "roaring",
	Bitset:   "bitset",
}

// All lists every strategy in enum order.
func All() []Strategy {
	return []Strategy{Sequence, Set, Frozen, Roaring, Bitset}
}

// String returns the strategy's canonical name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// TestName is the benchmark name reported for s.
func (s Strategy) TestName() string {
	return s.String() + "_intersection_test"
}

// Representation returns the representation s reads.
func (s Strategy) Representation() represent.Kind {
	switch s {
	case Set:
		return represent.KindSets
	case Frozen:
		return represent.KindFrozen
	case Roaring:
		return represent.KindRoaring
	case Bitset:
		return represent.KindBitsets
	default:
		return represent.KindSequence
	}
}

// ParseStrategy maps a case-insensitive name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range strategyNames {
		if s == n {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// ParseStrategies parses a list of names, dropping duplicates while keeping
// first-seen order. An empty list yields All().
func ParseStrategies(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return All(), nil
	}
	seen := make(map[Strategy]bool, len(names))
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	return out, nil
}
