package represent

import (
	"fmt"

	"github.com/katalvlaran/partbench/parts"
)

// Bundle holds the canonical map and whichever derived representations were
// requested. Fields for representations that were not built stay nil/zero.
// A Bundle is read-only once built; repeated trials reuse it.
type Bundle struct {
	Parts   parts.PartMap
	Sets    SetPartMap
	Frozen  FrozenCollection
	Roaring RoaringPartMap
	Bitsets BitsetPartMap

	built map[Kind]bool
}

// Build derives the requested representations from pm. KindSequence is
// always available since it is pm itself. Unknown kinds are ignored.
func Build(pm parts.PartMap, kinds ...Kind) *Bundle {
	b := &Bundle{Parts: pm, built: map[Kind]bool{KindSequence: true}}
	for _, k := range kinds {
		if b.built[k] {
			continue
		}
		switch k {
		case KindSets:
			b.Sets = BuildSets(pm)
		case KindFrozen:
			b.Frozen = BuildFrozen(pm)
		case KindRoaring:
			b.Roaring = BuildRoaring(pm)
		case KindBitsets:
			b.Bitsets = BuildBitsets(pm)
		default:
			continue
		}
		b.built[k] = true
	}

	return b
}

// Has reports whether representation k was built.
func (b *Bundle) Has(k Kind) bool { return b.built[k] }

// Size returns the approximate footprint of representation k.
func (b *Bundle) Size(k Kind) (int64, error) {
	if !b.Has(k) {
		return 0, fmt.Errorf("%s: %w", k, ErrNotBuilt)
	}
	switch k {
	case KindSets:
		return SizeOfSets(b.Sets), nil
	case KindFrozen:
		return SizeOfFrozen(b.Frozen), nil
	case KindRoaring:
		return SizeOfRoaring(b.Roaring), nil
	case KindBitsets:
		return SizeOfBitsets(b.Bitsets), nil
	default:
		return SizeOfSequence(b.Parts), nil
	}
}
