package represent

import "fmt"

// Kind names one concrete representation of the part → nodes data.
type Kind int

const (
	// KindSequence is the canonical map of node slices.
	KindSequence Kind = iota
	// KindSets is SetPartMap.
	KindSets
	// KindFrozen is FrozenCollection.
	KindFrozen
	// KindRoaring is RoaringPartMap.
	KindRoaring
	// KindBitsets is BitsetPartMap.
	KindBitsets
)

// Container and element labels used in benchmark descriptors.
const (
	ContainerPartMap  = "map[PartID]"
	ContainerFrozen   = "[]FrozenSet"
	ElementSequence   = "[]NodeID"
	ElementSet        = "mapset.Set[NodeID]"
	ElementFrozen     = "FrozenSet"
	ElementRoaring    = "*roaring64.Bitmap"
	ElementBitset     = "*bitset.BitSet"
	containerUnknown  = "unknown"
	elementUnknownFmt = "Kind(%d)"
)

// String returns a short lowercase name.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindSets:
		return "sets"
	case KindFrozen:
		return "frozen"
	case KindRoaring:
		return "roaring"
	case KindBitsets:
		return "bitsets"
	default:
		return fmt.Sprintf(elementUnknownFmt, int(k))
	}
}

// Labels returns the (container, element) descriptor labels for k.
func (k Kind) Labels() (container, element string) {
	switch k {
	case KindSequence:
		return ContainerPartMap, ElementSequence
	case KindSets:
		return ContainerPartMap, ElementSet
	case KindFrozen:
		return ContainerFrozen, ElementFrozen
	case KindRoaring:
		return ContainerPartMap, ElementRoaring
	case KindBitsets:
		return ContainerPartMap, ElementBitset
	default:
		return containerUnknown, fmt.Sprintf(elementUnknownFmt, int(k))
	}
}
