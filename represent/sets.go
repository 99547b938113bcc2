package represent

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/partbench/parts"
)

// SetPartMap maps each part to the deduplicated set of its nodes.
type SetPartMap map[parts.PartID]mapset.Set[parts.NodeID]

// BuildSets converts every node sequence of pm to a hash set.
// Sets are thread-unsafe; callers must not share them across goroutines.
// Complexity: O(Σ|part|).
func BuildSets(pm parts.PartMap) SetPartMap {
	out := make(SetPartMap, len(pm))
	for id, nodes := range pm {
		out[id] = mapset.NewThreadUnsafeSet[parts.NodeID](nodes...)
	}

	return out
}

// IDs returns the part ids in ascending order.
func (s SetPartMap) IDs() []parts.PartID {
	ids := make([]parts.PartID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}

	return sortIDs(ids)
}
