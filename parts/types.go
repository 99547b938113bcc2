package parts

import "sort"

// NodeID identifies an atomic element that may belong to many parts.
type NodeID int64

// PartID identifies a group of nodes; unique within a PartMap.
type PartID int64

// PartMap maps each part to its ordered node sequence. Duplicates inside a
// part are preserved exactly as read or generated.
type PartMap map[PartID][]NodeID

// IDs returns the part ids in ascending order.
// Complexity: O(P log P).
func (pm PartMap) IDs() []PartID {
	ids := make([]PartID, 0, len(pm))
	for id := range pm {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the total number of node entries over all parts,
// duplicates included.
func (pm PartMap) NodeCount() int {
	var n int
	for _, nodes := range pm {
		n += len(nodes)
	}

	return n
}

// MaxNode returns the largest node id present, or 0 for an empty map.
func (pm PartMap) MaxNode() NodeID {
	var max NodeID
	for _, nodes := range pm {
		for _, n := range nodes {
			if n > max {
				max = n
			}
		}
	}

	return max
}

// Clone returns a deep copy; the copy shares no slices with pm.
func (pm PartMap) Clone() PartMap {
	out := make(PartMap, len(pm))
	for id, nodes := range pm {
		out[id] = append([]NodeID(nil), nodes...)
	}

	return out
}
