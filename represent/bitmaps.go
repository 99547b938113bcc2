package represent

import (
	"github.com/RoaringBitmap/roaring/roaring64"
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/partbench/parts"
)

// MaxBitsetNode is the largest node id BitsetPartMap is built for. A dense
// bitset allocates one bit per id up to the part's maximum, so ids beyond
// this bound make the representation impractical.
const MaxBitsetNode parts.NodeID = 1 << 24

// RoaringPartMap maps each part to a compressed bitmap of its nodes.
type RoaringPartMap map[parts.PartID]*roaring64.Bitmap

// BitsetPartMap maps each part to a dense bitset of its nodes.
type BitsetPartMap map[parts.PartID]*bitset.BitSet

// BuildRoaring converts every part to a run-optimized roaring bitmap.
// Node ids are non-negative, so the uint64 conversion is lossless.
func BuildRoaring(pm parts.PartMap) RoaringPartMap {
	out := make(RoaringPartMap, len(pm))
	for id, nodes := range pm {
		bm := roaring64.New()
		for _, n := range nodes {
			bm.Add(uint64(n))
		}
		bm.RunOptimize()
		out[id] = bm
	}

	return out
}

// BuildBitsets converts every part to a bitset sized to its largest node.
// Callers check pm.MaxNode() against MaxBitsetNode first.
func BuildBitsets(pm parts.PartMap) BitsetPartMap {
	out := make(BitsetPartMap, len(pm))
	for id, nodes := range pm {
		var max parts.NodeID
		for _, n := range nodes {
			if n > max {
				max = n
			}
		}
		bs := bitset.New(uint(max) + 1)
		for _, n := range nodes {
			bs.Set(uint(n))
		}
		out[id] = bs
	}

	return out
}

// IDs returns the part ids in ascending order.
func (m RoaringPartMap) IDs() []parts.PartID {
	ids := make([]parts.PartID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}

	return sortIDs(ids)
}

// IDs returns the part ids in ascending order.
func (m BitsetPartMap) IDs() []parts.PartID {
	ids := make([]parts.PartID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}

	return sortIDs(ids)
}
