// Package: partbench/represent
//
// size.go - approximate memory footprint of each representation.
//
// The figures are a model, not a measurement:
//
//	sequence  = P·mapEntryBytes + Σ(sliceHeaderBytes + |part|·nodeBytes)
//	sets      = P·mapEntryBytes + Σ(setHeaderBytes + |set|·setEntryBytes)
//	frozen    = sliceHeaderBytes + Σ(frozenHeaderBytes + len(key)
//	            + |set|·(nodeBytes + setEntryBytes))
//	roaring   = P·mapEntryBytes + Σ bitmap.GetSizeInBytes()
//	bitsets   = P·mapEntryBytes + Σ bitset.BinaryStorageSize()
//
// Constants approximate a 64-bit Go runtime: an 8-byte key plus amortized
// bucket, tophash and overflow cost for map entries.

package represent

import "github.com/katalvlaran/partbench/parts"

const (
	nodeBytes         = 8  // one NodeID
	sliceHeaderBytes  = 24 // ptr, len, cap
	mapEntryBytes     = 48 // key + value header + amortized bucket overhead
	setHeaderBytes    = 64 // interface value + map header of the set
	setEntryBytes     = 16 // map[NodeID]struct{} entry, amortized
	frozenHeaderBytes = 72 // key string header + nodes slice + members map header
)

// SizeOfSequence approximates the canonical map of node slices.
func SizeOfSequence(pm parts.PartMap) int64 {
	size := int64(len(pm)) * mapEntryBytes
	for _, nodes := range pm {
		size += sliceHeaderBytes + int64(len(nodes))*nodeBytes
	}

	return size
}

// SizeOfSets approximates a SetPartMap.
func SizeOfSets(s SetPartMap) int64 {
	size := int64(len(s)) * mapEntryBytes
	for _, set := range s {
		size += setHeaderBytes + int64(set.Cardinality())*setEntryBytes
	}

	return size
}

// SizeOfFrozen approximates a FrozenCollection.
func SizeOfFrozen(c FrozenCollection) int64 {
	size := int64(sliceHeaderBytes)
	for _, fs := range c.sets {
		size += frozenHeaderBytes + int64(len(fs.key)) + int64(fs.Len())*(nodeBytes+setEntryBytes)
	}

	return size
}

// SizeOfRoaring sums the bitmaps' own size estimates.
func SizeOfRoaring(m RoaringPartMap) int64 {
	size := int64(len(m)) * mapEntryBytes
	for _, bm := range m {
		size += int64(bm.GetSizeInBytes())
	}

	return size
}

// SizeOfBitsets sums the bitsets' storage sizes.
func SizeOfBitsets(m BitsetPartMap) int64 {
	size := int64(len(m)) * mapEntryBytes
	for _, bs := range m {
		size += int64(bs.BinaryStorageSize())
	}

	return size
}
