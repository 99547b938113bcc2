// SPDX-License-Identifier: MIT
// Package: partbench/intersect
//
// algorithms.go - the five pairwise strategies.
//
// Shared skeleton (n units in ascending order, finished[] initially false):
//
//	for i := 0..n-1:
//	  for j := 0..n-1:
//	    if i == j || finished[j]: continue
//	    pairs++; if shares(unit[i], unit[j]): hits++
//	  finished[i] = true
//
// Only shares() differs between strategies. The exported *Test functions
// order ids and size the representation on every call; Bind does both once
// so that timed trials cover the sweep alone.
//
// Complexity: O(n²) pair visits times the per-pair cost of shares().

package intersect

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/represent"
	"github.com/katalvlaran/partbench/timing"
)

// sweep runs the finished-once traversal over n units.
func sweep(n int, shares func(i, j int) bool) (pairs, hits int) {
	finished := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || finished[j] {
				continue
			}
			pairs++
			if shares(i, j) {
				hits++
			}
		}
		finished[i] = true
	}

	return pairs, hits
}

// SequenceTest tests every pair of parts by scanning node slices.
func SequenceTest(pm parts.PartMap) Result {
	return sequencePass(pm, pm.IDs(), describe(represent.KindSequence, represent.SizeOfSequence(pm)))
}

func sequencePass(pm parts.PartMap, ids []parts.PartID, desc timing.Descriptor) Result {
	pairs, hits := sweep(len(ids), func(i, j int) bool {
		return slicesShare(pm[ids[i]], pm[ids[j]])
	})

	return Result{Descriptor: desc, Pairs: pairs, IntersectingPairs: hits}
}

// slicesShare reports whether some node of a occurs in b (linear scans).
func slicesShare(a, b []parts.NodeID) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}

	return false
}

// SetTest tests every pair of parts with hash-set membership.
func SetTest(sets represent.SetPartMap) Result {
	return setPass(sets, sets.IDs(), describe(represent.KindSets, represent.SizeOfSets(sets)))
}

func setPass(sets represent.SetPartMap, ids []parts.PartID, desc timing.Descriptor) Result {
	pairs, hits := sweep(len(ids), func(i, j int) bool {
		return setsShare(sets[ids[i]], sets[ids[j]])
	})

	return Result{Descriptor: desc, Pairs: pairs, IntersectingPairs: hits}
}

// setsShare iterates the smaller set and looks each node up in the larger one.
func setsShare(a, b mapset.Set[parts.NodeID]) bool {
	if b.Cardinality() < a.Cardinality() {
		a, b = b, a
	}
	found := false
	a.Each(func(n parts.NodeID) bool {
		found = b.Contains(n)
		return found
	})

	return found
}

// FrozenTest tests every pair of DISTINCT node sets in the collection.
// Parts with identical node sets were collapsed by BuildFrozen and are
// therefore never paired with each other.
func FrozenTest(c represent.FrozenCollection) Result {
	return frozenPass(c, describe(represent.KindFrozen, represent.SizeOfFrozen(c)))
}

func frozenPass(c represent.FrozenCollection, desc timing.Descriptor) Result {
	pairs, hits := sweep(c.Len(), func(i, j int) bool {
		return c.At(i).Intersects(c.At(j))
	})

	return Result{Descriptor: desc, Pairs: pairs, IntersectingPairs: hits}
}

// RoaringTest tests every pair of parts with roaring bitmap intersection.
func RoaringTest(m represent.RoaringPartMap) Result {
	return roaringPass(m, m.IDs(), describe(represent.KindRoaring, represent.SizeOfRoaring(m)))
}

func roaringPass(m represent.RoaringPartMap, ids []parts.PartID, desc timing.Descriptor) Result {
	pairs, hits := sweep(len(ids), func(i, j int) bool {
		return m[ids[i]].Intersects(m[ids[j]])
	})

	return Result{Descriptor: desc, Pairs: pairs, IntersectingPairs: hits}
}

// BitsetTest tests every pair of parts with bitset intersection.
func BitsetTest(m represent.BitsetPartMap) Result {
	return bitsetPass(m, m.IDs(), describe(represent.KindBitsets, represent.SizeOfBitsets(m)))
}

func bitsetPass(m represent.BitsetPartMap, ids []parts.PartID, desc timing.Descriptor) Result {
	pairs, hits := sweep(len(ids), func(i, j int) bool {
		return m[ids[i]].IntersectionCardinality(m[ids[j]]) > 0
	})

	return Result{Descriptor: desc, Pairs: pairs, IntersectingPairs: hits}
}
