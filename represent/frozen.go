// SPDX-License-Identifier: MIT
// Package: partbench/represent
//
// frozen.go - set-of-sets representation.
//
// Model:
//   • FrozenSet is an immutable node set: sorted distinct nodes, a mapset
//     index for membership, and a canonical key (decimal ids joined by ',').
//   • FrozenCollection stores distinct FrozenSets keyed by that canonical key,
//     ordered by key for deterministic traversal.
//   • Two parts with equal node sets (after deduplication) map to the same key
//     and collapse into one element. PartIDs are not retained.
//
// Complexity: O(Σ|part| log |part|) to build; O(1) expected Contains.

package represent

import (
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/partbench/parts"
)

// FrozenSet is an immutable set of nodes. The zero value is the empty set.
type FrozenSet struct {
	key     string
	nodes   []parts.NodeID
	members mapset.Set[parts.NodeID]
}

// NewFrozenSet builds a FrozenSet from any node sequence; duplicates collapse.
func NewFrozenSet(nodes []parts.NodeID) FrozenSet {
	uniq := sortedUnique(nodes)

	var sb strings.Builder
	for i, n := range uniq {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(n), 10))
	}

	return FrozenSet{
		key:     sb.String(),
		nodes:   uniq,
		members: mapset.NewThreadUnsafeSet[parts.NodeID](uniq...),
	}
}

// Key is the canonical identity of the set; equal sets share a key.
func (s FrozenSet) Key() string { return s.key }

// Len returns the number of distinct nodes.
func (s FrozenSet) Len() int { return len(s.nodes) }

// Contains reports membership of n.
func (s FrozenSet) Contains(n parts.NodeID) bool {
	return s.members != nil && s.members.Contains(n)
}

// Nodes returns a copy of the nodes in ascending order.
func (s FrozenSet) Nodes() []parts.NodeID {
	return append([]parts.NodeID(nil), s.nodes...)
}

// Intersects reports whether s and o share at least one node, iterating the
// smaller set and stopping at the first shared element.
func (s FrozenSet) Intersects(o FrozenSet) bool {
	if s.members == nil || o.members == nil {
		return false
	}
	small, large := s.members, o.members
	if large.Cardinality() < small.Cardinality() {
		small, large = large, small
	}
	found := false
	small.Each(func(n parts.NodeID) bool {
		found = large.Contains(n)
		return found
	})

	return found
}

// FrozenCollection is a set of distinct FrozenSets.
type FrozenCollection struct {
	sets []FrozenSet
}

// BuildFrozen converts every part of pm to a FrozenSet and inserts it into a
// collection; identical node sets across parts collapse into one element.
func BuildFrozen(pm parts.PartMap) FrozenCollection {
	byKey := make(map[string]FrozenSet, len(pm))
	for _, nodes := range pm {
		fs := NewFrozenSet(nodes)
		byKey[fs.key] = fs
	}

	sets := make([]FrozenSet, 0, len(byKey))
	for _, fs := range byKey {
		sets = append(sets, fs)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].key < sets[j].key })

	return FrozenCollection{sets: sets}
}

// Len returns the number of distinct node sets.
func (c FrozenCollection) Len() int { return len(c.sets) }

// At returns the i-th set in key order. Panics when i is out of range.
func (c FrozenCollection) At(i int) FrozenSet { return c.sets[i] }

// Has reports whether a set equal to nodes (after deduplication) is present.
func (c FrozenCollection) Has(nodes []parts.NodeID) bool {
	key := NewFrozenSet(nodes).key
	i := sort.Search(len(c.sets), func(i int) bool { return c.sets[i].key >= key })

	return i < len(c.sets) && c.sets[i].key == key
}
