package represent_test

import (
	"testing"

	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/represent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dedup returns the distinct nodes of a sequence as a lookup table.
func dedup(nodes []parts.NodeID) map[parts.NodeID]bool {
	out := make(map[parts.NodeID]bool, len(nodes))
	for _, n := range nodes {
		out[n] = true
	}
	return out
}

// TestBuildSets_MatchesSource: each set equals the deduplicated sequence.
func TestBuildSets_MatchesSource(t *testing.T) {
	pm := parts.PartMap{1: {5, 5, 6}, 2: {7}, 3: {1, 2, 3, 1}}
	before := pm.Clone()

	sets := represent.BuildSets(pm)
	require.Len(t, sets, len(pm))
	for id, nodes := range pm {
		want := dedup(nodes)
		assert.Equal(t, len(want), sets[id].Cardinality(), "part %d", id)
		for n := range want {
			assert.True(t, sets[id].Contains(n), "part %d node %d", id, n)
		}
	}
	assert.Equal(t, before, pm, "builder must not mutate its input")
	assert.Equal(t, []parts.PartID{1, 2, 3}, sets.IDs())
}

// TestBuildSets_Pure: two builds of the same input are equal.
func TestBuildSets_Pure(t *testing.T) {
	pm, err := parts.Generate(20, 100, parts.WithSeed(5))
	require.NoError(t, err)

	a, b := represent.BuildSets(pm), represent.BuildSets(pm)
	for id := range pm {
		assert.True(t, a[id].Equal(b[id]), "part %d", id)
	}
}

// TestBuildFrozen_CollapsesIdenticalSets: {7,8} twice becomes one element.
func TestBuildFrozen_CollapsesIdenticalSets(t *testing.T) {
	pm := parts.PartMap{1: {7, 8}, 2: {8, 7, 7}, 3: {9}}
	c := represent.BuildFrozen(pm)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has([]parts.NodeID{7, 8}))
	assert.True(t, c.Has([]parts.NodeID{9}))
	assert.False(t, c.Has([]parts.NodeID{7}))

	// Key order: "7,8" < "9".
	assert.Equal(t, []parts.NodeID{7, 8}, c.At(0).Nodes())
	assert.Equal(t, "9", c.At(1).Key())
}

// TestBuildFrozen_MembershipMatchesSource covers every element of every part.
func TestBuildFrozen_MembershipMatchesSource(t *testing.T) {
	pm, err := parts.Generate(30, 60, parts.WithSeed(9))
	require.NoError(t, err)
	c := represent.BuildFrozen(pm)

	assert.LessOrEqual(t, c.Len(), len(pm))
	for _, nodes := range pm {
		require.True(t, c.Has(nodes))
		fs := represent.NewFrozenSet(nodes)
		assert.Equal(t, len(dedup(nodes)), fs.Len())
		for _, n := range nodes {
			assert.True(t, fs.Contains(n))
		}
	}
}

// TestFrozenSet_Intersects checks the existential predicate both ways.
func TestFrozenSet_Intersects(t *testing.T) {
	a := represent.NewFrozenSet([]parts.NodeID{1, 2, 3})
	b := represent.NewFrozenSet([]parts.NodeID{3, 4})
	c := represent.NewFrozenSet([]parts.NodeID{5})
	var empty represent.FrozenSet

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
	assert.False(t, a.Intersects(c))
	assert.False(t, empty.Intersects(a))
	assert.False(t, empty.Contains(1))
}

// TestFrozenSet_IndependentOfInput: membership agrees with the hash-set
// representation and ignores later changes to the source or Nodes() copy.
func TestFrozenSet_IndependentOfInput(t *testing.T) {
	src := []parts.NodeID{4, 2, 4, 9}
	fs := represent.NewFrozenSet(src)
	set := represent.BuildSets(parts.PartMap{1: src})[1]

	src[0] = 100
	fs.Nodes()[0] = 200

	assert.Equal(t, set.Cardinality(), fs.Len())
	for _, n := range []parts.NodeID{2, 4, 9, 100, 200, 0} {
		assert.Equal(t, set.Contains(n), fs.Contains(n), "node %d", n)
	}
	assert.Equal(t, []parts.NodeID{2, 4, 9}, fs.Nodes())
	assert.True(t, fs.Intersects(represent.NewFrozenSet([]parts.NodeID{9})))
}

// TestBuildBitmaps_Membership compares roaring and bitset to the source.
func TestBuildBitmaps_Membership(t *testing.T) {
	pm := parts.PartMap{1: {0, 3, 3, 64}, 2: {1000}}
	rb := represent.BuildRoaring(pm)
	bs := represent.BuildBitsets(pm)

	for id, nodes := range pm {
		want := dedup(nodes)
		assert.Equal(t, uint64(len(want)), rb[id].GetCardinality())
		assert.Equal(t, uint(len(want)), bs[id].Count())
		for n := range want {
			assert.True(t, rb[id].Contains(uint64(n)))
			assert.True(t, bs[id].Test(uint(n)))
		}
	}
	assert.False(t, bs[1].Test(4))
	assert.False(t, rb[2].Contains(999))
}

// TestSizes_NonNegativeAndMonotone: adding a node never shrinks the model.
func TestSizes_NonNegativeAndMonotone(t *testing.T) {
	small := parts.PartMap{1: {1, 2}, 2: {3}}
	large := parts.PartMap{1: {1, 2, 4}, 2: {3, 5}}

	assert.Zero(t, represent.SizeOfSequence(parts.PartMap{}))
	assert.Less(t, represent.SizeOfSequence(small), represent.SizeOfSequence(large))
	assert.Less(t, represent.SizeOfSets(represent.BuildSets(small)), represent.SizeOfSets(represent.BuildSets(large)))
	assert.Less(t, represent.SizeOfFrozen(represent.BuildFrozen(small)), represent.SizeOfFrozen(represent.BuildFrozen(large)))
	assert.Positive(t, represent.SizeOfRoaring(represent.BuildRoaring(small)))
	assert.Positive(t, represent.SizeOfBitsets(represent.BuildBitsets(small)))
}

// TestBundle_BuildsRequestedOnly verifies lazily requested representations.
func TestBundle_BuildsRequestedOnly(t *testing.T) {
	pm := parts.PartMap{1: {1}, 2: {1, 2}}
	b := represent.Build(pm, represent.KindSets, represent.KindSets, represent.Kind(99))

	assert.True(t, b.Has(represent.KindSequence))
	assert.True(t, b.Has(represent.KindSets))
	assert.False(t, b.Has(represent.KindFrozen))
	assert.Nil(t, b.Roaring)

	_, err := b.Size(represent.KindRoaring)
	assert.ErrorIs(t, err, represent.ErrNotBuilt)

	size, err := b.Size(represent.KindSets)
	require.NoError(t, err)
	assert.Equal(t, represent.SizeOfSets(b.Sets), size)
}

// TestKind_Labels pins the descriptor labels.
func TestKind_Labels(t *testing.T) {
	c, e := represent.KindSequence.Labels()
	assert.Equal(t, "map[PartID]", c)
	assert.Equal(t, "[]NodeID", e)
	assert.Equal(t, "frozen", represent.KindFrozen.String())
	assert.Equal(t, "Kind(42)", represent.Kind(42).String())
}

// TestBitmaps_IDs orders bitmap parts like the canonical map.
func TestBitmaps_IDs(t *testing.T) {
	pm := parts.PartMap{30: {1}, 4: {2}, 17: {3, 4}}
	want := pm.IDs()

	assert.Equal(t, want, represent.BuildRoaring(pm).IDs())
	assert.Equal(t, want, represent.BuildBitsets(pm).IDs())
	assert.Equal(t, want, represent.BuildSets(pm).IDs())
	assert.Empty(t, represent.BuildRoaring(parts.PartMap{}).IDs())
}
