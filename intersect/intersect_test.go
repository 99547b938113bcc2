package intersect_test

import (
	"testing"

	"github.com/katalvlaran/partbench/intersect"
	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/represent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAll executes every strategy against pm.
func runAll(t *testing.T, pm parts.PartMap) map[intersect.Strategy]intersect.Result {
	t.Helper()
	b := represent.Build(pm, intersect.Kinds(intersect.All())...)
	out := make(map[intersect.Strategy]intersect.Result)
	for _, s := range intersect.All() {
		res, err := intersect.Run(s, b)
		require.NoError(t, err, s.String())
		out[s] = res
	}
	return out
}

// TestStrategies_AgreeOnFixtures covers hand-built maps with known answers.
func TestStrategies_AgreeOnFixtures(t *testing.T) {
	cases := []struct {
		name  string
		pm    parts.PartMap
		any   bool
		pairs int
		hits  int
	}{
		{"scenario", parts.PartMap{10: {1, 2}, 20: {3}}, false, 1, 0},
		{"one shared", parts.PartMap{1: {1, 2}, 2: {3, 4}, 3: {4, 5}}, true, 3, 1},
		{"all shared", parts.PartMap{1: {9, 1}, 2: {9, 2}, 3: {9, 3}, 4: {9, 4}}, true, 6, 6},
		{"duplicates inside parts", parts.PartMap{1: {1, 1, 1}, 2: {2, 2}}, false, 1, 0},
		{"single part", parts.PartMap{1: {1, 2}}, false, 0, 0},
		{"empty", parts.PartMap{}, false, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for s, res := range runAll(t, tc.pm) {
				assert.Equal(t, tc.any, res.Any(), s.String())
				assert.Equal(t, tc.pairs, res.Pairs, s.String())
				assert.Equal(t, tc.hits, res.IntersectingPairs, s.String())
			}
		})
	}
}

// TestStrategies_AgreeOnGenerated compares strategies on random data. The
// frozen strategy is compared only when no node sets collapsed.
func TestStrategies_AgreeOnGenerated(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		pm, err := parts.Generate(25, 400, parts.WithSeed(seed), parts.WithMaxNodes(12))
		require.NoError(t, err)

		results := runAll(t, pm)
		want := results[intersect.Sequence]
		for s, res := range results {
			if s == intersect.Frozen && represent.BuildFrozen(pm).Len() != len(pm) {
				continue
			}
			assert.Equal(t, want.Any(), res.Any(), "seed %d strategy %s", seed, s)
			assert.Equal(t, want.IntersectingPairs, res.IntersectingPairs, "seed %d strategy %s", seed, s)
		}
	}
}

// TestFrozen_IdentityLoss: identical sets collapse, so the frozen strategy
// sees no pair while the part-based strategies see one.
func TestFrozen_IdentityLoss(t *testing.T) {
	pm := parts.PartMap{1: {7, 8}, 2: {8, 7}}
	results := runAll(t, pm)

	assert.True(t, results[intersect.Sequence].Any())
	assert.True(t, results[intersect.Set].Any())
	assert.False(t, results[intersect.Frozen].Any())
	assert.Zero(t, results[intersect.Frozen].Pairs)
}

// TestResult_Descriptor labels each representation and reports a size.
func TestResult_Descriptor(t *testing.T) {
	results := runAll(t, parts.PartMap{1: {1, 2}, 2: {2, 3}})

	assert.Equal(t, "[]NodeID", results[intersect.Sequence].Descriptor.ElementKind)
	assert.Equal(t, "mapset.Set[NodeID]", results[intersect.Set].Descriptor.ElementKind)
	assert.Equal(t, "[]FrozenSet", results[intersect.Frozen].Descriptor.ContainerKind)
	assert.Equal(t, "*roaring64.Bitmap", results[intersect.Roaring].Descriptor.ElementKind)
	assert.Equal(t, "*bitset.BitSet", results[intersect.Bitset].Descriptor.ElementKind)
	for s, res := range results {
		assert.Positive(t, res.Descriptor.SizeBytes, s.String())
	}
}

// TestRun_MissingRepresentation refuses to run without the needed data.
func TestRun_MissingRepresentation(t *testing.T) {
	b := represent.Build(parts.PartMap{1: {1}})

	_, err := intersect.Run(intersect.Set, b)
	assert.ErrorIs(t, err, represent.ErrNotBuilt)

	_, err = intersect.Run(intersect.Strategy(12), b)
	assert.ErrorIs(t, err, intersect.ErrUnknownStrategy)

	res, err := intersect.Run(intersect.Sequence, b)
	require.NoError(t, err)
	assert.Zero(t, res.Pairs)
}

// TestBind_MatchesDirectCalls: bound closures report what the exported
// strategy functions report, trial after trial.
func TestBind_MatchesDirectCalls(t *testing.T) {
	pm, err := parts.Generate(25, 120, parts.WithSeed(21), parts.WithMaxNodes(6))
	require.NoError(t, err)
	b := represent.Build(pm, intersect.Kinds(intersect.All())...)

	direct := map[intersect.Strategy]intersect.Result{
		intersect.Sequence: intersect.SequenceTest(b.Parts),
		intersect.Set:      intersect.SetTest(b.Sets),
		intersect.Frozen:   intersect.FrozenTest(b.Frozen),
		intersect.Roaring:  intersect.RoaringTest(b.Roaring),
		intersect.Bitset:   intersect.BitsetTest(b.Bitsets),
	}
	for _, s := range intersect.All() {
		run, err := intersect.Bind(s, b)
		require.NoError(t, err, s.String())
		assert.Equal(t, direct[s], run(), s.String())
		assert.Equal(t, direct[s], run(), s.String())
	}
}

// TestBind_FixesOrderAndDescriptor: part order and size are taken at bind
// time, so a trial only repeats the pairwise sweep.
func TestBind_FixesOrderAndDescriptor(t *testing.T) {
	pm := parts.PartMap{1: {1, 2}, 2: {2}, 3: {7}}
	b := represent.Build(pm)
	run, err := intersect.Bind(intersect.Sequence, b)
	require.NoError(t, err)
	before := run()

	pm[4] = []parts.NodeID{1, 7, 9}
	after := run()

	assert.Equal(t, before.Descriptor, after.Descriptor)
	assert.Equal(t, 3, after.Pairs)
	assert.Equal(t, 1, after.IntersectingPairs)
	assert.Equal(t, 6, intersect.SequenceTest(pm).Pairs)
}

// TestParseStrategies handles case, duplicates and defaults.
func TestParseStrategies(t *testing.T) {
	got, err := intersect.ParseStrategies([]string{" Set", "sequence", "SET"})
	require.NoError(t, err)
	assert.Equal(t, []intersect.Strategy{intersect.Set, intersect.Sequence}, got)

	got, err = intersect.ParseStrategies(nil)
	require.NoError(t, err)
	assert.Equal(t, intersect.All(), got)

	_, err = intersect.ParseStrategies([]string{"set", "quantum"})
	assert.ErrorIs(t, err, intersect.ErrUnknownStrategy)

	assert.Equal(t, "roaring_intersection_test", intersect.Roaring.TestName())
	assert.Equal(t, "Strategy(-1)", intersect.Strategy(-1).String())
}

// TestKinds deduplicates representation needs.
func TestKinds(t *testing.T) {
	kinds := intersect.Kinds([]intersect.Strategy{intersect.Set, intersect.Sequence, intersect.Set})
	assert.Equal(t, []represent.Kind{represent.KindSets, represent.KindSequence}, kinds)
}
