package intersect_test

import (
	"testing"

	"github.com/katalvlaran/partbench/intersect"
	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/represent"
)

// benchmarkStrategy builds inputs outside the timer and measures one strategy.
func benchmarkStrategy(b *testing.B, s intersect.Strategy, nParts, nNodes, maxNodes int) {
	pm, err := parts.Generate(nParts, nNodes, parts.WithSeed(42), parts.WithMaxNodes(maxNodes))
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	bundle := represent.Build(pm, s.Representation())
	fn, err := intersect.Bind(s, bundle)
	if err != nil {
		b.Fatalf("bind: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = fn()
	}
}

// BenchmarkSequence_Small measures linear scans on 100 parts of ≤50 nodes.
func BenchmarkSequence_Small(b *testing.B) { benchmarkStrategy(b, intersect.Sequence, 100, 1000, 50) }

// BenchmarkSet_Small measures hash-set lookups on the same data.
func BenchmarkSet_Small(b *testing.B) { benchmarkStrategy(b, intersect.Set, 100, 1000, 50) }

// BenchmarkFrozen_Small measures the collection-of-sets strategy.
func BenchmarkFrozen_Small(b *testing.B) { benchmarkStrategy(b, intersect.Frozen, 100, 1000, 50) }

// BenchmarkRoaring_Small measures roaring bitmap intersections.
func BenchmarkRoaring_Small(b *testing.B) { benchmarkStrategy(b, intersect.Roaring, 100, 1000, 50) }

// BenchmarkBitset_Small measures dense bitset intersections.
func BenchmarkBitset_Small(b *testing.B) { benchmarkStrategy(b, intersect.Bitset, 100, 1000, 50) }

// BenchmarkSet_Large uses the canonical default scale with a size cap.
func BenchmarkSet_Large(b *testing.B) { benchmarkStrategy(b, intersect.Set, 500, 5000, 200) }

// BenchmarkRoaring_Large uses the canonical default scale with a size cap.
func BenchmarkRoaring_Large(b *testing.B) { benchmarkStrategy(b, intersect.Roaring, 500, 5000, 200) }
