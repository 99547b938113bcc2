// SPDX-License-Identifier: MIT
// Package: partbench/parts
//
// generate.go - generator-mode data source.
//
// Model (overlapping membership, e.g. cluster membership or tag co-occurrence):
//   • candidate pool: node ids 1..nodes-1;
//   • parts:          ids 1..parts-1 (upper bound excluded);
//   • per part:       size k ~ U[MinPartSize, limit], limit = nodes-1 or the
//                     WithMaxNodes cap when it is smaller;
//                     k distinct nodes drawn without replacement.
//   • parts are sampled independently, so a node may appear in many parts.
//
// Determinism:
//   • parts are generated in ascending id order from a single source;
//   • the same seed yields the same PartMap, node order included.
//
// Complexity: O(nodes) to build the pool + O(Σk) draws (partial Fisher–Yates).

package parts

import "fmt"

const (
	// DefaultParts is the canonical part count when none is configured.
	DefaultParts = 500
	// DefaultNodes is the canonical node-universe size when none is configured.
	DefaultNodes = 5000
	// MinPartSize is the smallest sample drawn for a generated part.
	MinPartSize = 2
	// MinNodes is the smallest universe that can fill a part of MinPartSize.
	MinNodes = MinPartSize + 1
)

// Generate synthesizes a random PartMap. See GenerateSeeded.
func Generate(parts, nodes int, opts ...Option) (PartMap, error) {
	pm, _, err := GenerateSeeded(parts, nodes, opts...)
	return pm, err
}

// GenerateSeeded synthesizes a random PartMap and also returns the seed
// that drove it, so a time-seeded run can be replayed with WithSeed.
func GenerateSeeded(parts, nodes int, opts ...Option) (PartMap, int64, error) {
	if parts < 1 {
		return nil, 0, fmt.Errorf("parts=%d < 1: %w", parts, ErrInvalidParameter)
	}
	if nodes < MinNodes {
		return nil, 0, fmt.Errorf("nodes=%d < %d: %w", nodes, MinNodes, ErrInvalidParameter)
	}

	cfg := newGenConfig(opts...)
	if cfg.err != nil {
		return nil, 0, cfg.err
	}

	limit := nodes - 1
	if cfg.maxNodes > 0 && cfg.maxNodes < limit {
		limit = cfg.maxNodes
	}

	// Candidate pool 1..nodes-1; reused as Fisher–Yates scratch for every
	// part. A partial shuffle of any permutation is still a uniform sample.
	pool := make([]NodeID, nodes-1)
	for i := range pool {
		pool[i] = NodeID(i + 1)
	}

	pm := make(PartMap, parts-1)
	span := limit - MinPartSize + 1
	for id := 1; id < parts; id++ {
		k := MinPartSize + cfg.rng.Intn(span)
		for i := 0; i < k; i++ {
			j := i + cfg.rng.Intn(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		pm[PartID(id)] = append([]NodeID(nil), pool[:k]...)
	}

	return pm, cfg.seed, nil
}
