package intersect

import (
	"fmt"

	"github.com/katalvlaran/partbench/represent"
)

// Bind returns a repeatable closure running strategy s against b. It fails
// when s is unknown or its representation was not built into b. Part order
// and the descriptor are computed here, once; the closure only sweeps.
func Bind(s Strategy, b *represent.Bundle) (func() Result, error) {
	kind := s.Representation()
	if s < Sequence || s > Bitset {
		return nil, fmt.Errorf("%s: %w", s, ErrUnknownStrategy)
	}
	if !b.Has(kind) {
		return nil, fmt.Errorf("%s needs %s: %w", s, kind, represent.ErrNotBuilt)
	}
	size, err := b.Size(kind)
	if err != nil {
		return nil, err
	}
	desc := describe(kind, size)

	switch s {
	case Set:
		ids := b.Sets.IDs()
		return func() Result { return setPass(b.Sets, ids, desc) }, nil
	case Frozen:
		return func() Result { return frozenPass(b.Frozen, desc) }, nil
	case Roaring:
		ids := b.Roaring.IDs()
		return func() Result { return roaringPass(b.Roaring, ids, desc) }, nil
	case Bitset:
		ids := b.Bitsets.IDs()
		return func() Result { return bitsetPass(b.Bitsets, ids, desc) }, nil
	default:
		ids := b.Parts.IDs()
		return func() Result { return sequencePass(b.Parts, ids, desc) }, nil
	}
}

// Run executes strategy s once against b.
func Run(s Strategy, b *represent.Bundle) (Result, error) {
	fn, err := Bind(s, b)
	if err != nil {
		return Result{}, err
	}

	return fn(), nil
}

// Kinds returns the representations needed by strategies, without duplicates.
func Kinds(strategies []Strategy) []represent.Kind {
	seen := make(map[represent.Kind]bool, len(strategies))
	out := make([]represent.Kind, 0, len(strategies))
	for _, s := range strategies {
		k := s.Representation()
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	return out
}
