package intersect

import (
	"github.com/katalvlaran/partbench/represent"
	"github.com/katalvlaran/partbench/timing"
)

// Result is what one pass of a strategy reports.
type Result struct {
	// Descriptor identifies the representation that was exercised.
	Descriptor timing.Descriptor
	// Pairs is the number of unordered unit pairs tested.
	Pairs int
	// IntersectingPairs is how many of those pairs share a node.
	IntersectingPairs int
}

// Any reports whether some pair of distinct units intersects.
func (r Result) Any() bool { return r.IntersectingPairs > 0 }

// describe builds the descriptor for representation k of the given size.
func describe(k represent.Kind, size int64) timing.Descriptor {
	container, element := k.Labels()
	return timing.Descriptor{ContainerKind: container, ElementKind: element, SizeBytes: size}
}
