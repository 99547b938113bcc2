package represent

import (
	"sort"

	"github.com/katalvlaran/partbench/parts"
)

// sortIDs sorts ids ascending in place and returns them.
func sortIDs(ids []parts.PartID) []parts.PartID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedUnique returns the distinct values of nodes in ascending order.
// The input is not modified.
func sortedUnique(nodes []parts.NodeID) []parts.NodeID {
	out := append([]parts.NodeID(nil), nodes...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	w := 0
	for r := 0; r < len(out); r++ {
		if w > 0 && out[w-1] == out[r] {
			continue
		}
		out[w] = out[r]
		w++
	}

	return out[:w]
}
