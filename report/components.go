// SPDX-License-Identifier: MIT
// Package: partbench/report
//
// components.go - overlap clusters of the intersection graph.
//
// The boolean matrix is the adjacency matrix of an undirected graph whose
// vertices are parts and whose edges join parts sharing a node. Components
// runs a queue-based breadth-first walk from every unvisited part:
//   • each component lists its parts in matrix order;
//   • components are ordered by their first part;
//   • an isolated part forms a component of its own.
//
// Complexity: O(P²) over the dense matrix.

package report

import (
	"sort"

	"github.com/katalvlaran/partbench/parts"
)

// walker carries the mutable state of one component walk.
type walker struct {
	m       BoolMatrix
	visited []bool
	queue   []int
}

// Components returns the overlap clusters of m.
func Components(m BoolMatrix) [][]parts.PartID {
	n := m.Size()
	w := &walker{m: m, visited: make([]bool, n), queue: make([]int, 0, n)}

	var out [][]parts.PartID
	for start := 0; start < n; start++ {
		if w.visited[start] {
			continue
		}
		out = append(out, w.walk(start))
	}

	return out
}

// walk visits everything reachable from start.
func (w *walker) walk(start int) []parts.PartID {
	w.enqueue(start)
	var members []int
	for len(w.queue) > 0 {
		i := w.queue[0]
		w.queue = w.queue[1:]
		members = append(members, i)
		for j, linked := range w.m.Rows[i] {
			if linked && !w.visited[j] {
				w.enqueue(j)
			}
		}
	}

	sort.Ints(members)
	ids := make([]parts.PartID, len(members))
	for k, i := range members {
		ids[k] = w.m.Parts[i]
	}

	return ids
}

func (w *walker) enqueue(i int) {
	w.visited[i] = true
	w.queue = append(w.queue, i)
}
