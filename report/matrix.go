// SPDX-License-Identifier: MIT
// Package: partbench/report
//
// matrix.go - intersection matrix builders.
//
// Pass structure (n parts in ascending order, finished[] initially false):
//
//	for i: rows[i][i] = self
//	       for j != i with !finished[j]:
//	         v = cell(i, j); rows[i][j] = v; rows[j][i] = v
//	       finished[i] = true
//
// Each off-diagonal cell is computed exactly once.
//
// Complexity: BuildBool O(n²·min|set|) with early exit per pair;
// BuildShared O(n²·min|set|) without early exit.

package report

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/represent"
)

// BoolMatrix is the cheap intersection report.
type BoolMatrix struct {
	Parts []parts.PartID `json:"parts"`
	Rows  [][]bool       `json:"rows"`
}

// SharedMatrix is the rich intersection report: literal shared node sets.
type SharedMatrix struct {
	Parts []parts.PartID     `json:"parts"`
	Rows  [][][]parts.NodeID `json:"rows"`
}

// BuildBool computes the boolean intersection matrix of sets.
func BuildBool(sets represent.SetPartMap) BoolMatrix {
	ids := sets.IDs()
	rows := make([][]bool, len(ids))
	for i := range rows {
		rows[i] = make([]bool, len(ids))
	}

	triangle(len(ids), func(i int) {
		rows[i][i] = true
	}, func(i, j int) {
		v := intersects(sets[ids[i]], sets[ids[j]])
		rows[i][j], rows[j][i] = v, v
	})

	return BoolMatrix{Parts: ids, Rows: rows}
}

// BuildShared computes the shared-node matrix of sets. Cells of disjoint
// pairs hold an empty, non-nil slice.
func BuildShared(sets represent.SetPartMap) SharedMatrix {
	ids := sets.IDs()
	rows := make([][][]parts.NodeID, len(ids))
	for i := range rows {
		rows[i] = make([][]parts.NodeID, len(ids))
	}

	triangle(len(ids), func(i int) {
		rows[i][i] = sortedNodes(sets[ids[i]])
	}, func(i, j int) {
		v := sortedNodes(sets[ids[i]].Intersect(sets[ids[j]]))
		rows[i][j] = v
		rows[j][i] = append([]parts.NodeID(nil), v...)
	})

	return SharedMatrix{Parts: ids, Rows: rows}
}

// triangle drives the finished-once pass shared by both builders.
func triangle(n int, self func(i int), cell func(i, j int)) {
	finished := make([]bool, n)
	for i := 0; i < n; i++ {
		self(i)
		for j := 0; j < n; j++ {
			if j == i || finished[j] {
				continue
			}
			cell(i, j)
		}
		finished[i] = true
	}
}

// intersects iterates the smaller set and stops at the first shared node.
func intersects(a, b mapset.Set[parts.NodeID]) bool {
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

func sortedNodes(s mapset.Set[parts.NodeID]) []parts.NodeID {
	out := s.ToSlice()
	if out == nil {
		out = []parts.NodeID{}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Size returns the side length of the matrix.
func (m BoolMatrix) Size() int { return len(m.Parts) }

// Symmetric reports whether m is square and Rows[i][j] == Rows[j][i].
func (m BoolMatrix) Symmetric() bool {
	n := len(m.Parts)
	if len(m.Rows) != n {
		return false
	}
	for i := range m.Rows {
		if len(m.Rows[i]) != n {
			return false
		}
		for j := 0; j < i; j++ {
			if m.Rows[i][j] != m.Rows[j][i] {
				return false
			}
		}
	}

	return true
}

// Size returns the side length of the matrix.
func (m SharedMatrix) Size() int { return len(m.Parts) }

// Symmetric reports whether m is square and Rows[i][j] equals Rows[j][i].
func (m SharedMatrix) Symmetric() bool {
	n := len(m.Parts)
	if len(m.Rows) != n {
		return false
	}
	for i := range m.Rows {
		if len(m.Rows[i]) != n {
			return false
		}
		for j := 0; j < i; j++ {
			if !equalNodes(m.Rows[i][j], m.Rows[j][i]) {
				return false
			}
		}
	}

	return true
}

// Bool collapses the shared sets to the cheap boolean form.
func (m SharedMatrix) Bool() BoolMatrix {
	rows := make([][]bool, len(m.Rows))
	for i, row := range m.Rows {
		rows[i] = make([]bool, len(row))
		for j, cell := range row {
			rows[i][j] = len(cell) > 0 || i == j
		}
	}

	return BoolMatrix{Parts: append([]parts.PartID(nil), m.Parts...), Rows: rows}
}

func equalNodes(a, b []parts.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
