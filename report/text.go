// Package: partbench/report
//
// text.go - human-readable presenters.
//
// Matrix layout, one block per part in matrix order:
//
//	part 10
//	10|20|false
//	10|30|true
//
// The shared variant prints the literal set instead of the flag:
//
//	10|30|{4,9}
//
// Blocks are separated by one blank line. Self-pairs are omitted; they are
// trivially true.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/timing"
)

// WriteResults renders benchmark results as an aligned table.
func WriteResults(w io.Writer, results []timing.BenchmarkResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEST\tCONTAINER\tELEMENT\tSIZE(B)\tTRIALS\tMEAN(s)")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.6f\n",
			r.Test, r.Representation.ContainerKind, r.Representation.ElementKind,
			r.Representation.SizeBytes, r.Trials, r.Elapsed)
	}

	return tw.Flush()
}

// WriteBool renders a boolean matrix as per-part blocks.
func WriteBool(w io.Writer, m BoolMatrix) error {
	return writeBlocks(w, m.Parts, func(bw *bufio.Writer, i, j int) {
		bw.WriteString(strconv.FormatBool(m.Rows[i][j]))
	})
}

// WriteShared renders a shared-node matrix as per-part blocks.
func WriteShared(w io.Writer, m SharedMatrix) error {
	return writeBlocks(w, m.Parts, func(bw *bufio.Writer, i, j int) {
		bw.WriteByte('{')
		for k, n := range m.Rows[i][j] {
			if k > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(strconv.FormatInt(int64(n), 10))
		}
		bw.WriteByte('}')
	})
}

func writeBlocks(w io.Writer, ids []parts.PartID, cell func(bw *bufio.Writer, i, j int)) error {
	bw := bufio.NewWriter(w)
	for i, id := range ids {
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "part %d\n", id)
		for j, other := range ids {
			if j == i {
				continue
			}
			fmt.Fprintf(bw, "%d|%d|", id, other)
			cell(bw, i, j)
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// WriteText renders a whole document: header, results table, matrix.
func WriteText(w io.Writer, doc Document) error {
	if _, err := fmt.Fprintf(w, "# run %s source=%s", doc.RunID, doc.Source); err != nil {
		return err
	}
	if doc.Source == "" {
		fmt.Fprintf(w, " seed=%d", doc.Seed)
	}
	fmt.Fprintln(w)
	if doc.Components != nil {
		fmt.Fprintf(w, "# components %d\n", len(doc.Components))
	}

	if len(doc.Results) > 0 {
		fmt.Fprintln(w)
		if err := WriteResults(w, doc.Results); err != nil {
			return err
		}
	}

	switch {
	case doc.Shared != nil:
		fmt.Fprintln(w)
		return WriteShared(w, *doc.Shared)
	case doc.Matrix != nil:
		fmt.Fprintln(w)
		return WriteBool(w, *doc.Matrix)
	}

	return nil
}
