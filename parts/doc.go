// Package parts is the data source of partbench: it owns the canonical
// part → nodes mapping that every representation and algorithm reads.
//
// A PartMap is produced in exactly one of two ways:
//
//   - File mode: Load / LoadFile parse delimited text, one "<node><delim><part>"
//     pair per line (delim ∈ {',', '\t', ' ', '|'}). Lines that do not match
//     are skipped silently; I/O failures surface as ErrDataLoad.
//   - Generator mode: Generate samples random overlapping parts from a node
//     universe, deterministically for a given seed.
//
// Write exports a PartMap in the file-mode format so that a generated data set
// can be re-loaded later (Load(Write(pm)) reproduces pm).
//
// Ordering:
//
//	PartMap is a Go map, so iteration order is unspecified. IDs returns the
//	part ids in ascending order; every traversal in partbench uses that order.
//
// Usage:
//
//	pm, err := parts.LoadFile("data/parts.csv")
//	if err != nil {
//	  // errors.Is(err, parts.ErrDataLoad)
//	}
//
//	pm, seed, err := parts.GenerateSeeded(parts.DefaultParts, parts.DefaultNodes,
//	  parts.WithMaxNodes(200))
package parts
