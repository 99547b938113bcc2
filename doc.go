// Package partbench measures how quickly different in-memory representations
// answer "which parts share at least one node?" for every pair of parts.
//
// A part is a named group of nodes; a node may belong to many parts. Given a
// part → nodes mapping, partbench:
//
//  1. loads it from a delimited file or generates it from a seed (parts/);
//  2. derives the representations under test: plain sequences, hash sets,
//     frozen sets, roaring bitmaps and dense bitsets (represent/);
//  3. times a full pairwise intersection sweep per representation over
//     repeated trials (intersect/, timing/);
//  4. optionally writes the part-by-part intersection matrix, with overlap
//     clusters, as text or JSON (report/).
//
// bench/ ties the steps together behind a Config; cmd/partbench is the
// command-line entry point.
//
// Quick start:
//
//	r, err := bench.New(bench.DefaultConfig(), logger)
//	if err != nil {
//	  // errors.Is(err, bench.ErrInvalidConfig)
//	}
//	sum, err := r.Run()
package partbench
