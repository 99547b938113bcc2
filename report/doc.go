// Package report builds the full pairwise intersection matrix and renders
// benchmark results and matrices for people and machines.
//
// Matrices:
//
//   - BoolMatrix   Rows[i][j] == "parts i and j share a node".
//   - SharedMatrix Rows[i][j] == the sorted shared nodes of parts i and j.
//
// Both use ascending part order, are square and symmetric, and carry the
// trivial self-pair on the diagonal (true / the part's own node set). They
// are filled in a single triangular pass and mirrored across the diagonal.
// Building a matrix is the most expensive operation in partbench and is not
// timed.
//
// Presenters (WriteResults, WriteBool, WriteShared, WriteJSON) only read
// their inputs. CreateFile and OutputPath handle the on-disk report, with
// optional zstd compression; failures wrap ErrReportWrite.
package report
