// SPDX-License-Identifier: MIT
// Package: partbench/parts
//
// errors.go - sentinel errors for the data source.
//
// Error policy:
//   • Only sentinels are exported; callers branch with errors.Is.
//   • Context (path, parameter values) is attached with %w at the call site.
//   • Loading never retries. A failed load aborts the run.

package parts

import "errors"

// ErrDataLoad indicates that file-mode input could not be opened, read or
// decoded. Malformed lines are NOT load errors; they are skipped.
var ErrDataLoad = errors.New("parts: data load failed")

// ErrInvalidParameter indicates a generator parameter outside its domain
// (parts < 1, nodes < MinNodes, maxNodes < MinPartSize).
var ErrInvalidParameter = errors.New("parts: invalid generator parameter")
