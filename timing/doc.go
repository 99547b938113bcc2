// Package timing is the benchmark harness: it runs a candidate function a
// fixed number of times against the same inputs and reports the mean
// wall-clock duration as a BenchmarkResult.
//
// Contract:
//
//   - Trials run sequentially; total elapsed time is summed and divided by
//     the trial count (arithmetic mean).
//   - The Descriptor returned by the LAST invocation describes the result.
//   - Panics raised by the measured function are not recovered.
//   - The harness writes nothing to any stream. Per-trial logging (WithLogger)
//     and metrics (WithScope) happen after each measured interval closes.
//
// Example:
//
//	res, err := timing.Measure("sets", func() timing.Descriptor {
//	  return runSetsOnce()
//	}, 10)
package timing
