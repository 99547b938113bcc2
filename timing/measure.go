// SPDX-License-Identifier: MIT
// Package: partbench/timing
//
// measure.go - the timing wrapper.
//
// Algorithm:
//  1. Validate trials ≥ 1 (ErrInvalidTrials otherwise; fn is never called).
//  2. For t = 1..trials: start = now; desc = fn(); total += since(start);
//     then, outside the measured interval, record metrics and log.
//  3. Return {name, last desc, total/trials seconds, trials}.
//
// time.Since uses the monotonic reading carried by time.Now, so wall-clock
// adjustments during a run do not skew the total.

package timing

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Measure runs fn trials times and returns the mean elapsed time.
func Measure(name string, fn Func, trials int, opts ...Option) (BenchmarkResult, error) {
	if trials < 1 {
		return BenchmarkResult{}, fmt.Errorf("%s: trials=%d: %w", name, trials, ErrInvalidTrials)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	timer := o.scope.Timer(name)

	var (
		total time.Duration
		desc  Descriptor
	)
	for t := 1; t <= trials; t++ {
		start := time.Now()
		desc = fn()
		elapsed := time.Since(start)
		total += elapsed

		timer.Record(elapsed)
		o.logger.Debug("trial finished",
			zap.String("test", name),
			zap.Int("trial", t),
			zap.Int("trials", trials),
			zap.Duration("elapsed", elapsed))
	}

	return BenchmarkResult{
		Test:           name,
		Representation: desc,
		Elapsed:        total.Seconds() / float64(trials),
		Trials:         trials,
	}, nil
}
