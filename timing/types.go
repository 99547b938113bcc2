package timing

import (
	"errors"
	"time"
)

// ErrInvalidTrials is returned when the trial count is below 1.
var ErrInvalidTrials = errors.New("timing: trials must be >= 1")

// DefaultTrials is the trial count callers use when they have no preference.
const DefaultTrials = 1

// Descriptor describes the representation a benchmark function exercised.
type Descriptor struct {
	ContainerKind string `json:"container_kind" yaml:"container_kind"`
	ElementKind   string `json:"element_kind" yaml:"element_kind"`
	SizeBytes     int64  `json:"size_bytes" yaml:"size_bytes"`
}

// BenchmarkResult is the outcome of one Measure call.
type BenchmarkResult struct {
	Test           string     `json:"test"`
	Representation Descriptor `json:"representation"`
	// Elapsed is the mean seconds per trial; always >= 0.
	Elapsed float64 `json:"elapsed_seconds"`
	// Trials is the number of invocations averaged; always >= 1.
	Trials int `json:"trials"`
}

// Duration returns Elapsed as a time.Duration.
func (r BenchmarkResult) Duration() time.Duration {
	return time.Duration(r.Elapsed * float64(time.Second))
}

// Func is a benchmark body. It must be repeatable on the same inputs.
type Func func() Descriptor
