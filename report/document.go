package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/timing"
)

// Format selects the on-disk report encoding.
type Format int

const (
	// FormatText is the human-readable, newline-delimited report.
	FormatText Format = iota
	// FormatJSON is a single JSON document.
	FormatJSON
)

// String returns "text" or "json".
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ext returns the file extension for f.
func (f Format) ext() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".txt"
}

// ParseFormat maps "text"/"txt" and "json" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unknown report format %q", s)
	}
}

// Document is everything one run reports. Matrix fields are optional and at
// most one of them is set; Components accompanies either. Seed is meaningful
// only for generated data (empty Source).
type Document struct {
	RunID      string                   `json:"run_id"`
	Source     string                   `json:"source"`
	Seed       int64                    `json:"seed"`
	Results    []timing.BenchmarkResult `json:"results,omitempty"`
	Matrix     *BoolMatrix              `json:"matrix,omitempty"`
	Shared     *SharedMatrix            `json:"shared,omitempty"`
	Components [][]parts.PartID         `json:"components,omitempty"`
}

// NewDocument starts a document with a fresh run id.
func NewDocument(source string, seed int64) Document {
	return Document{RunID: uuid.NewString(), Source: source, Seed: seed}
}
