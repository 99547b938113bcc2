// SPDX-License-Identifier: MIT
// Package: partbench/bench
//
// config.go - run parameters.
//
// Defaults (single source of truth, see DefaultConfig):
//   • nodes = 5000, parts = 500, no per-part cap;
//   • trials = 10;
//   • every strategy;
//   • report: text, uncompressed, into "output".
//
// Filename switches to file mode; generator parameters are then ignored.
// Validation failures wrap ErrInvalidConfig and happen before any work.

package bench

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/partbench/intersect"
	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/report"
)

// ErrInvalidConfig indicates invalid or inconsistent run parameters.
var ErrInvalidConfig = errors.New("bench: invalid configuration")

const (
	// DefaultTrials is the number of timed trials per strategy.
	DefaultTrials = 10
	// DefaultOutputDir receives report files.
	DefaultOutputDir = "output"
)

// Config is the full parameter set of one run. A nil Seed means a time-based
// seed; any other value, 0 included, is used as is.
type Config struct {
	Nodes      int      `yaml:"nodes"`
	Parts      int      `yaml:"parts"`
	MaxNodes   int      `yaml:"max_nodes"`
	Seed       *int64   `yaml:"seed"`
	Filename   string   `yaml:"filename"`
	Trials     int      `yaml:"trials"`
	Strategies []string `yaml:"strategies"`
	Verbose    bool     `yaml:"verbose"`
	FileOut    bool     `yaml:"file_out"`
	SkipTests  bool     `yaml:"skip_tests"`
	Shared     bool     `yaml:"shared"`
	OutputDir  string   `yaml:"output_dir"`
	Format     string   `yaml:"format"`
	Compress   bool     `yaml:"compress"`
	ExportData string   `yaml:"export_data"`
}

// DefaultConfig returns the canonical defaults.
func DefaultConfig() Config {
	return Config{
		Nodes:     parts.DefaultNodes,
		Parts:     parts.DefaultParts,
		Trials:    DefaultTrials,
		OutputDir: DefaultOutputDir,
		Format:    report.FormatText.String(),
	}
}

// LoadConfigFile overlays the YAML document at path onto DefaultConfig.
// Unknown keys are rejected.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %v: %w", path, err, ErrInvalidConfig)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %q: %v: %w", path, err, ErrInvalidConfig)
	}

	return cfg, nil
}

// Validate checks every parameter the run will use.
func (c Config) Validate() error {
	if c.Trials < 1 {
		return fmt.Errorf("trials=%d < 1: %w", c.Trials, ErrInvalidConfig)
	}
	if c.Filename == "" {
		if c.Parts < 1 {
			return fmt.Errorf("parts=%d < 1: %w", c.Parts, ErrInvalidConfig)
		}
		if c.Nodes < parts.MinNodes {
			return fmt.Errorf("nodes=%d < %d: %w", c.Nodes, parts.MinNodes, ErrInvalidConfig)
		}
		if c.MaxNodes != 0 && c.MaxNodes < parts.MinPartSize {
			return fmt.Errorf("max_nodes=%d < %d: %w", c.MaxNodes, parts.MinPartSize, ErrInvalidConfig)
		}
	}
	if _, err := intersect.ParseStrategies(c.Strategies); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}

	return nil
}

// Source names the data origin for reports: the file path, or "" for
// generated data.
func (c Config) Source() string { return c.Filename }
