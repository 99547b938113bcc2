// SPDX-License-Identifier: MIT
// Package: partbench/bench
//
// runner.go - the pipeline.
//
// Order of operations in Run:
//  1. Load: LoadFile (file mode) or GenerateSeeded (generator mode);
//     optional export of the loaded map.
//  2. RunTests (unless SkipTests): build the representations the selected
//     strategies need once, then Measure each strategy against them.
//  3. Report (when FileOut): build the bool or shared matrix from the set
//     representation and Save the document.
//
// Errors from Load and Report are fatal for the run (ErrDataLoad /
// ErrReportWrite). Nothing is retried and no partial report is written.

package bench

import (
	"fmt"
	"os"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"github.com/katalvlaran/partbench/intersect"
	"github.com/katalvlaran/partbench/parts"
	"github.com/katalvlaran/partbench/report"
	"github.com/katalvlaran/partbench/represent"
	"github.com/katalvlaran/partbench/timing"
)

// Option customizes a Runner.
type Option func(*Runner)

// WithScope routes per-trial timings to a tally scope.
func WithScope(s tally.Scope) Option {
	return func(r *Runner) {
		if s != nil {
			r.scope = s
		}
	}
}

// Summary is what Run produced.
type Summary struct {
	Results    []timing.BenchmarkResult
	ReportPath string
	Seed       int64
}

// Runner executes one configured benchmark run.
type Runner struct {
	cfg        Config
	logger     *zap.Logger
	scope      tally.Scope
	strategies []intersect.Strategy
	format     report.Format

	data    parts.PartMap
	seed    int64
	bundle  *represent.Bundle
	results []timing.BenchmarkResult
}

// New validates cfg and returns a Runner. A nil logger disables logging.
func New(cfg Config, logger *zap.Logger, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategies, _ := intersect.ParseStrategies(cfg.Strategies)
	format, _ := report.ParseFormat(cfg.Format)
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Runner{
		cfg:        cfg,
		logger:     logger,
		scope:      tally.NoopScope,
		strategies: strategies,
		format:     format,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Load produces the canonical PartMap. Calling it again reloads from scratch
// and drops any representations derived from the previous map.
func (r *Runner) Load() (parts.PartMap, error) {
	var (
		pm  parts.PartMap
		err error
	)
	r.data, r.bundle = nil, nil
	if r.cfg.Filename != "" {
		r.logger.Info("loading data from file", zap.String("file", r.cfg.Filename))
		pm, err = parts.LoadFile(r.cfg.Filename)
		r.seed = 0
	} else {
		opts := []parts.Option{parts.WithMaxNodes(r.cfg.MaxNodes)}
		if r.cfg.Seed != nil {
			opts = append(opts, parts.WithSeed(*r.cfg.Seed))
		}
		r.logger.Info("generating random data",
			zap.Int("nodes", r.cfg.Nodes),
			zap.Int("parts", r.cfg.Parts),
			zap.Int("max_nodes", r.cfg.MaxNodes))
		pm, r.seed, err = parts.GenerateSeeded(r.cfg.Parts, r.cfg.Nodes, opts...)
	}
	if err != nil {
		return nil, err
	}
	if r.cfg.ExportData != "" {
		if err := r.export(r.cfg.ExportData, pm); err != nil {
			return nil, err
		}
	}

	r.data = pm
	r.logger.Debug("data ready",
		zap.Int("parts", len(pm)),
		zap.Int("node_entries", pm.NodeCount()),
		zap.Int64("seed", r.seed))

	return pm, nil
}

// export writes pm in loader format. A failed export leaves no file behind.
func (r *Runner) export(path string, pm parts.PartMap) error {
	w, err := report.CreateFile(path, false)
	if err != nil {
		return err
	}
	err = parts.Write(w, pm, parts.DelimComma)
	if closeErr := w.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("export %q: %v: %w", path, err, report.ErrReportWrite)
	}
	r.logger.Info("exported data", zap.String("file", path))

	return nil
}

// ensureLoaded loads the data on first use.
func (r *Runner) ensureLoaded() error {
	if r.data != nil {
		return nil
	}
	_, err := r.Load()
	return err
}

// RunTests times every selected strategy and returns the results in
// strategy order. Representations are built once and reused by all trials.
func (r *Runner) RunTests() ([]timing.BenchmarkResult, error) {
	if err := r.ensureLoaded(); err != nil {
		return nil, err
	}

	strategies := r.runnable()
	r.bundle = represent.Build(r.data, intersect.Kinds(strategies)...)

	results := make([]timing.BenchmarkResult, 0, len(strategies))
	for _, s := range strategies {
		run, err := intersect.Bind(s, r.bundle)
		if err != nil {
			return nil, err
		}

		var last intersect.Result
		res, err := timing.Measure(s.TestName(), func() timing.Descriptor {
			last = run()
			return last.Descriptor
		}, r.cfg.Trials, timing.WithLogger(r.logger), timing.WithScope(r.scope))
		if err != nil {
			return nil, err
		}

		r.logger.Info("test finished",
			zap.String("test", res.Test),
			zap.Float64("mean_seconds", res.Elapsed),
			zap.Int("trials", res.Trials),
			zap.Int64("size_bytes", res.Representation.SizeBytes),
			zap.Int("pairs", last.Pairs),
			zap.Int("intersecting_pairs", last.IntersectingPairs))
		results = append(results, res)
	}
	r.results = results

	return results, nil
}

// runnable drops the bitset strategy when node ids are too large for it.
func (r *Runner) runnable() []intersect.Strategy {
	out := make([]intersect.Strategy, 0, len(r.strategies))
	for _, s := range r.strategies {
		if s == intersect.Bitset && r.data.MaxNode() > represent.MaxBitsetNode {
			r.logger.Warn("skipping bitset strategy: node ids too large",
				zap.Int64("max_node", int64(r.data.MaxNode())),
				zap.Int64("limit", int64(represent.MaxBitsetNode)))
			continue
		}
		out = append(out, s)
	}

	return out
}

// Document assembles the report document from the current state. The
// matrix is built fresh on every call.
func (r *Runner) Document() (report.Document, error) {
	if err := r.ensureLoaded(); err != nil {
		return report.Document{}, err
	}

	sets := r.sets()
	doc := report.NewDocument(r.cfg.Source(), r.seed)
	doc.Results = r.results
	if r.cfg.Shared {
		m := report.BuildShared(sets)
		doc.Shared = &m
		doc.Components = report.Components(m.Bool())
	} else {
		m := report.BuildBool(sets)
		doc.Matrix = &m
		doc.Components = report.Components(m)
	}
	r.logger.Debug("intersection matrix built",
		zap.Int("parts", len(r.data)),
		zap.Int("components", len(doc.Components)))

	return doc, nil
}

// sets reuses the set representation from the last RunTests when present.
func (r *Runner) sets() represent.SetPartMap {
	if r.bundle != nil && r.bundle.Has(represent.KindSets) {
		return r.bundle.Sets
	}
	return represent.BuildSets(r.data)
}

// Report builds the intersection matrix and writes the report file,
// returning its path.
func (r *Runner) Report() (string, error) {
	doc, err := r.Document()
	if err != nil {
		return "", err
	}

	path := report.OutputPath(r.cfg.OutputDir, r.cfg.Source(), r.cfg.Parts, r.cfg.Nodes, r.format, r.cfg.Compress)
	r.logger.Info("writing intersection report", zap.String("file", path))
	if err := report.Save(path, doc, r.format, r.cfg.Compress); err != nil {
		return "", err
	}

	return path, nil
}

// Run executes the configured pipeline.
func (r *Runner) Run() (Summary, error) {
	if _, err := r.Load(); err != nil {
		return Summary{}, err
	}

	var sum Summary
	if r.cfg.SkipTests {
		r.logger.Info("skipping the tests")
	} else {
		results, err := r.RunTests()
		if err != nil {
			return Summary{}, err
		}
		sum.Results = results
	}

	if r.cfg.FileOut {
		path, err := r.Report()
		if err != nil {
			return Summary{}, err
		}
		sum.ReportPath = path
	}
	sum.Seed = r.seed

	return sum, nil
}
