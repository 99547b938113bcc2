package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partbench/bench"
)

// resolve merges defaults, the optional config file, and explicitly set
// flags, in that order of precedence.
func (o *options) resolve(cmd *cobra.Command) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = bench.LoadConfigFile(o.configPath); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Changed(name) {
			apply()
		}
	}
	set("nodes", func() { cfg.Nodes = o.cfg.Nodes })
	set("parts", func() { cfg.Parts = o.cfg.Parts })
	set("max-nodes", func() { cfg.MaxNodes = o.cfg.MaxNodes })
	set("seed", func() {
		seed := o.seed
		cfg.Seed = &seed
	})
	set("file", func() { cfg.Filename = o.cfg.Filename })
	set("trials", func() { cfg.Trials = o.cfg.Trials })
	set("strategies", func() { cfg.Strategies = o.cfg.Strategies })
	set("verbose", func() { cfg.Verbose = o.cfg.Verbose })
	set("file-out", func() { cfg.FileOut = o.cfg.FileOut })
	set("skip-tests", func() { cfg.SkipTests = o.cfg.SkipTests })
	set("shared", func() { cfg.Shared = o.cfg.Shared })
	set("output-dir", func() { cfg.OutputDir = o.cfg.OutputDir })
	set("format", func() { cfg.Format = o.cfg.Format })
	set("compress", func() { cfg.Compress = o.cfg.Compress })
	set("export-data", func() { cfg.ExportData = o.cfg.ExportData })

	if cfg.Filename != "" && (f.Changed("nodes") || f.Changed("parts")) {
		return cfg, fmt.Errorf("--file cannot be combined with --nodes or --parts: %w", bench.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
