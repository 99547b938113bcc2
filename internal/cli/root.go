package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/partbench/bench"
)

// options holds every flag value of one invocation.
type options struct {
	cfg        bench.Config
	seed       int64
	configPath string
	logFormat  string
	logFile    string
	gops       bool
}

// NewRootCmd builds the partbench command writing results to out and logs
// to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &options{cfg: bench.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "partbench",
		Short: "Benchmark pairwise intersection of part node sets",
		Long: `partbench times several strategies for deciding which parts share at
least one node, and optionally writes the full part-by-part intersection report.

Data comes either from a file of "<node><delim><part>" lines (delimiter one of
comma, tab, space or pipe) or from a seeded random generator.

EXAMPLES:
  # Random data, default sizes, every strategy
  partbench

  # Smaller random run with a fixed seed and a report file
  partbench --parts 100 --nodes 2000 --seed 7 --file-out

  # Load from file, skip timing, write the shared-node report as JSON
  partbench --file data.csv --skip-tests --file-out --shared --format json

  # Settings from YAML; explicit flags win
  partbench --config bench.yaml --trials 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          o.run,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	f := cmd.Flags()
	f.IntVarP(&o.cfg.Nodes, "nodes", "n", o.cfg.Nodes, "number of candidate nodes for random data")
	f.IntVarP(&o.cfg.Parts, "parts", "p", o.cfg.Parts, "number of parts for random data")
	f.IntVar(&o.cfg.MaxNodes, "max-nodes", o.cfg.MaxNodes, "upper bound on nodes per random part (0 = no cap)")
	f.Int64Var(&o.seed, "seed", 0, "generator seed (time based when unset)")
	f.StringVarP(&o.cfg.Filename, "file", "f", o.cfg.Filename, "load parts from this file instead of generating them")
	f.IntVarP(&o.cfg.Trials, "trials", "t", o.cfg.Trials, "timed trials per strategy")
	f.StringSliceVarP(&o.cfg.Strategies, "strategies", "s", o.cfg.Strategies, "strategies to time (sequence,set,frozen,roaring,bitset; empty = all)")
	f.BoolVarP(&o.cfg.Verbose, "verbose", "v", o.cfg.Verbose, "debug logging")
	f.BoolVar(&o.cfg.FileOut, "file-out", o.cfg.FileOut, "write the intersection report file")
	f.BoolVar(&o.cfg.SkipTests, "skip-tests", o.cfg.SkipTests, "do not time the strategies")
	f.BoolVar(&o.cfg.Shared, "shared", o.cfg.Shared, "report the shared nodes instead of true/false")
	f.StringVarP(&o.cfg.OutputDir, "output-dir", "o", o.cfg.OutputDir, "directory for report files")
	f.StringVar(&o.cfg.Format, "format", o.cfg.Format, "report format: text or json")
	f.BoolVar(&o.cfg.Compress, "compress", o.cfg.Compress, "zstd-compress the report file")
	f.StringVar(&o.cfg.ExportData, "export-data", o.cfg.ExportData, "write the loaded parts to this file in loader format")

	f.StringVarP(&o.configPath, "config", "c", "", "YAML file with run settings")
	f.StringVar(&o.logFormat, "log-format", formatConsole, "log encoding: console or json")
	f.StringVar(&o.logFile, "log-file", "", "also log to this file (rotated)")
	f.BoolVar(&o.gops, "gops", false, "start a gops diagnostics agent for the run")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command against the process streams.
func Execute(out, errOut io.Writer) error {
	return NewRootCmd(out, errOut).Execute()
}
