package cli

import (
	"fmt"

	"github.com/google/gops/agent"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/partbench/bench"
	"github.com/katalvlaran/partbench/report"
)

func (o *options) run(cmd *cobra.Command, _ []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cmd.ErrOrStderr(), o.logFormat, o.logFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
		_ = closeLog()
	}()

	if o.gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			logger.Warn("gops agent not started", zap.Error(err))
		} else {
			defer agent.Close()
		}
	}

	r, err := bench.New(cfg, logger)
	if err != nil {
		return err
	}
	sum, err := r.Run()
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	if len(sum.Results) > 0 {
		if err := report.WriteResults(out, sum.Results); err != nil {
			return err
		}
	}
	if cfg.Source() == "" {
		fmt.Fprintf(out, "seed: %d\n", sum.Seed)
	}
	if sum.ReportPath != "" {
		fmt.Fprintf(out, "report: %s\n", sum.ReportPath)
	}

	return nil
}
