package main

import (
	"github.com/spf13/cobra"

	sylleval "github.com/jamesainslie/go-sylleval"
	"github.com/jamesainslie/go-sylleval/internal/config"
	"github.com/jamesainslie/go-sylleval/internal/report"
)

func newScoreCmd(rf *rootFlags) *cobra.Command {
	var showCounts bool

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print accuracy, precision, recall and F1 for a label set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, set, err := setup(cmd, rf)
			if err != nil {
				return err
			}

			sn := sylleval.New(set, sylleval.WithLogger(logger)).Snapshot()
			out := cmd.OutOrStdout()

			if cfg.Format == config.FormatYAML {
				return report.WriteYAML(out, sn)
			}
			if err := report.WriteMetrics(out, sn); err != nil {
				return err
			}
			if showCounts {
				return report.WriteCounts(out, sn.Counts)
			}
			return nil
		},
	}

	cmd.Flags().String("format", config.FormatText, "Output format: text or yaml")
	cmd.Flags().BoolVar(&showCounts, "counts", false, "Also print raw TP/FP/FN/Pass counts")
	return cmd
}
