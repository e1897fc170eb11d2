package main

import (
	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-sylleval/internal/report"
)

func newTableCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print every labeled word as word,response,labels rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, set, err := setup(cmd, rf)
			if err != nil {
				return err
			}
			return report.WriteTable(cmd.OutOrStdout(), set)
		},
	}
}
