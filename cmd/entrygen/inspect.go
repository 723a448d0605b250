package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/metalagman/entrygen"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print entry, separator and byte counts of a generated file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := entrygen.Inspect(args[0])
			if err != nil {
				return exitWithError(1, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())

			return enc.Encode(stats)
		},
	}
}
