package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the flint version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flint %s", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (%s)", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " built %s", version.BuildDate)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	},
}
