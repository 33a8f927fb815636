package main

import (
	"os"

	"github.com/spf13/cobra"

	"flint/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "flint",
	Short: "Source diagnostics toolkit",
	Long:  `Flint resolves byte locations in source buffers and renders caret diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to flint.toml (default: ./flint.toml if present)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
