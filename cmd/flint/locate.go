package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"flint/internal/source"
)

var locateCmd = &cobra.Command{
	Use:   "locate <file> <offset>",
	Short: "Resolve a byte offset in a file to a line and column",
	Args:  cobra.ExactArgs(2),
	RunE:  runLocate,
}

func init() {
	locateCmd.Flags().StringArray("include-dir", nil, "directory to search for the file (repeatable)")
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	dirs, err := cmd.Flags().GetStringArray("include-dir")
	if err != nil {
		return fmt.Errorf("failed to get include-dir flag: %w", err)
	}

	off, err := strconv.Atoi(args[1])
	if err != nil || off < 0 {
		return fmt.Errorf("invalid byte offset %q", args[1])
	}

	reg := source.NewRegistry()
	reg.SetIncludeDirs(append(cfg.Diagnostics.IncludeDirs, dirs...))
	id, _ := reg.AddIncludeFile(args[0], source.NoLoc)
	if id == 0 {
		return fmt.Errorf("cannot load %q", args[0])
	}
	buf := reg.Get(id)
	if off > buf.Size() {
		return fmt.Errorf("offset %d past the end of %q (%d bytes)", off, buf.Name(), buf.Size())
	}

	line, col := buf.LineAndColumn(buf.LocAt(off))
	fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d\n", buf.Name(), line, col)
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(buf.Line(line)), "\n"))
	return nil
}
