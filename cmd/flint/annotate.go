package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"flint/internal/diag"
	"flint/internal/source"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <file> <offset>",
	Short: "Render a diagnostic at a byte offset in a file",
	Long: `Render a caret diagnostic at a byte offset, with optional highlight
ranges and fix-it suggestions given as byte offset pairs`,
	Args: cobra.ExactArgs(2),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().String("message", "diagnostic here", "diagnostic message")
	annotateCmd.Flags().String("kind", "error", "diagnostic kind (error|warning|note|remark)")
	annotateCmd.Flags().StringArray("range", nil, "highlight range as START-END byte offsets (repeatable)")
	annotateCmd.Flags().StringArray("fix", nil, "fix-it as START-END=text (repeatable)")
	annotateCmd.Flags().StringArray("include-dir", nil, "directory to search for the file (repeatable)")
	annotateCmd.Flags().String("prog", "", "program name prefix for the header")
	annotateCmd.Flags().String("format", "pretty", "output format (pretty|short)")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("failed to get message flag: %w", err)
	}
	kindName, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	kind, err := diag.ParseKind(kindName)
	if err != nil {
		return err
	}
	rangeSpecs, err := cmd.Flags().GetStringArray("range")
	if err != nil {
		return fmt.Errorf("failed to get range flag: %w", err)
	}
	fixSpecs, err := cmd.Flags().GetStringArray("fix")
	if err != nil {
		return fmt.Errorf("failed to get fix flag: %w", err)
	}
	dirs, err := cmd.Flags().GetStringArray("include-dir")
	if err != nil {
		return fmt.Errorf("failed to get include-dir flag: %w", err)
	}
	prog, err := cmd.Flags().GetString("prog")
	if err != nil {
		return fmt.Errorf("failed to get prog flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if prog == "" {
		prog = cfg.Diagnostics.Prog
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

	ranges, err := parseRanges(buf, rangeSpecs)
	if err != nil {
		return err
	}
	fixits, err := parseFixIts(buf, fixSpecs)
	if err != nil {
		return err
	}

	sink, err := resolveSink(cmd, cfg.Diagnostics.Color)
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		e := diag.NewEmitter(reg, sink, nil)
		e.SetProgName(prog)
		e.Emit(buf.LocAt(off), kind, message, ranges, fixits)
		if e.ErrorCount() > 0 {
			os.Exit(1)
		}
	case "short":
		d := diag.New(reg, buf.LocAt(off), kind, message, ranges, fixits)
		fmt.Fprint(sink, diag.FormatGolden([]diag.Diagnostic{*d}))
		if kind == diag.Error {
			os.Exit(1)
		}
	default:
		return fmt.Errorf("unknown format %q (want pretty|short)", format)
	}
	return nil
}

// parseOffsetPair splits "START-END" into two byte offsets within buf.
func parseOffsetPair(buf *source.Buffer, spec string) (int, int, error) {
	dash := strings.IndexByte(spec, '-')
	if dash < 0 {
		return 0, 0, fmt.Errorf("invalid offset pair %q (want START-END)", spec)
	}
	start, err := strconv.Atoi(spec[:dash])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid offset pair %q: %w", spec, err)
	}
	end, err := strconv.Atoi(spec[dash+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid offset pair %q: %w", spec, err)
	}
	if start < 0 || end < start || end > buf.Size() {
		return 0, 0, fmt.Errorf("offset pair %q outside %q (%d bytes)", spec, buf.Name(), buf.Size())
	}
	return start, end, nil
}

func parseRanges(buf *source.Buffer, specs []string) ([]source.Range, error) {
	var out []source.Range
	for _, spec := range specs {
		start, end, err := parseOffsetPair(buf, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, source.MakeRange(buf.LocAt(start), buf.LocAt(end)))
	}
	return out, nil
}

func parseFixIts(buf *source.Buffer, specs []string) ([]diag.FixIt, error) {
	var out []diag.FixIt
	for _, spec := range specs {
		eq := strings.IndexByte(spec, '=')
		if eq < 0 {
			return nil, fmt.Errorf("invalid fix %q (want START-END=text)", spec)
		}
		start, end, err := parseOffsetPair(buf, spec[:eq])
		if err != nil {
			return nil, err
		}
		out = append(out, diag.FixIt{
			Range: source.MakeRange(buf.LocAt(start), buf.LocAt(end)),
			Text:  spec[eq+1:],
		})
	}
	return out, nil
}
