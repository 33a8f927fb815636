package diag

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"flint/internal/source"
)

const tabStop = 8

// Print renders the diagnostic to the sink: the message header, then, when
// the position is known, the source line with a caret line and an optional
// fix-it insertion line beneath it. progName, when non-empty, prefixes the
// header the way compiler drivers tag their output.
func (d *Diagnostic) Print(s Sink, progName string) {
	useColor := s.ColorCapable()
	bold := []color.Attribute{color.Bold}

	if progName != "" {
		writeColored(s, useColor, bold, progName+": ")
	}
	if d.Name != "" {
		header := d.Name
		if header == "-" {
			header = "<stdin>"
		}
		if d.Line != -1 {
			header += ":" + strconv.Itoa(d.Line)
			if d.Col != -1 {
				header += ":" + strconv.Itoa(d.Col+1)
			}
		}
		writeColored(s, useColor, bold, header+": ")
	}
	writeColored(s, useColor, d.Kind.attrs(), d.Kind.Label())
	writeColored(s, useColor, bold, d.Message)
	io.WriteString(s, "\n")

	if d.Line == -1 || d.Col == -1 {
		return
	}

	line := d.LineText
	for i := 0; i < len(line); i++ {
		if line[i]&0x80 != 0 {
			// Raw byte columns cannot place annotations under multibyte
			// text; show the line alone instead of misaligned markers.
			printSourceLine(s, line)
			return
		}
	}

	// One extra cell so a caret at the end-of-line column has a home.
	caret := bytes.Repeat([]byte{' '}, len(line)+1)
	for _, r := range d.Ranges {
		end := min(r.End, len(caret))
		for i := r.Start; i < end; i++ {
			caret[i] = '~'
		}
	}

	fixit := d.buildFixItLine(caret)

	col := min(d.Col, len(line))
	caret[col] = '^' // the caret wins over any tilde at its column

	// Trim after caret placement so the caret itself is never trimmed.
	caret = bytes.TrimRight(caret, " ")

	printSourceLine(s, line)
	writeAligned(s, useColor, []color.Attribute{color.FgGreen, color.Bold}, line, caret)
	if len(fixit) > 0 {
		writeAligned(s, false, nil, line, fixit)
	}
}

// buildFixItLine lays the sorted fix-its into a blank-padded insertion line
// and marks each one's removal span with '~' on the caret line. Fix-its
// whose text cannot be shown inline, or whose range misses the diagnostic's
// line, are skipped.
func (d *Diagnostic) buildFixItLine(caret []byte) []byte {
	if len(d.FixIts) == 0 {
		return nil
	}

	lineStart := d.Loc - source.Loc(d.Col)
	lineEnd := lineStart + source.Loc(len(d.LineText))

	var fixit []byte
	prevEndCol := 0
	for _, f := range d.FixIts {
		if strings.ContainsAny(f.Text, "\n\r\t") {
			continue
		}
		r := f.Range
		if r.Start > lineEnd || r.End < lineStart {
			continue
		}

		firstCol := 0
		if r.Start >= lineStart {
			firstCol = int(r.Start - lineStart)
		}

		// A hint starting inside or immediately after the previous one is
		// pushed right, with one separating blank, so insertions never run
		// together.
		hintCol := firstCol
		if hintCol < prevEndCol {
			hintCol = prevEndCol + 1
		}

		lastCol := hintCol + len(f.Text)
		for len(fixit) < lastCol {
			fixit = append(fixit, ' ')
		}
		copy(fixit[hintCol:], f.Text)
		prevEndCol = lastCol

		// Mark the removal span on the caret line regardless of where the
		// insertion landed.
		removeEnd := len(d.LineText)
		if r.End < lineEnd {
			removeEnd = int(r.End - lineStart)
		}
		for i := firstCol; i < removeEnd && i < len(caret); i++ {
			caret[i] = '~'
		}
	}
	return fixit
}

// printSourceLine writes the raw line, replacing each tab with enough
// spaces to reach the next tab stop.
func printSourceLine(s Sink, line string) {
	var b strings.Builder
	outCol := 0
	for i := 0; i < len(line); i++ {
		if line[i] != '\t' {
			b.WriteByte(line[i])
			outCol++
			continue
		}
		for {
			b.WriteByte(' ')
			outCol++
			if outCol%tabStop == 0 {
				break
			}
		}
	}
	b.WriteByte('\n')
	io.WriteString(s, b.String())
}

// writeAligned writes an annotation line beneath the source line, repeating
// the annotation byte across a tab's whole stop so the columns of all lines
// stay visually aligned.
func writeAligned(s Sink, useColor bool, attrs []color.Attribute, srcLine string, ann []byte) {
	var b strings.Builder
	outCol := 0
	for i := 0; i < len(ann); i++ {
		if i >= len(srcLine) || srcLine[i] != '\t' {
			b.WriteByte(ann[i])
			outCol++
			continue
		}
		for {
			b.WriteByte(ann[i])
			outCol++
			if outCol%tabStop == 0 {
				break
			}
		}
	}
	writeColored(s, useColor, attrs, b.String())
	io.WriteString(s, "\n")
}

func writeColored(s Sink, useColor bool, attrs []color.Attribute, text string) {
	if !useColor || len(attrs) == 0 {
		io.WriteString(s, text)
		return
	}
	c := color.New(attrs...)
	c.EnableColor()
	c.Fprint(s, text)
}
