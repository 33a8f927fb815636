package diag

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Sink is where rendered diagnostics go: plain text writes plus a statement
// of whether the destination can show colors. Color use is gated entirely on
// that capability.
type Sink interface {
	io.Writer
	ColorCapable() bool
}

// TextSink wraps any writer with an explicit color capability. Tests render
// into a bytes.Buffer through it.
type TextSink struct {
	io.Writer
	Color bool
}

func NewTextSink(w io.Writer, colorCapable bool) *TextSink {
	return &TextSink{Writer: w, Color: colorCapable}
}

func (s *TextSink) ColorCapable() bool { return s.Color }

// TermSink writes to a file and advertises color when the file is a
// terminal.
type TermSink struct {
	f *os.File
}

func NewTermSink(f *os.File) *TermSink {
	return &TermSink{f: f}
}

func (s *TermSink) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *TermSink) ColorCapable() bool {
	return term.IsTerminal(int(s.f.Fd()))
}
