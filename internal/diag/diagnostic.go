package diag

import (
	"flint/internal/source"
)

// FixIt suggests replacing a source range with new text. Replacement text
// containing a newline, carriage return or tab is kept on the diagnostic but
// skipped at render time.
type FixIt struct {
	Range source.Range
	Text  string
}

// ColumnRange is a half-open [Start, End) pair of 0-based byte columns
// within the diagnostic's line.
type ColumnRange struct {
	Start int
	End   int
}

// Diagnostic is an immutable snapshot of one reported problem. Build it with
// New; every field is resolved there and never mutated afterwards.
type Diagnostic struct {
	// Loc is the original location, kept for include-stack resolution and
	// for fix-it column math. NoLoc when the location was unknown.
	Loc source.Loc

	// Name identifies the owning buffer, or "<unknown>".
	Name string

	// Line is 1-based, -1 when unknown.
	Line int

	// Col is the 0-based byte column, -1 when unknown. Rendering displays
	// it 1-based.
	Col int

	Kind    Kind
	Message string

	// LineText is the raw text of the line containing Loc, without its
	// terminator.
	LineText string

	// Ranges are the highlight ranges clipped to LineText.
	Ranges []ColumnRange

	// FixIts is sorted by (range start, range end).
	FixIts []FixIt
}
