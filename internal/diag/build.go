package diag

import (
	"fmt"
	"sort"

	"flint/internal/source"
)

// UnknownName is the buffer identifier used when a diagnostic has no
// location.
const UnknownName = "<unknown>"

// New resolves a location into an immutable Diagnostic. An invalid loc
// yields an unknown-position diagnostic with the highlight ranges dropped;
// the fix-its are kept either way, sorted by range. A valid loc must belong
// to a registered buffer.
func New(reg *source.Registry, loc source.Loc, kind Kind, msg string, ranges []source.Range, fixits []FixIt) *Diagnostic {
	d := &Diagnostic{
		Loc:     loc,
		Name:    UnknownName,
		Line:    -1,
		Col:     -1,
		Kind:    kind,
		Message: msg,
	}
	if len(fixits) > 0 {
		d.FixIts = make([]FixIt, len(fixits))
		copy(d.FixIts, fixits)
		sort.SliceStable(d.FixIts, func(i, j int) bool {
			a, b := d.FixIts[i].Range, d.FixIts[j].Range
			if a.Start != b.Start {
				return a.Start < b.Start
			}
			return a.End < b.End
		})
	}
	if !loc.IsValid() {
		return d
	}

	id := reg.FindBufferContaining(loc)
	if id == 0 {
		panic(fmt.Errorf("diag: location %d not in any registered buffer", loc))
	}
	buf := reg.Get(id)
	d.Name = buf.Name()

	// Pull the raw line with a direct scan rather than the cached index:
	// construction needs exactly one line, not repeated column queries.
	data := buf.Data()
	off := buf.OffsetOf(loc)
	start, end := lineAround(data, off)
	d.LineText = string(data[start:end])

	lineStart := buf.LocAt(start)
	lineEnd := buf.LocAt(end)
	for _, r := range ranges {
		if !r.IsValid() {
			continue
		}
		// Drop ranges that never touch this line, clip the rest to it.
		if r.Start > lineEnd || r.End < lineStart {
			continue
		}
		if r.Start < lineStart {
			r.Start = lineStart
		}
		if r.End > lineEnd {
			r.End = lineEnd
		}
		d.Ranges = append(d.Ranges, ColumnRange{
			Start: int(r.Start - lineStart),
			End:   int(r.End - lineStart),
		})
	}

	line, col := reg.LineAndColumn(loc, id)
	d.Line = line
	d.Col = col - 1
	return d
}

// lineAround scans outward from off to the enclosing line terminators and
// returns the line's [start, end) byte range, terminator excluded.
func lineAround(data []byte, off int) (start, end int) {
	start = off
	for start > 0 && data[start-1] != '\n' && data[start-1] != '\r' {
		start--
	}
	end = off
	for end < len(data) && data[end] != '\n' && data[end] != '\r' {
		end++
	}
	return start, end
}
