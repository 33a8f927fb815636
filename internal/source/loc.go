package source

// Loc identifies a single byte inside one registered buffer. Locations live
// in a global offset space owned by the Registry: every buffer is assigned a
// disjoint [Start, End] slice of it, so a Loc can be compared and ordered
// like a raw pointer within its buffer. The zero value means "unknown".
type Loc uint64

// NoLoc is the invalid/unknown location sentinel.
const NoLoc Loc = 0

// IsValid reports whether the location refers to a registered byte.
func (l Loc) IsValid() bool {
	return l != NoLoc
}

// Range is a [Start, End] pair of locations inside one buffer. End may point
// one byte past the last byte covered. A range is invalid if either side is.
type Range struct {
	Start Loc
	End   Loc
}

// MakeRange builds a range from two locations.
func MakeRange(start, end Loc) Range {
	return Range{Start: start, End: end}
}

// IsValid reports whether both ends of the range are valid.
func (r Range) IsValid() bool {
	return r.Start.IsValid() && r.End.IsValid()
}
