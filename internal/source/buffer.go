package source

import "fmt"

// BufferID identifies a registered buffer. IDs start at 1 and are never
// reused or invalidated; 0 means "none".
type BufferID uint32

// Buffer is an immutable block of source bytes registered with a Registry,
// together with its identifying name, its slice of the global location space
// and its lazily built newline index. Buffers are owned by the Registry for
// the life of the process; nothing mutates them after registration.
type Buffer struct {
	id         BufferID
	name       string
	data       []byte
	base       Loc
	includeLoc Loc
	index      lineIndex
}

func (b *Buffer) ID() BufferID { return b.id }

// Name returns the identifier the buffer was registered under, typically a
// file path or a <stdin>-style pseudo name.
func (b *Buffer) Name() string { return b.name }

// Data returns the buffer content. Callers must not modify it.
func (b *Buffer) Data() []byte { return b.data }

func (b *Buffer) Size() int { return len(b.data) }

// Start returns the location of the first byte.
func (b *Buffer) Start() Loc { return b.base }

// End returns the location one past the last byte. End itself is a valid
// location within the buffer, mirroring a pointer to the terminating
// position.
func (b *Buffer) End() Loc { return b.base + Loc(len(b.data)) }

// IncludeLoc returns the location this buffer was included from, or NoLoc
// for a root buffer.
func (b *Buffer) IncludeLoc() Loc { return b.includeLoc }

// Contains reports whether loc falls within [Start, End].
func (b *Buffer) Contains(loc Loc) bool {
	return loc >= b.base && loc <= b.End()
}

// OffsetOf converts a location inside the buffer to a byte offset. The
// location must belong to this buffer.
func (b *Buffer) OffsetOf(loc Loc) int {
	if !b.Contains(loc) {
		panic(fmt.Errorf("source: location %d outside buffer %q [%d, %d]",
			loc, b.name, b.base, b.End()))
	}
	return int(loc - b.base)
}

// LocAt converts a byte offset into a location. Offset len(data) addresses
// the end position.
func (b *Buffer) LocAt(off int) Loc {
	if off < 0 || off > len(b.data) {
		panic(fmt.Errorf("source: offset %d outside buffer %q of size %d",
			off, b.name, len(b.data)))
	}
	return b.base + Loc(off)
}

// LineAndColumn resolves a location inside the buffer to its 1-based line
// number and 1-based byte column.
func (b *Buffer) LineAndColumn(loc Loc) (int, int) {
	off := b.OffsetOf(loc)
	start, _, line := b.index.lineAt(b.data, off)
	return line, off - start + 1
}

// LineNumber resolves a location to its 1-based line number.
func (b *Buffer) LineNumber(loc Loc) int {
	line, _ := b.LineAndColumn(loc)
	return line
}

// Line returns the text of 1-based line n, including the terminating newline
// when present. Out-of-range lines come back empty rather than failing.
func (b *Buffer) Line(n int) []byte {
	start, end := b.index.lineSpan(b.data, n)
	return b.data[start:end]
}
