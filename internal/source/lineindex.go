package source

import (
	"fmt"
	"math"
	"sort"

	"fortio.org/safecast"
)

// offsetWidth selects the integer width used to store newline offsets.
type offsetWidth uint8

const (
	width8 offsetWidth = iota
	width16
	width32
	width64
)

// offsetWidthFor returns the narrowest width whose maximum value covers every
// byte offset of a buffer of the given size.
func offsetWidthFor(size uint64) offsetWidth {
	switch {
	case size <= math.MaxUint8:
		return width8
	case size <= math.MaxUint16:
		return width16
	case size <= math.MaxUint32:
		return width32
	default:
		return width64
	}
}

// offsetSeq is an ordered sequence of '\n' byte offsets. The concrete type is
// one of the four fixed-width variants, chosen once per buffer; no operation
// mixes widths.
type offsetSeq interface {
	count() int
	at(i int) uint64
}

type offsetsOf[T uint8 | uint16 | uint32 | uint64] []T

func (s offsetsOf[T]) count() int { return len(s) }

func (s offsetsOf[T]) at(i int) uint64 { return uint64(s[i]) }

func scanNewlines[T uint8 | uint16 | uint32 | uint64](content []byte) offsetSeq {
	out := make(offsetsOf[T], 0)
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[T](i)
			if err != nil {
				panic(fmt.Errorf("newline offset overflow: %w", err))
			}
			out = append(out, off)
		}
	}
	return out
}

// lineIndex caches the newline offsets of one buffer. The table is built at
// most once; first-time population must not race with a concurrent read.
type lineIndex struct {
	tab offsetSeq
}

func (x *lineIndex) offsets(content []byte) offsetSeq {
	if x.tab != nil {
		return x.tab
	}
	switch offsetWidthFor(uint64(len(content))) {
	case width8:
		x.tab = scanNewlines[uint8](content)
	case width16:
		x.tab = scanNewlines[uint16](content)
	case width32:
		x.tab = scanNewlines[uint32](content)
	default:
		x.tab = scanNewlines[uint64](content)
	}
	return x.tab
}

// lineAt returns the [start, end) byte range of the line containing off,
// where end includes the terminating '\n' if there is one, and the 1-based
// line number. off may equal len(content), addressing the trailing line.
func (x *lineIndex) lineAt(content []byte, off int) (start, end, line int) {
	tab := x.offsets(content)
	// The first newline at or after off is the one that ends off's line
	// (including off pointing at the newline itself).
	eol := sort.Search(tab.count(), func(i int) bool {
		return tab.at(i) >= uint64(off)
	})
	start = 0
	if eol > 0 {
		start = int(tab.at(eol-1)) + 1
	}
	end = len(content)
	if eol < tab.count() {
		end = int(tab.at(eol)) + 1
	}
	return start, end, eol + 1
}

// lineSpan returns the [start, end) byte range of 1-based line n. Asking for
// the line after the last newline returns the trailing partial line; any
// other out-of-range line yields an empty span at the end of the buffer.
func (x *lineIndex) lineSpan(content []byte, n int) (start, end int) {
	tab := x.offsets(content)
	size := tab.count()
	switch line := n - 1; {
	case line >= 0 && line < size:
		if line > 0 {
			start = int(tab.at(line-1)) + 1
		}
		end = int(tab.at(line)) + 1
	case line == size:
		if size > 0 {
			start = int(tab.at(size-1)) + 1
		}
		end = len(content)
	default:
		start, end = len(content), len(content)
	}
	return start, end
}
