package diag

import (
	"testing"

	"flint/internal/source"
)

func TestNewUnknownLocation(t *testing.T) {
	reg := source.NewRegistry()
	reg.AddBuffer("a.fl", []byte("text\n"), source.NoLoc)

	fixits := []FixIt{
		{Range: source.MakeRange(9, 10), Text: "later"},
		{Range: source.MakeRange(5, 6), Text: "earlier"},
	}
	d := New(reg, source.NoLoc, Warning, "something odd", []source.Range{source.MakeRange(5, 6)}, fixits)

	if d.Name != UnknownName {
		t.Errorf("Name = %q, want %q", d.Name, UnknownName)
	}
	if d.Line != -1 || d.Col != -1 {
		t.Errorf("position = %d:%d, want -1:-1", d.Line, d.Col)
	}
	if d.LineText != "" {
		t.Errorf("LineText = %q, want empty", d.LineText)
	}
	if len(d.Ranges) != 0 {
		t.Errorf("ranges must be dropped without a location, got %v", d.Ranges)
	}
	// Fix-its survive, sorted by range start.
	if len(d.FixIts) != 2 || d.FixIts[0].Text != "earlier" || d.FixIts[1].Text != "later" {
		t.Errorf("fix-its not retained in sorted order: %v", d.FixIts)
	}
}

func TestNewResolvesPosition(t *testing.T) {
	reg := source.NewRegistry()
	id := reg.AddBuffer("a.fl", []byte("let x = ;\nlet y = 1;\n"), source.NoLoc)
	buf := reg.Get(id)

	d := New(reg, buf.LocAt(8), Error, "expected expression", nil, nil)

	if d.Name != "a.fl" {
		t.Errorf("Name = %q, want a.fl", d.Name)
	}
	if d.Line != 1 || d.Col != 8 {
		t.Errorf("position = %d:%d, want 1:8", d.Line, d.Col)
	}
	if d.LineText != "let x = ;" {
		t.Errorf("LineText = %q, want %q", d.LineText, "let x = ;")
	}
}

func TestNewClipsRanges(t *testing.T) {
	reg := source.NewRegistry()
	id := reg.AddBuffer("a.fl", []byte("first line\nsecond line\nthird line\n"), source.NoLoc)
	buf := reg.Get(id)

	// Diagnostic sits on "second line" (offsets 11..21).
	loc := buf.LocAt(13)
	ranges := []source.Range{
		source.MakeRange(buf.LocAt(12), buf.LocAt(18)), // within the line
		source.MakeRange(buf.LocAt(5), buf.LocAt(15)),  // starts on line 1, clipped
		source.MakeRange(buf.LocAt(15), buf.LocAt(30)), // runs onto line 3, clipped
		source.MakeRange(buf.LocAt(0), buf.LocAt(4)),   // wholly on line 1, dropped
		{}, // invalid, dropped
	}
	d := New(reg, loc, Error, "boom", ranges, nil)

	want := []ColumnRange{
		{Start: 1, End: 7},
		{Start: 0, End: 4},
		{Start: 4, End: 11},
	}
	if len(d.Ranges) != len(want) {
		t.Fatalf("got %d ranges (%v), want %d", len(d.Ranges), d.Ranges, len(want))
	}
	for i, r := range want {
		if d.Ranges[i] != r {
			t.Errorf("range %d = %v, want %v", i, d.Ranges[i], r)
		}
	}
}

func TestLineAround(t *testing.T) {
	data := []byte("ab\rcd\nef")
	cases := []struct {
		off, start, end int
	}{
		{0, 0, 2}, // "ab", stops at '\r'
		{3, 3, 5}, // "cd"
		{4, 3, 5},
		{6, 6, 8}, // "ef"
		{8, 6, 8}, // end of buffer
	}
	for _, tc := range cases {
		start, end := lineAround(data, tc.off)
		if start != tc.start || end != tc.end {
			t.Errorf("lineAround(%d) = (%d, %d), want (%d, %d)",
				tc.off, start, end, tc.start, tc.end)
		}
	}
}

func TestScanAndIndexAgreeOnBoundaries(t *testing.T) {
	reg := source.NewRegistry()
	content := []byte("one\ntwo\nthree")
	id := reg.AddBuffer("a.fl", content, source.NoLoc)
	buf := reg.Get(id)

	for off := 0; off < len(content); off++ {
		if content[off] == '\n' {
			continue
		}
		start, end := lineAround(content, off)
		line, col := buf.LineAndColumn(buf.LocAt(off))
		if got := string(buf.Line(line)); got != string(content[start:end])+"\n" &&
			got != string(content[start:end]) {
			t.Errorf("offset %d: scan line %q vs indexed line %q",
				off, content[start:end], got)
		}
		if wantCol := off - start + 1; col != wantCol {
			t.Errorf("offset %d: column %d, want %d", off, col, wantCol)
		}
	}
}
