package diag

import (
	"bytes"
	"strings"
	"testing"

	"flint/internal/source"
)

func TestEmitterIncludeStack(t *testing.T) {
	reg := source.NewRegistry()
	rootID := reg.AddBuffer("root.fl", []byte("line one\nline two\ninclude \"mid\"\n"), source.NoLoc)
	root := reg.Get(rootID)

	// mid.fl is included from root.fl line 3.
	midID := reg.AddBuffer("mid.fl", []byte("include \"leaf\"\n"), root.LocAt(18))
	mid := reg.Get(midID)

	// leaf.fl is included from mid.fl line 1.
	leafID := reg.AddBuffer("leaf.fl", []byte("bad token\n"), mid.LocAt(0))
	leaf := reg.Get(leafID)

	var out bytes.Buffer
	e := NewEmitter(reg, NewTextSink(&out, false), nil)
	e.Emit(leaf.LocAt(4), Error, "unexpected token", nil, nil)

	want := "Included from root.fl:3:\n" +
		"Included from mid.fl:1:\n" +
		"leaf.fl:1:5: error: unexpected token\n" +
		"bad token\n" +
		"    ^\n"
	if out.String() != want {
		t.Errorf("rendered:\n%q\nwant:\n%q", out.String(), want)
	}
	if e.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", e.ErrorCount())
	}
}

func TestEmitterRootBufferHasNoIncludeStack(t *testing.T) {
	reg := source.NewRegistry()
	id := reg.AddBuffer("root.fl", []byte("x\n"), source.NoLoc)

	var out bytes.Buffer
	e := NewEmitter(reg, NewTextSink(&out, false), nil)
	e.Emit(reg.Get(id).LocAt(0), Warning, "w", nil, nil)

	if strings.Contains(out.String(), "Included from") {
		t.Errorf("root buffer printed an include stack: %q", out.String())
	}
	if e.WarningCount() != 1 {
		t.Errorf("WarningCount = %d, want 1", e.WarningCount())
	}
}

func TestEmitterHandlerReplacesOutput(t *testing.T) {
	reg := source.NewRegistry()
	rootID := reg.AddBuffer("root.fl", []byte("a\nb\n"), source.NoLoc)
	incID := reg.AddBuffer("inc.fl", []byte("c\n"), reg.Get(rootID).LocAt(2))

	var handled []*Diagnostic
	var out bytes.Buffer
	e := NewEmitter(reg, NewTextSink(&out, false), func(d *Diagnostic) {
		handled = append(handled, d)
	})
	e.Emit(reg.Get(incID).LocAt(0), Error, "boom", nil, nil)

	if len(handled) != 1 || handled[0].Message != "boom" {
		t.Fatalf("handler saw %v", handled)
	}
	if out.Len() != 0 {
		t.Errorf("handler must replace all output, sink got %q", out.String())
	}
	if e.ErrorCount() != 1 {
		t.Errorf("ErrorCount = %d, want 1", e.ErrorCount())
	}
}

func TestEmitterErrorf(t *testing.T) {
	reg := source.NewRegistry()
	id := reg.AddBuffer("root.fl", []byte("oops\n"), source.NoLoc)

	var out bytes.Buffer
	e := NewEmitter(reg, NewTextSink(&out, false), nil)
	e.SetProgName("flint")
	e.Errorf(reg.Get(id).LocAt(0), "bad %s", "thing")

	if !strings.HasPrefix(out.String(), "flint: root.fl:1:1: error: bad thing\n") {
		t.Errorf("rendered %q", out.String())
	}
}
