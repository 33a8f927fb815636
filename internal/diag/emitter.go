package diag

import (
	"fmt"

	"flint/internal/source"
)

// Handler is an externally supplied diagnostic strategy. A non-nil handler
// replaces default output entirely: no include stack, no rendering.
type Handler func(*Diagnostic)

// Emitter turns locations into diagnostics and delivers them. It is bound to
// one registry and one sink for its lifetime; the handler is injected once
// at construction and never swapped.
type Emitter struct {
	reg     *source.Registry
	out     Sink
	handler Handler

	progName  string
	errCount  int
	warnCount int
}

// NewEmitter builds an emitter. handler may be nil, selecting the default
// include-stack-plus-render output.
func NewEmitter(reg *source.Registry, out Sink, handler Handler) *Emitter {
	return &Emitter{reg: reg, out: out, handler: handler}
}

// SetProgName sets an optional program-name prefix for rendered headers.
func (e *Emitter) SetProgName(name string) {
	e.progName = name
}

// ErrorCount returns how many Error diagnostics have been emitted.
func (e *Emitter) ErrorCount() int { return e.errCount }

// WarningCount returns how many Warning diagnostics have been emitted.
func (e *Emitter) WarningCount() int { return e.warnCount }

// Emit builds a diagnostic at loc and delivers it.
func (e *Emitter) Emit(loc source.Loc, kind Kind, msg string, ranges []source.Range, fixits []FixIt) {
	e.Deliver(New(e.reg, loc, kind, msg, ranges, fixits))
}

// Errorf is shorthand for a formatted Error with no ranges or fix-its.
func (e *Emitter) Errorf(loc source.Loc, format string, args ...any) {
	e.Emit(loc, Error, fmt.Sprintf(format, args...), nil, nil)
}

// Deliver hands a built diagnostic to the handler, or prints the include
// stack and renders it when no handler is installed.
func (e *Emitter) Deliver(d *Diagnostic) {
	switch d.Kind {
	case Error:
		e.errCount++
	case Warning:
		e.warnCount++
	}

	if e.handler != nil {
		e.handler(d)
		return
	}

	if d.Loc.IsValid() {
		if id := e.reg.FindBufferContaining(d.Loc); id != 0 {
			e.printIncludeStack(e.reg.Get(id).IncludeLoc())
		}
	}
	d.Print(e.out, e.progName)
}

// printIncludeStack walks the chain of include locations root-first, so the
// outermost file prints before the one that directly included the
// diagnostic's buffer. A root buffer prints nothing.
func (e *Emitter) printIncludeStack(includeLoc source.Loc) {
	if !includeLoc.IsValid() {
		return
	}
	id := e.reg.FindBufferContaining(includeLoc)
	if id == 0 {
		panic(fmt.Errorf("diag: include location %d not in any registered buffer", includeLoc))
	}
	buf := e.reg.Get(id)
	e.printIncludeStack(buf.IncludeLoc())
	fmt.Fprintf(e.out, "Included from %s:%d:\n", buf.Name(), buf.LineNumber(includeLoc))
}
