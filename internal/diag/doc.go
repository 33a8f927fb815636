// Package diag builds and renders source diagnostics on top of the buffer
// registry in internal/source.
//
// # Data model
//
// Diagnostic is an immutable snapshot captured at construction time: buffer
// name, 1-based line (-1 when unknown), 0-based column (-1 when unknown),
// kind, message, the raw text of the offending line, highlight ranges
// already clipped to that line, and fix-it suggestions sorted by range.
// Once built, nothing consults the registry again; rendering works from the
// snapshot alone.
//
// # Emitting
//
// Emitter binds a source.Registry to an output Sink and an optional Handler
// injected at construction. Emit resolves a location into a Diagnostic and
// prints it, preceded by the root-first chain of "Included from" lines when
// the location sits in an include-loaded buffer. A non-nil Handler replaces
// both the include stack and the default rendering.
//
// # Rendering
//
// Print writes the message header, then a source snippet with a caret line
// ('^' at the diagnostic column, '~' across highlight ranges) and, when any
// usable fix-its exist, an insertion line beneath it. Tabs expand to 8-column
// stops in lockstep across all three lines. Columns are raw byte offsets:
// a line containing any non-ASCII byte is printed without the caret block
// rather than shown with misaligned annotations.
//
// Bag aggregates diagnostics for phases that collect before printing, with
// deterministic sorting and deduplication.
package diag
