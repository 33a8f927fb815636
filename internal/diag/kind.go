package diag

import (
	"fmt"

	"github.com/fatih/color"
)

// Kind classifies a diagnostic. The constant order encodes severity,
// highest first.
type Kind uint8

const (
	Error Kind = iota
	Warning
	Note
	Remark
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Remark:
		return "remark"
	}
	return "unknown"
}

// Label returns the fixed rendering label, colon and trailing space
// included.
func (k Kind) Label() string {
	return k.String() + ": "
}

// attrs returns the fixed display color for the kind's label.
func (k Kind) attrs() []color.Attribute {
	switch k {
	case Error:
		return []color.Attribute{color.FgRed, color.Bold}
	case Warning:
		return []color.Attribute{color.FgMagenta, color.Bold}
	case Note:
		return []color.Attribute{color.FgBlack, color.Bold}
	case Remark:
		return []color.Attribute{color.FgBlue, color.Bold}
	}
	return []color.Attribute{color.Bold}
}

// ParseKind converts a kind name as accepted on the command line.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "error":
		return Error, nil
	case "warning":
		return Warning, nil
	case "note":
		return Note, nil
	case "remark":
		return Remark, nil
	}
	return Error, fmt.Errorf("unknown diagnostic kind %q", s)
}
