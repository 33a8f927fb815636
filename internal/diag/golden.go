package diag

import (
	"fmt"
	"strings"
)

// FormatGolden renders diagnostics one per line in a stable, diff-friendly
// form used by golden tests and the CLI short format:
//
//	name:line:col: KIND message
//
// Positions print 1-based; diagnostics without a position drop the
// line:col part.
func FormatGolden(diags []Diagnostic) string {
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		if d.Line < 0 || d.Col < 0 {
			fmt.Fprintf(&b, "%s: %s %s\n", d.Name, strings.ToUpper(d.Kind.String()), d.Message)
			continue
		}
		fmt.Fprintf(&b, "%s:%d:%d: %s %s\n", d.Name, d.Line, d.Col+1, strings.ToUpper(d.Kind.String()), d.Message)
	}
	return b.String()
}
