package query

import (
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
)

var (
	colorTitle = ansi.ColorFunc("yellow+b")
	colorArrow = ansi.ColorFunc("blue+b")
	colorCaret = ansi.ColorFunc("red+b")
	colorHint  = ansi.ColorFunc("cyan+b")
)

// FormatDiagnostic renders a diagnostic with the query and a caret under the offending fragment.
func FormatDiagnostic(err *ParseError, useColor bool) string {
	paint := func(fn func(string) string, s string) string {
		if useColor {
			return fn(s)
		}

		return s
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s\n", paint(colorTitle, "warning:"), err.Title)
	fmt.Fprintf(&sb, "%s'%s'\n\n", paint(colorArrow, " --> "), err.Query)
	fmt.Fprintf(&sb, "     %s\n", err.Query)

	length := max(err.Length, 1)
	underline := strings.Repeat("^", length)

	fmt.Fprintf(&sb, "     %s%s %s\n", strings.Repeat(" ", err.Position), paint(colorCaret, underline), err.Message)

	if hint := GetHint(err); hint != "" {
		fmt.Fprintf(&sb, "\n  %s %s\n", paint(colorHint, "hint:"), hint)
	}

	return sb.String()
}
