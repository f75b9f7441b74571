package console

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "..."

// fitLine joins the fields of text with single spaces and cuts the result to
// width display cells.
func fitLine(text string, width int) string {
	return cut(strings.Join(strings.Fields(text), " "), width)
}

// cut shortens line to width display cells, ending it with an ellipsis.
// A width of zero or less yields "".
func cut(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, ellipsis)
}
