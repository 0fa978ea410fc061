package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

func TruncateWithTail(txt string, width uint, ellipsis string) string {
	return truncate.StringWithTail(txt, width, ellipsis)
}

// OneLine collapses newlines so multi-line fields fit a list row
func OneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Width is the number of terminal cells s occupies. Emoji are two cells wide.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
