// Package text measures and truncates strings by terminal display
// cells rather than bytes or runes.
package text

import (
	"strings"

	"github.com/muesli/ansi"
	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells s occupies. ANSI escape
// sequences count as zero.
func Width(s string) int {
	return ansi.PrintableRuneWidth(s)
}

// Truncate cuts s to at most max cells without splitting grapheme
// clusters, appending an ellipsis when anything was cut. Styled input
// should be truncated before styling, not after.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= max {
		return s
	}

	budget := max - 1 // ellipsis takes the last cell
	var b strings.Builder
	width := 0

	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if width+w > budget {
			break
		}
		b.WriteString(g.Str())
		width += w
	}

	return b.String() + "…"
}
