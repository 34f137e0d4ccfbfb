package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// VisibleLength returns the number of terminal cells s occupies, ignoring
// ANSI codes. Wide characters count as two cells.
func VisibleLength(s string) int {
	return ansi.StringWidth(s)
}

// TruncateText truncates text to maxWidth cells with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}
	if ansi.StringWidth(text) <= maxWidth {
		return text, false
	}

	// Not enough room for any text plus ellipsis
	if maxWidth <= ansi.StringWidth(cfg.Ellipsis) {
		return ansi.Truncate(cfg.Ellipsis, maxWidth, ""), true
	}

	return ansi.Truncate(text, maxWidth, cfg.Ellipsis), true
}

// JoinEnds lays out left and right on a single line exactly width cells wide,
// truncating left when both don't fit. right is never truncated; it is
// dropped if it alone doesn't fit.
// Example: JoinEnds("Work", "12", 10, cfg) -> "Work    12"
func JoinEnds(left, right string, width int, cfg TextConfig) string {
	if width <= 0 {
		return ""
	}

	rightLen := ansi.StringWidth(right)
	if right == "" || rightLen+2 > width {
		text, _ := TruncateText(left, width, cfg)
		return text + strings.Repeat(" ", width-ansi.StringWidth(text))
	}

	// Keep at least one space between the two ends
	text, _ := TruncateText(left, width-rightLen-1, cfg)
	gap := width - ansi.StringWidth(text) - rightLen
	return text + strings.Repeat(" ", gap) + right
}
