package stats

import (
	"regexp"
	"strings"
)

var (
	lmsIDRe    = regexp.MustCompile(`\s*\(\d+\)\s*`)
	spaceRunRe = regexp.MustCompile(`\s+`)
)

// ShortenLabel strips the parenthesized LMS assignment ids from a column
// name, collapses whitespace, and truncates to width with an ellipsis.
// Keeps chart axes readable for long Canvas-style names.
func ShortenLabel(label string, width int) string {
	s := lmsIDRe.ReplaceAllString(label, " ")
	s = strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(r[:width-1])) + "…"
}
