package tui

import (
	"strings"
	"unicode/utf8"
)

// clampString cuts s to maxLen runes, marking the cut with an ellipsis.
// maxLen <= 0 disables clamping.
func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}
