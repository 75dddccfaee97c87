package common

import "github.com/mattn/go-runewidth"

// ScrollDeltaForHeight calculates proportional scroll delta.
// Returns max(1, height/factor) to ensure minimum 1 line scroll.
func ScrollDeltaForHeight(height, factor int) int {
	if factor <= 0 {
		return 1
	}
	delta := height / factor
	if delta < 1 {
		delta = 1
	}
	return delta
}

// TruncatePlain shortens plain text to width cells, appending tail when cut.
func TruncatePlain(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, tail)
}
