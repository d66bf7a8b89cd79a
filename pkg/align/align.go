// Package align provides fixed-width text padding for column layout.
package align

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment selects which side of a fixed-width column the text hugs.
type Alignment string

const (
	// Default defers to the table-level alignment.
	Default Alignment = ""
	Left    Alignment = "left"
	Right   Alignment = "right"
)

// Valid reports whether a is a concrete alignment value.
func Valid(a Alignment) bool {
	return a == Left || a == Right
}

// Pad pads s with spaces to the given display width. Text wider than the
// target width is returned unchanged. Width is measured in terminal cells,
// not bytes.
func Pad(s string, width int, a Alignment) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	if a == Left {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}

// Width returns the display width of s in terminal cells.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
