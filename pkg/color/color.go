// Package color maps symbolic color names to ANSI escape sequences and
// wraps text with them. It is deliberately small: the table renderer only
// needs named foreground colors, an on/off escape pair per name, and a way
// to strip escapes for width measurement.
package color

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Color is a symbolic color name. The zero value means "no color".
type Color string

const (
	None Color = ""

	Black   Color = "black"
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Magenta Color = "magenta"
	Cyan    Color = "cyan"
	White   Color = "white"

	BrightBlack   Color = "bright_black"
	BrightRed     Color = "bright_red"
	BrightGreen   Color = "bright_green"
	BrightYellow  Color = "bright_yellow"
	BrightBlue    Color = "bright_blue"
	BrightMagenta Color = "bright_magenta"
	BrightCyan    Color = "bright_cyan"
	BrightWhite   Color = "bright_white"
)

var palette = map[Color]termenv.ANSIColor{
	Black:         termenv.ANSIBlack,
	Red:           termenv.ANSIRed,
	Green:         termenv.ANSIGreen,
	Yellow:        termenv.ANSIYellow,
	Blue:          termenv.ANSIBlue,
	Magenta:       termenv.ANSIMagenta,
	Cyan:          termenv.ANSICyan,
	White:         termenv.ANSIWhite,
	BrightBlack:   termenv.ANSIBrightBlack,
	BrightRed:     termenv.ANSIBrightRed,
	BrightGreen:   termenv.ANSIBrightGreen,
	BrightYellow:  termenv.ANSIBrightYellow,
	BrightBlue:    termenv.ANSIBrightBlue,
	BrightMagenta: termenv.ANSIBrightMagenta,
	BrightCyan:    termenv.ANSIBrightCyan,
	BrightWhite:   termenv.ANSIBrightWhite,
}

// Lookup resolves a color name, reporting whether it is known.
// The empty name resolves to None.
func Lookup(name string) (Color, bool) {
	if name == "" {
		return None, true
	}
	c := Color(name)
	_, ok := palette[c]
	return c, ok
}

// Sequence returns the escape pair for c: the sequence that turns the color
// on and the sequence that resets it. Both are empty for None and for
// unknown names.
func Sequence(c Color) (on, off string) {
	ansiColor, ok := palette[c]
	if !ok {
		return "", ""
	}
	return termenv.CSI + ansiColor.Sequence(false) + "m",
		termenv.CSI + termenv.ResetSeq + "m"
}

// Apply wraps s in the escape pair for c. It is a no-op for None, unknown
// names, and the empty string.
func Apply(s string, c Color) string {
	if s == "" {
		return s
	}
	on, off := Sequence(c)
	if on == "" {
		return s
	}
	return on + s + off
}

// Strip removes all ANSI escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}

// Width returns the display width of s with escape sequences ignored.
func Width(s string) int {
	return ansi.StringWidth(s)
}
