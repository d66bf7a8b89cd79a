package table

import "github.com/arthur-debert/tabloid/pkg/color"

// Styles maps presentation roles to colors. The zero value renders
// everything uncolored.
type Styles struct {
	Title       color.Color
	Description color.Color
	Header      color.Color
	Value       color.Color
}

// DefaultStyles is the stock theme: cyan title, muted description,
// green header, uncolored values.
func DefaultStyles() Styles {
	return Styles{
		Title:       color.Cyan,
		Description: color.BrightBlack,
		Header:      color.Green,
		Value:       color.None,
	}
}
