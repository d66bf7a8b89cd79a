package table

import (
	"fmt"

	"github.com/arthur-debert/tabloid/pkg/color"
	"github.com/arthur-debert/tabloid/pkg/rows"
)

// FormatterFunc produces the display text for a raw column value.
type FormatterFunc func(v interface{}) string

// Formatter is the tagged configuration for a formatting customization:
// either a function or a printf pattern. The zero value formats a value as
// its plain text form.
type Formatter struct {
	fn      FormatterFunc
	pattern string
}

// FormatUsing builds a Formatter from a function.
func FormatUsing(fn FormatterFunc) Formatter {
	return Formatter{fn: fn}
}

// FormatWith builds a Formatter from a printf pattern. The pattern's verb
// must match the value's kind, as with fmt.Sprintf.
func FormatWith(pattern string) Formatter {
	return Formatter{pattern: pattern}
}

func (f Formatter) isZero() bool {
	return f.fn == nil && f.pattern == ""
}

func (f Formatter) apply(v interface{}) string {
	switch {
	case f.fn != nil:
		return f.fn(v)
	case f.pattern != "":
		return fmt.Sprintf(f.pattern, v)
	default:
		return rows.Some(v).String()
	}
}

// ColorizerFunc picks a color for a raw column value. Returning color.None
// leaves the cell uncolored.
type ColorizerFunc func(v interface{}) color.Color

// Colorizer is the tagged configuration for a color customization: either
// a function or a fixed color name.
type Colorizer struct {
	fn   ColorizerFunc
	name color.Color
}

// ColorizeUsing builds a Colorizer from a function.
func ColorizeUsing(fn ColorizerFunc) Colorizer {
	return Colorizer{fn: fn}
}

// ColorizeWith builds a Colorizer that always uses the given color.
func ColorizeWith(c color.Color) Colorizer {
	return Colorizer{name: c}
}

func (c Colorizer) isZero() bool {
	return c.fn == nil && c.name == color.None
}

func (c Colorizer) apply(v interface{}) color.Color {
	if c.fn != nil {
		return c.fn(v)
	}
	return c.name
}

// RowColorizer picks a color for a whole logical row, overriding every
// cell's color when it returns something other than color.None. It
// receives the row's index and its extracted values.
type RowColorizer func(index int, values []rows.Value) color.Color
