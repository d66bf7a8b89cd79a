// Package table renders tabular data as aligned, optionally colorized,
// fixed-width text for terminal output.
//
// A Table is configured through setters and customization calls, then
// rendered with Render. Rendering is a pure computation over the current
// state: every derived structure (aliases, row contexts, cell matrix,
// column widths) is rebuilt on each call, so rendering is idempotent as
// long as the table is not mutated in between. Tables are not safe for
// concurrent use; callers own the synchronization.
package table

import (
	"io"

	"github.com/arthur-debert/tabloid/pkg/align"
	"github.com/arthur-debert/tabloid/pkg/color"
	"github.com/arthur-debert/tabloid/pkg/errors"
	"github.com/arthur-debert/tabloid/pkg/logging"
)

// Layout selects how the table is oriented on screen.
type Layout string

const (
	// Horizontal renders columns as declared, one data row per line.
	Horizontal Layout = "horizontal"
	// Vertical transposes the output, one declared column per line.
	Vertical Layout = "vertical"
)

// DefaultColspan is the blank gutter width between adjacent columns.
const DefaultColspan = 2

// Table holds tabular data plus its presentation configuration.
type Table struct {
	title       string
	description string

	header  []string
	data    []interface{}
	aliases []string
	// explicit aliases survive later SetHeader calls
	aliasesExplicit bool

	styles  Styles
	noColor bool

	colspan      int
	layout       Layout
	defaultAlign align.Alignment
	// an explicit default alignment stops layout changes from resetting it
	alignExplicit bool
	alignments    map[int]align.Alignment

	def     *Context
	tops    []*Context
	bottoms []*Context
	nextID  int
}

// New creates an empty horizontal table with default styling.
func New() *Table {
	t := &Table{
		colspan:      DefaultColspan,
		layout:       Horizontal,
		defaultAlign: align.Right,
		alignments:   make(map[int]align.Alignment),
		nextID:       1,
	}
	t.def = newContext(t, 0, 0)
	return t
}

// SetTitle sets the title line rendered above the table.
func (t *Table) SetTitle(title string) { t.title = title }

// Title returns the configured title.
func (t *Table) Title() string { return t.title }

// SetDescription sets the description line rendered below the title.
func (t *Table) SetDescription(desc string) { t.description = desc }

// Description returns the configured description.
func (t *Table) Description() string { return t.description }

// SetColspan sets the blank gutter width between columns.
func (t *Table) SetColspan(n int) {
	if n < 0 {
		n = 0
	}
	t.colspan = n
}

// Colspan returns the gutter width between columns.
func (t *Table) Colspan() int { return t.colspan }

// SetStyles replaces the role-to-color style map.
func (t *Table) SetStyles(s Styles) { t.styles = s }

// Styles returns the current style map.
func (t *Table) Styles() Styles { return t.styles }

// DisableColors turns off all color output: the style map is zeroed and
// per-cell colors are ignored at render time.
func (t *Table) DisableColors() {
	t.noColor = true
	t.styles = Styles{}
}

// SetLayout switches between horizontal and vertical rendering. An
// unsupported value fails without mutating the current layout. Unless the
// caller has set an explicit default alignment, switching layout also
// switches the default: right for horizontal, left for vertical.
func (t *Table) SetLayout(l Layout) error {
	switch l {
	case Horizontal, Vertical:
	default:
		return errors.Newf(errors.ErrUnsupportedLayout, "unsupported layout: %s", l)
	}
	t.layout = l
	if !t.alignExplicit {
		if l == Vertical {
			t.defaultAlign = align.Left
		} else {
			t.defaultAlign = align.Right
		}
	}
	return nil
}

// Layout returns the current layout.
func (t *Table) Layout() Layout { return t.layout }

// SetDefaultAlignment sets the table-wide alignment for columns without an
// explicit override. Once set, layout changes no longer reset it.
func (t *Table) SetDefaultAlignment(a align.Alignment) {
	t.defaultAlign = a
	t.alignExplicit = true
}

// DefaultAlignment returns the table-wide default alignment.
func (t *Table) DefaultAlignment() align.Alignment { return t.defaultAlign }

// SetHeader sets the header texts, one per column. Header entries may
// contain line breaks. Unless aliases were set explicitly, column aliases
// are re-derived from the header text. Once a header is set it defines the
// visible column count.
func (t *Table) SetHeader(header []string) {
	t.header = append([]string(nil), header...)
	if !t.aliasesExplicit {
		t.aliases = deriveAliases(t.header)
	}
}

// Header returns the configured header texts.
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// SetAliases sets explicit column aliases, overriding header derivation.
func (t *Table) SetAliases(aliases []string) {
	t.aliases = append([]string(nil), aliases...)
	t.aliasesExplicit = true
}

// Aliases returns the current column aliases.
func (t *Table) Aliases() []string {
	return append([]string(nil), t.aliases...)
}

// SetData replaces the table's rows. Each row may be an ordered slice, a
// string-keyed map resolved against the aliases, or a rows.Extractor.
func (t *Table) SetData(data []interface{}) {
	t.data = append([]interface{}(nil), data...)
}

// Add appends a single row to the table's data.
func (t *Table) Add(row interface{}) {
	t.data = append(t.data, row)
}

// Align sets the alignment for the referenced columns. A column reference
// is a zero-based index or an alias; an alias that does not resolve is a
// configuration error.
func (t *Table) Align(a align.Alignment, refs ...interface{}) error {
	for _, ref := range refs {
		idx, ok := t.Resolve(ref)
		if !ok {
			return errors.Newf(errors.ErrUndefinedColumn, "undefined column: %v", ref)
		}
		t.alignments[idx] = a
	}
	return nil
}

// Default returns the default context, which applies to every row not
// claimed by a top or bottom group.
func (t *Table) Default() *Context { return t.def }

// Format registers a formatter on the default context.
func (t *Table) Format(f Formatter, refs ...interface{}) {
	t.def.Format(f, refs...)
}

// FormatNull registers the default context's null-value formatter.
func (t *Table) FormatNull(f Formatter) {
	t.def.FormatNull(f)
}

// Colorize registers a colorizer on the default context.
func (t *Table) Colorize(c Colorizer, refs ...interface{}) {
	t.def.Colorize(c, refs...)
}

// ColorizeNull registers the default context's null-value colorizer.
func (t *Table) ColorizeNull(c Colorizer) {
	t.def.ColorizeNull(c)
}

// ColorizeRow registers the default context's whole-row colorizer.
func (t *Table) ColorizeRow(fn RowColorizer) {
	t.def.ColorizeRow(fn)
}

// Top declares a context claiming the next n unclaimed rows from the start
// of the data. The configure block receives the new context so that
// registrations inside it target the group; it must not declare further
// top or bottom groups.
func (t *Table) Top(n int, configure func(*Context)) *Context {
	ctx := newContext(t, t.nextID, n)
	t.nextID++
	t.tops = append(t.tops, ctx)
	if configure != nil {
		configure(ctx)
	}
	return ctx
}

// Bottom declares a context claiming rows from the end of the data; the
// first-declared bottom group claims the latest rows. Bottom claims are
// applied after top claims, so when declared spans overlap the bottom
// group wins for the shared rows.
func (t *Table) Bottom(n int, configure func(*Context)) *Context {
	ctx := newContext(t, t.nextID, n)
	t.nextID++
	t.bottoms = append(t.bottoms, ctx)
	if configure != nil {
		configure(ctx)
	}
	return ctx
}

// Print writes the rendered table to w.
func (t *Table) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.Render())
	return err
}

// Width renders the table and returns the display width of its longest
// line, with color escapes stripped.
func (t *Table) Width() int {
	rendered := t.Render()
	max := 0
	start := 0
	for i := 0; i <= len(rendered); i++ {
		if i == len(rendered) || rendered[i] == '\n' {
			if w := color.Width(rendered[start:i]); w > max {
				max = w
			}
			start = i + 1
		}
	}
	return max
}

var log = logging.GetLogger("table")
