package table

import (
	"strings"

	"github.com/arthur-debert/tabloid/pkg/align"
	"github.com/arthur-debert/tabloid/pkg/color"
)

// Render assembles the table into its final text form: header physical
// rows, data physical rows, optional transposition for vertical layout,
// width-aware alignment, coloring, and the title/description prefix.
func (t *Table) Render() string {
	matrix := append(t.buildHeaderRows(), t.buildDataRows()...)
	if t.layout == Vertical {
		matrix = transpose(matrix)
	}

	widths := columnWidths(matrix)

	log.Trace().
		Int("rows", len(t.data)).
		Int("physicalRows", len(matrix)).
		Int("columns", len(widths)).
		Str("layout", string(t.layout)).
		Msg("rendering table")

	var b strings.Builder
	if t.title != "" {
		b.WriteString(t.paint(t.title, t.styles.Title))
		b.WriteByte('\n')
	}
	if t.description != "" {
		b.WriteString(t.paint(t.description, t.styles.Description))
		b.WriteByte('\n')
	}

	gutter := strings.Repeat(" ", t.colspan)
	for _, row := range matrix {
		parts := make([]string, len(row))
		for c, cl := range row {
			parts[c] = t.renderCell(cl, c, widths[c])
		}
		line := strings.Join(parts, gutter)
		b.WriteString(strings.TrimRight(line, " \t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderCell pads a cell to its column width and colors the text, leaving
// the padding uncolored so alignment survives escape-aware consumers.
func (t *Table) renderCell(cl cell, col, width int) string {
	a := t.alignments[col]
	if !align.Valid(a) {
		a = t.defaultAlign
	}

	gap := width - align.Width(cl.text)
	if gap < 0 {
		gap = 0
	}
	pad := strings.Repeat(" ", gap)

	text := t.paint(cl.text, cl.color)
	if a == align.Left {
		return text + pad
	}
	return pad + text
}

func (t *Table) paint(s string, c color.Color) string {
	if t.noColor {
		return s
	}
	return color.Apply(s, c)
}

// transpose flips the physical matrix so row i, column j becomes row j,
// column i. Ragged input is tolerated: missing cells come out blank.
func transpose(matrix [][]cell) [][]cell {
	cols := 0
	for _, row := range matrix {
		if len(row) > cols {
			cols = len(row)
		}
	}

	out := make([][]cell, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]cell, len(matrix))
		for i, row := range matrix {
			if j < len(row) {
				out[j][i] = row[j]
			} else {
				out[j][i] = cell{}
			}
		}
	}
	return out
}

// columnWidths computes each column's maximum display width across all
// physical rows. Absent cells count as zero width.
func columnWidths(matrix [][]cell) []int {
	var widths []int
	for _, row := range matrix {
		for c, cl := range row {
			for len(widths) <= c {
				widths = append(widths, 0)
			}
			if w := align.Width(cl.text); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}
