package table

import (
	"strings"

	"github.com/arthur-debert/tabloid/pkg/color"
	"github.com/arthur-debert/tabloid/pkg/rows"
)

// cell is one rendered slot: display text plus its resolved color.
// Cells are transient; the matrix is rebuilt on every render.
type cell struct {
	text  string
	color color.Color
}

// buildCell runs the per-cell pipeline for one column of a logical row:
// resolve the colorizer (null colorizer for null values, else the column
// colorizer, else the style map's value color), then the formatter (null
// formatter for null values, else the column formatter, else the value's
// plain text form).
func (c *Context) buildCell(col int, v rows.Value, valueColor color.Color) cell {
	var cl color.Color
	switch {
	case v.Null && c.nullColorizer != nil:
		cl = c.nullColorizer.apply(v.V)
	default:
		if cz, ok := c.colorizers[col]; ok {
			cl = cz.apply(v.V)
		} else {
			cl = valueColor
		}
	}

	var text string
	switch {
	case v.Null:
		if c.nullFormatter != nil {
			text = c.nullFormatter.apply(v.V)
		} else {
			text = v.String()
		}
	default:
		if f, ok := c.formatters[col]; ok {
			text = f.apply(v.V)
		} else {
			text = v.String()
		}
	}

	return cell{text: text, color: cl}
}

// splitMultiline expands one logical row into physical rows. Each cell's
// text is split on line breaks; the row becomes max-line-count physical
// rows and shorter cells leave blank slots in the extra rows.
func splitMultiline(logical []cell) [][]cell {
	split := make([][]string, len(logical))
	height := 1
	for i, cl := range logical {
		split[i] = strings.Split(cl.text, "\n")
		if len(split[i]) > height {
			height = len(split[i])
		}
	}

	physical := make([][]cell, height)
	for r := 0; r < height; r++ {
		row := make([]cell, len(logical))
		for i := range logical {
			if r < len(split[i]) {
				row[i] = cell{text: split[i][r], color: logical[i].color}
			} else {
				row[i] = cell{}
			}
		}
		physical[r] = row
	}
	return physical
}

// buildHeaderRows converts the header texts into physical rows. Every
// header cell shares the header style color; multi-line header text
// expands the same way data cells do.
func (t *Table) buildHeaderRows() [][]cell {
	if len(t.header) == 0 {
		return nil
	}
	logical := make([]cell, len(t.header))
	for i, h := range t.header {
		logical[i] = cell{text: h, color: t.styles.Header}
	}
	return splitMultiline(logical)
}

// buildDataRows runs the cell pipeline for every data row under its mapped
// context and expands multi-line cells. Once a header is set it defines
// the visible column count; extra data columns are dropped.
func (t *Table) buildDataRows() [][]cell {
	contexts := t.mapRowContexts(len(t.data))

	var physical [][]cell
	for i, raw := range t.data {
		values := rows.Extract(raw, t.aliases)
		if len(t.header) > 0 && len(values) > len(t.header) {
			values = values[:len(t.header)]
		}

		ctx := contexts[i]
		logical := make([]cell, len(values))
		for col, v := range values {
			logical[col] = ctx.buildCell(col, v, t.styles.Value)
		}

		if ctx.rowColorizer != nil {
			if rc := ctx.rowColorizer(i, values); rc != color.None {
				for col := range logical {
					logical[col].color = rc
				}
			}
		}

		physical = append(physical, splitMultiline(logical)...)
	}
	return physical
}
