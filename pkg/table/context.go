package table

// Context is a scope of row-specific customizations: per-column formatters
// and colorizers, an optional whole-row colorizer, and null-value
// fallbacks. Every table has a default context; Top and Bottom declare
// additional contexts claiming row spans from either end of the data.
type Context struct {
	table *Table
	id    int
	span  int

	formatters map[int]Formatter
	colorizers map[int]Colorizer

	rowColorizer  RowColorizer
	nullFormatter *Formatter
	nullColorizer *Colorizer
}

func newContext(t *Table, id, span int) *Context {
	return &Context{
		table:      t,
		id:         id,
		span:       span,
		formatters: make(map[int]Formatter),
		colorizers: make(map[int]Colorizer),
	}
}

// Format registers a formatter for the referenced columns. An alias that
// does not resolve registers the formatter as this context's null-value
// formatter instead of failing.
func (c *Context) Format(f Formatter, refs ...interface{}) {
	for _, ref := range refs {
		idx, ok := c.table.Resolve(ref)
		if !ok {
			c.FormatNull(f)
			continue
		}
		c.formatters[idx] = f
	}
}

// FormatNull registers the formatter used for null values in this context.
func (c *Context) FormatNull(f Formatter) {
	c.nullFormatter = &f
}

// Colorize registers a colorizer for the referenced columns. An alias that
// does not resolve registers the colorizer as this context's null-value
// colorizer instead of failing.
func (c *Context) Colorize(cz Colorizer, refs ...interface{}) {
	for _, ref := range refs {
		idx, ok := c.table.Resolve(ref)
		if !ok {
			c.ColorizeNull(cz)
			continue
		}
		c.colorizers[idx] = cz
	}
}

// ColorizeNull registers the colorizer used for null values in this context.
func (c *Context) ColorizeNull(cz Colorizer) {
	c.nullColorizer = &cz
}

// ColorizeRow registers a colorizer for whole logical rows in this context.
func (c *Context) ColorizeRow(fn RowColorizer) {
	c.rowColorizer = fn
}

// mapRowContexts assigns each data row to exactly one context. Top groups
// consume rows from index 0 upward in declaration order; bottom groups
// consume rows from the last index downward, first-declared group claiming
// the latest rows. Bottoms are applied after tops, so when declared spans
// sum to more than the row count the bottom claim keeps the overlapping
// rows. That precedence is part of the contract.
func (t *Table) mapRowContexts(total int) []*Context {
	mapping := make([]*Context, total)
	for i := range mapping {
		mapping[i] = t.def
	}

	next := 0
	for _, ctx := range t.tops {
		for k := 0; k < ctx.span && next < total; k++ {
			mapping[next] = ctx
			next++
		}
	}

	last := total - 1
	for _, ctx := range t.bottoms {
		for k := 0; k < ctx.span && last >= 0; k++ {
			mapping[last] = ctx
			last--
		}
	}

	return mapping
}
