package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tabloid/pkg/color"
)

func toText(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRowContextMapping(t *testing.T) {
	tbl := New()
	tbl.SetAliases([]string{"v"})
	for i := 0; i < 6; i++ {
		tbl.Add([]interface{}{"r"})
	}

	top := tbl.Top(2, nil)
	bottom := tbl.Bottom(2, nil)

	mapping := tbl.mapRowContexts(6)
	assert.Equal(t, top, mapping[0])
	assert.Equal(t, top, mapping[1])
	assert.Equal(t, tbl.def, mapping[2])
	assert.Equal(t, tbl.def, mapping[3])
	assert.Equal(t, bottom, mapping[4])
	assert.Equal(t, bottom, mapping[5])
}

func TestRowContextMultipleGroups(t *testing.T) {
	tbl := New()
	for i := 0; i < 8; i++ {
		tbl.Add([]interface{}{"r"})
	}

	top1 := tbl.Top(1, nil)
	top2 := tbl.Top(2, nil)
	bottom1 := tbl.Bottom(1, nil)
	bottom2 := tbl.Bottom(2, nil)

	mapping := tbl.mapRowContexts(8)
	// Tops consume forward in declaration order.
	assert.Equal(t, top1, mapping[0])
	assert.Equal(t, top2, mapping[1])
	assert.Equal(t, top2, mapping[2])
	assert.Equal(t, tbl.def, mapping[3])
	assert.Equal(t, tbl.def, mapping[4])
	// First-declared bottom group claims the latest rows.
	assert.Equal(t, bottom1, mapping[7])
	assert.Equal(t, bottom2, mapping[6])
	assert.Equal(t, bottom2, mapping[5])
}

func TestRowContextOverlapBottomWins(t *testing.T) {
	// Declared spans sum past the row count: the bottom claim, applied
	// last, keeps the shared rows.
	tbl := New()
	for i := 0; i < 3; i++ {
		tbl.Add([]interface{}{"r"})
	}

	top := tbl.Top(2, nil)
	bottom := tbl.Bottom(2, nil)

	mapping := tbl.mapRowContexts(3)
	assert.Equal(t, top, mapping[0])
	assert.Equal(t, bottom, mapping[1])
	assert.Equal(t, bottom, mapping[2])
}

func TestRowContextSpansClampToRowCount(t *testing.T) {
	tbl := New()
	tbl.Add([]interface{}{"r"})

	top := tbl.Top(5, nil)
	mapping := tbl.mapRowContexts(1)
	require.Len(t, mapping, 1)
	assert.Equal(t, top, mapping[0])
}

func TestTopBottomCustomizationsApply(t *testing.T) {
	tbl := New()
	tbl.SetHeader([]string{"Name"})
	tbl.SetData([]interface{}{
		[]interface{}{"first"},
		[]interface{}{"middle"},
		[]interface{}{"last"},
	})

	tbl.Top(1, func(c *Context) {
		c.Format(FormatUsing(func(v interface{}) string {
			return "T:" + toText(v)
		}), "name")
	})
	tbl.Bottom(1, func(c *Context) {
		c.Colorize(ColorizeWith(color.Red), "name")
	})

	rendered := tbl.Render()
	assert.Contains(t, rendered, "T:first")
	assert.NotContains(t, rendered, "T:middle")
	assert.NotContains(t, rendered, "T:last")
	assert.Contains(t, rendered, color.Apply("last", color.Red))
}

func TestContextNullFallbacksAreScoped(t *testing.T) {
	tbl := New()
	tbl.SetHeader([]string{"Name"})
	tbl.SetData([]interface{}{
		[]interface{}{nil},
		[]interface{}{nil},
	})

	tbl.Top(1, func(c *Context) {
		c.FormatNull(FormatUsing(func(interface{}) string { return "missing" }))
	})

	rendered := tbl.Render()
	// Only the top-group row uses the group's null formatter; the default
	// context has none, so its null renders blank.
	assert.Equal(t, 1, strings.Count(rendered, "missing"))
}

func TestFormatUnknownAliasBecomesNullFormatter(t *testing.T) {
	tbl := New()
	tbl.SetHeader([]string{"Name"})
	tbl.SetData([]interface{}{
		[]interface{}{nil},
	})

	// The alias does not resolve; the registration degrades to a
	// null-value customization instead of failing.
	tbl.Format(FormatUsing(func(interface{}) string { return "n/a" }), "ghost")

	assert.Contains(t, tbl.Render(), "n/a")
}

func TestColorizeUnknownAliasBecomesNullColorizer(t *testing.T) {
	tbl := New()
	tbl.SetHeader([]string{"Name"})
	tbl.SetData([]interface{}{
		[]interface{}{"a"},
		[]interface{}{nil},
	})
	tbl.FormatNull(FormatUsing(func(interface{}) string { return "-" }))
	tbl.Colorize(ColorizeWith(color.Yellow), "ghost")

	rendered := tbl.Render()
	assert.Contains(t, rendered, color.Apply("-", color.Yellow))
	assert.NotContains(t, rendered, color.Apply("a", color.Yellow))
}
