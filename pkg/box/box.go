// Package box draws a border around rendered terminal content. It is a
// thin consumer of the alignment and color primitives: sizing always uses
// escape-stripped display widths, so colorized table output keeps its
// border intact.
package box

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/tabloid/pkg/align"
	"github.com/arthur-debert/tabloid/pkg/color"
)

// Renderable is anything that can render itself and report the display
// width of its widest line, escape codes excluded. table.Table satisfies
// this.
type Renderable interface {
	Render() string
	Width() int
}

// Options configures the border drawn around the content.
type Options struct {
	// Border is the glyph set; the zero value means lipgloss.NormalBorder.
	Border lipgloss.Border
	// Color tints the border glyphs only, never the content.
	Color color.Color
	// Padding is the number of blank columns between the vertical edges
	// and the content.
	Padding int
	// Align positions narrow content lines inside the box.
	Align align.Alignment
}

// Draw wraps plain or colorized text in a border. The inner width is the
// display width of the widest content line.
func Draw(content string, opts Options) string {
	content = strings.TrimRight(content, "\n")
	contentLines := strings.Split(content, "\n")

	width := 0
	for _, line := range contentLines {
		if w := color.Width(line); w > width {
			width = w
		}
	}
	return draw(contentLines, width, opts)
}

// DrawRenderable renders r and wraps it, sizing the box from r.Width().
func DrawRenderable(r Renderable, opts Options) string {
	content := strings.TrimRight(r.Render(), "\n")
	return draw(strings.Split(content, "\n"), r.Width(), opts)
}

func draw(contentLines []string, width int, opts Options) string {
	border := opts.Border
	if border.Top == "" && border.Left == "" {
		border = lipgloss.NormalBorder()
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	contentAlign := opts.Align
	if !align.Valid(contentAlign) {
		contentAlign = align.Left
	}

	pad := strings.Repeat(" ", opts.Padding)
	inner := width + 2*opts.Padding

	edge := func(left, fill, right string) string {
		return color.Apply(left+strings.Repeat(fill, inner)+right, opts.Color)
	}
	side := color.Apply(border.Left, opts.Color)
	rightSide := color.Apply(border.Right, opts.Color)

	var b strings.Builder
	b.WriteString(edge(border.TopLeft, border.Top, border.TopRight))
	b.WriteByte('\n')
	for _, line := range contentLines {
		gap := width - color.Width(line)
		if gap < 0 {
			gap = 0
		}
		filler := strings.Repeat(" ", gap)
		if contentAlign == align.Right {
			line = filler + line
		} else {
			line = line + filler
		}
		b.WriteString(side + pad + line + pad + rightSide)
		b.WriteByte('\n')
	}
	b.WriteString(edge(border.BottomLeft, border.Bottom, border.BottomRight))
	b.WriteByte('\n')
	return b.String()
}
