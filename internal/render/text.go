package render

import (
	"unicode/utf8"

	"github.com/muurk/netstatus/internal/font"
	"github.com/muurk/netstatus/internal/surface"
)

// Text metrics in pixels.
const (
	TextScale      = 2
	CellWidth      = font.Width * TextScale
	WrapLineHeight = 20
	WrapIndent     = 20
)

// DrawText draws s with its top-left corner at (x, y). Runes the font does
// not cover are left blank but still take up a cell.
func DrawText(c *surface.Canvas, s string, x, y int, col surface.RGB) {
	pen := x
	for _, r := range s {
		if g, ok := font.Glyph(r); ok {
			drawGlyph(c, g, pen, y, col)
		}
		pen += CellWidth
	}
}

func drawGlyph(c *surface.Canvas, g [8]byte, x, y int, col surface.RGB) {
	for row := 0; row < font.Height; row++ {
		if g[row] == 0 {
			continue
		}
		for column := 0; column < font.Width; column++ {
			if font.Lit(g, column, row) {
				c.FillRect(x+column*TextScale, y+row*TextScale, TextScale, TextScale, col)
			}
		}
	}
}

// TextWidth is the drawn width of s.
func TextWidth(s string) int {
	return utf8.RuneCountInString(s) * CellWidth
}

// Placed is a segment positioned by Wrap. Line counts wrapped lines from 0.
type Placed struct {
	Segment
	X    int
	Line int
}

// Wrap lays segments out left to right starting at x. A segment that would
// cross x+maxWidth moves to a new, indented line unless the pen is still at
// the start of the line. Segments are never split.
func Wrap(segs []Segment, x, maxWidth int) []Placed {
	placed := make([]Placed, 0, len(segs))
	pen, line := x, 0
	for _, s := range segs {
		w := TextWidth(s.Text)
		if pen+w > x+maxWidth && pen > x {
			line++
			pen = x + WrapIndent
		}
		placed = append(placed, Placed{Segment: s, X: pen, Line: line})
		pen += w
	}
	return placed
}

// DrawColoredLine parses, wraps and draws one SGR-coloured line. It returns
// the number of lines used, at least 1.
func DrawColoredLine(c *surface.Canvas, line string, x, y int) int {
	placed := Wrap(ParseSegments(line), x, c.Config.Width-2*LeftMargin)
	lines := 1
	for _, p := range placed {
		DrawText(c, p.Text, p.X, y+p.Line*WrapLineHeight, p.Color)
		lines = max(lines, p.Line+1)
	}
	return lines
}
