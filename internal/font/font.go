// Package font is the 8x8 monospace bitmap glyph source used by the
// framebuffer renderer. It covers printable ASCII only (the public domain
// font8x8 "basic" set); callers skip anything it does not know.
package font

// Glyph cell size in pixels before scaling.
const (
	Width  = 8
	Height = 8
)

// Glyph returns the bitmap for r. The second result is false for runes
// outside printable ASCII.
func Glyph(r rune) ([8]byte, bool) {
	if r < 0x20 || r > 0x7E {
		return [8]byte{}, false
	}
	return basic[r-0x20], true
}

// Lit reports whether pixel (col, row) of a glyph is set.
func Lit(g [8]byte, col, row int) bool {
	return g[row]&(1<<uint(col)) != 0
}
