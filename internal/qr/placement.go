package qr

// Layout constants shared with the compositor.
const (
	// QuietModules is the mandatory blank margin around a symbol.
	QuietModules = 4
	// TextAllowance is the vertical space reserved below the symbol.
	TextAllowance = 400
	// TopMargin is the gap above the quiet zone.
	TopMargin = 50
)

// Placement is where and how large the symbol is drawn, in pixels.
type Placement struct {
	Scale     int // pixels per module
	PixelSize int // symbol side without quiet zone
	QuietZone int // quiet zone width on each side
	OriginX   int // top-left of the first module
	OriginY   int
}

// Outer returns the side of the quiet zone square.
func (p Placement) Outer() int {
	return p.PixelSize + 2*p.QuietZone
}

// Bottom returns the y just below the quiet zone.
func (p Placement) Bottom() int {
	return p.OriginY + p.PixelSize + p.QuietZone
}

// ComputePlacement sizes and centres an n-module symbol on a width×height
// surface.
func ComputePlacement(width, height, n int) Placement {
	withQuiet := n + 2*QuietModules
	if withQuiet <= 0 {
		withQuiet = 2 * QuietModules
	}

	byWidth := width / (withQuiet * 2)
	byHeight := max(height-TextAllowance, 0) / withQuiet
	scale := max(1, min(byWidth, byHeight))

	p := Placement{
		Scale:     scale,
		PixelSize: n * scale,
		QuietZone: QuietModules * scale,
	}
	p.OriginX = p.QuietZone
	if outer := p.Outer(); outer < width {
		p.OriginX += (width - outer) / 2
	}
	p.OriginY = TopMargin + p.QuietZone
	return p
}
