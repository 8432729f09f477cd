package render

import (
	"github.com/muurk/netstatus/internal/qr"
	"github.com/muurk/netstatus/internal/status"
	"github.com/muurk/netstatus/internal/surface"
)

// Text block layout in pixels.
const (
	TextGap        = 30 // quiet zone bottom to first heading
	SectionSpacing = 30
	LineHeight     = 22
	LeftMargin     = 50
	AddressIndent  = 70
	FooterBar      = 2
)

// Render draws one complete frame of s into view. The whole visible area is
// overwritten; view may be shorter than cfg.FrameSize(), in which case the
// missing rows are clipped.
func Render(view []byte, cfg surface.Config, m *qr.Matrix, p qr.Placement, s status.Snapshot) {
	c := surface.NewCanvas(view, cfg)
	c.Clear()
	DrawSymbol(c, m, p)
	DrawLogo(c, LogoX, LogoY)
	drawSections(c, p.Bottom()+TextGap, s)
}

// DrawSymbol paints the quiet zone and the modules of m. Dark modules are
// black on the white quiet zone.
func DrawSymbol(c *surface.Canvas, m *qr.Matrix, p qr.Placement) {
	c.FillRect(p.OriginX-p.QuietZone, p.OriginY-p.QuietZone, p.Outer(), p.Outer(), surface.White)

	n := m.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if m.Dark(x, y) {
				c.FillRect(p.OriginX+x*p.Scale, p.OriginY+y*p.Scale, p.Scale, p.Scale, surface.Black)
			}
		}
	}
}

// drawSections lays the text block out from y downwards. Returns the y just
// below the hint line.
func drawSections(c *surface.Canvas, y int, s status.Snapshot) int {
	DrawText(c, "Login Credentials", LeftMargin, y, surface.White)
	DrawText(c, "  Root password: "+s.RootPassword, LeftMargin, y+SectionSpacing, surface.White)

	y += 2 * SectionSpacing
	DrawText(c, "Network Information", LeftMargin, y, surface.White)
	used := 1
	for _, line := range s.IPLines {
		used += DrawColoredLine(c, line, AddressIndent, y+SectionSpacing+used*LineHeight)
	}

	y += SectionSpacing + used*LineHeight + 10
	DrawText(c, "Remote Access", LeftMargin, y, surface.White)
	DrawText(c, "  Tor Hidden Service: "+s.OnionHostname, LeftMargin, y+SectionSpacing, surface.White)
	DrawText(c, "  Multicast DNS: "+s.MDNSName(), LeftMargin, y+SectionSpacing+LineHeight, surface.White)

	y += SectionSpacing + 2*LineHeight + 20
	c.FillRect(LeftMargin, y, c.Config.Width-2*LeftMargin, FooterBar, surface.Gray)
	DrawText(c, status.Hint, LeftMargin, y+20, surface.White)
	return y + 20 + CellWidth
}
