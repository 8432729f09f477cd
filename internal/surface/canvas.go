package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB is an opaque 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Common colours
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Gray  = RGB{100, 100, 100}
)

// Canvas draws into a raw byte buffer laid out according to a Config.
// The buffer may be a memory-mapped framebuffer or a plain slice.
type Canvas struct {
	Pix    []byte
	Config Config

	spare int
}

// NewCanvas wraps pix. The slice must hold at least cfg.FrameSize() bytes;
// shorter buffers are tolerated and the missing rows are clipped.
func NewCanvas(pix []byte, cfg Config) *Canvas {
	return &Canvas{Pix: pix, Config: cfg, spare: cfg.spareOffset()}
}

// Clear zeroes the whole buffer (black background).
func (c *Canvas) Clear() {
	clear(c.Pix)
}

// offset returns the byte offset of (x, y) or -1 when the pixel is outside
// the visible area or the backing slice.
func (c *Canvas) offset(x, y int) int {
	cfg := c.Config
	if x < 0 || y < 0 || x >= cfg.Width || y >= cfg.Height {
		return -1
	}
	off := (y*cfg.Stride + x) * cfg.BytesPerPixel
	if off+cfg.BytesPerPixel > len(c.Pix) {
		return -1
	}
	return off
}

// SetRGB writes an opaque pixel. Out-of-range coordinates are dropped.
func (c *Canvas) SetRGB(x, y int, col RGB) {
	off := c.offset(x, y)
	if off < 0 {
		return
	}
	c.Pix[off+c.Config.RedOffset] = col.R
	c.Pix[off+c.Config.GreenOffset] = col.G
	c.Pix[off+c.Config.BlueOffset] = col.B
	if c.spare >= 0 {
		c.Pix[off+c.spare] = 0xFF
	}
}

// RGBAt reads a pixel back through the channel offsets.
func (c *Canvas) RGBAt(x, y int) (RGB, bool) {
	off := c.offset(x, y)
	if off < 0 {
		return RGB{}, false
	}
	return RGB{
		R: c.Pix[off+c.Config.RedOffset],
		G: c.Pix[off+c.Config.GreenOffset],
		B: c.Pix[off+c.Config.BlueOffset],
	}, true
}

// FillRect fills the rectangle [x, x+w)×[y, y+h), clipped to the surface.
func (c *Canvas) FillRect(x, y, w, h int, col RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(c.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.SetRGB(px, py, col)
		}
	}
}

var _ draw.Image = (*Canvas)(nil)

func (c *Canvas) ColorModel() color.Model { return color.RGBAModel }

// Bounds returns the visible area.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.Config.Width, c.Config.Height)
}

func (c *Canvas) At(x, y int) color.Color {
	p, ok := c.RGBAt(x, y)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF}
}

// Set changes the pixel at (x, y). Fully transparent colours are skipped so
// that image/draw operations leave the background untouched.
func (c *Canvas) Set(x, y int, col color.Color) {
	if col == nil {
		return
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	if n.A == 0 {
		return
	}
	c.SetRGB(x, y, RGB{n.R, n.G, n.B})
}
