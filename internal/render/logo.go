package render

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/muurk/netstatus/internal/logging"
	"github.com/muurk/netstatus/internal/surface"
)

// Logo size and position on screen.
const (
	LogoWidth   = 223
	LogoHeight  = 89
	LogoX       = 30
	LogoY       = 30
	LogoPadding = 10
)

//go:embed logo.png
var logoPNG []byte

// logo is decoded and resampled once, on first use.
var logo = sync.OnceValue(func() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, LogoWidth, LogoHeight))
	src, err := png.Decode(bytes.NewReader(logoPNG))
	if err != nil {
		logging.Error("Failed to decode embedded logo", zap.Error(err))
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
})

// DrawLogo draws the logo on a white plate with its top-left corner at
// (x, y). Transparent logo pixels leave the plate showing.
func DrawLogo(c *surface.Canvas, x, y int) {
	c.FillRect(x-LogoPadding, y-LogoPadding, LogoWidth+2*LogoPadding, LogoHeight+2*LogoPadding, surface.White)

	img := logo()
	r := image.Rect(x, y, x+LogoWidth, y+LogoHeight)
	draw.Draw(c, r, img, image.Point{}, draw.Over)
}
