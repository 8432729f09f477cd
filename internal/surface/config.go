package surface

import (
	"errors"
	"fmt"
)

// Config describes the memory layout of a pixel surface.
// Width, Height and Stride are in pixels; the channel offsets are bytes
// within a single pixel.
type Config struct {
	Width         int
	Height        int
	Stride        int // pixels per row in memory, >= Width
	BytesPerPixel int // 3 or 4
	RedOffset     int
	GreenOffset   int
	BlueOffset    int
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid surface config")

// NewConfig builds a Config and validates it.
func NewConfig(width, height, stride, bytesPerPixel, red, green, blue int) (Config, error) {
	cfg := Config{
		Width:         width,
		Height:        height,
		Stride:        stride,
		BytesPerPixel: bytesPerPixel,
		RedOffset:     red,
		GreenOffset:   green,
		BlueOffset:    blue,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants every renderer relies on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: non-positive size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Stride < c.Width {
		return fmt.Errorf("%w: stride %d smaller than width %d", ErrInvalidConfig, c.Stride, c.Width)
	}
	if c.BytesPerPixel != 3 && c.BytesPerPixel != 4 {
		return fmt.Errorf("%w: %d bytes per pixel unsupported", ErrInvalidConfig, c.BytesPerPixel)
	}
	offsets := [3]int{c.RedOffset, c.GreenOffset, c.BlueOffset}
	for _, off := range offsets {
		if off < 0 || off >= c.BytesPerPixel {
			return fmt.Errorf("%w: channel offset %d outside %d-byte pixel", ErrInvalidConfig, off, c.BytesPerPixel)
		}
	}
	if offsets[0] == offsets[1] || offsets[0] == offsets[2] || offsets[1] == offsets[2] {
		return fmt.Errorf("%w: channel offsets r=%d g=%d b=%d overlap", ErrInvalidConfig, c.RedOffset, c.GreenOffset, c.BlueOffset)
	}
	return nil
}

// FrameSize returns the number of bytes one full frame occupies.
func (c Config) FrameSize() int {
	return c.Stride * c.Height * c.BytesPerPixel
}

// RowBytes returns the number of bytes between the start of two rows.
func (c Config) RowBytes() int {
	return c.Stride * c.BytesPerPixel
}

// spareOffset returns the byte of a 4-byte pixel not used by any colour
// channel, or -1 for 3-byte pixels.
func (c Config) spareOffset() int {
	if c.BytesPerPixel != 4 {
		return -1
	}
	used := [4]bool{}
	for _, off := range [3]int{c.RedOffset, c.GreenOffset, c.BlueOffset} {
		if off >= 0 && off < 4 {
			used[off] = true
		}
	}
	for i, u := range used {
		if !u {
			return i
		}
	}
	return -1
}

// String implements fmt.Stringer
func (c Config) String() string {
	return fmt.Sprintf("%dx%d stride=%d bpp=%d r=%d g=%d b=%d (%s)",
		c.Width, c.Height, c.Stride, c.BytesPerPixel*8,
		c.RedOffset, c.GreenOffset, c.BlueOffset, Classify(c))
}
