package surface

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"bgra", Config{640, 480, 640, 4, 2, 1, 0}, false},
		{"rgb24 padded stride", Config{640, 480, 656, 3, 0, 1, 2}, false},
		{"stride smaller than width", Config{640, 480, 600, 4, 2, 1, 0}, true},
		{"16 bit", Config{640, 480, 640, 2, 1, 0, 0}, true},
		{"overlapping offsets", Config{640, 480, 640, 4, 1, 1, 0}, true},
		{"offset out of pixel", Config{640, 480, 640, 3, 0, 1, 3}, true},
		{"zero height", Config{640, 0, 640, 4, 2, 1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.cfg
			_, err := NewConfig(c.Width, c.Height, c.Stride, c.BytesPerPixel, c.RedOffset, c.GreenOffset, c.BlueOffset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		cfg  Config
		want PixelFormat
	}{
		{Config{8, 8, 8, 4, 2, 1, 0}, FormatBGRX32},
		{Config{8, 8, 8, 4, 0, 1, 2}, FormatRGBX32},
		{Config{8, 8, 8, 4, 1, 2, 3}, FormatXRGB32},
		{Config{8, 8, 8, 4, 3, 2, 1}, FormatXBGR32},
		{Config{8, 8, 8, 3, 0, 1, 2}, FormatRGB24},
		{Config{8, 8, 8, 3, 2, 1, 0}, FormatBGR24},
		{Config{8, 8, 8, 4, 1, 3, 0}, FormatCustom},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := Classify(tt.cfg); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.cfg, got, tt.want)
			}
		})
	}
}

// Every valid channel permutation must round-trip a colour.
func TestCanvas_ChannelRoundTrip(t *testing.T) {
	colors := []RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {12, 200, 77}}

	for bpp := 3; bpp <= 4; bpp++ {
		for r := 0; r < bpp; r++ {
			for g := 0; g < bpp; g++ {
				for b := 0; b < bpp; b++ {
					cfg, err := NewConfig(5, 4, 7, bpp, r, g, b)
					if err != nil {
						continue
					}
					canvas := NewCanvas(make([]byte, cfg.FrameSize()), cfg)
					for i, col := range colors {
						canvas.SetRGB(i, i%4, col)
						got, ok := canvas.RGBAt(i, i%4)
						if !ok || got != col {
							t.Errorf("%v: wrote %v read %v (ok=%v)", cfg, col, got, ok)
						}
					}
				}
			}
		}
	}
}

func TestCanvas_SpareByteIsOpaque(t *testing.T) {
	cfg := Config{2, 1, 2, 4, 2, 1, 0}
	canvas := NewCanvas(make([]byte, cfg.FrameSize()), cfg)
	canvas.SetRGB(1, 0, RGB{1, 2, 3})

	want := []byte{0, 0, 0, 0, 3, 2, 1, 0xFF}
	for i, b := range want {
		if canvas.Pix[i] != b {
			t.Fatalf("Pix = %v, want %v", canvas.Pix, want)
		}
	}
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	cfg := Config{4, 3, 6, 4, 2, 1, 0}
	pix := make([]byte, cfg.FrameSize())
	canvas := NewCanvas(pix, cfg)

	points := [][2]int{{4, 0}, {0, 3}, {4, 3}, {-1, 0}, {0, -1}, {1000, 1000}}
	for _, p := range points {
		canvas.SetRGB(p[0], p[1], White)
	}
	canvas.FillRect(3, 2, 10, 10, White)

	for i, b := range pix {
		px := (i / cfg.BytesPerPixel) % cfg.Stride
		py := i / cfg.RowBytes()
		if b != 0 && !(px == 3 && py == 2) {
			t.Fatalf("byte %d (pixel %d,%d) written outside the clip area", i, px, py)
		}
	}
	if got, _ := canvas.RGBAt(3, 2); got != White {
		t.Errorf("FillRect should paint the visible corner, got %v", got)
	}
}

func TestCanvas_ShortBufferDoesNotPanic(t *testing.T) {
	cfg := Config{10, 10, 10, 4, 2, 1, 0}
	canvas := NewCanvas(make([]byte, 40), cfg)
	canvas.FillRect(0, 0, 10, 10, White)
	if _, ok := canvas.RGBAt(0, 5); ok {
		t.Error("pixel beyond the backing slice should not be addressable")
	}
}

func TestCanvas_SetSkipsTransparent(t *testing.T) {
	cfg := Config{1, 1, 1, 4, 2, 1, 0}
	canvas := NewCanvas(make([]byte, 4), cfg)
	canvas.SetRGB(0, 0, White)

	canvas.Set(0, 0, color.NRGBA{R: 10, A: 0})
	if got, _ := canvas.RGBAt(0, 0); got != White {
		t.Errorf("transparent Set changed the pixel to %v", got)
	}

	canvas.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	if got, _ := canvas.RGBAt(0, 0); got != (RGB{10, 20, 30}) {
		t.Errorf("opaque Set wrote %v", got)
	}
}
