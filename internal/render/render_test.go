package render

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/muurk/netstatus/internal/qr"
	"github.com/muurk/netstatus/internal/status"
	"github.com/muurk/netstatus/internal/surface"
)

var (
	red    = surface.RGB{R: 255, G: 85, B: 85}
	green  = surface.RGB{R: 85, G: 255, B: 85}
	blue   = surface.RGB{R: 85, G: 85, B: 255}
	purple = surface.RGB{R: 255, G: 85, B: 255}
	cyan   = surface.RGB{R: 85, G: 255, B: 255}
)

func bgrx(w, h int) surface.Config {
	return surface.Config{Width: w, Height: h, Stride: w, BytesPerPixel: 4, RedOffset: 2, GreenOffset: 1, BlueOffset: 0}
}

func rgb24(w, h int) surface.Config {
	return surface.Config{Width: w, Height: h, Stride: w, BytesPerPixel: 3, RedOffset: 0, GreenOffset: 1, BlueOffset: 2}
}

func TestParseSegments(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Segment
	}{
		{
			name: "plain",
			line: "eth0 UP",
			want: []Segment{{"eth0 UP", surface.White}},
		},
		{
			name: "ip colors",
			line: "\x1b[36meth0\x1b[0m \x1b[32mUP\x1b[0m \x1b[35m10.0.0.2\x1b[0m/24 \x1b[34mfe80::1\x1b[0m",
			want: []Segment{
				{"eth0", cyan}, {" ", surface.White}, {"UP", green}, {" ", surface.White},
				{"10.0.0.2", purple}, {"/24 ", surface.White}, {"fe80::1", blue},
			},
		},
		{
			name: "bold variants",
			line: "\x1b[1;31mA\x1b[01mB\x1b[30mC\x1b[1;37mD",
			want: []Segment{{"A", red}, {"B", surface.White}, {"C", surface.Black}, {"D", surface.White}},
		},
		{
			name: "unknown code keeps colour",
			line: "\x1b[31mA\x1b[4mB",
			want: []Segment{{"A", red}, {"B", red}},
		},
		{
			name: "lone escape is text",
			line: "a\x1bb",
			want: []Segment{{"a\x1bb", surface.White}},
		},
		{
			name: "unterminated sequence",
			line: "up\x1b[31 rest",
			want: []Segment{{"up", surface.White}},
		},
		{
			name: "empty",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSegments(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSegments(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	segs := []Segment{{"abcd", surface.White}, {"efgh", red}, {"ij", green}}

	// 7.5 cells per line; a wrapped line starts WrapIndent further in.
	got := Wrap(segs, 0, 120)
	want := []Placed{
		{Segment: segs[0], X: 0, Line: 0},
		{Segment: segs[1], X: WrapIndent, Line: 1},
		{Segment: segs[2], X: WrapIndent + 4*CellWidth, Line: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap() = %+v, want %+v", got, want)
	}

	// Narrower: every segment gets its own line.
	got = Wrap(segs, 10, 96)
	for i, p := range got {
		if p.Line != i {
			t.Errorf("segment %d on line %d, want %d", i, p.Line, i)
		}
	}

	// An oversized first segment stays on the first line.
	long := []Segment{{strings.Repeat("x", 20), surface.White}}
	if got := Wrap(long, 0, 4*CellWidth); got[0].Line != 0 || got[0].X != 0 {
		t.Errorf("oversized segment moved: %+v", got[0])
	}
}

func TestWrap_KeepsEveryGlyph(t *testing.T) {
	line := "\x1b[36mwlp192s0\x1b[0m \x1b[32mUP\x1b[0m " + strings.Repeat("\x1b[35m2001:db8::1234\x1b[0m/64 ", 12)
	segs := ParseSegments(line)

	for _, width := range []int{50, 200, 1000, 1820} {
		placed := Wrap(segs, AddressIndent, width)
		var drawn, want int
		for _, p := range placed {
			drawn += utf8.RuneCountInString(p.Text)
		}
		for _, s := range segs {
			want += utf8.RuneCountInString(s.Text)
		}
		if drawn != want || len(placed) != len(segs) {
			t.Errorf("width %d: drew %d glyphs in %d segments, want %d in %d", width, drawn, len(placed), want, len(segs))
		}
	}
}

func TestDrawText_Clips(t *testing.T) {
	cfg := bgrx(20, 10)
	pix := make([]byte, cfg.FrameSize())
	c := surface.NewCanvas(pix, cfg)

	DrawText(c, "WWWW", -5, -5, surface.White)
	DrawText(c, "WWWW", 15, 5, surface.White)

	if len(pix) != cfg.FrameSize() {
		t.Fatal("buffer resized")
	}
}

func TestRender_Baseline(t *testing.T) {
	cfg := bgrx(1920, 1080)
	pix := make([]byte, cfg.FrameSize())
	m := qr.NewEncoder().Encode(status.Placeholder().LoginPayload)
	p := qr.ComputePlacement(cfg.Width, cfg.Height, m.Size())

	// Leftover content must be cleared.
	for i := range pix {
		pix[i] = 0x7f
	}
	Render(pix, cfg, m, p, status.Placeholder())
	c := surface.NewCanvas(pix, cfg)

	// No address lines: one blank line in the network section.
	top := p.Bottom() + TextGap
	footer := top + 4*SectionSpacing + 3*LineHeight + 30

	checks := []struct {
		name string
		x, y int
		want surface.RGB
	}{
		{"background", 1900, 20, surface.Black},
		{"quiet zone corner", p.OriginX - p.QuietZone, p.OriginY - p.QuietZone, surface.White},
		{"quiet zone left of symbol", p.OriginX - 1, p.OriginY, surface.White},
		{"finder pattern", p.OriginX, p.OriginY, surface.Black},
		{"finder pattern ring", p.OriginX + p.Scale, p.OriginY + p.Scale, surface.White},
		{"outside quiet zone", p.OriginX - p.QuietZone - 1, p.OriginY, surface.Black},
		{"logo plate", LogoX - LogoPadding, LogoY - LogoPadding, surface.White},
		{"logo transparent corner", LogoX, LogoY, surface.White},
		{"outside logo plate", LogoX - LogoPadding - 1, LogoY, surface.Black},
		{"footer bar", LeftMargin, footer, surface.Gray},
		{"footer bar end", 1920 - LeftMargin - 1, footer + 1, surface.Gray},
		{"past footer bar", 1920 - LeftMargin, footer, surface.Black},
		{"below footer bar", LeftMargin, footer + FooterBar, surface.Black},
	}
	for _, tt := range checks {
		got, ok := c.RGBAt(tt.x, tt.y)
		if !ok || got != tt.want {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 && pix[i] != 0xFF {
			t.Fatalf("padding byte at %d = %#x, want 0 or 0xFF", i, pix[i])
		}
	}

	// First heading starts right below the quiet zone.
	var lit bool
	for y := top; y < top+16 && !lit; y++ {
		for x := LeftMargin; x < LeftMargin+CellWidth; x++ {
			if got, _ := c.RGBAt(x, y); got == surface.White {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Errorf("no heading glyph drawn at (%d,%d)", LeftMargin, top)
	}
}

func TestRender_ChannelOrderIndependent(t *testing.T) {
	s := status.NewSnapshot("pw", "abc.onion", []string{"\x1b[36meth0\x1b[0m UP \x1b[35m10.1.2.3\x1b[0m/16"}, "box")
	m := qr.NewEncoder().Encode(s.LoginPayload)

	a, b := bgrx(640, 480), rgb24(640, 480)
	p := qr.ComputePlacement(640, 480, m.Size())
	pa, pb := make([]byte, a.FrameSize()), make([]byte, b.FrameSize())
	Render(pa, a, m, p, s)
	Render(pb, b, m, p, s)

	ca, cb := surface.NewCanvas(pa, a), surface.NewCanvas(pb, b)
	for y := 0; y < 480; y++ {
		for x := 0; x < 640; x++ {
			va, _ := ca.RGBAt(x, y)
			vb, _ := cb.RGBAt(x, y)
			if va != vb {
				t.Fatalf("(%d,%d): BGRX %v != RGB24 %v", x, y, va, vb)
			}
		}
	}
}

func TestRender_SmallSurfaces(t *testing.T) {
	lines := []string{strings.Repeat("\x1b[32mveth1234567 UP 192.168.100.200/24 ", 10)}
	s := status.NewSnapshot("a very long password that runs off the edge", "x.onion", lines, "h")
	m := qr.NewEncoder().Encode(s.LoginPayload)

	sizes := []surface.Config{
		bgrx(1, 1),
		rgb24(8, 8),
		bgrx(64, 48),
		rgb24(320, 200),
		{Width: 100, Height: 60, Stride: 128, BytesPerPixel: 4, RedOffset: 0, GreenOffset: 1, BlueOffset: 2},
	}
	for _, cfg := range sizes {
		t.Run(cfg.String(), func(t *testing.T) {
			p := qr.ComputePlacement(cfg.Width, cfg.Height, m.Size())
			Render(make([]byte, cfg.FrameSize()), cfg, m, p, s)
			// A short buffer is clipped rather than overrun.
			Render(make([]byte, cfg.FrameSize()/2), cfg, m, p, s)
		})
	}
}

func TestLogo(t *testing.T) {
	img := logo()
	if b := img.Bounds(); b.Dx() != LogoWidth || b.Dy() != LogoHeight {
		t.Fatalf("logo bounds = %v, want %dx%d", b, LogoWidth, LogoHeight)
	}
	var opaque int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0xFF {
			opaque++
		}
	}
	if opaque == 0 {
		t.Error("scaled logo has no opaque pixels")
	}
}
