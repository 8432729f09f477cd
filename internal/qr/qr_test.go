package qr

import (
	"strings"
	"testing"
)

func TestComputePlacement_Baseline(t *testing.T) {
	got := ComputePlacement(1920, 1080, 21)
	want := Placement{Scale: 23, PixelSize: 483, QuietZone: 92, OriginX: 718, OriginY: 142}
	if got != want {
		t.Fatalf("ComputePlacement(1920, 1080, 21) = %+v, want %+v", got, want)
	}
	if got.Outer() != 667 {
		t.Errorf("Outer() = %d, want 667", got.Outer())
	}
	if got.Bottom() != 717 {
		t.Errorf("Bottom() = %d, want 717", got.Bottom())
	}
}

func TestComputePlacement(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		n             int
		wantScale     int
	}{
		{"width bound", 800, 2000, 21, 13},
		{"height bound", 1920, 1080, 37, 15},
		{"tiny surface clamps to one", 100, 100, 21, 1},
		{"below text allowance", 1920, 300, 21, 1},
		{"large symbol", 3840, 2160, 57, 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePlacement(tt.width, tt.height, tt.n)
			if p.Scale != tt.wantScale {
				t.Errorf("Scale = %d, want %d", p.Scale, tt.wantScale)
			}
			if p.PixelSize != tt.n*p.Scale {
				t.Errorf("PixelSize = %d, want %d", p.PixelSize, tt.n*p.Scale)
			}
			if p.QuietZone != QuietModules*p.Scale {
				t.Errorf("QuietZone = %d, want %d", p.QuietZone, QuietModules*p.Scale)
			}
			if p.OriginX < p.QuietZone {
				t.Errorf("OriginX %d leaves no room for the quiet zone %d", p.OriginX, p.QuietZone)
			}
			if p.OriginY != TopMargin+p.QuietZone {
				t.Errorf("OriginY = %d, want %d", p.OriginY, TopMargin+p.QuietZone)
			}
		})
	}
}

func validSize(n int) bool {
	return n >= 21 && n <= 177 && (n-17)%4 == 0
}

func TestEncoder_Encode(t *testing.T) {
	enc := NewEncoder()

	payload := `{"pass":"(waiting...)","tor":"(waiting for tor...)","addrs":[]}`
	m := enc.Encode(payload)
	if !validSize(m.Size()) {
		t.Fatalf("Encode() size = %d, not a QR symbol size", m.Size())
	}

	// Finder pattern: the top-left 7x7 ring is dark, its inner ring light.
	if !m.Dark(0, 0) || !m.Dark(6, 6) || m.Dark(1, 1) || !m.Dark(3, 3) {
		t.Error("top-left finder pattern not found; quiet zone probably not stripped")
	}
	// The separator next to the finder is always light.
	if m.Dark(7, 0) {
		t.Error("separator module (7,0) should be light")
	}

	again := enc.Encode(payload)
	if again.Size() != m.Size() {
		t.Fatal("encoding is not deterministic")
	}
	for y := 0; y < m.Size(); y++ {
		for x := 0; x < m.Size(); x++ {
			if m.Dark(x, y) != again.Dark(x, y) {
				t.Fatalf("module (%d,%d) differs between encodings", x, y)
			}
		}
	}
}

func TestEncoder_Placeholder(t *testing.T) {
	enc := NewEncoder()
	placeholder := enc.Encode(Placeholder)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"over capacity", strings.Repeat("x", 4000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := enc.Encode(tt.text)
			if m == nil {
				t.Fatal("Encode() returned nil")
			}
			if m.Size() != placeholder.Size() {
				t.Errorf("Size() = %d, want placeholder size %d", m.Size(), placeholder.Size())
			}
		})
	}
}

func TestMatrix(t *testing.T) {
	m := NewMatrix([][]bool{
		{true, false},
		{false},
	})
	if m.Size() != 2 {
		t.Fatalf("Size() = %d", m.Size())
	}
	if !m.Dark(0, 0) || m.Dark(1, 0) || m.Dark(1, 1) {
		t.Error("unexpected module values")
	}
	if m.Dark(-1, 0) || m.Dark(2, 2) {
		t.Error("out of range modules must be light")
	}

	var nilMatrix *Matrix
	if nilMatrix.Size() != 0 || nilMatrix.Dark(0, 0) {
		t.Error("nil matrix should be empty")
	}
	if blankMatrix().Size() != 21 {
		t.Error("blank matrix should be version 1 sized")
	}
}
