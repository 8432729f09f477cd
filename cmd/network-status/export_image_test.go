//go:build imageoutput

package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputImage(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	path := filepath.Join(dir, "status.png")

	out, err := execute(t, "--config", cfg, "--output-image", path)
	if err != nil {
		t.Fatalf("export error = %v", err)
	}
	if !strings.Contains(out, "Image saved to: "+path) {
		t.Errorf("output = %q", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	if b := img.Bounds(); b.Dx() != 1920 || b.Dy() != 1080 {
		t.Errorf("image size = %v, want 1920x1080", b)
	}
	r, g, b, _ := img.At(1900, 1070).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("background = %v, want black", img.At(1900, 1070))
	}
	// Logo plate corner.
	if got := color.RGBAModel.Convert(img.At(20, 20)).(color.RGBA); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("logo plate = %v, want white", got)
	}
}
