//go:build imageoutput

package main

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/muurk/netstatus/internal/config"
	"github.com/muurk/netstatus/internal/qr"
	"github.com/muurk/netstatus/internal/render"
	"github.com/muurk/netstatus/internal/status"
	"github.com/muurk/netstatus/internal/surface"
)

// Synthetic surface used for image export.
var exportSurface = surface.Config{
	Width:         1920,
	Height:        1080,
	Stride:        1920,
	BytesPerPixel: 4,
	RedOffset:     2,
	GreenOffset:   1,
	BlueOffset:    0,
}

func exportImage(ctx context.Context, cfg *config.Config, path string) error {
	s := status.NewCollector(cfg).Snapshot(ctx)
	m := qr.NewEncoder().Encode(s.LoginPayload)
	p := qr.ComputePlacement(exportSurface.Width, exportSurface.Height, m.Size())

	pix := make([]byte, exportSurface.FrameSize())
	render.Render(pix, exportSurface, m, p, s)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := png.Encode(f, surface.NewCanvas(pix, exportSurface)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return f.Close()
}
