package fbdev

import (
	"fmt"

	"github.com/muurk/netstatus/internal/surface"
)

// ReportEntry is one key/value line of a diagnostic report.
type ReportEntry struct {
	Key   string
	Value string
}

// Report is the operator-facing view of a device's raw geometry.
type Report struct {
	Device  string
	Entries []ReportEntry

	// Padded is true when a scanline holds more bytes than the visible
	// pixels need. Drivers that report no line length are never padded.
	Padded bool
	// Config is the derived surface config, valid when ConfigErr is nil.
	Config    surface.Config
	ConfigErr error
}

func channel(bf BitField) string {
	return fmt.Sprintf("offset=%d length=%d msb_right=%d", bf.Offset, bf.Length, bf.MSBRight)
}

// Report builds a troubleshooting report. It has no side effects.
func (g Geometry) Report() Report {
	v, f := g.Var, g.Fix
	widthBytes := int(v.XRes) * int(v.BitsPerPixel) / 8
	strideBytes := int(f.LineLength)

	r := Report{Device: g.Device, Padded: strideBytes > 0 && strideBytes != widthBytes}
	add := func(k, format string, args ...any) {
		r.Entries = append(r.Entries, ReportEntry{Key: k, Value: fmt.Sprintf(format, args...)})
	}

	add("Driver", "%s", f.Name())
	add("Visible", "%dx%d", v.XRes, v.YRes)
	add("Virtual", "%dx%d", v.XResVirtual, v.YResVirtual)
	add("Offset", "%d,%d", v.XOffset, v.YOffset)
	add("Bits/pixel", "%d", v.BitsPerPixel)
	add("Red", "%s", channel(v.Red))
	add("Green", "%s", channel(v.Green))
	add("Blue", "%s", channel(v.Blue))
	add("Transp", "%s", channel(v.Transp))
	add("Line length", "%d bytes", strideBytes)
	add("Width bytes", "%d bytes", widthBytes)
	switch {
	case strideBytes == 0:
		add("Stride", "not reported, assuming width")
	case r.Padded:
		add("Stride", "MISMATCH: %d padding bytes per line", strideBytes-widthBytes)
	default:
		add("Stride", "matches width")
	}
	add("Memory", "%d bytes", f.SMemLen)

	r.Config, r.ConfigErr = g.SurfaceConfig()
	if r.ConfigErr != nil {
		add("Layout", "unsupported: %v", r.ConfigErr)
	} else {
		add("Layout", "%s", surface.Classify(r.Config))
		add("Frame size", "%d bytes", r.Config.FrameSize())
	}
	return r
}

// Diagnose opens the device read/write, queries it and returns the report.
func Diagnose(path string) (Report, error) {
	dev, err := Open(path)
	if err != nil {
		return Report{}, err
	}
	defer dev.Close()

	g, err := dev.Geometry()
	if err != nil {
		return Report{}, err
	}
	return g.Report(), nil
}
