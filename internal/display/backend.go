package display

import (
	"context"

	"github.com/muurk/netstatus/internal/fbdev"
	"github.com/muurk/netstatus/internal/qr"
	"github.com/muurk/netstatus/internal/status"
	"github.com/muurk/netstatus/internal/surface"
)

// Session is an acquired pixel surface. Close releases it and must be safe
// to call more than once.
type Session interface {
	Config() surface.Config
	Bytes() []byte
	Flush() error
	Close() error
}

// Hardware probes for and acquires a pixel surface.
type Hardware interface {
	Device() string
	Available() bool
	Open() (Session, error)
}

// SnapshotSource produces the state to display.
type SnapshotSource interface {
	Snapshot(ctx context.Context) status.Snapshot
}

// Encoder turns the login payload into a QR symbol. It never fails.
type Encoder interface {
	Encode(text string) *qr.Matrix
}

// TextRenderer prints the dashboard as text.
type TextRenderer interface {
	Render(s status.Snapshot, clear bool) error
}

// Framebuffer is the Linux framebuffer backend.
type Framebuffer struct {
	Path string
}

func (f Framebuffer) Device() string {
	return f.Path
}

func (f Framebuffer) Available() bool {
	return fbdev.Exists(f.Path)
}

func (f Framebuffer) Open() (Session, error) {
	s, err := fbdev.OpenSession(f.Path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
