package fbdev

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/muurk/netstatus/internal/surface"
)

var errReleased = errors.New("mapping already released")

// Mapping is the single owner of a shared mapping of a framebuffer and of
// the device descriptor behind it.
type Mapping struct {
	path string
	fd   int
	data []byte

	once     sync.Once
	closeErr error
}

// Bytes returns the mapped memory. Renders write straight into it; there is
// no staging copy. Returns nil after Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Flush blocks until written pixels have reached the device.
func (m *Mapping) Flush() error {
	if m.data == nil {
		return newError(ErrTypeSyncFailed, m.path, errReleased)
	}
	if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
		return newError(ErrTypeSyncFailed, m.path, err)
	}
	return nil
}

// Close unmaps the memory and closes the descriptor. It is safe to call more
// than once; only the first call does any work.
func (m *Mapping) Close() error {
	m.once.Do(func() {
		var errs []error
		if m.data != nil {
			if err := unix.Munmap(m.data); err != nil {
				errs = append(errs, fmt.Errorf("munmap %s: %w", m.path, err))
			}
			m.data = nil
		}
		if m.fd >= 0 {
			if err := unix.Close(m.fd); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", m.path, err))
			}
			m.fd = -1
		}
		m.closeErr = errors.Join(errs...)
	})
	return m.closeErr
}

// Session is a probed and mapped framebuffer ready for rendering.
type Session struct {
	*Mapping
	config surface.Config
}

// Config returns the pixel layout of the mapped surface.
func (s *Session) Config() surface.Config {
	return s.config
}

// OpenSession opens, probes and maps the device at path. Anything acquired
// along the way is released again if a later step fails.
func OpenSession(path string) (*Session, error) {
	dev, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer dev.Close()

	cfg, err := dev.Probe()
	if err != nil {
		return nil, err
	}

	m, err := dev.Acquire(cfg.FrameSize())
	if err != nil {
		return nil, err
	}
	return &Session{Mapping: m, config: cfg}, nil
}
