package fbdev

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/muurk/netstatus/internal/surface"
)

// DefaultPath is the first framebuffer on Linux.
const DefaultPath = "/dev/fb0"

// Exists reports whether a device node is present at path. It does not
// check whether the device is usable.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Device is an open framebuffer device node.
type Device struct {
	path string
	fd   int
}

// Open opens the framebuffer for reading and writing.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, newError(ErrTypeDeviceUnavailable, path, err)
	}
	return &Device{path: path, fd: fd}, nil
}

// Path returns the device node path.
func (d *Device) Path() string {
	return d.path
}

// Close closes the device. It is a no-op once ownership of the descriptor
// has moved to a Mapping.
func (d *Device) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	if d.fd < 0 {
		return unix.EBADF
	}
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Geometry queries both the variable and the fixed screen information.
func (d *Device) Geometry() (Geometry, error) {
	var g Geometry
	g.Device = d.path
	if err := d.ioctl(fbioGetVScreenInfo, unsafe.Pointer(&g.Var)); err != nil {
		return g, newError(ErrTypeGeometryQueryFailed, d.path, fmt.Errorf("FBIOGET_VSCREENINFO: %w", err))
	}
	if err := d.ioctl(fbioGetFScreenInfo, unsafe.Pointer(&g.Fix)); err != nil {
		return g, newError(ErrTypeGeometryQueryFailed, d.path, fmt.Errorf("FBIOGET_FSCREENINFO: %w", err))
	}
	return g, nil
}

// Probe queries the device and converts the result into a surface config.
func (d *Device) Probe() (surface.Config, error) {
	g, err := d.Geometry()
	if err != nil {
		return surface.Config{}, err
	}
	cfg, err := g.SurfaceConfig()
	if err != nil {
		return surface.Config{}, newError(ErrTypeUnsupportedFormat, d.path, err)
	}
	return cfg, nil
}

// Geometry is the raw screen information reported by the driver.
type Geometry struct {
	Device string
	Var    VarScreenInfo
	Fix    FixScreenInfo
}

var errNotByteAligned = errors.New("channel offset not byte aligned")

// SurfaceConfig derives the pixel surface description.
//
// The stride normally comes from the virtual width. When the driver reports
// a line length that is a whole number of pixels wider than that, the line
// length wins, since it is what the hardware actually scans out.
func (g Geometry) SurfaceConfig() (surface.Config, error) {
	v := g.Var
	if v.BitsPerPixel%8 != 0 {
		return surface.Config{}, fmt.Errorf("%d bits per pixel is not byte addressable", v.BitsPerPixel)
	}
	bpp := int(v.BitsPerPixel / 8)

	var offsets [3]int
	for i, bf := range [3]BitField{v.Red, v.Green, v.Blue} {
		if bf.Offset%8 != 0 {
			return surface.Config{}, fmt.Errorf("%w: offset %d", errNotByteAligned, bf.Offset)
		}
		offsets[i] = int(bf.Offset / 8)
	}

	width, height := int(v.XRes), int(v.YRes)
	stride := max(int(v.XResVirtual), width)
	if bpp > 0 && g.Fix.LineLength > 0 && int(g.Fix.LineLength)%bpp == 0 {
		stride = max(stride, int(g.Fix.LineLength)/bpp)
	}

	return surface.NewConfig(width, height, stride, bpp, offsets[0], offsets[1], offsets[2])
}

// Acquire maps size bytes of the device shared read-write. On success the
// descriptor belongs to the returned Mapping and the Device must not be
// used for further ioctls.
func (d *Device) Acquire(size int) (*Mapping, error) {
	if d.fd < 0 {
		return nil, newError(ErrTypeMappingFailed, d.path, unix.EBADF)
	}
	if size <= 0 {
		return nil, newError(ErrTypeMappingFailed, d.path, fmt.Errorf("invalid mapping size %d", size))
	}
	data, err := unix.Mmap(d.fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, newError(ErrTypeMappingFailed, d.path, err)
	}
	m := &Mapping{path: d.path, fd: d.fd, data: data}
	d.fd = -1
	return m, nil
}
