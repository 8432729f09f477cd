package fbdev

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a hardware-path failure
type ErrorType int

const (
	// ErrTypeDeviceUnavailable indicates the device node could not be opened
	ErrTypeDeviceUnavailable ErrorType = iota
	// ErrTypeGeometryQueryFailed indicates a screeninfo ioctl failed
	ErrTypeGeometryQueryFailed
	// ErrTypeUnsupportedFormat indicates the reported pixel layout cannot be
	// addressed byte-wise (e.g. 16bpp or non byte-aligned channels)
	ErrTypeUnsupportedFormat
	// ErrTypeMappingFailed indicates mmap of the device failed
	ErrTypeMappingFailed
	// ErrTypeSyncFailed indicates msync of the mapping failed
	ErrTypeSyncFailed
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeDeviceUnavailable:
		return "device unavailable"
	case ErrTypeGeometryQueryFailed:
		return "geometry query failed"
	case ErrTypeUnsupportedFormat:
		return "unsupported pixel format"
	case ErrTypeMappingFailed:
		return "mapping failed"
	case ErrTypeSyncFailed:
		return "sync failed"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(et))
	}
}

// SurfaceError is returned by every operation in this package. None of them
// are fatal to the program: the display controller falls back to the
// terminal when it sees one.
type SurfaceError struct {
	Type   ErrorType
	Device string
	Err    error
}

func (e *SurfaceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Device, e.Type, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Device, e.Type)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, device string, err error) *SurfaceError {
	return &SurfaceError{Type: t, Device: device, Err: err}
}

// IsErrorType reports whether err is a SurfaceError of the given type.
func IsErrorType(err error, t ErrorType) bool {
	var se *SurfaceError
	return errors.As(err, &se) && se.Type == t
}
