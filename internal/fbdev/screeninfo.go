package fbdev

import "bytes"

// <linux/fb.h> ioctls, 0x46 is 'F'
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// BitField mirrors struct fb_bitfield. Offset and Length are in bits.
type BitField struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// VarScreenInfo mirrors struct fb_var_screeninfo.
type VarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32

	Red, Green, Blue, Transp BitField

	NonStd     uint32
	Activate   uint32
	Height     uint32 // mm
	Width      uint32 // mm
	AccelFlags uint32
	PixClock   uint32

	LeftMargin, RightMargin uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32

	Sync       uint32
	VMode      uint32
	Rotate     uint32
	Colorspace uint32
	_          [4]uint32
}

// FixScreenInfo mirrors struct fb_fix_screeninfo. The unsigned long fields
// are uintptr so the Go layout follows the C ABI on 32 and 64 bit targets.
type FixScreenInfo struct {
	ID           [16]byte
	SMemStart    uintptr
	SMemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

// Name returns the driver identification string.
func (f FixScreenInfo) Name() string {
	id := f.ID[:]
	if i := bytes.IndexByte(id, 0); i >= 0 {
		id = id[:i]
	}
	return string(id)
}
