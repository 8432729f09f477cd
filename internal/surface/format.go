package surface

// PixelFormat names a well-known channel arrangement.
type PixelFormat int

const (
	// FormatCustom is any valid layout that has no common name.
	FormatCustom PixelFormat = iota
	FormatRGB24
	FormatBGR24
	FormatRGBX32 // R G B X in memory order
	FormatBGRX32 // B G R X, the usual little-endian XRGB8888 framebuffer
	FormatXRGB32 // X R G B
	FormatXBGR32 // X B G R
)

// String returns a human-readable name for the format
func (f PixelFormat) String() string {
	switch f {
	case FormatRGB24:
		return "RGB24"
	case FormatBGR24:
		return "BGR24"
	case FormatRGBX32:
		return "RGBX32"
	case FormatBGRX32:
		return "BGRX32"
	case FormatXRGB32:
		return "XRGB32"
	case FormatXBGR32:
		return "XBGR32"
	default:
		return "custom"
	}
}

type channelOrder struct {
	bpp, r, g, b int
}

var knownFormats = map[channelOrder]PixelFormat{
	{3, 0, 1, 2}: FormatRGB24,
	{3, 2, 1, 0}: FormatBGR24,
	{4, 0, 1, 2}: FormatRGBX32,
	{4, 2, 1, 0}: FormatBGRX32,
	{4, 1, 2, 3}: FormatXRGB32,
	{4, 3, 2, 1}: FormatXBGR32,
}

// Classify maps a config onto a named pixel format. Layouts that are valid
// but uncommon are reported as FormatCustom rather than rejected.
func Classify(c Config) PixelFormat {
	if f, ok := knownFormats[channelOrder{c.BytesPerPixel, c.RedOffset, c.GreenOffset, c.BlueOffset}]; ok {
		return f
	}
	return FormatCustom
}

// HasAlpha reports whether the pixel carries a fourth byte besides the
// colour channels.
func (c Config) HasAlpha() bool {
	return c.spareOffset() >= 0
}
