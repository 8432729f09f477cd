// Package surface describes a destination pixel buffer independently of the
// backend that owns it.
//
// A Config carries the visible geometry, the row stride and the byte position
// of each colour channel inside a pixel. Every drawing primitive in the
// repository addresses memory through a Config, so the same compositor code
// renders into a BGRA framebuffer, an RGB24 panel or an in-memory export
// canvas.
//
// # Pixel Layout
//
// Offsets are byte positions within one pixel:
//
//	BGRA32: BytesPerPixel=4 Blue=0 Green=1 Red=2   (most x86 framebuffers)
//	RGB24:  BytesPerPixel=3 Red=0  Green=1 Blue=2
//
// When BytesPerPixel is 4, the byte not claimed by a colour channel is
// treated as padding/alpha and written as 0xFF.
//
// # Clipping
//
// Canvas.Set silently drops writes outside [0,Width)×[0,Height). Callers never
// need to bounds-check coordinates themselves.
package surface
