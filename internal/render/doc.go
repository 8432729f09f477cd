// Package render composes the access dashboard into a raw pixel buffer.
//
// Render does not know where the buffer lives. The framebuffer backend hands
// it a memory-mapped device, image export a plain slice; every pixel goes
// through surface.Canvas so channel order and stride come from the
// surface.Config alone and anything outside the visible area is clipped.
//
// A frame is, top to bottom:
//
//	logo (top-left, on a white plate)
//	QR symbol on its white quiet zone, horizontally centred
//	Login Credentials
//	Network Information (colored `ip -brief -color` lines, wrapped)
//	Remote Access
//	separator bar and the console hint
package render
