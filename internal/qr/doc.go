// Package qr turns the login payload into a QR module matrix and decides
// where and how large the symbol is drawn.
//
// Encoding is delegated to github.com/skip2/go-qrcode at Medium error
// correction. The library's own quiet zone is removed; the compositor draws
// its own 4-module margin so that it can scale it with the symbol.
//
// Encode never fails from the caller's point of view: text that cannot be
// encoded is replaced by a small "waiting" placeholder symbol.
//
// # Placement
//
// ComputePlacement sizes the symbol so that it plus its quiet zone fits in
// half the surface width and leaves 400px below it for the text block:
//
//	withQuiet = n + 8
//	scale     = max(1, min(width/(2*withQuiet), (height-400)/withQuiet))
//
// For a 1920x1080 surface and a version 1 symbol (n=21) this gives a scale
// of 23, a 483px symbol and a 92px quiet zone, with the modules starting at
// (718, 142).
package qr
