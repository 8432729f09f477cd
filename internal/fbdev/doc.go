// Package fbdev talks to Linux framebuffer devices.
//
// It covers three concerns:
//
//   - Probing: FBIOGET_VSCREENINFO / FBIOGET_FSCREENINFO are queried and turned
//     into a surface.Config (visible size, stride, bytes per pixel, channel
//     byte offsets). Layouts that are not byte addressable are rejected.
//   - Mapping: the device memory is mapped shared read-write. A Mapping is the
//     single owner of both the memory and the descriptor; Close releases them
//     exactly once and Flush performs a synchronous msync.
//   - Diagnostics: Geometry.Report exposes the raw driver values, including a
//     stride/width mismatch check, for operators.
//
// # Usage
//
//	session, err := fbdev.OpenSession(fbdev.DefaultPath)
//	if err != nil {
//	    // fall back to the terminal
//	}
//	defer session.Close()
//
//	render.Render(session.Bytes(), session.Config(), matrix, placement, snapshot)
//	if err := session.Flush(); err != nil {
//	    ...
//	}
//
// # Errors
//
// Every failure is a *SurfaceError carrying an ErrorType. None of them are
// meant to be fatal; callers fall back one tier instead.
package fbdev
