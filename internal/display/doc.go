// Package display drives the dashboard on the best available backend.
//
// The Controller is a small state machine:
//
//	Probing ──first frame flushed──▶ Hardware
//	   │                                ▲
//	   └─fail──▶ Terminal ──first frame─┘
//	                flushed on re-probe
//
// The Hardware state is entered only once a first frame has been flushed. It
// then redraws only when the snapshot changes; the QR symbol is re-encoded
// only when the login payload changes and re-placed only when its module
// count changes. The Hardware state is left only on shutdown.
//
// In the Terminal state the dashboard is printed once and then reprinted,
// after a clear-screen, whenever the snapshot changes. The framebuffer is
// re-probed on every tick; a device that maps but fails to flush is released
// again without touching the terminal.
//
// Run returns when its context is cancelled. The mapping, if any, is released
// on the way out.
package display
