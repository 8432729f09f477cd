// Package terminal prints the access dashboard as text.
//
// This is the fallback when no framebuffer can be used. The layout follows
// the framebuffer frame section by section so operators see the same
// information either way; headings are bold when the output is a colour
// terminal and plain otherwise.
//
// Redraws are prefixed with a clear-screen sequence (termenv ClearScreen),
// the first draw is not.
package terminal
