package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/muurk/netstatus/internal/fbdev"
	"github.com/muurk/netstatus/internal/status"
)

// Renderer writes dashboards to a text stream.
type Renderer struct {
	out      io.Writer
	term     *termenv.Output
	renderer *lipgloss.Renderer
	styles   styles

	// Width overrides terminal size detection when non-zero.
	Width int
}

// New returns a renderer writing to w.
func New(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		out:      w,
		term:     termenv.NewOutput(w),
		renderer: lr,
		styles:   newStyles(lr),
	}
}

func (r *Renderer) width() int {
	if r.Width > 0 {
		return r.Width
	}
	return Width(r.out)
}

// Render prints s. With clear set the screen is wiped first.
func (r *Renderer) Render(s status.Snapshot, clear bool) error {
	if clear {
		r.term.ClearScreen()
	}
	_, err := io.WriteString(r.out, r.Format(s))
	return err
}

// Format returns the text Render prints, without the clear sequence.
func (r *Renderer) Format(s status.Snapshot) string {
	colour := r.renderer.ColorProfile() != termenv.Ascii
	st := r.styles

	var b strings.Builder
	line := func(text string) {
		b.WriteString(text)
		b.WriteByte('\n')
	}

	line(st.heading.Render("Login Credentials"))
	line("  Root password: " + s.RootPassword)
	line("")
	line(st.heading.Render("Network Information"))
	for _, l := range s.IPLines {
		if !colour {
			l = ansi.Strip(l)
		}
		line("  " + l)
	}
	line("")
	line(st.heading.Render("Remote Access"))
	line("  Tor Hidden Service: " + s.OnionHostname)
	line("  Multicast DNS: " + s.MDNSName())
	line("")
	line(st.separator.Render(strings.Repeat("─", r.width())))
	line(status.Hint)
	return b.String()
}

// Report prints a framebuffer geometry report.
func (r *Renderer) Report(rep fbdev.Report) error {
	st := r.styles

	var b strings.Builder
	fmt.Fprintln(&b, st.heading.Render("Framebuffer "+rep.Device))
	for _, e := range rep.Entries {
		v := st.value.Render(e.Value)
		if strings.HasPrefix(e.Value, "MISMATCH") || strings.HasPrefix(e.Value, "unsupported") {
			v = st.problem.Render(e.Value)
		}
		fmt.Fprintf(&b, "  %s %s\n", st.key.Render(e.Key+":"), v)
	}
	if rep.Padded {
		fmt.Fprintln(&b, st.separator.Render("  Scanlines are padded; rendering uses the stride, not the visible width."))
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}
