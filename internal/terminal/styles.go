package terminal

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headings
	MutedColor   = lipgloss.Color("#626262") // Gray - separators, keys
	ErrorColor   = lipgloss.Color("#FF5555") // Red - problems
	TextColor    = lipgloss.Color("#FFFFFF") // White - values
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// styles are bound to one lipgloss renderer so colour detection follows the
// writer rather than os.Stdout.
type styles struct {
	heading   lipgloss.Style
	separator lipgloss.Style
	key       lipgloss.Style
	value     lipgloss.Style
	problem   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		heading: r.NewStyle().
			Foreground(PrimaryColor).
			Bold(true),
		separator: r.NewStyle().
			Foreground(MutedColor),
		key: r.NewStyle().
			Foreground(MutedColor).
			Width(15),
		value: r.NewStyle().
			Foreground(TextColor),
		problem: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
	}
}

// Width returns the column count of w if it is a terminal, DefaultWidth
// otherwise.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
