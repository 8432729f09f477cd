package render

import (
	"strings"

	"github.com/muurk/netstatus/internal/surface"
)

// Segment is a run of text drawn in one colour.
type Segment struct {
	Text  string
	Color surface.RGB
}

// Foreground colours of the SGR codes printed by `ip -color`. Bold is drawn
// as plain white.
var palette = map[string]surface.RGB{
	"0": surface.White, "00": surface.White,
	"1": surface.White, "01": surface.White,
	"30": surface.Black,
	"31": {R: 255, G: 85, B: 85}, "1;31": {R: 255, G: 85, B: 85},
	"32": {R: 85, G: 255, B: 85}, "1;32": {R: 85, G: 255, B: 85},
	"33": {R: 255, G: 255, B: 85}, "1;33": {R: 255, G: 255, B: 85},
	"34": {R: 85, G: 85, B: 255}, "1;34": {R: 85, G: 85, B: 255},
	"35": {R: 255, G: 85, B: 255}, "1;35": {R: 255, G: 85, B: 255},
	"36": {R: 85, G: 255, B: 255}, "1;36": {R: 85, G: 255, B: 255},
	"37": surface.White, "1;37": surface.White,
}

// ParseSegments splits a line carrying SGR escapes (ESC [ code m) into
// coloured runs. Text starts white; unknown codes keep the current colour.
// An ESC not followed by '[' is ordinary text and a sequence with no
// terminating 'm' consumes the rest of the line.
func ParseSegments(line string) []Segment {
	var (
		segs []Segment
		text strings.Builder
		col  = surface.White
	)
	flush := func() {
		if text.Len() > 0 {
			segs = append(segs, Segment{Text: text.String(), Color: col})
			text.Reset()
		}
	}

	for i := 0; i < len(line); i++ {
		if line[i] != 0x1b || i+1 >= len(line) || line[i+1] != '[' {
			text.WriteByte(line[i])
			continue
		}
		flush()

		code, _, found := strings.Cut(line[i+2:], "m")
		if !found {
			break
		}
		if c, ok := palette[code]; ok {
			col = c
		}
		i += 2 + len(code)
	}
	flush()
	return segs
}
