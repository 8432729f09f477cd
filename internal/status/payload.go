package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ExtractAddresses returns the bare addresses listed in `ip -brief` lines.
// The interface name and state columns are skipped, any token containing a
// '.' or ':' is taken as an address and its prefix length is cut off.
func ExtractAddresses(lines []string) []string {
	var addrs []string
	for _, line := range lines {
		fields := strings.Fields(ansi.Strip(line))
		if len(fields) <= 2 {
			continue
		}
		for _, f := range fields[2:] {
			if !strings.ContainsAny(f, ".:") {
				continue
			}
			addr, _, _ := strings.Cut(f, "/")
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

// LoginPayload renders the QR payload. Key order is fixed.
func LoginPayload(password, onion string, addrs []string) string {
	var b strings.Builder
	b.WriteString(`{"pass":"`)
	writeEscaped(&b, password)
	b.WriteString(`","tor":"`)
	writeEscaped(&b, onion)
	b.WriteString(`","addrs":[`)
	for i, a := range addrs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		writeEscaped(&b, a)
		b.WriteByte('"')
	}
	b.WriteString("]}")
	return b.String()
}

func writeEscaped(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
}
