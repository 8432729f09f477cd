package status

import "slices"

// Placeholders substituted for unreadable sources.
const (
	PasswordPlaceholder = "(waiting...)"
	OnionPlaceholder    = "(waiting for tor...)"
	HostnamePlaceholder = "nixos"
)

// Hint is the closing line of every dashboard, framebuffer or terminal.
const Hint = "Press 'Ctrl-C' for console access"

// Snapshot is the displayed state at one point in time. It is never mutated
// after construction; LoginPayload always matches the other fields.
type Snapshot struct {
	RootPassword  string
	OnionHostname string
	LoginPayload  string
	IPLines       []string // raw `ip -brief -color` lines, colors included
	Hostname      string
}

// NewSnapshot builds a snapshot and derives its login payload.
func NewSnapshot(password, onion string, ipLines []string, hostname string) Snapshot {
	return Snapshot{
		RootPassword:  password,
		OnionHostname: onion,
		LoginPayload:  LoginPayload(password, onion, ExtractAddresses(ipLines)),
		IPLines:       ipLines,
		Hostname:      hostname,
	}
}

// Placeholder returns the snapshot shown before any source is readable.
func Placeholder() Snapshot {
	return NewSnapshot(PasswordPlaceholder, OnionPlaceholder, nil, HostnamePlaceholder)
}

// Equal reports field-wise equality. A nil and an empty address list are
// equal.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.RootPassword == o.RootPassword &&
		s.OnionHostname == o.OnionHostname &&
		s.LoginPayload == o.LoginPayload &&
		s.Hostname == o.Hostname &&
		slices.Equal(s.IPLines, o.IPLines)
}

// Changed reports whether s differs from the previously rendered snapshot.
func (s Snapshot) Changed(prev Snapshot) bool {
	return !s.Equal(prev)
}

// MDNSName is the multicast DNS name the host answers to.
func (s Snapshot) MDNSName() string {
	return s.Hostname + ".local"
}
