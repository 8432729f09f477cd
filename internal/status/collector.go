package status

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/muurk/netstatus/internal/config"
	"github.com/muurk/netstatus/internal/logging"
)

var errNotUTF8 = errors.New("output is not valid UTF-8")

// CommandRunner runs a command and returns its standard output.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Collector builds snapshots from the configured sources.
type Collector struct {
	Sources config.Sources
	Network config.Network

	Runner   CommandRunner
	ReadFile func(name string) ([]byte, error)
}

// NewCollector returns a collector reading the sources named in cfg.
func NewCollector(cfg *config.Config) *Collector {
	return &Collector{
		Sources:  cfg.Sources,
		Network:  cfg.Network,
		Runner:   ExecRunner{},
		ReadFile: os.ReadFile,
	}
}

// Snapshot reads every source once. It never fails; see the package
// documentation for the placeholders used.
func (c *Collector) Snapshot(ctx context.Context) Snapshot {
	password := c.readValue(c.Sources.RootPassword, PasswordPlaceholder)
	onion := c.readValue(c.Sources.OnionHostname, OnionPlaceholder)

	lines, err := c.IPLines(ctx)
	if err != nil {
		logging.Debug("Address listing unavailable", zap.Error(err))
	}

	hostname := c.readValue(c.Sources.Hostname, HostnamePlaceholder)
	return NewSnapshot(password, onion, lines, hostname)
}

func (c *Collector) readValue(path, placeholder string) string {
	data, err := c.ReadFile(path)
	if err != nil {
		logging.Debug("Source unreadable, using placeholder",
			zap.Error(&CollectError{Type: ErrTypeFileUnreadable, Source: path, Err: err}),
			zap.String("placeholder", placeholder),
		)
		return placeholder
	}
	return strings.TrimSpace(string(data))
}

// IPLines runs the address command and returns the lines of interfaces that
// are UP, loopback excluded. Errors are *CollectError values.
func (c *Collector) IPLines(ctx context.Context) ([]string, error) {
	source := strings.Join(append([]string{c.Network.Command}, c.Network.Args...), " ")

	if c.Network.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Network.Timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := c.Runner.Output(ctx, c.Network.Command, c.Network.Args...)
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("%w (after %s)", ctx.Err(), time.Since(start).Round(time.Millisecond))
		}
		return nil, &CollectError{Type: ErrTypeSubprocessFailure, Source: source, Err: err}
	}
	if !utf8.Valid(out) {
		return nil, &CollectError{Type: ErrTypeSubprocessFailure, Source: source, Err: errNotUTF8}
	}
	return FilterUp(string(out)), nil
}

// FilterUp keeps the `ip -brief` lines whose state column reads UP and that
// do not describe the loopback interface.
func FilterUp(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(ansi.Strip(line))
		if len(fields) < 2 || fields[1] != "UP" {
			continue
		}
		if fields[0] == "lo" || strings.Contains(line, "127.0.0.1") {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines
}
