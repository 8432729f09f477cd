package display

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/netstatus/internal/config"
	"github.com/muurk/netstatus/internal/logging"
	"github.com/muurk/netstatus/internal/qr"
	"github.com/muurk/netstatus/internal/render"
	"github.com/muurk/netstatus/internal/status"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = 2 * time.Second

// State is the controller state.
type State int

const (
	StateProbing State = iota
	StateHardware
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateProbing:
		return "probing"
	case StateHardware:
		return "hardware"
	case StateTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats counts the work done by the controller.
type Stats struct {
	Frames     int // framebuffer frames rendered
	Encodes    int // QR encodings
	Placements int // placement computations
	Skipped    int // hardware ticks with nothing to redraw
	TextDraws  int // terminal prints
}

// Controller runs the display loop. All collaborators must be set; Interval
// and Sleep have defaults.
type Controller struct {
	Hardware Hardware
	Source   SnapshotSource
	Encoder  Encoder
	Text     TextRenderer

	Interval time.Duration
	// Sleep blocks for d or until ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error

	state State
	stats Stats
}

// New wires a controller from the configuration.
func New(cfg *config.Config, text TextRenderer) *Controller {
	return &Controller{
		Hardware: Framebuffer{Path: cfg.Display.Framebuffer},
		Source:   status.NewCollector(cfg),
		Encoder:  qr.NewEncoder(),
		Text:     text,
		Interval: cfg.Display.PollInterval,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Stats returns the work counters.
func (c *Controller) Stats() Stats {
	return c.stats
}

// Run drives the display until ctx is cancelled. It only returns an error
// if a collaborator is missing.
func (c *Controller) Run(ctx context.Context) error {
	if c.Hardware == nil || c.Source == nil || c.Encoder == nil || c.Text == nil {
		return errors.New("display: controller is missing a collaborator")
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Sleep == nil {
		c.Sleep = sleep
	}

	c.state = StateProbing
	var f *frame
	for ctx.Err() == nil {
		switch c.state {
		case StateProbing:
			f = c.start(ctx, false)
			if f != nil {
				c.transition(StateHardware)
			} else {
				c.transition(StateTerminal)
			}
		case StateHardware:
			c.hardware(ctx, f)
			f = nil
			if ctx.Err() == nil {
				c.transition(StateTerminal)
			}
		case StateTerminal:
			f = c.terminal(ctx)
			if f != nil {
				c.transition(StateHardware)
			}
		}
	}
	if f != nil {
		c.release(f.sess)
	}
	logging.Debug("Display loop stopped", zap.Stringer("state", c.state))
	return nil
}

func (c *Controller) transition(to State) {
	if to == c.state {
		return
	}
	logging.Debug("Display state change",
		zap.Stringer("from", c.state),
		zap.Stringer("to", to),
	)
	c.state = to
}

// acquire returns an open session or nil. Re-probes from the terminal state
// log at debug level so a broken device does not flood the log.
func (c *Controller) acquire(retry bool) Session {
	dev := c.Hardware.Device()
	if !c.Hardware.Available() {
		if !retry {
			logging.Debug("No framebuffer device", zap.String("device", dev))
		}
		return nil
	}

	sess, err := c.Hardware.Open()
	if err != nil {
		if retry {
			logging.Debug("Framebuffer still unusable", zap.String("device", dev), zap.Error(err))
		} else {
			logging.LogFallback(dev, err)
		}
		return nil
	}
	logging.LogBackend("framebuffer", dev)
	return sess
}

func (c *Controller) release(sess Session) {
	if err := sess.Close(); err != nil {
		logging.Warn("Failed to release framebuffer", zap.Error(err))
	}
}

// frame is a framebuffer session whose first frame has been flushed, along
// with what is on screen.
type frame struct {
	sess Session
	last status.Snapshot
	m    *qr.Matrix
	p    qr.Placement
}

// start acquires the framebuffer and flushes a first frame. It returns nil,
// with nothing left mapped, if either step fails.
func (c *Controller) start(ctx context.Context, retry bool) *frame {
	sess := c.acquire(retry)
	if sess == nil {
		return nil
	}
	cfg := sess.Config()
	dev := c.Hardware.Device()

	f := &frame{sess: sess, last: c.Source.Snapshot(ctx)}
	f.m = c.encode(f.last.LoginPayload)
	f.p = c.place(cfg.Width, cfg.Height, f.m.Size())

	c.draw(sess, f.m, f.p, f.last)
	if err := sess.Flush(); err != nil {
		if retry {
			logging.Debug("Framebuffer still not flushing", zap.String("device", dev), zap.Error(err))
		} else {
			logging.LogFallback(dev, err)
		}
		c.release(sess)
		return nil
	}
	logging.LogRender("framebuffer", "first frame",
		zap.Stringer("surface", cfg),
		zap.Int("modules", f.m.Size()),
		zap.Int("scale", f.p.Scale),
	)
	return f
}

// hardware keeps a started frame current until ctx is cancelled, then
// releases the session.
func (c *Controller) hardware(ctx context.Context, f *frame) {
	sess := f.sess
	defer c.release(sess)
	cfg := sess.Config()
	dev := c.Hardware.Device()
	n := f.m.Size()

	for {
		if err := c.Sleep(ctx, c.Interval); err != nil {
			return
		}

		s := c.Source.Snapshot(ctx)
		if !s.Changed(f.last) {
			c.stats.Skipped++
			continue
		}

		reason := "state changed"
		if s.LoginPayload != f.last.LoginPayload {
			reason = "payload changed"
			f.m = c.encode(s.LoginPayload)
			if f.m.Size() != n {
				n = f.m.Size()
				f.p = c.place(cfg.Width, cfg.Height, n)
			}
		}

		c.draw(sess, f.m, f.p, s)
		if err := sess.Flush(); err != nil {
			logging.Warn("Framebuffer flush failed", zap.String("device", dev), zap.Error(err))
		}
		logging.LogRender("framebuffer", reason, zap.Int("modules", n))
		f.last = s
	}
}

// terminal prints the dashboard and keeps it current. It returns a started
// frame once the framebuffer renders, nil when ctx is cancelled. A device
// that maps but cannot flush leaves the printed dashboard alone.
func (c *Controller) terminal(ctx context.Context) *frame {
	last := c.Source.Snapshot(ctx)
	c.print(last, false)

	for {
		if err := c.Sleep(ctx, c.Interval); err != nil {
			return nil
		}
		if f := c.start(ctx, true); f != nil {
			return f
		}

		s := c.Source.Snapshot(ctx)
		if s.Changed(last) {
			c.print(s, true)
			last = s
		}
	}
}

func (c *Controller) encode(payload string) *qr.Matrix {
	c.stats.Encodes++
	return c.Encoder.Encode(payload)
}

func (c *Controller) place(width, height, n int) qr.Placement {
	c.stats.Placements++
	return qr.ComputePlacement(width, height, n)
}

func (c *Controller) draw(sess Session, m *qr.Matrix, p qr.Placement, s status.Snapshot) {
	c.stats.Frames++
	render.Render(sess.Bytes(), sess.Config(), m, p, s)
}

func (c *Controller) print(s status.Snapshot, clear bool) {
	c.stats.TextDraws++
	if err := c.Text.Render(s, clear); err != nil {
		logging.Warn("Failed to print status", zap.Error(err))
		return
	}
	if clear {
		logging.LogRender("terminal", "state changed")
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
