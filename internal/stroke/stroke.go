// Package stroke drives one press-move-release interaction against a buffer.
package stroke

import (
	"github.com/charmbracelet/log"

	"github.com/example/pixelstretcher/internal/effect"
	"github.com/example/pixelstretcher/internal/history"
	"github.com/example/pixelstretcher/internal/raster"
)

// State is the phase of the controller.
type State int

const (
	Idle State = iota
	Sampling
	Active
	Committing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sampling:
		return "sampling"
	case Active:
		return "active"
	case Committing:
		return "committing"
	default:
		return "unknown"
	}
}

// Committer records the buffer once a stroke is complete. *history.History
// satisfies it.
type Committer interface {
	Commit(buf *raster.Buffer) history.Entry
}

// Session is the state of one stroke. It exists from press to release.
type Session struct {
	Start raster.Point
	Last  raster.Point
	// Brush is the brush as it was at press. Continuous effects still follow
	// the controller's live size.
	Brush effect.Brush
	patch effect.Patch
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to be called on every state change.
func WithObserver(fn func(from, to State)) Option {
	return func(c *Controller) {
		c.observe = fn
	}
}

// Controller applies effects to buf as pointer samples arrive and asks the
// committer for a snapshot when a stroke ends.
type Controller struct {
	buf     *raster.Buffer
	hist    Committer
	brush   effect.Brush
	state   State
	session *Session
	logger  *log.Logger
	observe func(from, to State)
}

// New returns an idle controller for buf.
func New(buf *raster.Buffer, hist Committer, brush effect.Brush, opts ...Option) *Controller {
	c := &Controller{
		buf:    buf,
		hist:   hist,
		brush:  brush,
		logger: log.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Controller) setState(s State) {
	from := c.state
	c.state = s
	c.logger.Debug("stroke", "from", from, "to", s)
	if c.observe != nil {
		c.observe(from, s)
	}
}

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Active reports whether a stroke is in progress.
func (c *Controller) Active() bool { return c.session != nil }

// Brush returns the live brush.
func (c *Controller) Brush() effect.Brush { return c.brush }

// SetBrushSize changes the live brush size. Sizes below one are raised to
// one; callers enforce the upper bound.
func (c *Controller) SetBrushSize(n int) { c.brush.Size = max(n, 1) }

// SetEffect selects the effect for the next stroke.
func (c *Controller) SetEffect(k effect.Kind) { c.brush.Kind = k }

// SetLevel selects the smear level for the next stroke.
func (c *Controller) SetLevel(l effect.Level) {
	if l.Valid() {
		c.brush.Level = l
	}
}

// Press starts a stroke at p. A stroke still open from a missed release is
// finished first.
func (c *Controller) Press(p raster.Point) {
	if c.buf.Empty() {
		return
	}
	if c.session != nil {
		c.Finish()
	}
	c.setState(Sampling)
	s := &Session{Start: p, Last: p, Brush: c.brush}
	if s.Brush.Kind == effect.Smear {
		s.patch = effect.CapturePatch(c.buf, p, s.Brush.Size)
	}
	c.session = s
	c.setState(Active)
}

// Move feeds a pointer sample. Continuous effects dab the buffer at p with
// the live brush size; a smear only remembers p as its preview target. It
// reports whether the buffer changed.
func (c *Controller) Move(p raster.Point) bool {
	s := c.session
	if s == nil {
		return false
	}
	s.Last = p
	switch s.Brush.Kind {
	case effect.Blur:
		return effect.ApplyBlur(c.buf, p, c.brush.Size)
	case effect.Pixelate:
		return effect.ApplyPixelate(c.buf, p, c.brush.Size)
	default:
		return false
	}
}

// Release ends the stroke at p. A smear is applied from the start point to p;
// continuous effects have already been applied. A snapshot is committed in
// every case. Release without a stroke does nothing and returns false.
func (c *Controller) Release(p raster.Point) bool {
	s := c.session
	if s == nil {
		return false
	}
	s.Last = p
	return c.commit()
}

// Leave ends the stroke when the pointer leaves the surface mid-drag, exactly
// as a release at the last seen point.
func (c *Controller) Leave() bool { return c.Finish() }

// Finish ends any open stroke at its last point.
func (c *Controller) Finish() bool {
	if c.session == nil {
		return false
	}
	return c.commit()
}

func (c *Controller) commit() bool {
	s := c.session
	c.setState(Committing)
	if s.Brush.Kind == effect.Smear {
		changed := effect.ApplySmear(c.buf, s.patch, s.Start, s.Last, s.Brush.Size, s.Brush.Level)
		c.logger.Debug("smear", "start", s.Start, "end", s.Last, "size", s.Brush.Size, "level", s.Brush.Level, "changed", changed)
	}
	e := c.hist.Commit(c.buf)
	c.logger.Debug("commit", "seq", e.Seq, "effect", s.Brush.Kind)
	c.session = nil
	c.setState(Idle)
	return true
}

// Preview returns the pending smear segment. ok is false unless a smear
// stroke is active.
func (c *Controller) Preview() (start, end raster.Point, ok bool) {
	s := c.session
	if s == nil || s.Brush.Kind != effect.Smear {
		return raster.Point{}, raster.Point{}, false
	}
	return s.Start, s.Last, true
}

// Session returns the open stroke, or nil.
func (c *Controller) Session() *Session { return c.session }
