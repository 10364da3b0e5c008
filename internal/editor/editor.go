// Package editor ties the raster buffer, the stroke controller and the undo
// history into one editing session. A Session is driven by a single event
// loop and is not safe for concurrent use.
package editor

import (
	"image"

	"github.com/charmbracelet/log"

	"github.com/example/pixelstretcher/internal/effect"
	"github.com/example/pixelstretcher/internal/history"
	"github.com/example/pixelstretcher/internal/raster"
	"github.com/example/pixelstretcher/internal/stroke"
)

const (
	// DefaultBrushSize is the brush size of a new session.
	DefaultBrushSize = 20
	// DefaultMaxBrush is the largest brush size accepted by default.
	DefaultMaxBrush = 200
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger handed to the stroke controller.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxBrush sets the upper bound for the brush size.
func WithMaxBrush(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxBrush = n
		}
	}
}

// WithHistoryLimit bounds the number of undo snapshots.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

// WithBrush sets the initial brush.
func WithBrush(b effect.Brush) Option {
	return func(s *Session) {
		s.brush = b
	}
}

// Session is one image being edited.
type Session struct {
	buf          *raster.Buffer
	hist         *history.History
	ctrl         *stroke.Controller
	mapper       raster.Mapper
	brush        effect.Brush
	maxBrush     int
	historyLimit int
	logger       *log.Logger
}

// New returns a session without an image. Pointer input is ignored until Load
// is called.
func New(opts ...Option) *Session {
	s := &Session{
		brush:        effect.Brush{Size: DefaultBrushSize, Kind: effect.Smear, Level: effect.DefaultLevel},
		maxBrush:     DefaultMaxBrush,
		historyLimit: history.DefaultLimit,
		logger:       log.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	if !s.brush.Level.Valid() {
		s.brush.Level = effect.DefaultLevel
	}
	s.brush.Size = s.clampSize(s.brush.Size)
	return s
}

// Load replaces the buffer with a copy of img and starts a fresh history
// seeded with it. Any open stroke on the previous image is finished first.
func (s *Session) Load(img image.Image) {
	if s.ctrl != nil {
		s.ctrl.Finish()
	}
	s.buf = raster.FromImage(img)
	s.hist = history.New(s.buf, history.WithLimit(s.historyLimit))
	s.ctrl = stroke.New(s.buf, s.hist, s.brush, stroke.WithLogger(s.logger))
	s.mapper = raster.Identity(s.buf.Width(), s.buf.Height())
	s.logger.Debug("loaded", "width", s.buf.Width(), "height", s.buf.Height())
}

// Loaded reports whether an image is present.
func (s *Session) Loaded() bool { return s.buf != nil }

// Bounds returns the buffer bounds, or the empty rectangle.
func (s *Session) Bounds() image.Rectangle {
	if s.buf == nil {
		return image.Rectangle{}
	}
	return s.buf.Bounds()
}

// SetMapper sets how display coordinates map onto the buffer.
func (s *Session) SetMapper(m raster.Mapper) { s.mapper = m }

// Mapper returns the current display mapping.
func (s *Session) Mapper() raster.Mapper { return s.mapper }

// Map converts a display position to buffer coordinates.
func (s *Session) Map(p raster.Point) raster.Point { return s.mapper.ToBuffer(p) }

// PointerDown starts a stroke at p in buffer coordinates.
func (s *Session) PointerDown(p raster.Point) {
	if s.ctrl == nil {
		return
	}
	s.ctrl.Press(p)
}

// PointerMove feeds a drag sample and reports whether pixels changed.
func (s *Session) PointerMove(p raster.Point) bool {
	if s.ctrl == nil {
		return false
	}
	return s.ctrl.Move(p)
}

// PointerUp ends the stroke at p and reports whether a snapshot was taken.
func (s *Session) PointerUp(p raster.Point) bool {
	if s.ctrl == nil {
		return false
	}
	return s.ctrl.Release(p)
}

// PointerLeave finishes a stroke when the pointer leaves the canvas.
func (s *Session) PointerLeave() bool {
	if s.ctrl == nil {
		return false
	}
	return s.ctrl.Leave()
}

// Stroking reports whether a stroke is open.
func (s *Session) Stroking() bool { return s.ctrl != nil && s.ctrl.Active() }

// Preview returns the pending smear segment in buffer coordinates.
func (s *Session) Preview() (start, end raster.Point, ok bool) {
	if s.ctrl == nil {
		return raster.Point{}, raster.Point{}, false
	}
	return s.ctrl.Preview()
}

func (s *Session) clampSize(n int) int { return min(max(n, 1), s.maxBrush) }

// SetBrushSize sets the brush size, clamped to 1..MaxBrush. It takes effect
// on the next sample.
func (s *Session) SetBrushSize(n int) {
	s.brush.Size = s.clampSize(n)
	if s.ctrl != nil {
		s.ctrl.SetBrushSize(s.brush.Size)
	}
}

// AdjustBrushSize changes the brush size by delta and returns the new size.
func (s *Session) AdjustBrushSize(delta int) int {
	s.SetBrushSize(s.brush.Size + delta)
	return s.brush.Size
}

// MaxBrush returns the largest accepted brush size.
func (s *Session) MaxBrush() int { return s.maxBrush }

// SetEffect selects the effect for the next stroke.
func (s *Session) SetEffect(k effect.Kind) {
	s.brush.Kind = k
	if s.ctrl != nil {
		s.ctrl.SetEffect(k)
	}
}

// SetLevel selects the smear level. Invalid levels are ignored.
func (s *Session) SetLevel(l effect.Level) {
	if !l.Valid() {
		return
	}
	s.brush.Level = l
	if s.ctrl != nil {
		s.ctrl.SetLevel(l)
	}
}

// Brush returns the current brush.
func (s *Session) Brush() effect.Brush { return s.brush }

// RequestUndo finishes any open stroke and then steps back one snapshot. It
// reports whether the buffer was restored; at the load state it does nothing.
func (s *Session) RequestUndo() bool {
	if s.ctrl == nil {
		return false
	}
	s.ctrl.Finish()
	ok := s.hist.Undo(s.buf)
	s.logger.Debug("undo", "restored", ok, "depth", s.hist.Depth())
	return ok
}

// Reset finishes any open stroke and restores the loaded image. The reset is
// recorded so it can be undone.
func (s *Session) Reset() bool {
	if s.ctrl == nil {
		return false
	}
	s.ctrl.Finish()
	s.hist.Reset(s.buf)
	return true
}

// CurrentPixels returns a copy of the buffer, or nil without an image.
func (s *Session) CurrentPixels() *image.RGBA {
	if s.buf == nil {
		return nil
	}
	return s.buf.Snapshot()
}

// View returns the live buffer image for drawing. Callers must not modify it.
func (s *Session) View() *image.RGBA {
	if s.buf == nil {
		return nil
	}
	return s.buf.Image()
}

// HistoryDepth returns the number of undo snapshots, which is at least one
// once an image is loaded and zero before.
func (s *Session) HistoryDepth() int {
	if s.hist == nil {
		return 0
	}
	return s.hist.Depth()
}
