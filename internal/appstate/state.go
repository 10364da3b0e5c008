// Package appstate runs the interactive editor window. Pointer input over the
// canvas is mapped into buffer space and fed to an editor.Session; the
// toolbar and the status bar select effects and trigger undo, save and copy.
package appstate

import (
	"errors"
	"image"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixelstretcher/internal/editor"
	"github.com/example/pixelstretcher/internal/notify"
	"github.com/example/pixelstretcher/internal/theme"
)

// ErrNoImage is returned by Run when the session has nothing loaded.
var ErrNoImage = errors.New("no image loaded")

// AppState holds application configuration for the UI.
type AppState struct {
	Session *editor.Session
	Output  string

	logger   *log.Logger
	notifier *notify.Notifier
	theme    *theme.Theme

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSession sets the editing session shown in the window.
func WithSession(s *editor.Session) Option { return func(a *AppState) { a.Session = s } }

// WithOutput sets the path written by the save action.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithLogger sets the logger for UI actions.
func WithLogger(l *log.Logger) Option {
	return func(a *AppState) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithNotifier sets the desktop notifier used after save and copy.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.notifier = n } }

// WithTheme sets the window colors.
func WithTheme(t *theme.Theme) Option {
	return func(a *AppState) {
		if t != nil {
			a.theme = t
		}
	}
}

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		logger: log.Default(),
		theme:  theme.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver and returns once the window
// is closed.
func (a *AppState) Run() error {
	if a.Session == nil || !a.Session.Loaded() {
		return ErrNoImage
	}
	var err error
	driver.Main(func(s screen.Screen) { err = a.Main(s) })
	return err
}

// Main runs the event loop on s. Events are handled one at a time and every
// repaint is drawn synchronously.
func (a *AppState) Main(s screen.Screen) error {
	if a.Session == nil || !a.Session.Loaded() {
		return ErrNoImage
	}
	defer a.notifyClose()

	u := newUI(a)
	width, height := u.windowSize()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "PixelStretcher"})
	if err != nil {
		return err
	}
	defer w.Release()

	u.repaint = func() { w.Send(paint.Event{}) }
	u.resize(width, height)

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				u.finish()
				return nil
			}
		case size.Event:
			u.resize(e.WidthPx, e.HeightPx)
			w.Send(paint.Event{})
		case paint.Event:
			if err := a.paint(s, w, u); err != nil {
				a.logger.Error("paint", "err", err)
			}
		case mouse.Event:
			if u.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if u.handleKey(e) {
				w.Send(paint.Event{})
			}
		case error:
			a.logger.Error("window", "err", e)
		}
		if u.quit {
			u.finish()
			return nil
		}
	}
}

func (a *AppState) paint(s screen.Screen, w screen.Window, u *ui) error {
	buf, err := s.NewBuffer(image.Point{u.lay.width, u.lay.height})
	if err != nil {
		return err
	}
	defer buf.Release()
	drawFrame(buf.RGBA(), u)
	w.Upload(image.Point{}, buf, buf.Bounds())
	w.Publish()
	return nil
}
