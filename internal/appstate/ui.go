package appstate

import (
	"fmt"
	"image"
	"time"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixelstretcher/internal/clipboard"
	"github.com/example/pixelstretcher/internal/effect"
	"github.com/example/pixelstretcher/internal/editor"
	"github.com/example/pixelstretcher/internal/imageio"
	"github.com/example/pixelstretcher/internal/raster"
)

const messageDuration = 2 * time.Second

// copyImageFn is replaced in tests.
var copyImageFn = clipboard.WriteImage

// ui is the window state driven by the event loop. It owns no window so it
// can be exercised with synthetic events.
type ui struct {
	app  *AppState
	sess *editor.Session

	lay          layout
	toolbarWidth int
	buttons      []*CacheButton
	shortcuts    []*Shortcut
	keys         keymap
	actions      map[command]func()

	hoverButton   int
	hoverShortcut int
	pointer       image.Point
	pointerIn     bool
	dragging      bool

	message      string
	messageUntil time.Time
	now          func() time.Time
	// repaint is called from a timer once a message expires.
	repaint func()

	quit bool
}

func newUI(a *AppState) *ui {
	u := &ui{
		app:           a,
		sess:          a.Session,
		keys:          newKeymap(),
		hoverButton:   -1,
		hoverShortcut: -1,
		now:           time.Now,
	}
	u.actions = map[command]func(){
		cmdUndo:     u.undo,
		cmdSave:     u.save,
		cmdCopy:     u.copy,
		cmdReset:    u.reset,
		cmdQuit:     func() { u.quit = true },
		cmdSmear:    func() { u.setEffect(effect.Smear) },
		cmdBlur:     func() { u.setEffect(effect.Blur) },
		cmdPixelate: func() { u.setEffect(effect.Pixelate) },
		cmdLight:    func() { u.setLevel(effect.LevelLight) },
		cmdMedium:   func() { u.setLevel(effect.LevelMedium) },
		cmdHeavy:    func() { u.setLevel(effect.LevelHeavy) },
		cmdGrow:     func() { u.sess.AdjustBrushSize(1) },
		cmdShrink:   func() { u.sess.AdjustBrushSize(-1) },
	}
	u.buildButtons()
	return u
}

func (u *ui) buildButtons() {
	th := u.app.theme
	brush := func() effect.Brush { return u.sess.Brush() }
	type toolDef struct {
		label    string
		cmd      command
		selected func() bool
	}
	specs := []toolDef{
		{"S:Smear", cmdSmear, func() bool { return brush().Kind == effect.Smear }},
		{"B:Blur", cmdBlur, func() bool { return brush().Kind == effect.Blur }},
		{"P:Pixelate", cmdPixelate, func() bool { return brush().Kind == effect.Pixelate }},
		{"1:Light", cmdLight, func() bool { return brush().Level == effect.LevelLight }},
		{"2:Medium", cmdMedium, func() bool { return brush().Level == effect.LevelMedium }},
		{"3:Heavy", cmdHeavy, func() bool { return brush().Level == effect.LevelHeavy }},
		{"[ size-", cmdShrink, nil},
		{"] size+", cmdGrow, nil},
	}
	labels := make([]string, 0, len(specs))
	u.buttons = u.buttons[:0]
	for _, s := range specs {
		run := u.actions[s.cmd]
		u.buttons = append(u.buttons, &CacheButton{Button: &ToolButton{
			label: s.label, theme: th, onSelect: run, selected: s.selected,
		}})
		labels = append(labels, s.label)
	}
	u.toolbarWidth = toolbarWidthFor(labels)

	u.shortcuts = u.shortcuts[:0]
	for _, s := range []struct {
		label string
		cmd   command
	}{
		{"^Z:undo", cmdUndo},
		{"^S:save", cmdSave},
		{"^C:copy", cmdCopy},
		{"R:reset", cmdReset},
		{"Q:quit", cmdQuit},
	} {
		u.shortcuts = append(u.shortcuts, &Shortcut{label: s.label, name: s.cmd, theme: th, action: u.actions[s.cmd]})
	}
}

// resize recomputes the layout and the pointer mapping for a window of the
// given size.
func (u *ui) resize(width, height int) {
	b := u.sess.Bounds()
	u.lay = computeLayout(b, width, height, u.toolbarWidth)
	u.sess.SetMapper(u.lay.mapper(b))
	for i, r := range u.lay.buttonRects(len(u.buttons)) {
		u.buttons[i].SetRect(r)
	}
}

// windowSize returns the initial window size: the image at native size with
// room for every toolbar button.
func (u *ui) windowSize() (width, height int) {
	b := u.sess.Bounds()
	width = b.Dx() + u.toolbarWidth
	height = max(b.Dy()+headerHeight+bottomHeight, minWindowHeight(len(u.buttons)))
	return width, height
}

func (u *ui) run(c command) {
	if fn, ok := u.actions[c]; ok {
		fn()
	}
}

func (u *ui) toBuffer(x, y float32) raster.Point {
	return u.sess.Map(raster.Pt(float64(x), float64(y)))
}

// handleKey reports whether the window needs repainting.
func (u *ui) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	c, ok := u.keys.lookup(e)
	if !ok {
		return false
	}
	u.run(c)
	return true
}

// handleMouse reports whether the window needs repainting.
func (u *ui) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	if e.Button == mouse.ButtonWheelUp || e.Button == mouse.ButtonWheelDown {
		if e.Modifiers&key.ModShift == 0 {
			return false
		}
		delta := 1
		if e.Button == mouse.ButtonWheelDown {
			delta = -1
		}
		u.sess.AdjustBrushSize(delta)
		return true
	}

	u.pointer = p
	u.pointerIn = p.In(u.lay.canvas)
	if u.dragging {
		u.drag(e)
		return true
	}

	press := e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress
	u.hoverButton, u.hoverShortcut = -1, -1
	switch {
	case u.lay.inStatus(p):
		for i, sc := range u.shortcuts {
			if p.In(sc.Rect()) {
				u.hoverShortcut = i
				if press {
					sc.Activate()
				}
				break
			}
		}
	case u.lay.inToolbar(p):
		for i, cb := range u.buttons {
			if p.In(cb.Rect()) {
				u.hoverButton = i
				if press {
					cb.Activate()
				}
				break
			}
		}
	case u.pointerIn && press:
		u.dragging = true
		u.sess.PointerDown(u.toBuffer(e.X, e.Y))
	}
	return true
}

// drag routes pointer events while a stroke is open. Leaving the canvas ends
// the stroke the same way a release does.
func (u *ui) drag(e mouse.Event) {
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		u.dragging = false
		if u.pointerIn {
			u.sess.PointerUp(u.toBuffer(e.X, e.Y))
		} else {
			u.sess.PointerLeave()
		}
	case e.Direction == mouse.DirNone:
		if !u.pointerIn {
			u.dragging = false
			u.sess.PointerLeave()
			return
		}
		u.sess.PointerMove(u.toBuffer(e.X, e.Y))
	}
}

// finish closes any open stroke before the window goes away.
func (u *ui) finish() {
	if u.dragging {
		u.dragging = false
		u.sess.PointerLeave()
	}
}

func (u *ui) flash(msg string) {
	u.message = msg
	u.messageUntil = u.now().Add(messageDuration)
	if u.repaint != nil {
		time.AfterFunc(messageDuration, u.repaint)
	}
}

func (u *ui) activeMessage() string {
	if u.message == "" || !u.now().Before(u.messageUntil) {
		return ""
	}
	return u.message
}

func (u *ui) setEffect(k effect.Kind) {
	u.sess.SetEffect(k)
	u.app.logger.Debug("effect selected", "effect", k)
}

func (u *ui) setLevel(l effect.Level) {
	u.sess.SetLevel(l)
	u.app.logger.Debug("level selected", "level", l)
}

func (u *ui) undo() {
	u.dragging = false
	if !u.sess.RequestUndo() {
		u.flash("nothing to undo")
		return
	}
	u.app.logger.Info("undo", "depth", u.sess.HistoryDepth())
}

func (u *ui) reset() {
	u.dragging = false
	if u.sess.Reset() {
		u.app.logger.Info("reset", "depth", u.sess.HistoryDepth())
		u.flash("image reset")
	}
}

func (u *ui) save() {
	out := u.app.Output
	if out == "" {
		out = imageio.DefaultOutput
	}
	img := u.sess.CurrentPixels()
	if img == nil {
		return
	}
	if err := imageio.Save(out, img); err != nil {
		u.app.logger.Error("save failed", "path", out, "err", err)
		u.flash("save failed")
		return
	}
	u.app.logger.Info("saved", "path", out)
	u.app.notifier.Save(out)
	u.flash(fmt.Sprintf("saved %s", out))
}

func (u *ui) copy() {
	img := u.sess.CurrentPixels()
	if img == nil {
		return
	}
	if err := copyImageFn(img); err != nil {
		u.app.logger.Error("copy failed", "err", err)
		u.flash("copy failed")
		return
	}
	u.app.logger.Info("image copied to clipboard")
	u.app.notifier.Copy("image")
	u.flash("image copied to clipboard")
}
