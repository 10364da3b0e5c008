package appstate

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/pixelstretcher/internal/raster"
	"github.com/example/pixelstretcher/internal/render"
)

var messageFace = sync.OnceValue(func() font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 28, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
})

// drawFrame renders the whole window into dst.
func drawFrame(dst *image.RGBA, u *ui) {
	th := u.app.theme
	render.Fill(dst, dst.Bounds(), th.Background)

	img := u.sess.View()
	canvas := u.lay.canvas
	if img != nil && !canvas.Empty() {
		render.Checkerboard(dst, canvas, 8, th.CheckerLight, th.CheckerDark)
		if canvas.Size() == img.Bounds().Size() {
			draw.Draw(dst, canvas, img, img.Bounds().Min, draw.Over)
		} else {
			xdraw.ApproxBiLinear.Scale(dst, canvas, img, img.Bounds(), draw.Over, nil)
		}
		drawOverlay(dst, u)
	}

	drawHeader(dst, u)
	drawToolbar(dst, u)
	drawShortcuts(dst, u)
	drawMessage(dst, u)
}

// drawOverlay draws the brush outline and the pending smear, clipped to the
// canvas.
func drawOverlay(dst *image.RGBA, u *ui) {
	clip, ok := dst.SubImage(u.lay.canvas).(*image.RGBA)
	if !ok {
		return
	}
	m := u.sess.Mapper()
	brush := u.sess.Brush()
	if start, end, ok := u.sess.Preview(); ok {
		from := displayPoint(m, start)
		to := displayPoint(m, end)
		render.SmearPreview(clip, from, to, m.DisplayBrush(brush.Size))
	}
	if u.pointerIn {
		render.BrushOutline(clip, u.pointer, m.DisplayBrush(brush.Size), brush.Kind)
	}
}

func displayPoint(m raster.Mapper, p raster.Point) image.Point {
	return m.ToDisplay(p).Round()
}

func drawHeader(dst *image.RGBA, u *ui) {
	th := u.app.theme
	r := image.Rect(0, 0, u.lay.width, headerHeight)
	render.Fill(dst, r, th.HeaderBackground)
	b := u.sess.Bounds()
	brush := u.sess.Brush()
	status := fmt.Sprintf("PixelStretcher  %dx%d  %.0f%%  %s/%s  size %d  history %d",
		b.Dx(), b.Dy(), u.lay.zoom(b)*100, brush.Kind, brush.Level, brush.Size, u.sess.HistoryDepth())
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: basicfont.Face7x13,
		Dot: fixed.P(6, 16)}
	d.DrawString(status)
}

func drawToolbar(dst *image.RGBA, u *ui) {
	th := u.app.theme
	render.Fill(dst, image.Rect(0, headerHeight, u.toolbarWidth, u.lay.height-bottomHeight), th.ToolbarBackground)
	for i, cb := range u.buttons {
		state := StateDefault
		if tb, ok := cb.Button.(*ToolButton); ok && tb.isSelected() {
			state = StatePressed
		} else if i == u.hoverButton {
			state = StateHover
		}
		cb.Draw(dst, state)
	}
}

func drawShortcuts(dst *image.RGBA, u *ui) {
	th := u.app.theme
	rect := u.lay.statusRect()
	render.Fill(dst, rect, th.StatusBackground)
	x := u.toolbarWidth + 4
	y := rect.Min.Y + 16
	meas := &font.Drawer{Face: basicfont.Face7x13}
	for i, sc := range u.shortcuts {
		w := meas.MeasureString(sc.label).Ceil()
		sc.SetRect(image.Rect(x-2, y-14, x+w+2, y+4))
		state := StateDefault
		if i == u.hoverShortcut {
			state = StateHover
		}
		sc.Draw(dst, state)
		x = sc.rect.Max.X + 8
	}
}

func drawMessage(dst *image.RGBA, u *ui) {
	msg := u.activeMessage()
	if msg == "" {
		return
	}
	th := u.app.theme
	face := messageFace()
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.Foreground), Face: face}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := (u.lay.width - wmsg) / 2
	py := (u.lay.height-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, image.NewUniform(th.MessageBackground), image.Point{}, draw.Over)
	render.Rect(dst, rect, th.ButtonBorder)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
