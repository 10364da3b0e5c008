package appstate

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/example/pixelstretcher/internal/raster"
)

const (
	headerHeight = 24
	bottomHeight = 24
	buttonHeight = 22
	minToolbar   = 64
	toolbarPad   = 4
	groupGap     = 6
)

// groupEnds lists the toolbar buttons followed by a gap: effects, levels,
// then size.
var groupEnds = map[int]bool{2: true, 5: true}

// layout splits the window into header, toolbar, status bar and canvas.
type layout struct {
	width, height int
	toolbar       int
	canvas        image.Rectangle
}

// fitZoom returns the scale that fits an image of w x h into the available
// area without enlarging it.
func fitZoom(w, h, availW, availH int) float64 {
	if w <= 0 || h <= 0 || availW <= 0 || availH <= 0 {
		return 1
	}
	z := math.Min(float64(availW)/float64(w), float64(availH)/float64(h))
	return math.Min(z, 1)
}

// computeLayout anchors the canvas just right of the toolbar and below the
// header so the image does not jump when the window grows.
func computeLayout(img image.Rectangle, width, height, toolbar int) layout {
	l := layout{width: width, height: height, toolbar: toolbar}
	if img.Empty() {
		return l
	}
	z := fitZoom(img.Dx(), img.Dy(), width-toolbar, height-headerHeight-bottomHeight)
	w := max(1, int(math.Round(float64(img.Dx())*z)))
	h := max(1, int(math.Round(float64(img.Dy())*z)))
	l.canvas = image.Rect(toolbar, headerHeight, toolbar+w, headerHeight+h)
	return l
}

func (l layout) zoom(img image.Rectangle) float64 {
	if img.Dx() == 0 {
		return 1
	}
	return float64(l.canvas.Dx()) / float64(img.Dx())
}

func (l layout) mapper(img image.Rectangle) raster.Mapper {
	return raster.NewMapper(l.canvas, img.Dx(), img.Dy())
}

func (l layout) inStatus(p image.Point) bool { return p.Y >= l.height-bottomHeight }

func (l layout) inToolbar(p image.Point) bool {
	return p.X < l.toolbar && p.Y >= headerHeight && !l.inStatus(p)
}

func (l layout) statusRect() image.Rectangle {
	return image.Rect(0, l.height-bottomHeight, l.width, l.height)
}

// toolbarExtent returns the height n buttons need at full size, padding and
// group gaps included.
func toolbarExtent(n int) int {
	h := 2*toolbarPad + n*buttonHeight
	for i := 0; i < n-1; i++ {
		if groupEnds[i] {
			h += groupGap
		}
	}
	return h
}

// minWindowHeight is the shortest window that shows n buttons at full size
// above the status bar.
func minWindowHeight(n int) int { return headerHeight + toolbarExtent(n) + bottomHeight }

// buttonRects stacks n buttons below the header. When the window is too short
// the gaps are dropped and the buttons shrink so none reaches the status bar.
func (l layout) buttonRects(n int) []image.Rectangle {
	top := headerHeight + toolbarPad
	bottom := l.height - bottomHeight
	step, gap := buttonHeight, groupGap
	if headerHeight+toolbarExtent(n) > bottom && n > 0 {
		gap = 0
		step = max(1, (bottom-top)/n)
	}
	rects := make([]image.Rectangle, n)
	y := top
	for i := range rects {
		rects[i] = image.Rect(0, y, l.toolbar, y+step)
		y += step
		if groupEnds[i] {
			y += gap
		}
	}
	return rects
}

// toolbarWidthFor returns a toolbar wide enough for every label.
func toolbarWidthFor(labels []string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	w := minToolbar
	for _, lbl := range labels {
		w = max(w, d.MeasureString(lbl).Ceil()+12)
	}
	return w
}
