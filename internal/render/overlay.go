package render

import (
	"image"
	"image/color"
	"math"

	"github.com/example/pixelstretcher/internal/effect"
)

var (
	// OutlineDark and OutlineLight are drawn side by side so the outline
	// stays visible on any image.
	OutlineDark  = color.RGBA{0, 0, 0, 255}
	OutlineLight = color.RGBA{255, 255, 255, 255}
	// PreviewColor marks the pending smear.
	PreviewColor = color.RGBA{255, 64, 64, 255}
)

// BrushOutline draws the brush footprint centred at c. diameter is in
// display pixels. Pixelate shows a square, the other effects a circle; a
// smear also gets a small cross at its centre.
func BrushOutline(img *image.RGBA, c image.Point, diameter float64, kind effect.Kind) {
	r := int(math.Round(diameter / 2))
	switch kind {
	case effect.Pixelate:
		sq := image.Rect(c.X-r, c.Y-r, c.X+r+1, c.Y+r+1)
		Rect(img, sq, OutlineDark)
		Rect(img, sq.Inset(1), OutlineLight)
	default:
		Circle(img, c.X, c.Y, r, OutlineDark)
		if r > 1 {
			Circle(img, c.X, c.Y, r-1, OutlineLight)
		}
	}
	if kind == effect.Smear {
		arm := max(2, min(r/3, 6))
		Line(img, c.X-arm, c.Y, c.X+arm, c.Y, 1, 1, OutlineLight)
		Line(img, c.X, c.Y-arm, c.X, c.Y+arm, 1, 1, OutlineLight)
	}
}

// SmearPreview draws the segment a smear will stretch along, with the brush
// width marked across the start point.
func SmearPreview(img *image.RGBA, from, to image.Point, diameter float64) {
	Line(img, from.X, from.Y, to.X, to.Y, 1, 4, PreviewColor, OutlineLight)
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	half := diameter / 2
	px, py := -dy/d*half, dx/d*half
	Line(img,
		from.X+int(math.Round(px)), from.Y+int(math.Round(py)),
		from.X-int(math.Round(px)), from.Y-int(math.Round(py)),
		1, 1, PreviewColor)
	Circle(img, to.X, to.Y, 2, PreviewColor)
}
