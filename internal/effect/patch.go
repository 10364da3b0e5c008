package effect

import (
	"image"
	"image/color"

	"github.com/example/pixelstretcher/internal/raster"
)

// Patch is a copy of buffer pixels taken before a stroke writes anything.
// Later reads go through the patch so a stroke never samples its own output.
type Patch struct {
	img *image.RGBA
}

// CapturePatch copies the square around center that covers a brush of the
// given size, plus a two pixel margin for samples rounded at the brush edge.
func CapturePatch(buf *raster.Buffer, center raster.Point, size int) Patch {
	if buf.Empty() || size < 1 {
		return Patch{}
	}
	c := buf.ClampPoint(center.Round())
	half := size/2 + 2
	r := image.Rect(c.X-half, c.Y-half, c.X+half+1, c.Y+half+1)
	return Patch{img: buf.ReadRect(r)}
}

// Bounds returns the captured rectangle in buffer coordinates.
func (p Patch) Bounds() image.Rectangle {
	if p.img == nil {
		return image.Rectangle{}
	}
	return p.img.Rect
}

// Empty reports whether nothing was captured.
func (p Patch) Empty() bool { return p.img == nil || p.img.Rect.Empty() }

// At returns the captured pixel nearest to (x, y). Coordinates beyond the
// patch are clamped to its edge.
func (p Patch) At(x, y int) color.RGBA {
	if p.Empty() {
		return color.RGBA{}
	}
	r := p.img.Rect
	x = min(max(x, r.Min.X), r.Max.X-1)
	y = min(max(y, r.Min.Y), r.Max.Y-1)
	return p.img.RGBAAt(x, y)
}
