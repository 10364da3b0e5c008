package effect

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/example/pixelstretcher/internal/raster"
)

// ApplySmear stretches the brush cross-section at start along the segment from
// start to end. A strip of ceil(|end-start|) by size pixels is built where
// row i holds the colour of the pixel under start + perp*(i + 0.5 - size/2),
// perp being the unit normal of the drag. The strip is rotated onto the drag direction and
// composited over buf with bilinear filtering.
//
// Samples come from src, which must have been captured before the stroke
// wrote anything. The strip is clipped to the stretch of the drag that can
// reach the buffer, so points far outside cost no more than points inside.
// It reports whether any pixels were composited; a zero length drag, a size
// below one or a drag that never passes the buffer is a no-op.
func ApplySmear(buf *raster.Buffer, src Patch, start, end raster.Point, size int, level Level) bool {
	if buf.Empty() || size < 1 {
		return false
	}
	d := end.Sub(start)
	dist := math.Hypot(d.X, d.Y)
	if dist == 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return false
	}
	cos, sin := d.X/dist, d.Y/dist
	perp := raster.Pt(-sin, cos)
	half := float64(size) / 2

	samples := make([]color.RGBA, size)
	for i := range samples {
		off := float64(i) + 0.5 - half
		p := raster.Pt(start.X+perp.X*off, start.Y+perp.Y*off).Floor()
		samples[i] = src.At(p.X, p.Y)
	}
	column := resample(samples, level)

	lo, hi := dragSpan(buf, start, raster.Pt(cos, sin), dist)
	if hi <= lo {
		return false
	}
	length := int(math.Ceil(hi - lo))
	strip := image.NewRGBA(image.Rect(0, 0, length, size))
	for y, c := range column {
		row := strip.Pix[y*strip.Stride : y*strip.Stride+length*4]
		for x := 0; x < length; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}

	// Strip coordinates (u, v) land at origin + u*dir + (v-half)*perp where
	// origin is the first drag position the buffer can see.
	origin := raster.Pt(start.X+cos*lo, start.Y+sin*lo)
	s2d := f64.Aff3{
		cos, -sin, origin.X + sin*half,
		sin, cos, origin.Y - cos*half,
	}
	xdraw.BiLinear.Transform(buf.Image(), s2d, strip, strip.Bounds(), xdraw.Over, nil)
	return true
}

// dragSpan clips the drag [0, dist] along dir to the part whose projection
// overlaps the buffer, with a one pixel margin for bilinear edges. Strip
// pixels outside it can never land inside the buffer.
func dragSpan(buf *raster.Buffer, start, dir raster.Point, dist float64) (lo, hi float64) {
	w, h := float64(buf.Width()), float64(buf.Height())
	first, last := math.Inf(1), math.Inf(-1)
	for _, c := range []raster.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}} {
		u := (c.X-start.X)*dir.X + (c.Y-start.Y)*dir.Y
		first, last = min(first, u), max(last, u)
	}
	lo = max(0, math.Floor(first)-1)
	hi = min(dist, math.Ceil(last)+1)
	return lo, hi
}
