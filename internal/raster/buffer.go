// Package raster holds the pixel buffer edited by a session and the mapping
// between display and buffer coordinates.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Point is a position in buffer or display space. Coordinates are fractional
// because pointer input rarely lands on pixel boundaries.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Round returns the nearest integer pixel position.
func (p Point) Round() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// Floor returns the pixel that contains p.
func (p Point) Floor() image.Point {
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Buffer is the mutable RGBA raster. Its bounds always start at the origin and
// never change after creation.
type Buffer struct {
	img *image.RGBA
}

// New returns a transparent buffer of the given size. Non-positive sizes
// produce an empty buffer.
func New(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies src into a new zero-origin buffer.
func FromImage(src image.Image) *Buffer {
	if src == nil {
		return New(0, 0)
	}
	b := src.Bounds()
	buf := New(b.Dx(), b.Dy())
	draw.Draw(buf.img, buf.img.Bounds(), src, b.Min, draw.Src)
	return buf
}

// Image exposes the live raster. Callers that keep the result across
// mutations should use Snapshot instead.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Bounds returns the buffer rectangle.
func (b *Buffer) Bounds() image.Rectangle { return b.img.Bounds() }

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Empty reports whether the buffer has no pixels.
func (b *Buffer) Empty() bool { return b == nil || b.img.Rect.Empty() }

// Clamp intersects r with the buffer bounds.
func (b *Buffer) Clamp(r image.Rectangle) image.Rectangle {
	return r.Canon().Intersect(b.img.Rect)
}

// ClampPoint moves p to the nearest pixel inside the buffer. The buffer must
// not be empty.
func (b *Buffer) ClampPoint(p image.Point) image.Point {
	p.X = min(max(p.X, 0), b.Width()-1)
	p.Y = min(max(p.Y, 0), b.Height()-1)
	return p
}

// Offset returns the index of the first byte of pixel (x, y) in Pix.
func (b *Buffer) Offset(x, y int) int {
	return y*b.img.Stride + x*4
}

// At returns the colour of the pixel nearest to (x, y) inside the buffer.
func (b *Buffer) At(x, y int) color.RGBA {
	if b.Empty() {
		return color.RGBA{}
	}
	p := b.ClampPoint(image.Pt(x, y))
	i := b.Offset(p.X, p.Y)
	s := b.img.Pix[i : i+4 : i+4]
	return color.RGBA{s[0], s[1], s[2], s[3]}
}

// ReadRect copies the part of r that lies inside the buffer. The returned
// image keeps buffer coordinates in its bounds so it can be handed back to
// WriteRect unchanged. The copy is independent of later buffer writes.
func (b *Buffer) ReadRect(r image.Rectangle) *image.RGBA {
	r = b.Clamp(r)
	out := image.NewRGBA(r)
	if r.Empty() {
		return out
	}
	rowLen := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := b.Offset(r.Min.X, y)
		di := out.PixOffset(r.Min.X, y)
		copy(out.Pix[di:di+rowLen], b.img.Pix[si:si+rowLen])
	}
	return out
}

// WriteRect copies src into the buffer at src's bounds. Parts of src outside
// the buffer are dropped.
func (b *Buffer) WriteRect(src *image.RGBA) {
	if src == nil {
		return
	}
	r := b.Clamp(src.Rect)
	if r.Empty() {
		return
	}
	rowLen := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := b.Offset(r.Min.X, y)
		copy(b.img.Pix[di:di+rowLen], src.Pix[si:si+rowLen])
	}
}

// Snapshot returns a deep copy of the whole buffer.
func (b *Buffer) Snapshot() *image.RGBA {
	out := image.NewRGBA(b.img.Rect)
	copy(out.Pix, b.img.Pix)
	return out
}

// Pix returns a copy of the raw pixel bytes.
func (b *Buffer) Pix() []uint8 {
	out := make([]uint8, len(b.img.Pix))
	copy(out, b.img.Pix)
	return out
}

// Restore overwrites the buffer with pix, which must come from a buffer of
// the same dimensions. Mismatched lengths are ignored and reported as false.
func (b *Buffer) Restore(pix []uint8) bool {
	if len(pix) != len(b.img.Pix) {
		return false
	}
	copy(b.img.Pix, pix)
	return true
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.img.Rect.Eq(o.img.Rect) && bytes.Equal(b.img.Pix, o.img.Pix)
}

// Fill paints every pixel with c.
func (b *Buffer) Fill(c color.RGBA) {
	draw.Draw(b.img, b.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}
