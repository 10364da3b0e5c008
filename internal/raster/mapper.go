package raster

import "image"

// Mapper converts pointer positions on a displayed (possibly scaled) surface
// into buffer coordinates. The horizontal and vertical scale are independent.
type Mapper struct {
	// Origin is the top-left corner of the surface in pointer space.
	Origin Point
	// DisplayWidth and DisplayHeight are the on-screen size of the surface.
	DisplayWidth, DisplayHeight float64
	// BufferWidth and BufferHeight are the native size of the buffer.
	BufferWidth, BufferHeight int
}

// NewMapper builds a Mapper for a buffer drawn into the display rectangle r.
func NewMapper(r image.Rectangle, bufferWidth, bufferHeight int) Mapper {
	return Mapper{
		Origin:        Pt(float64(r.Min.X), float64(r.Min.Y)),
		DisplayWidth:  float64(r.Dx()),
		DisplayHeight: float64(r.Dy()),
		BufferWidth:   bufferWidth,
		BufferHeight:  bufferHeight,
	}
}

// Identity maps display coordinates one to one onto a buffer of the given size.
func Identity(width, height int) Mapper {
	return NewMapper(image.Rect(0, 0, width, height), width, height)
}

// Scale returns the buffer/display ratio for each axis. A degenerate display
// size maps with a ratio of 1.
func (m Mapper) Scale() (sx, sy float64) {
	return ratio(float64(m.BufferWidth), m.DisplayWidth), ratio(float64(m.BufferHeight), m.DisplayHeight)
}

// InverseScale returns the display/buffer ratio for each axis. It is used for
// sizing on-screen feedback only.
func (m Mapper) InverseScale() (sx, sy float64) {
	return ratio(m.DisplayWidth, float64(m.BufferWidth)), ratio(m.DisplayHeight, float64(m.BufferHeight))
}

// ToBuffer maps a pointer position to buffer space. The result is not clamped.
func (m Mapper) ToBuffer(p Point) Point {
	sx, sy := m.Scale()
	return Point{(p.X - m.Origin.X) * sx, (p.Y - m.Origin.Y) * sy}
}

// ToDisplay is the inverse of ToBuffer.
func (m Mapper) ToDisplay(p Point) Point {
	sx, sy := m.InverseScale()
	return Point{p.X*sx + m.Origin.X, p.Y*sy + m.Origin.Y}
}

// DisplayBrush returns the on-screen diameter of a brush of the given size.
func (m Mapper) DisplayBrush(size int) float64 {
	sx, _ := m.InverseScale()
	return float64(size) * sx
}

func ratio(num, den float64) float64 {
	if den <= 0 || num <= 0 {
		return 1
	}
	return num / den
}
