package effect

import (
	"image"
	"math"

	"github.com/example/pixelstretcher/internal/raster"
)

// PixelBlock returns the block side used for a brush of the given size.
func PixelBlock(size int) int { return max(2, size/12) }

// ApplyPixelate quantizes the circle of diameter size centred on center into
// square blocks of PixelBlock(size) pixels anchored at the circle's bounding
// square. A block is processed when its centre lies inside the circle; it is
// clipped to the buffer and every pixel in it set to the per-channel mean of
// the clipped block. Means are taken from a copy of the region made before
// any write. It reports whether any block was written.
func ApplyPixelate(buf *raster.Buffer, center raster.Point, size int) bool {
	if buf.Empty() || size < 1 {
		return false
	}
	radius := float64(size) / 2
	ox := int(math.Round(center.X - radius))
	oy := int(math.Round(center.Y - radius))
	block := PixelBlock(size)
	region := image.Rect(ox, oy, ox+size, oy+size)
	// Blocks at the far edge may extend past the bounding square.
	span := (size + block - 1) / block * block
	src := buf.ReadRect(image.Rect(ox, oy, ox+span, oy+span))
	if src.Rect.Empty() {
		return false
	}

	img := buf.Image()
	wrote := false
	for by := region.Min.Y; by < region.Max.Y; by += block {
		for bx := region.Min.X; bx < region.Max.X; bx += block {
			cx := float64(bx) + float64(block)/2
			cy := float64(by) + float64(block)/2
			if math.Hypot(cx-center.X, cy-center.Y) > radius {
				continue
			}
			cell := buf.Clamp(image.Rect(bx, by, bx+block, by+block))
			if cell.Empty() {
				continue
			}
			var sum [4]int
			for y := cell.Min.Y; y < cell.Max.Y; y++ {
				for x := cell.Min.X; x < cell.Max.X; x++ {
					i := src.PixOffset(x, y)
					sum[0] += int(src.Pix[i+0])
					sum[1] += int(src.Pix[i+1])
					sum[2] += int(src.Pix[i+2])
					sum[3] += int(src.Pix[i+3])
				}
			}
			count := cell.Dx() * cell.Dy()
			var mean [4]uint8
			for c := range mean {
				mean[c] = uint8((sum[c] + count/2) / count)
			}
			for y := cell.Min.Y; y < cell.Max.Y; y++ {
				for x := cell.Min.X; x < cell.Max.X; x++ {
					i := buf.Offset(x, y)
					copy(img.Pix[i:i+4], mean[:])
				}
			}
			wrote = true
		}
	}
	return wrote
}
