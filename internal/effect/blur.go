package effect

import (
	"image"
	"math"

	"github.com/example/pixelstretcher/internal/raster"
)

const (
	// BlurSigma is the standard deviation of the blur kernel.
	BlurSigma = 1.5
	// BlurBlend is the strength of a single dab at the brush centre.
	BlurBlend = 0.3
)

// BlurKernelRadius returns the kernel radius used for a brush of the given size.
func BlurKernelRadius(size int) int { return max(2, size/20) }

// gaussianKernel returns a (2r+1)² kernel in row-major order whose weights
// sum to one.
func gaussianKernel(r int, sigma float64) []float64 {
	n := 2*r + 1
	k := make([]float64, n*n)
	sum := 0.0
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			w := math.Exp(-float64(x*x+y*y) / (2 * sigma * sigma))
			k[(y+r)*n+x+r] = w
			sum += w
		}
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// ApplyBlur softens the circle of diameter size centred on center. Each pixel in
// the circle is replaced by a gaussian weighted average of its neighbourhood,
// blended with the original by BlurBlend scaled down linearly to zero at the
// circle edge. All reads come from a copy of the affected square taken before
// any write; neighbours outside the square are left out and the remaining
// weights renormalized. It reports whether any pixel was visited.
func ApplyBlur(buf *raster.Buffer, center raster.Point, size int) bool {
	if buf.Empty() || size < 1 {
		return false
	}
	radius := float64(size) / 2
	ox := int(math.Round(center.X - radius))
	oy := int(math.Round(center.Y - radius))
	area := buf.Clamp(image.Rect(ox, oy, ox+size, oy+size))
	if area.Empty() {
		return false
	}

	src := buf.ReadRect(area)
	dst := buf.ReadRect(area)
	kr := BlurKernelRadius(size)
	kn := 2*kr + 1
	kernel := gaussianKernel(kr, BlurSigma)

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			dist := math.Hypot(float64(x-ox)-radius, float64(y-oy)-radius)
			if dist > radius {
				continue
			}
			var acc [4]float64
			wsum := 0.0
			for ky := -kr; ky <= kr; ky++ {
				sy := y + ky
				if sy < area.Min.Y || sy >= area.Max.Y {
					continue
				}
				for kx := -kr; kx <= kr; kx++ {
					sx := x + kx
					if sx < area.Min.X || sx >= area.Max.X {
						continue
					}
					w := kernel[(ky+kr)*kn+kx+kr]
					i := src.PixOffset(sx, sy)
					acc[0] += float64(src.Pix[i+0]) * w
					acc[1] += float64(src.Pix[i+1]) * w
					acc[2] += float64(src.Pix[i+2]) * w
					acc[3] += float64(src.Pix[i+3]) * w
					wsum += w
				}
			}
			if wsum == 0 {
				continue
			}
			blend := BlurBlend * (1 - dist/radius)
			i := src.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				orig := float64(src.Pix[i+c])
				dst.Pix[i+c] = clampByte(acc[c]/wsum*blend + orig*(1-blend))
			}
		}
	}
	buf.WriteRect(dst)
	return true
}

func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
