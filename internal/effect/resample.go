package effect

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
)

// resample applies the level's strategy to the column of colours sampled
// across the brush. The returned slice has the same length as samples.
func resample(samples []color.RGBA, level Level) []color.RGBA {
	if len(samples) < 2 {
		return samples
	}
	switch level {
	case LevelMedium:
		return boxAverage(samples, PixelBlock(len(samples))/2)
	case LevelHeavy:
		return gaussian(samples, max(1, float64(len(samples))/10))
	default:
		return samples
	}
}

// boxAverage replaces each sample with the mean of its neighbours within
// radius, using prefix sums so the cost does not depend on the radius.
func boxAverage(samples []color.RGBA, radius int) []color.RGBA {
	if radius <= 0 {
		return samples
	}
	n := len(samples)
	var prefix [4][]int
	for c := range prefix {
		prefix[c] = make([]int, n+1)
	}
	for i, s := range samples {
		prefix[0][i+1] = prefix[0][i] + int(s.R)
		prefix[1][i+1] = prefix[1][i] + int(s.G)
		prefix[2][i+1] = prefix[2][i] + int(s.B)
		prefix[3][i+1] = prefix[3][i] + int(s.A)
	}
	out := make([]color.RGBA, n)
	for i := range samples {
		i0 := max(i-radius, 0)
		i1 := min(i+radius, n-1)
		count := i1 - i0 + 1
		mean := func(c int) uint8 {
			sum := prefix[c][i1+1] - prefix[c][i0]
			return uint8((sum + count/2) / count)
		}
		out[i] = color.RGBA{mean(0), mean(1), mean(2), mean(3)}
	}
	return out
}

// gaussian smooths the samples with bild's separable gaussian. The column is
// laid out as a one pixel wide image; bild extends edges so a constant column
// stays constant.
func gaussian(samples []color.RGBA, radius float64) []color.RGBA {
	col := image.NewRGBA(image.Rect(0, 0, 1, len(samples)))
	for i, s := range samples {
		col.SetRGBA(0, i, s)
	}
	blurred := blur.Gaussian(col, radius)
	out := make([]color.RGBA, len(samples))
	b := blurred.Bounds()
	for i := range out {
		out[i] = blurred.RGBAAt(b.Min.X, b.Min.Y+i)
	}
	return out
}
