// Package render draws the on-screen feedback of the editor: checkerboard
// backdrop, brush outlines and the pending smear segment. All routines clip
// to the destination bounds.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

func set(img *image.RGBA, x, y int, col color.RGBA) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetRGBA(x, y, col)
	}
}

func setThick(img *image.RGBA, x, y, thick int, col color.RGBA) {
	r := thick / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			set(img, x+dx, y+dy, col)
		}
	}
}

// Line draws a Bresenham line. Pixels are picked from cols in turn, dash
// pixels at a time; a single colour gives a solid line.
func Line(img *image.RGBA, x0, y0, x1, y1, thick, dash int, cols ...color.RGBA) {
	if len(cols) == 0 {
		return
	}
	dash = max(dash, 1)
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for i := 0; ; i++ {
		setThick(img, x0, y0, thick, cols[(i/dash)%len(cols)])
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a one pixel midpoint circle.
func Circle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	if r <= 0 {
		set(img, cx, cy, col)
		return
	}
	x, y := r, 0
	err := 1 - r
	for x >= y {
		for _, p := range [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			set(img, cx+p[0], cy+p[1], col)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2 * (y - x + 1)
		}
	}
}

// Rect outlines r. Max is exclusive.
func Rect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	Line(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, 1, 1, col)
	Line(img, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, 1, 1, col)
	Line(img, r.Max.X-1, r.Max.Y-1, r.Min.X, r.Max.Y-1, 1, 1, col)
	Line(img, r.Min.X, r.Max.Y-1, r.Min.X, r.Min.Y, 1, 1, col)
}

// Fill paints r with col.
func Fill(img *image.RGBA, r image.Rectangle, col color.Color) {
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Checkerboard fills r with squares of the given size.
func Checkerboard(img *image.RGBA, r image.Rectangle, size int, light, dark color.RGBA) {
	size = max(size, 1)
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := dark
			if ((x/size)+(y/size))%2 == 0 {
				c = light
			}
			img.SetRGBA(x, y, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
