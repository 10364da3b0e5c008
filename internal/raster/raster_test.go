package raster

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestReadRectClampsToBounds(t *testing.T) {
	buf := New(10, 8)
	buf.Fill(color.RGBA{R: 10, G: 20, B: 30, A: 255})

	tests := []struct {
		name string
		in   image.Rectangle
		want image.Rectangle
	}{
		{"inside", image.Rect(2, 2, 5, 5), image.Rect(2, 2, 5, 5)},
		{"top left overflow", image.Rect(-4, -4, 3, 3), image.Rect(0, 0, 3, 3)},
		{"bottom right overflow", image.Rect(7, 6, 20, 20), image.Rect(7, 6, 10, 8)},
		{"outside", image.Rect(20, 20, 30, 30), image.Rectangle{}},
		{"reversed", image.Rect(5, 5, 2, 2), image.Rect(2, 2, 5, 5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := buf.ReadRect(tc.in)
			if !got.Rect.Eq(tc.want) {
				t.Fatalf("bounds = %v, want %v", got.Rect, tc.want)
			}
			if got.Rect.Empty() {
				return
			}
			if c := got.RGBAAt(got.Rect.Min.X, got.Rect.Min.Y); c != (color.RGBA{10, 20, 30, 255}) {
				t.Fatalf("pixel = %+v", c)
			}
		})
	}
}

func TestReadRectIsACopy(t *testing.T) {
	buf := New(4, 4)
	patch := buf.ReadRect(image.Rect(0, 0, 2, 2))
	buf.Fill(color.RGBA{R: 255, A: 255})
	if c := patch.RGBAAt(0, 0); c != (color.RGBA{}) {
		t.Fatalf("patch changed with buffer: %+v", c)
	}
}

func TestWriteRectDropsOutOfBounds(t *testing.T) {
	buf := New(4, 4)
	src := image.NewRGBA(image.Rect(2, 2, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	buf.WriteRect(src)
	if c := buf.At(3, 3); c.R != 200 {
		t.Fatalf("expected written pixel, got %+v", c)
	}
	if c := buf.At(1, 1); c.R != 0 {
		t.Fatalf("unexpected write outside src: %+v", c)
	}
}

func TestAtClampsCoordinates(t *testing.T) {
	buf := New(3, 3)
	img := buf.Image()
	img.SetRGBA(0, 0, color.RGBA{R: 1, A: 255})
	img.SetRGBA(2, 2, color.RGBA{R: 9, A: 255})
	if c := buf.At(-5, -5); c.R != 1 {
		t.Fatalf("At(-5,-5) = %+v", c)
	}
	if c := buf.At(50, 50); c.R != 9 {
		t.Fatalf("At(50,50) = %+v", c)
	}
}

func TestFromImageRebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 9, 7))
	src.SetRGBA(5, 5, color.RGBA{G: 77, A: 255})
	buf := FromImage(src)
	if buf.Width() != 4 || buf.Height() != 2 {
		t.Fatalf("size = %dx%d", buf.Width(), buf.Height())
	}
	if c := buf.At(0, 0); c.G != 77 {
		t.Fatalf("origin pixel = %+v", c)
	}
}

func TestRestoreRejectsMismatchedSize(t *testing.T) {
	buf := New(2, 2)
	if buf.Restore(make([]uint8, 3)) {
		t.Fatal("expected mismatched restore to fail")
	}
	other := New(2, 2)
	other.Fill(color.RGBA{B: 5, A: 5})
	if !buf.Restore(other.Pix()) {
		t.Fatal("expected restore to succeed")
	}
	if !buf.Equal(other) {
		t.Fatal("buffers differ after restore")
	}
}

func TestMapperRoundTrip(t *testing.T) {
	scales := []struct {
		display image.Rectangle
		w, h    int
	}{
		{image.Rect(0, 0, 100, 100), 100, 100},
		{image.Rect(48, 24, 448, 324), 800, 600},
		{image.Rect(10, 10, 13, 1000), 7, 3},
		{image.Rect(0, 0, 2000, 50), 25, 400},
	}
	points := []Point{{0, 0}, {12.5, 99.25}, {-40, 3}, {1e4, -1e3}}
	for _, s := range scales {
		m := NewMapper(s.display, s.w, s.h)
		for _, p := range points {
			got := m.ToDisplay(m.ToBuffer(p))
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Fatalf("round trip %v -> %v with %+v", p, got, m)
			}
		}
	}
}

func TestMapperScalesIndependently(t *testing.T) {
	m := NewMapper(image.Rect(100, 50, 300, 450), 800, 200)
	got := m.ToBuffer(Pt(200, 250))
	if got.X != 400 || got.Y != 100 {
		t.Fatalf("ToBuffer = %v", got)
	}
	if d := m.DisplayBrush(40); d != 10 {
		t.Fatalf("DisplayBrush = %v", d)
	}
}

func TestMapperDegenerateDisplay(t *testing.T) {
	m := Mapper{BufferWidth: 10, BufferHeight: 10}
	if sx, sy := m.Scale(); sx != 1 || sy != 1 {
		t.Fatalf("scale = %v,%v", sx, sy)
	}
}
