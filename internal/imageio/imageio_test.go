package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 7, 255})
		}
	}
	return img
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, limit   int
		wantW, wantH int
	}{
		{100, 50, 800, 100, 50},
		{1600, 800, 800, 800, 400},
		{600, 1200, 800, 400, 800},
		{1000, 1, 800, 800, 1},
		{900, 900, 800, 800, 800},
		{900, 900, 0, 900, 900},
	}
	for _, tt := range tests {
		w, h := FitSize(tt.w, tt.h, tt.limit)
		assert.Equal(t, tt.wantW, w, "%dx%d limit %d", tt.w, tt.h, tt.limit)
		assert.Equal(t, tt.wantH, h, "%dx%d limit %d", tt.w, tt.h, tt.limit)
	}
}

func TestFit(t *testing.T) {
	small := sample(20, 10)
	assert.Same(t, small, Fit(small, 800))

	big := Fit(sample(200, 100), 50)
	assert.Equal(t, image.Rect(0, 0, 50, 25), big.Bounds())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.png")
	src := sample(16, 9)
	require.NoError(t, Save(path, src))

	img, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), img.Bounds())
	for _, p := range []image.Point{{0, 0}, {15, 8}, {7, 3}} {
		r, g, b, a := img.At(p.X, p.Y).RGBA()
		want := src.RGBAAt(p.X, p.Y)
		assert.Equal(t, want, color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
	}
}

func TestDecodeFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, sample(8, 8), nil))
	img, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 8, img.Bounds().Dx())

	buf.Reset()
	require.NoError(t, Encode(&buf, sample(3, 3)))
	_, format, err = Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestDecodeUnsupported(t *testing.T) {
	_, _, err := Decode(strings.NewReader("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Contains(t, err.Error(), path)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
