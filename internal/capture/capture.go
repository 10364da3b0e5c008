// Package capture grabs the desktop so it can be used as a source image.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// ErrUnsupported is returned on platforms without an X11 display.
var ErrUnsupported = errors.New("screen capture is not supported on this platform")

// grabScreenFn is replaced in tests.
var grabScreenFn = grabScreen

// Screen captures the whole desktop. A non-empty region crops the result to
// that rectangle in screen coordinates.
func Screen(region image.Rectangle) (*image.RGBA, error) {
	img, err := grabScreenFn()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	if region.Empty() {
		return img, nil
	}
	return cropToRect(img, region)
}

func cropToRect(src *image.RGBA, rect image.Rectangle) (*image.RGBA, error) {
	rect = rect.Intersect(src.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("requested region outside captured image")
	}
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst, nil
}
