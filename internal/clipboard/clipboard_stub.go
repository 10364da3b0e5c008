//go:build !((linux || freebsd || openbsd || netbsd || dragonfly) && cgo)

package clipboard

import "image"

func ensureInit() error {
	if !hasDisplay() {
		return errNoDisplay
	}
	return ErrUnsupported
}

// WriteImage is unavailable without cgo.
func WriteImage(image.Image) error { return ensureInit() }

// ReadImage is unavailable without cgo.
func ReadImage() (image.Image, error) { return nil, ensureInit() }
