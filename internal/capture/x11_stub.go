//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import "image"

func grabScreen() (*image.RGBA, error) { return nil, ErrUnsupported }
