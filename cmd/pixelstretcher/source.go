package main

import (
	"errors"
	"flag"
	"fmt"
	"image"

	"github.com/example/pixelstretcher/internal/capture"
	"github.com/example/pixelstretcher/internal/clipboard"
	"github.com/example/pixelstretcher/internal/imageio"
)

// Replaced in tests.
var (
	loadFileFn       = imageio.Load
	captureScreenFn  = capture.Screen
	readClipboardFn  = clipboard.ReadImage
	writeClipboardFn = clipboard.WriteImage
)

var errSourceCount = errors.New("exactly one of -file, -screen or -from-clipboard is required")

// source selects where the image to edit comes from.
type source struct {
	file          string
	screen        bool
	fromClipboard bool
}

func (s *source) register(fs *flag.FlagSet) {
	fs.StringVar(&s.file, "file", "", "image file to edit")
	fs.BoolVar(&s.screen, "screen", false, "grab the screen as the image to edit")
	fs.BoolVar(&s.fromClipboard, "from-clipboard", false, "read the image to edit from the clipboard")
	fs.BoolVar(&s.fromClipboard, "from-clip", false, "read the image to edit from the clipboard (alias)")
}

// check accepts a lone positional argument as the file when no source flag
// was given.
func (s *source) check(args []string) error {
	if s.file == "" && !s.screen && !s.fromClipboard && len(args) == 1 {
		s.file = args[0]
	}
	n := 0
	for _, on := range []bool{s.file != "", s.screen, s.fromClipboard} {
		if on {
			n++
		}
	}
	if n != 1 {
		return errSourceCount
	}
	return nil
}

func (s *source) describe() string {
	switch {
	case s.screen:
		return "screen"
	case s.fromClipboard:
		return "clipboard"
	}
	return s.file
}

func (s *source) load() (image.Image, error) {
	switch {
	case s.screen:
		img, err := captureScreenFn(image.Rectangle{})
		if err != nil {
			return nil, fmt.Errorf("failed to capture screen: %w", err)
		}
		return img, nil
	case s.fromClipboard:
		img, err := readClipboardFn()
		if err != nil {
			return nil, fmt.Errorf("failed to read clipboard: %w", err)
		}
		return img, nil
	}
	return loadFileFn(s.file)
}
