package theme

import (
	"image/color"
	"sort"
)

// Theme defines the color palette for the editor window.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Behind the canvas
	Foreground color.RGBA // Header and status text

	// Chrome
	HeaderBackground  color.RGBA
	ToolbarBackground color.RGBA
	StatusBackground  color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	// Canvas
	CheckerLight      color.RGBA
	CheckerDark       color.RGBA
	MessageBackground color.RGBA
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		HeaderBackground:      color.RGBA{210, 210, 210, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		StatusBackground:      color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		CheckerLight:          color.RGBA{220, 220, 220, 255},
		CheckerDark:           color.RGBA{192, 192, 192, 255},
		MessageBackground:     color.RGBA{255, 255, 255, 230},
	}
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	return &Theme{
		Name:                  "Dark",
		Background:            color.RGBA{40, 40, 44, 255},
		Foreground:            color.RGBA{230, 230, 230, 255},
		HeaderBackground:      color.RGBA{30, 30, 34, 255},
		ToolbarBackground:     color.RGBA{36, 36, 40, 255},
		StatusBackground:      color.RGBA{36, 36, 40, 255},
		ButtonBackground:      color.RGBA{60, 60, 66, 255},
		ButtonBackgroundHover: color.RGBA{80, 80, 88, 255},
		ButtonBackgroundPress: color.RGBA{110, 110, 120, 255},
		ButtonText:            color.RGBA{235, 235, 235, 255},
		ButtonBorder:          color.RGBA{20, 20, 20, 255},
		CheckerLight:          color.RGBA{70, 70, 70, 255},
		CheckerDark:           color.RGBA{50, 50, 50, 255},
		MessageBackground:     color.RGBA{20, 20, 24, 230},
	}
}

var builtin = map[string]func() *Theme{
	"default": Default,
	"light":   Default,
	"dark":    Dark,
}

// Builtin lists the names of the themes compiled into the binary.
func Builtin() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
