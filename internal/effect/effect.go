// Package effect implements the brush effects applied to a raster buffer:
// directional smear, circular blur and circular pixelation. The functions are
// stateless; everything they need arrives as arguments and every read and
// write is clamped to the buffer.
package effect

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the effect applied by a stroke.
type Kind int

const (
	// Smear stretches pixels along the drag direction once the stroke ends.
	Smear Kind = iota
	// Blur softens the pixels under every sampled point.
	Blur
	// Pixelate averages the pixels under every sampled point into blocks.
	Pixelate
)

var kindNames = []string{"smear", "blur", "pixelate"}

// Kinds returns every effect kind in display order.
func Kinds() []Kind { return []Kind{Smear, Blur, Pixelate} }

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Continuous reports whether the effect is applied on every move sample
// rather than once on release.
func (k Kind) Continuous() bool { return k == Blur || k == Pixelate }

// ParseKind accepts an effect name, a few common aliases, or its index.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smear", "smudge", "stretch", "0":
		return Smear, nil
	case "blur", "1":
		return Blur, nil
	case "pixelate", "pixel", "mosaic", "2":
		return Pixelate, nil
	}
	return Smear, fmt.Errorf("unknown effect %q", s)
}

// Level is the smear quality axis. It selects how the sampled strip is
// resampled before it is composited.
type Level int

const (
	// LevelLight copies the sampled pixels unchanged.
	LevelLight Level = iota + 1
	// LevelMedium replaces each sample with a box average of its neighbours.
	LevelMedium
	// LevelHeavy runs a gaussian over the samples.
	LevelHeavy
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = LevelMedium

// Levels returns every level from lightest to heaviest.
func Levels() []Level { return []Level{LevelLight, LevelMedium, LevelHeavy} }

func (l Level) String() string {
	switch l {
	case LevelLight:
		return "light"
	case LevelMedium:
		return "medium"
	case LevelHeavy:
		return "heavy"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool { return l >= LevelLight && l <= LevelHeavy }

// ParseLevel accepts 1..3 or light/medium/heavy.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "light":
		return LevelLight, nil
	case "medium":
		return LevelMedium, nil
	case "heavy":
		return LevelHeavy, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !Level(n).Valid() {
		return DefaultLevel, fmt.Errorf("invalid level %q: want 1-3 or light, medium, heavy", s)
	}
	return Level(n), nil
}

// Brush is the configuration a stroke is evaluated with.
type Brush struct {
	Size  int
	Kind  Kind
	Level Level
}

// Radius returns half of the brush size.
func (b Brush) Radius() float64 { return float64(b.Size) / 2 }
