package main

import (
	"flag"
	"fmt"

	"github.com/example/pixelstretcher/internal/config"
	"github.com/example/pixelstretcher/internal/effect"
)

// brushFlags holds the -effect, -size and -level flags shared by edit and
// apply.
type brushFlags struct {
	effect  string
	level   string
	size    int
	maxSize int
}

func (b *brushFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	start := cfg.EffectBrush()
	b.maxSize = max(cfg.Brush.MaxSize, 1)
	fs.StringVar(&b.effect, "effect", start.Kind.String(), "effect: smear, blur or pixelate")
	fs.StringVar(&b.level, "level", start.Level.String(), "smear level: light, medium, heavy or 1-3")
	fs.IntVar(&b.size, "size", start.Size, "brush size in image pixels")
}

func (b *brushFlags) brush() (effect.Brush, error) {
	kind, err := effect.ParseKind(b.effect)
	if err != nil {
		return effect.Brush{}, fmt.Errorf("-effect: %w", err)
	}
	level, err := effect.ParseLevel(b.level)
	if err != nil {
		return effect.Brush{}, fmt.Errorf("-level: %w", err)
	}
	if b.size < 1 {
		return effect.Brush{}, fmt.Errorf("-size must be at least 1, got %d", b.size)
	}
	if b.maxSize > 0 && b.size > b.maxSize {
		return effect.Brush{}, fmt.Errorf("-size must be at most %d ([brush] max_size), got %d", b.maxSize, b.size)
	}
	return effect.Brush{Size: b.size, Kind: kind, Level: level}, nil
}
