package config

import (
	"fmt"
	"strings"

	"github.com/example/pixelstretcher/internal/effect"
)

// Default values used when a key is absent.
const (
	DefaultOutput       = "stretched-image.png"
	DefaultMaxCanvas    = 800
	DefaultHistoryLimit = 32
	MinHistoryLimit     = 2
	DefaultLogLevel     = "info"
	DefaultTheme        = "default"
	DefaultBrushSize    = 20
	DefaultMaxBrush     = 200
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Brush holds the starting brush.
type Brush struct {
	Size    int
	MaxSize int
	Effect  effect.Kind
	Level   effect.Level
}

// Config holds the application configuration.
type Config struct {
	Output       string
	MaxCanvas    int
	HistoryLimit int
	LogLevel     string
	Theme        string
	Brush        Brush
	Notify       Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Output:       DefaultOutput,
		MaxCanvas:    DefaultMaxCanvas,
		HistoryLimit: DefaultHistoryLimit,
		LogLevel:     DefaultLogLevel,
		Theme:        DefaultTheme,
		Brush: Brush{
			Size:    DefaultBrushSize,
			MaxSize: DefaultMaxBrush,
			Effect:  effect.Smear,
			Level:   effect.DefaultLevel,
		},
	}
}

// EffectBrush returns the configured starting brush with its size clamped to
// the configured maximum.
func (c *Config) EffectBrush() effect.Brush {
	return effect.Brush{
		Size:  min(max(c.Brush.Size, 1), max(c.Brush.MaxSize, 1)),
		Kind:  c.Brush.Effect,
		Level: c.Brush.Level,
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "output = %s\n", c.Output)
	fmt.Fprintf(&sb, "max_canvas = %d\n", c.MaxCanvas)
	fmt.Fprintf(&sb, "history_limit = %d\n", c.HistoryLimit)
	fmt.Fprintf(&sb, "log_level = %s\n", c.LogLevel)
	fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	sb.WriteString("\n")

	sb.WriteString("[brush]\n")
	fmt.Fprintf(&sb, "size = %d\n", c.Brush.Size)
	fmt.Fprintf(&sb, "max_size = %d\n", c.Brush.MaxSize)
	fmt.Fprintf(&sb, "effect = %s\n", c.Brush.Effect)
	fmt.Fprintf(&sb, "level = %d\n", int(c.Brush.Level))
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	return sb.String()
}
