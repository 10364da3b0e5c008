package config

import (
	"fmt"
	"strings"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "PIXELSTRETCHER_"

// envKeys maps environment suffixes to the section and key they override.
var envKeys = []struct {
	env, section, key string
}{
	{"OUTPUT", "", "output"},
	{"MAX_CANVAS", "", "max_canvas"},
	{"HISTORY_LIMIT", "", "history_limit"},
	{"LOG_LEVEL", "", "log_level"},
	{"THEME", "", "theme"},
	{"BRUSH_SIZE", "brush", "size"},
	{"MAX_BRUSH", "brush", "max_size"},
	{"EFFECT", "brush", "effect"},
	{"LEVEL", "brush", "level"},
	{"NOTIFY_SAVE", "notify", "save"},
	{"NOTIFY_COPY", "notify", "copy"},
}

// ApplyEnv overrides fields from PIXELSTRETCHER_* variables looked up with
// getenv. Empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	for _, k := range envKeys {
		value := strings.TrimSpace(getenv(EnvPrefix + k.env))
		if value == "" {
			continue
		}
		var err error
		switch k.section {
		case "":
			err = setRootField(c, k.key, value)
		case "brush":
			err = setBrushField(&c.Brush, k.key, value)
		case "notify":
			err = setNotifyField(&c.Notify, k.key, value)
		}
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, k.env, err)
		}
	}
	return nil
}
