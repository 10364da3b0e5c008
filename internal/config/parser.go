package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/example/pixelstretcher/internal/effect"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")))
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		switch currentSection {
		case "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		case "brush":
			if err := setBrushField(&cfg.Brush, key, value); err != nil {
				return nil, fmt.Errorf("error in section [brush]: %w", err)
			}
		case "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch key {
	case "output":
		cfg.Output = value
	case "max_canvas":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		cfg.MaxCanvas = n
	case "history_limit":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		if n < MinHistoryLimit {
			return fmt.Errorf("key %s must be at least %d, got %d", key, MinHistoryLimit, n)
		}
		cfg.HistoryLimit = n
	case "log_level":
		if _, err := log.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid log_level %q: %w", value, err)
		}
		cfg.LogLevel = strings.ToLower(value)
	case "theme":
		cfg.Theme = value
	}
	return nil
}

func setBrushField(b *Brush, key, value string) error {
	switch key {
	case "size":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		b.Size = n
	case "max_size":
		n, err := parsePositive(key, value)
		if err != nil {
			return err
		}
		b.MaxSize = n
	case "effect":
		k, err := effect.ParseKind(value)
		if err != nil {
			return err
		}
		b.Effect = k
	case "level":
		l, err := effect.ParseLevel(value)
		if err != nil {
			return err
		}
		b.Level = l
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch key {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func parsePositive(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("key %s must be at least 1, got %d", key, n)
	}
	return n, nil
}
