package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/pixelstretcher/internal/effect"
)

func TestParse(t *testing.T) {
	input := `
output = out/smeared.png
max_canvas = 1024
history_limit = 10
log_level = DEBUG
theme = dark

[brush]
size = 35
max_size = 250
effect = blur
level = heavy

[notify]
save = true
copy = false
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Output != "out/smeared.png" {
		t.Errorf("Expected output 'out/smeared.png', got '%s'", cfg.Output)
	}
	if cfg.MaxCanvas != 1024 {
		t.Errorf("Expected max_canvas 1024, got %d", cfg.MaxCanvas)
	}
	if cfg.HistoryLimit != 10 {
		t.Errorf("Expected history_limit 10, got %d", cfg.HistoryLimit)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log_level 'debug', got '%s'", cfg.LogLevel)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Expected theme 'dark', got '%s'", cfg.Theme)
	}
	if cfg.Brush.Size != 35 || cfg.Brush.MaxSize != 250 {
		t.Errorf("Unexpected brush sizes: %+v", cfg.Brush)
	}
	if cfg.Brush.Effect != effect.Blur {
		t.Errorf("Expected effect blur, got %v", cfg.Brush.Effect)
	}
	if cfg.Brush.Level != effect.LevelHeavy {
		t.Errorf("Expected level heavy, got %v", cfg.Brush.Level)
	}
	if !cfg.Notify.Save {
		t.Error("Expected notify.save to be true")
	}
	if cfg.Notify.Copy {
		t.Error("Expected notify.copy to be false")
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("# nothing here\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Output != DefaultOutput || cfg.MaxCanvas != DefaultMaxCanvas || cfg.HistoryLimit != DefaultHistoryLimit {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
	b := cfg.EffectBrush()
	if b.Size != DefaultBrushSize || b.Kind != effect.Smear || b.Level != effect.DefaultLevel {
		t.Errorf("Unexpected default brush: %+v", b)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		section string
	}{
		{"bad int", "max_canvas = big", "root section"},
		{"zero", "history_limit = 0", "root section"},
		{"history of one", "history_limit = 1", "root section"},
		{"bad level", "log_level = loud", "root section"},
		{"bad effect", "[brush]\neffect = sharpen", "[brush]"},
		{"bad brush level", "[brush]\nlevel = 7", "[brush]"},
		{"bad bool", "[notify]\nsave = maybe", "[notify]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			if !strings.Contains(err.Error(), tt.section) {
				t.Errorf("error %q does not name %s", err, tt.section)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `output = /home/user/stretched.png
max_canvas = 640
history_limit = 5

[brush]
size = 12
max_size = 100
effect = pixelate
level = 1

[notify]
save = true
copy = true
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if *cfg != *cfg2 {
		t.Errorf("Config mismatch:\n%+v\n%+v", cfg, cfg2)
	}
}

func TestEffectBrushClampsToMax(t *testing.T) {
	cfg := New()
	cfg.Brush.Size = 400
	cfg.Brush.MaxSize = 100
	if got := cfg.EffectBrush().Size; got != 100 {
		t.Errorf("Expected size clamped to 100, got %d", got)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PIXELSTRETCHER_BRUSH_SIZE":  "44",
		"PIXELSTRETCHER_EFFECT":      "mosaic",
		"PIXELSTRETCHER_NOTIFY_COPY": "true",
		"PIXELSTRETCHER_OUTPUT":      " ",
	}
	cfg := New()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Brush.Size != 44 || cfg.Brush.Effect != effect.Pixelate || !cfg.Notify.Copy {
		t.Errorf("Env not applied: %+v", cfg)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Blank env should be ignored, got %q", cfg.Output)
	}

	env = map[string]string{"PIXELSTRETCHER_LEVEL": "extreme"}
	err := New().ApplyEnv(func(k string) string { return env[k] })
	if err == nil || !strings.Contains(err.Error(), "PIXELSTRETCHER_LEVEL") {
		t.Errorf("Expected error naming the variable, got %v", err)
	}
}

func TestLoaderPaths(t *testing.T) {
	home := t.TempDir()
	orig := userHomeDir
	userHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { userHomeDir = orig })

	l := NewLoader("1.0.0", "")
	if p := l.GetConfigPath(); p != "" {
		t.Fatalf("Expected no config path, got %q", p)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Expected defaults, got %+v", cfg)
	}

	cfg.Brush.Size = 77
	path, err := l.Save(cfg)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	want := filepath.Join(home, ".config", "pixelstretcher", "config.rc")
	if path != want {
		t.Errorf("Expected save path %q, got %q", want, path)
	}

	loaded, err := l.Load()
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if loaded.Brush.Size != 77 {
		t.Errorf("Expected saved brush size 77, got %d", loaded.Brush.Size)
	}
}

func TestLoaderOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(override, []byte("[brush]\nsize = 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader("dev", override)
	if p := l.GetConfigPath(); p != override {
		t.Fatalf("Expected override path, got %q", p)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Brush.Size != 9 {
		t.Errorf("Expected brush size 9, got %d", cfg.Brush.Size)
	}

	if err := os.WriteFile(override, []byte("max_canvas = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(); err == nil || !strings.Contains(err.Error(), override) {
		t.Errorf("Expected error naming %s, got %v", override, err)
	}
}
