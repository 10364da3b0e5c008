package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/example/pixelstretcher/internal/config"
	"github.com/example/pixelstretcher/internal/imageio"
	"github.com/example/pixelstretcher/internal/raster"
)

func testRoot(t *testing.T) (*root, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := newRootFromConfig(config.New())
	r.stdout = &out
	r.getenv = func(string) string { return "" }
	return r, &out
}

func writeGradient(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 2), uint8(y * 2), 80, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	img, err := imageio.Load(path)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return img
}

func TestApplySmearWritesOutput(t *testing.T) {
	in := writeGradient(t, 100, 100)
	out := filepath.Join(t.TempDir(), "out.png")
	r, _ := testRoot(t)
	if err := r.Run([]string{"apply", "-file", in, "-output", out, "-effect", "smear", "-size", "10", "20", "50", "70", "50"}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	got := decode(t, out)
	if got.Bounds() != image.Rect(0, 0, 100, 100) {
		t.Fatalf("unexpected bounds %v", got.Bounds())
	}
	src := decode(t, in)
	if got.At(50, 50) == src.At(50, 50) {
		t.Errorf("expected pixel on the smear path to change")
	}
	if got.At(50, 5) != src.At(50, 5) {
		t.Errorf("expected pixel away from the stroke to stay")
	}
}

func TestApplyPositionalFileAndClipboard(t *testing.T) {
	in := writeGradient(t, 40, 40)
	out := filepath.Join(t.TempDir(), "out.png")
	var copied image.Image
	orig := writeClipboardFn
	writeClipboardFn = func(img image.Image) error { copied = img; return nil }
	t.Cleanup(func() { writeClipboardFn = orig })

	r, _ := testRoot(t)
	if err := r.Run([]string{"apply", "-output", out, "-effect", "pixelate", "-to-clipboard", in, "5", "5", "30", "30"}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if copied == nil {
		t.Fatal("expected the result on the clipboard")
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output file: %v", err)
	}
}

func TestApplyUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no source", []string{"10", "10", "20", "20"}},
		{"no points", []string{"-file", "x.png"}},
		{"two sources", []string{"-file", "x.png", "-screen", "1", "1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := testRoot(t)
			_, err := parseApplyCmd(tc.args, r)
			var uerr *UsageError
			if !errors.As(err, &uerr) {
				t.Fatalf("expected usage error, got %v", err)
			}
			if !strings.Contains(uerr.Error(), "apply") {
				t.Fatalf("expected apply help, got %q", uerr.Error())
			}
		})
	}
}

func TestApplyBadCoordinates(t *testing.T) {
	r, _ := testRoot(t)
	if _, err := parseApplyCmd([]string{"-file", "x.png", "1", "a"}, r); err == nil || !strings.Contains(err.Error(), "invalid y coordinate") {
		t.Fatalf("expected coordinate error, got %v", err)
	}
	if _, err := parseApplyCmd([]string{"-file", "x.png", "1", "2", "3"}, r); err == nil || !strings.Contains(err.Error(), "pairs") {
		t.Fatalf("expected pair error, got %v", err)
	}
}

func TestApplyRejectsUnknownEffect(t *testing.T) {
	in := writeGradient(t, 10, 10)
	r, _ := testRoot(t)
	err := r.Run([]string{"apply", "-file", in, "-effect", "swirl", "1", "1", "5", "5"})
	if err == nil || !strings.Contains(err.Error(), "-effect") {
		t.Fatalf("expected effect error, got %v", err)
	}
}

func TestApplyRejectsSizeAboveMax(t *testing.T) {
	in := writeGradient(t, 10, 10)
	r, _ := testRoot(t)
	r.config.Brush.MaxSize = 50
	err := r.Run([]string{"apply", "-file", in, "-size", "51", "1", "1", "5", "5"})
	if err == nil || !strings.Contains(err.Error(), "at most 50") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestSourceCaptureError(t *testing.T) {
	orig := captureScreenFn
	sentinel := errors.New("no display")
	captureScreenFn = func(image.Rectangle) (*image.RGBA, error) { return nil, sentinel }
	t.Cleanup(func() { captureScreenFn = orig })

	s := source{screen: true}
	_, err := s.load()
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if want := "failed to capture screen"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to contain %q, got %v", want, err)
	}
}

func TestSourceCheck(t *testing.T) {
	s := source{}
	if err := s.check([]string{"photo.png"}); err != nil || s.file != "photo.png" {
		t.Fatalf("expected positional file, got %q %v", s.file, err)
	}
	s = source{fromClipboard: true}
	if err := s.check(nil); err != nil || s.describe() != "clipboard" {
		t.Fatalf("expected clipboard source, got %v", err)
	}
	s = source{}
	if err := s.check(nil); !errors.Is(err, errSourceCount) {
		t.Fatalf("expected missing source error, got %v", err)
	}
}

func TestEditRequiresSource(t *testing.T) {
	r, _ := testRoot(t)
	_, err := parseEditCmd(nil, r)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	cmd, err := parseEditCmd([]string{"-screen", "-effect", "blur"}, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.output != config.DefaultOutput || cmd.maxCanvas != config.DefaultMaxCanvas {
		t.Fatalf("expected config defaults, got %q %d", cmd.output, cmd.maxCanvas)
	}
}

func TestDensify(t *testing.T) {
	got := densify([]raster.Point{raster.Pt(0, 0), raster.Pt(10, 0), raster.Pt(10, 3)}, 2)
	if len(got) != 1+5+2 {
		t.Fatalf("expected 8 samples, got %d: %v", len(got), got)
	}
	if got[5] != raster.Pt(10, 0) || got[len(got)-1] != raster.Pt(10, 3) {
		t.Fatalf("vertices must be kept: %v", got)
	}
	if got := densify([]raster.Point{raster.Pt(4, 4)}, 1); len(got) != 1 {
		t.Fatalf("single point path should stay, got %v", got)
	}
}

func TestEffectsListsKindsAndLevels(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"effects"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"smear", "blur", "pixelate", "1 light", "2 medium", "3 heavy", "(default)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestConfigPrint(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"config", "print"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Parse(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if *cfg != *config.New() {
		t.Fatalf("printed config differs from defaults: %+v", cfg)
	}
}

func TestConfigSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.rc")
	r, _ := testRoot(t)
	r.config.Brush.Size = 42
	cmd, err := parseConfigCmd([]string{"save"}, r)
	if err != nil {
		t.Fatal(err)
	}
	cmd.configPath = path
	if err := cmd.Run(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "size = 42") {
		t.Fatalf("unexpected config file:\n%s", data)
	}
}

func TestRootUsage(t *testing.T) {
	r, _ := testRoot(t)
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	for _, want := range []string{"Usage: pixelstretcher", "apply", "-notify-save"} {
		if !strings.Contains(uerr.Error(), want) {
			t.Errorf("expected %q in help:\n%s", want, uerr.Error())
		}
	}

	r, _ = testRoot(t)
	if err := r.Run([]string{"stretch"}); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error for unknown command, got %v", err)
	}
}

func TestResolvePrecedence(t *testing.T) {
	r, _ := testRoot(t)
	r.config.Notify.Save = true
	r.config.LogLevel = "warn"
	env := map[string]string{"PIXELSTRETCHER_NOTIFY_COPY": "true"}
	r.getenv = func(k string) string { return env[k] }
	if err := r.fs.Parse([]string{"-notify-save=false", "-v"}); err != nil {
		t.Fatal(err)
	}
	if err := r.resolve(); err != nil {
		t.Fatal(err)
	}
	if r.saveAlerts {
		t.Error("flag should override config for notify-save")
	}
	if !r.copyAlerts {
		t.Error("environment should enable notify-copy")
	}
	if r.logger.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level from -v, got %v", r.logger.GetLevel())
	}
	if r.theme == nil || r.theme.Name != "Default" {
		t.Errorf("expected default theme, got %+v", r.theme)
	}
}

func TestVersion(t *testing.T) {
	r, out := testRoot(t)
	if err := r.Run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "pixelstretcher version dev") {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
