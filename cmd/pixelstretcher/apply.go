package main

import (
	"flag"
	"fmt"
	"math"
	"strconv"

	"github.com/example/pixelstretcher/internal/imageio"
	"github.com/example/pixelstretcher/internal/raster"
)

// applyCmd runs one stroke without a window and writes the result.
type applyCmd struct {
	*root
	fs          *flag.FlagSet
	src         source
	brushes     brushFlags
	output      string
	step        float64
	maxCanvas   int
	toClipboard bool
	points      []raster.Point
}

func (a *applyCmd) FlagSet() *flag.FlagSet {
	return a.fs
}

func (a *applyCmd) Program() string {
	return a.root.program + " apply"
}

func parseApplyCmd(args []string, r *root) (*applyCmd, error) {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	cmd := &applyCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	cmd.src.register(fs)
	cmd.brushes.register(fs, r.config)
	fs.StringVar(&cmd.output, "output", r.config.Output, "output PNG file")
	fs.Float64Var(&cmd.step, "step", 1, "distance in pixels between pointer samples along the path")
	fs.IntVar(&cmd.maxCanvas, "max-canvas", 0, "scale the image down before the stroke (0 keeps the native size)")
	fs.BoolVar(&cmd.toClipboard, "to-clipboard", false, "also copy the result to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	coords := fs.Args()
	// With no source flag an odd leading argument names the file.
	if cmd.src.file == "" && !cmd.src.screen && !cmd.src.fromClipboard && len(coords)%2 == 1 {
		cmd.src.file = coords[0]
		coords = coords[1:]
	}
	if err := cmd.src.check(nil); err != nil {
		return nil, &UsageError{of: cmd}
	}
	if len(coords) < 2 {
		return nil, &UsageError{of: cmd}
	}
	pts, err := parsePoints(coords)
	if err != nil {
		return nil, err
	}
	if cmd.step <= 0 {
		return nil, fmt.Errorf("-step must be positive, got %v", cmd.step)
	}
	cmd.points = pts
	return cmd, nil
}

// parsePoints reads x y pairs.
func parsePoints(args []string) ([]raster.Point, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("coordinates must come in x y pairs, got %d values", len(args))
	}
	pts := make([]raster.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x coordinate %q: %w", args[i], err)
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y coordinate %q: %w", args[i+1], err)
		}
		pts = append(pts, raster.Pt(x, y))
	}
	return pts, nil
}

// densify returns the path through pts sampled at most step apart. Every
// vertex is kept.
func densify(pts []raster.Point, step float64) []raster.Point {
	if len(pts) == 0 {
		return nil
	}
	out := []raster.Point{pts[0]}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		n := int(math.Ceil(math.Hypot(d.X, d.Y) / step))
		for j := 1; j < n; j++ {
			t := float64(j) / float64(n)
			out = append(out, raster.Pt(a.X+d.X*t, a.Y+d.Y*t))
		}
		out = append(out, b)
	}
	return out
}

func (a *applyCmd) Run() error {
	brush, err := a.brushes.brush()
	if err != nil {
		return err
	}
	img, err := a.src.load()
	if err != nil {
		return err
	}
	img = imageio.Fit(img, a.maxCanvas)

	sess := a.newSession(brush)
	sess.Load(img)

	path := densify(a.points, a.step)
	sess.PointerDown(path[0])
	for _, p := range path[1:] {
		sess.PointerMove(p)
	}
	sess.PointerUp(path[len(path)-1])

	out := sess.CurrentPixels()
	if err := imageio.Save(a.output, out); err != nil {
		return fmt.Errorf("failed to save %s: %w", a.output, err)
	}
	a.logger.Info("applied", "effect", brush.Kind, "size", brush.Size, "samples", len(path), "output", a.output)
	a.notifier.Save(a.output)

	if a.toClipboard {
		if err := writeClipboardFn(out); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		a.notifier.Copy("image")
	}
	return nil
}
