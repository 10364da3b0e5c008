package main

import (
	"flag"

	"github.com/example/pixelstretcher/internal/appstate"
	"github.com/example/pixelstretcher/internal/imageio"
)

type editCmd struct {
	*root
	fs        *flag.FlagSet
	src       source
	brushes   brushFlags
	output    string
	maxCanvas int
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func (e *editCmd) Program() string {
	return e.root.program + " edit"
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	cmd := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	cmd.src.register(fs)
	cmd.brushes.register(fs, r.config)
	fs.StringVar(&cmd.output, "output", r.config.Output, "file written by the save action")
	fs.IntVar(&cmd.maxCanvas, "max-canvas", r.config.MaxCanvas, "scale images down so neither side exceeds this size (0 disables)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cmd.src.check(fs.Args()); err != nil {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (e *editCmd) Run() error {
	brush, err := e.brushes.brush()
	if err != nil {
		return err
	}
	img, err := e.src.load()
	if err != nil {
		return err
	}
	b := img.Bounds()
	img = imageio.Fit(img, e.maxCanvas)
	if img.Bounds().Size() != b.Size() {
		e.logger.Info("scaled image to fit", "from", b.Size(), "to", img.Bounds().Size())
	}

	sess := e.newSession(brush)
	sess.Load(img)
	e.logger.Debug("editing", "source", e.src.describe(), "output", e.output)

	state := appstate.New(
		appstate.WithSession(sess),
		appstate.WithOutput(e.output),
		appstate.WithLogger(e.logger),
		appstate.WithNotifier(e.notifier),
		appstate.WithTheme(e.theme),
	)
	return state.Run()
}
