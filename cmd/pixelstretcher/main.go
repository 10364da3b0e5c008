package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/example/pixelstretcher/internal/config"
	"github.com/example/pixelstretcher/internal/editor"
	"github.com/example/pixelstretcher/internal/effect"
	"github.com/example/pixelstretcher/internal/notify"
	"github.com/example/pixelstretcher/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	config   *config.Config
	notifier *notify.Notifier
	logger   *log.Logger
	theme    *theme.Theme
	stdout   io.Writer
	getenv   func(string) string

	verbose    bool
	logLevel   string
	configPath string
	themeName  string
	saveAlerts bool
	copyAlerts bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := newRootFromConfig(nil)
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	r.config = cfg
	return r
}

// newRootFromConfig builds the root command around cfg without touching the
// file system. A nil cfg means defaults.
func newRootFromConfig(cfg *config.Config) *root {
	if cfg == nil {
		cfg = config.New()
	}
	r := &root{
		fs:      flag.NewFlagSet("pixelstretcher", flag.ExitOnError),
		program: "pixelstretcher",
		config:  cfg,
		stdout:  os.Stdout,
		getenv:  os.Getenv,
	}
	r.fs.BoolVar(&r.verbose, "v", false, "verbose output (debug logging)")
	r.fs.StringVar(&r.logLevel, "log-level", "", "log level: debug, info, warn, error")
	r.fs.StringVar(&r.configPath, "config", "", "read configuration from this file")
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use ("+strings.Join(theme.Builtin(), ", ")+" or a .theme file)")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", false, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard")
	r.fs.Usage = usageFunc(r)
	return r
}

// resolve applies the precedence CLI > environment > config > default and
// builds the logger, notifier and theme.
func (r *root) resolve() error {
	if r.configPath != "" {
		cfg, err := config.NewLoader(version, r.configPath).Load()
		if err != nil {
			return err
		}
		r.config = cfg
	}
	if err := r.config.ApplyEnv(r.getenv); err != nil {
		return err
	}

	set := map[string]bool{}
	r.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	level := r.config.LogLevel
	if r.logLevel != "" {
		level = r.logLevel
	}
	if r.verbose {
		level = "debug"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	r.logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
		Prefix:          r.program,
	})

	if !set["notify-save"] {
		r.saveAlerts = r.config.Notify.Save
	}
	if !set["notify-copy"] {
		r.copyAlerts = r.config.Notify.Copy
	}
	r.notifier = notify.New(notify.LoadPreferences(r.getenv), r.logger)
	r.notifier.Enable(notify.EventSave, r.saveAlerts)
	r.notifier.Enable(notify.EventCopy, r.copyAlerts)

	themeName := r.themeName
	if themeName == "" {
		themeName = r.config.Theme
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		r.logger.Warn("failed to load theme, using default", "theme", themeName, "err", err)
		t = theme.Default()
	}
	r.theme = t
	return nil
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if err := r.resolve(); err != nil {
		return err
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "apply":
		cmd, err = parseApplyCmd(subArgs, r)
	case "effects":
		cmd = &effectsCmd{root: r}
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{root: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	start := time.Now()
	if err := cmd.Run(); err != nil {
		return err
	}
	r.logger.Debug("done", "command", cmdName, "elapsed", time.Since(start))
	return nil
}

// newSession returns an editing session configured from the resolved config
// and the given brush.
func (r *root) newSession(brush effect.Brush) *editor.Session {
	return editor.New(
		editor.WithLogger(r.logger),
		editor.WithMaxBrush(r.config.Brush.MaxSize),
		editor.WithHistoryLimit(r.config.HistoryLimit),
		editor.WithBrush(brush),
	)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
