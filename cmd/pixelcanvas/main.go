package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/example/pixelcanvas/internal/appstate"
	"github.com/example/pixelcanvas/internal/config"
	"github.com/example/pixelcanvas/internal/notify"
	"github.com/example/pixelcanvas/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	stdout      io.Writer
	notifier    *notify.Notifier
	config      *config.Config
	saveAlerts  bool
	loadAlerts  bool
	errorAlerts bool
	themeName   string
	activeTheme *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	// .env may carry PIXELCANVAS_* variables; the real environment wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("ignoring .env file")
	}
	if lvl := os.Getenv("PIXELCANVAS_LOG_LEVEL"); lvl != "" {
		if level, err := logrus.ParseLevel(lvl); err == nil {
			logrus.SetLevel(level)
		} else {
			logrus.WithError(err).Warn("invalid PIXELCANVAS_LOG_LEVEL")
		}
	}

	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		logrus.WithError(err).Warn("failed to load config")
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("pixelcanvas", flag.ContinueOnError),
		program:  "pixelcanvas",
		stdout:   os.Stdout,
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving a document")
	r.fs.BoolVar(&r.loadAlerts, "notify-load", cfg.Notify.Load, "show a desktop notification after loading a document")
	r.fs.BoolVar(&r.errorAlerts, "notify-error", cfg.Notify.Error, "show a desktop notification when a save or load fails")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (default, dark, or a .theme file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventLoad, r.loadAlerts)
		r.notifier.Enable(notify.EventError, r.errorAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "new":
		cmd, err = parseNewCmd(subArgs, r)
	case "paint":
		cmd, err = parsePaintCmd(subArgs, r)
	case "clear":
		cmd, err = parseClearCmd(subArgs, r)
	case "show":
		cmd, err = parseShowCmd(subArgs, r)
	case "export":
		cmd, err = parseExportCmd(subArgs, r)
	case "copy":
		cmd, err = parseCopyCmd(subArgs, r)
	case "paste":
		cmd, err = parsePasteCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the theme named by flag, then environment, then config.
// Themes defined in the config file shadow files and built-ins.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("PIXELCANVAS_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	if r.config != nil {
		if t, ok := r.config.Themes[name]; ok {
			return t
		}
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "" && !strings.EqualFold(name, "default") {
			logrus.WithError(err).WithField("theme", name).Warn("using default theme")
		}
		return theme.Default()
	}
	return t
}

// reporter is where the window and headless commands send save and load
// outcomes.
func (r *root) reporter() appstate.Reporter {
	if r == nil || r.notifier == nil {
		return nil
	}
	return r.notifier
}

func (r *root) notifySave(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Save(path)
}

func (r *root) notifyLoad(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Load(path)
}

func (r *root) notifyError(err error) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Error(err)
}

func (r *root) out() io.Writer {
	if r == nil || r.stdout == nil {
		return os.Stdout
	}
	return r.stdout
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		case errors.Is(err, flag.ErrHelp):
			os.Exit(0)
		default:
			r.notifyError(err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
