package main

import (
	"errors"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/example/pixelcanvas/internal/appstate"
	"github.com/example/pixelcanvas/internal/clipboard"
	"github.com/example/pixelcanvas/internal/document"
)

// editCmd opens the editor window.
type editCmd struct {
	file     string
	open     bool
	rows     int
	cols     int
	showGrid bool
	width    int
	height   int
	*root
	fs *flag.FlagSet
}

func (e *editCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	e := &editCmd{root: r, fs: fs}
	cfg := r.config
	fs.StringVar(&e.file, "file", cfg.Document, "document used by the Save and Load tools")
	fs.BoolVar(&e.open, "open", false, "load -file into the canvas at start up")
	fs.IntVar(&e.rows, "rows", cfg.Rows, "number of grid rows (1-100)")
	fs.IntVar(&e.cols, "cols", cfg.Cols, "number of grid columns (1-100)")
	fs.BoolVar(&e.showGrid, "show-grid", cfg.ShowGrid, "draw cell outlines")
	fs.IntVar(&e.width, "width", cfg.CanvasWidth, "canvas width in pixels")
	fs.IntVar(&e.height, "height", cfg.CanvasHeight, "canvas height in pixels")
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: e}
	}
	if err := validateDimensions(e.rows, e.cols); err != nil {
		return nil, &UsageError{of: e, msg: err.Error()}
	}
	if e.width < 1 || e.height < 1 {
		return nil, &UsageError{of: e, msg: "-width and -height must be positive"}
	}
	return e, nil
}

func (e *editCmd) session() (*appstate.Session, error) {
	s, err := appstate.NewSession(e.rows, e.cols, e.showGrid)
	if err != nil {
		return nil, err
	}
	if !e.open {
		return s, nil
	}
	g, err := readDocument(e.file)
	if errors.Is(err, os.ErrNotExist) {
		logrus.WithField("file", e.file).Info("document does not exist yet, starting blank")
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.Grid.ReplaceWith(g); err != nil {
		return nil, err
	}
	s.ShowGrid = true
	e.notifyLoad(e.file)
	return s, nil
}

func (e *editCmd) Run() error {
	s, err := e.session()
	if err != nil {
		return err
	}
	opts := []appstate.Option{
		appstate.WithSession(s),
		appstate.WithStore(document.NewFileStore(e.file)),
		appstate.WithClipboard(clipboard.NewStore()),
		appstate.WithCanvasSize(e.width, e.height),
		appstate.WithTheme(e.activeTheme),
	}
	if rep := e.reporter(); rep != nil {
		opts = append(opts, appstate.WithReporter(rep))
	}
	st := appstate.New(opts...)
	st.Run()
	return nil
}
