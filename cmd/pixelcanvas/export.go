package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/example/pixelcanvas/internal/render"
)

// exportCmd rasterizes a document to PNG.
type exportCmd struct {
	file     string
	output   string
	cell     int
	showGrid bool
	*root
	fs *flag.FlagSet
}

func (e *exportCmd) FlagSet() *flag.FlagSet {
	return e.fs
}

func parseExportCmd(args []string, r *root) (*exportCmd, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	e := &exportCmd{root: r, fs: fs}
	fs.StringVar(&e.file, "file", "", "document to export")
	fs.StringVar(&e.output, "output", "pixelcanvas.png", "PNG file to write")
	fs.IntVar(&e.cell, "cell", 10, "pixels per cell")
	fs.BoolVar(&e.showGrid, "grid", false, "draw cell outlines")
	fs.Usage = usageFunc(e)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if e.file == "" || fs.NArg() != 0 {
		return nil, &UsageError{of: e}
	}
	if e.cell < 1 {
		return nil, &UsageError{of: e, msg: "-cell must be at least 1"}
	}
	return e, nil
}

func (e *exportCmd) Run() error {
	g, err := readDocument(e.file)
	if err != nil {
		return err
	}
	img := render.Image(g, e.cell, e.showGrid)
	out, err := os.Create(e.output)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("export: encode %s: %w", e.output, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("export: closing %s: %w", e.output, err)
	}
	e.notifySave(e.output)
	fmt.Fprintf(e.out(), "exported %s (%dx%d)\n", e.output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
