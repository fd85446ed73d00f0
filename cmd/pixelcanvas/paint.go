package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/example/pixelcanvas/internal/appstate"
)

// paintCmd applies one mode tool to a document without opening a window.
type paintCmd struct {
	file      string
	output    string
	toolName  string
	colorName string
	row       int
	col       int
	*root
	fs *flag.FlagSet
}

func (p *paintCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePaintCmd(args []string, r *root) (*paintCmd, error) {
	fs := flag.NewFlagSet("paint", flag.ContinueOnError)
	p := &paintCmd{root: r, fs: fs}
	fs.StringVar(&p.file, "file", "", "document to edit")
	fs.StringVar(&p.output, "output", "", "document to write (defaults to -file)")
	fs.StringVar(&p.toolName, "tool", "draw", "tool to apply: draw, erase or fill")
	fs.StringVar(&p.colorName, "color", "", "palette color name or index (default black)")
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if p.file == "" {
		return nil, &UsageError{of: p, msg: "-file is required"}
	}
	if fs.NArg() != 2 {
		return nil, &UsageError{of: p, msg: "expected row and col"}
	}
	var err error
	if p.row, err = strconv.Atoi(fs.Arg(0)); err != nil {
		return nil, &UsageError{of: p, msg: fmt.Sprintf("invalid row %q", fs.Arg(0))}
	}
	if p.col, err = strconv.Atoi(fs.Arg(1)); err != nil {
		return nil, &UsageError{of: p, msg: fmt.Sprintf("invalid col %q", fs.Arg(1))}
	}
	if p.output == "" {
		p.output = p.file
	}
	return p, nil
}

func (p *paintCmd) Run() error {
	tool, err := appstate.ParseTool(p.toolName)
	if err != nil {
		return err
	}
	g, err := readDocument(p.file)
	if err != nil {
		return err
	}
	s := &appstate.Session{Grid: g, Tools: appstate.NewToolState()}
	if err := s.Tools.SetTool(tool); err != nil {
		return fmt.Errorf("-tool %s: %w", p.toolName, err)
	}
	if p.colorName != "" {
		idx, err := appstate.ParseColor(p.colorName)
		if err != nil {
			return err
		}
		if err := s.Tools.SetColor(idx); err != nil {
			return err
		}
	}
	changed, err := s.Apply(p.row, p.col)
	if err != nil {
		return fmt.Errorf("paint %d,%d: %w", p.row, p.col, err)
	}
	if !changed && p.output == p.file {
		fmt.Fprintln(p.out(), "no cells changed")
		return nil
	}
	return p.writeDocument(p.output, s.Grid)
}

// clearCmd whitens every cell of a document.
type clearCmd struct {
	file   string
	output string
	*root
	fs *flag.FlagSet
}

func (c *clearCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseClearCmd(args []string, r *root) (*clearCmd, error) {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	c := &clearCmd{root: r, fs: fs}
	fs.StringVar(&c.file, "file", "", "document to clear")
	fs.StringVar(&c.output, "output", "", "document to write (defaults to -file)")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.file == "" || fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.output == "" {
		c.output = c.file
	}
	return c, nil
}

func (c *clearCmd) Run() error {
	g, err := readDocument(c.file)
	if err != nil {
		return err
	}
	router := appstate.NewRouter(&appstate.Session{Grid: g, Tools: appstate.NewToolState()}, nil, nil)
	router.Activate(appstate.ToolClear)
	return c.writeDocument(c.output, g)
}
