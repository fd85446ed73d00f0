package main

import (
	"flag"
	"fmt"

	"github.com/example/pixelcanvas/internal/appstate"
	"github.com/example/pixelcanvas/internal/clipboard"
	"github.com/example/pixelcanvas/internal/document"
)

// copyCmd publishes a document on the clipboard.
type copyCmd struct {
	file  string
	store appstate.Store
	*root
	fs *flag.FlagSet
}

func (c *copyCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseCopyCmd(args []string, r *root) (*copyCmd, error) {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	c := &copyCmd{root: r, fs: fs, store: clipboard.NewStore()}
	fs.StringVar(&c.file, "file", "", "document to copy")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.file == "" || fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *copyCmd) Run() error {
	g, err := readDocument(c.file)
	if err != nil {
		return err
	}
	if err := c.store.Save(document.Encode(g)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	c.notifySave("clipboard")
	fmt.Fprintf(c.out(), "copied %s to clipboard\n", c.file)
	return nil
}

// pasteCmd writes the clipboard document to a file after validating it.
type pasteCmd struct {
	output string
	store  appstate.Store
	*root
	fs *flag.FlagSet
}

func (p *pasteCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func parsePasteCmd(args []string, r *root) (*pasteCmd, error) {
	fs := flag.NewFlagSet("paste", flag.ContinueOnError)
	p := &pasteCmd{root: r, fs: fs, store: clipboard.NewStore()}
	fs.StringVar(&p.output, "output", "", "document to write")
	fs.Usage = usageFunc(p)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if p.output == "" || fs.NArg() != 0 {
		return nil, &UsageError{of: p}
	}
	return p, nil
}

func (p *pasteCmd) Run() error {
	data, err := p.store.Load()
	if err != nil {
		return fmt.Errorf("paste from clipboard: %w", err)
	}
	g, err := document.Decode(data)
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	p.notifyLoad("clipboard")
	return p.writeDocument(p.output, g)
}
