package main

import (
	"flag"
	"fmt"

	"github.com/example/pixelcanvas/internal/grid"
)

// newCmd writes a blank white document.
type newCmd struct {
	rows   int
	cols   int
	output string
	*root
	fs *flag.FlagSet
}

func (n *newCmd) FlagSet() *flag.FlagSet {
	return n.fs
}

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	n := &newCmd{root: r, fs: fs}
	rows, cols, doc := 50, 50, "pixelcanvas.txt"
	if r != nil && r.config != nil {
		rows, cols, doc = r.config.Rows, r.config.Cols, r.config.Document
	}
	fs.IntVar(&n.rows, "rows", rows, "number of grid rows (1-100)")
	fs.IntVar(&n.cols, "cols", cols, "number of grid columns (1-100)")
	fs.StringVar(&n.output, "output", doc, "document to write")
	fs.Usage = usageFunc(n)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: n}
	}
	if err := validateDimensions(n.rows, n.cols); err != nil {
		return nil, &UsageError{of: n, msg: err.Error()}
	}
	return n, nil
}

func (n *newCmd) Run() error {
	g, err := grid.New(n.rows, n.cols)
	if err != nil {
		return err
	}
	if err := n.writeDocument(n.output, g); err != nil {
		return err
	}
	fmt.Fprintf(n.out(), "created %dx%d document %s\n", n.rows, n.cols, n.output)
	return nil
}
