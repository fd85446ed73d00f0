package main

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/example/pixelcanvas/internal/appstate"
)

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	w := terminalWriter(c.out())
	fmt.Fprintln(w, "available palette colors (* marks the default color):")
	defaultIdx := appstate.DefaultColorIndex()
	for idx, entry := range appstate.PaletteColors() {
		marker := " "
		if idx == defaultIdx {
			marker = "*"
		}
		block := lipgloss.NewStyle().Background(entry.Color).Render("  ")
		fmt.Fprintf(w, "%s %d: %-8s %s %s  key %d\n", marker, idx, entry.Name, entry.Color.Hex(), block, idx+1)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
