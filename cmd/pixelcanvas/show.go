package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/example/pixelcanvas/internal/appstate"
	"github.com/example/pixelcanvas/internal/grid"
)

// showCmd prints a document to the terminal as colored blocks.
type showCmd struct {
	file    string
	summary bool
	*root
	fs *flag.FlagSet
}

func (s *showCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func parseShowCmd(args []string, r *root) (*showCmd, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	s := &showCmd{root: r, fs: fs}
	fs.StringVar(&s.file, "file", "", "document to display")
	fs.BoolVar(&s.summary, "summary", false, "print dimensions and cell counts per color instead of blocks")
	fs.Usage = usageFunc(s)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if s.file == "" && fs.NArg() == 1 {
		s.file = fs.Arg(0)
	} else if fs.NArg() != 0 {
		return nil, &UsageError{of: s}
	}
	if s.file == "" {
		return nil, &UsageError{of: s, msg: "-file is required"}
	}
	return s, nil
}

func (s *showCmd) Run() error {
	g, err := readDocument(s.file)
	if err != nil {
		return err
	}
	if s.summary {
		_, err = io.WriteString(s.out(), summarize(s.file, g))
		return err
	}
	w := terminalWriter(s.out())
	_, err = io.WriteString(w, renderBlocks(g))
	return err
}

// renderBlocks draws each cell as two spaces with the cell color as
// background, one line per row.
func renderBlocks(g *grid.Grid) string {
	rows, cols := g.Dimensions()
	styles := map[grid.Color]lipgloss.Style{}
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			col, _ := g.Get(r, c)
			st, ok := styles[col]
			if !ok {
				st = lipgloss.NewStyle().Background(col)
				styles[col] = st
			}
			sb.WriteString(st.Render("  "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// summarize lists the dimensions and how many cells hold each color, most
// frequent first.
func summarize(name string, g *grid.Grid) string {
	rows, cols := g.Dimensions()
	counts := map[grid.Color]int{}
	g.Each(func(_, _ int, c grid.Color) { counts[c]++ })
	colors := make([]grid.Color, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool {
		if counts[colors[i]] != counts[colors[j]] {
			return counts[colors[i]] > counts[colors[j]]
		}
		return colors[i].Hex() < colors[j].Hex()
	})
	names := map[grid.Color]string{}
	for _, pc := range appstate.PaletteColors() {
		names[pc.Color] = pc.Name
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d rows, %d cols\n", name, rows, cols)
	for _, c := range colors {
		label := names[c]
		if label == "" {
			label = c.String()
		}
		fmt.Fprintf(&sb, "%6d %s %s\n", counts[c], c.Hex(), label)
	}
	return sb.String()
}

// terminalWriter downsamples ANSI colors to what the terminal supports when
// writing to stdout.
func terminalWriter(w io.Writer) io.Writer {
	if w != os.Stdout {
		return w
	}
	return colorprofile.NewWriter(w, os.Environ())
}
