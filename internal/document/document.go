// Package document reads and writes the plain-text grid format:
//
//	<rows> <cols>
//	R,G,B R,G,B ...
//	...
//
// one line of cols space-separated channel triples per row.
package document

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/pixelcanvas/internal/grid"
)

// ErrMalformedDocument is returned, wrapped with the offending line, for any
// input that does not describe a complete grid.
var ErrMalformedDocument = grid.ErrMalformedDocument

// Encode returns the text form of g.
func Encode(g *grid.Grid) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, g)
	return buf.Bytes()
}

// Write streams the text form of g to w.
func Write(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	rows, cols := g.Dimensions()
	fmt.Fprintf(bw, "%d %d\n", rows, cols)
	g.Each(func(_, c int, col grid.Color) {
		if c > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(col.String())
		if c == cols-1 {
			bw.WriteByte('\n')
		}
	})
	return bw.Flush()
}

// Decode parses data into a new grid. No existing grid is touched.
func Decode(data []byte) (*grid.Grid, error) {
	return Read(bytes.NewReader(data))
}

// Read parses a document from r into a new grid.
func Read(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}
	rows, cols, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	cells := make([][]grid.Color, 0, rows)
	line := 1
	for scanner.Scan() {
		line++
		if len(cells) == rows {
			return nil, fmt.Errorf("%w: line %d: more than %d data lines", ErrMalformedDocument, line, rows)
		}
		row, err := parseRow(scanner.Text(), cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrMalformedDocument, line, err)
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedDocument, line+1, err)
	}
	if len(cells) != rows {
		return nil, fmt.Errorf("%w: header declares %d rows, found %d", ErrMalformedDocument, rows, len(cells))
	}

	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if err := g.Replace(rows, cols, cells); err != nil {
		return nil, err
	}
	return g, nil
}

func parseHeader(s string) (rows, cols int, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: line 1: header needs \"rows cols\", got %q", ErrMalformedDocument, s)
	}
	dims := [2]int{}
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 8)
		if err != nil || n < 1 || n > grid.MaxDimension {
			return 0, 0, fmt.Errorf("%w: line 1: dimension %q must be an integer in 1..%d", ErrMalformedDocument, f, grid.MaxDimension)
		}
		dims[i] = int(n)
	}
	return dims[0], dims[1], nil
}

func parseRow(s string, cols int) ([]grid.Color, error) {
	fields := strings.Fields(s)
	if len(fields) != cols {
		return nil, fmt.Errorf("got %d cells, want %d", len(fields), cols)
	}
	row := make([]grid.Color, cols)
	for i, f := range fields {
		c, err := parseTriple(f)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		row[i] = c
	}
	return row, nil
}

func parseTriple(s string) (grid.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return grid.Color{}, fmt.Errorf("%q is not an R,G,B triple", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return grid.Color{}, fmt.Errorf("channel %q must be an integer in 0..255", p)
		}
		ch[i] = uint8(v)
	}
	return grid.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
