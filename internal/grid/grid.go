package grid

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxDimension is the largest accepted row or column count.
const MaxDimension = 100

var (
	// ErrOutOfBounds reports a row, column or palette index outside its range.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrMalformedDocument reports cell data that cannot form a complete grid.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrDimensions reports a row or column count outside 1..MaxDimension.
	ErrDimensions = errors.New("invalid grid dimensions")
)

// Color is an opaque RGB triple. It satisfies image/color.Color.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// RGBA implements color.Color. Cells are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the persisted "R,G,B" form.
func (c Color) String() string {
	buf := make([]byte, 0, 11)
	buf = strconv.AppendUint(buf, uint64(c.R), 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, uint64(c.G), 10)
	buf = append(buf, ',')
	buf = strconv.AppendUint(buf, uint64(c.B), 10)
	return string(buf)
}

// Hex returns the color as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Grid is a row-major rectangle of cell colors. It is not safe for
// concurrent use; the editor session is its only mutator.
type Grid struct {
	rows, cols int
	cells      [][]Color
}

// New returns a rows×cols grid filled with White.
func New(rows, cols int) (*Grid, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	return &Grid{rows: rows, cols: cols, cells: blank(rows, cols)}, nil
}

func checkDimensions(rows, cols int) error {
	if rows < 1 || rows > MaxDimension || cols < 1 || cols > MaxDimension {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrDimensions)
	}
	return nil
}

func blank(rows, cols int) [][]Color {
	cells := make([][]Color, rows)
	for r := range cells {
		row := make([]Color, cols)
		for c := range row {
			row[c] = White
		}
		cells[r] = row
	}
	return cells
}

// Dimensions returns the row and column counts.
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// In reports whether (row, col) addresses a cell.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) bounds(row, col int) error {
	if !g.In(row, col) {
		return fmt.Errorf("cell (%d,%d) of %dx%d grid: %w", row, col, g.rows, g.cols, ErrOutOfBounds)
	}
	return nil
}

// Get returns the color at (row, col).
func (g *Grid) Get(row, col int) (Color, error) {
	if err := g.bounds(row, col); err != nil {
		return Color{}, err
	}
	return g.cells[row][col], nil
}

// Set overwrites exactly one cell.
func (g *Grid) Set(row, col int, c Color) error {
	if err := g.bounds(row, col); err != nil {
		return err
	}
	g.cells[row][col] = c
	return nil
}

// Clear paints every cell White without changing the dimensions.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for c := range row {
			row[c] = White
		}
	}
}

// Replace swaps in a new backing array. cells must hold exactly rows rows of
// cols entries each; otherwise the grid is left as it was. The grid takes
// ownership of cells.
func (g *Grid) Replace(rows, cols int, cells [][]Color) error {
	if err := checkDimensions(rows, cols); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if len(cells) != rows {
		return fmt.Errorf("%w: got %d rows, want %d", ErrMalformedDocument, len(cells), rows)
	}
	for r, row := range cells {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedDocument, r, len(row), cols)
		}
	}
	g.rows, g.cols, g.cells = rows, cols, cells
	return nil
}

// ReplaceWith makes g a copy of other, dimensions included.
func (g *Grid) ReplaceWith(other *Grid) error {
	if other == nil {
		return fmt.Errorf("%w: no grid", ErrMalformedDocument)
	}
	c := other.Clone()
	return g.Replace(c.rows, c.cols, c.cells)
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(row, col int, c Color)) {
	for r, row := range g.cells {
		for c, col := range row {
			fn(r, c, col)
		}
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([][]Color, g.rows)
	for r, row := range g.cells {
		cells[r] = append([]Color(nil), row...)
	}
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r, row := range g.cells {
		for c, col := range row {
			if other.cells[r][c] != col {
				return false
			}
		}
	}
	return true
}
