package appstate

import (
	"github.com/example/pixelcanvas/internal/grid"
)

// Session is the state of one editor: the grid, the tool selection and the
// grid-line display flag. A session has a single mutator; nothing here locks.
type Session struct {
	Grid     *grid.Grid
	Tools    *ToolState
	ShowGrid bool
}

// NewSession creates a white rows×cols grid with the default tool selection.
func NewSession(rows, cols int, showGrid bool) (*Session, error) {
	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Session{Grid: g, Tools: NewToolState(), ShowGrid: showGrid}, nil
}

// Apply uses the current mode tool on cell (row, col) and reports whether any
// cell changed.
func (s *Session) Apply(row, col int) (bool, error) {
	switch s.Tools.CurrentTool() {
	case ToolDraw:
		return s.paint(row, col, s.Tools.CurrentColor())
	case ToolErase:
		return s.paint(row, col, grid.White)
	case ToolFill:
		n, err := grid.Fill(s.Grid, row, col, s.Tools.CurrentColor())
		return n > 0, err
	}
	return false, nil
}

func (s *Session) paint(row, col int, c grid.Color) (bool, error) {
	prev, err := s.Grid.Get(row, col)
	if err != nil {
		return false, err
	}
	if prev == c {
		return false, nil
	}
	return true, s.Grid.Set(row, col, c)
}
