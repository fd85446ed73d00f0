package appstate

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/pixelcanvas/internal/grid"
	"github.com/example/pixelcanvas/internal/theme"
)

func newFrame(t *testing.T, rows, cols int) (paintState, *image.RGBA) {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	l := NewLayout(120, 120, rows, cols)
	st := paintState{
		width:    l.CanvasWidth,
		height:   l.Height(),
		layout:   l,
		grid:     g,
		tool:     ToolDraw,
		colorIdx: 2,
		theme:    theme.Default(),
	}
	return st, image.NewRGBA(image.Rect(0, 0, st.width, st.height))
}

func TestComposeFrameCanvas(t *testing.T) {
	st, dst := newFrame(t, 2, 2)
	require.NoError(t, st.grid.Set(1, 1, grid.Black))

	assert.True(t, composeFrame(context.Background(), dst, st))

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(30, 30), "white cell")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, dst.RGBAAt(90, 90), "black cell")
}

func TestComposeFrameGridLines(t *testing.T) {
	st, dst := newFrame(t, 2, 2)
	st.showGrid = true
	composeFrame(context.Background(), dst, st)
	assert.Equal(t, st.theme.GridLine, dst.RGBAAt(60, 30))

	st.showGrid = false
	composeFrame(context.Background(), dst, st)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, dst.RGBAAt(60, 30))
}

func TestComposeFramePaletteSelection(t *testing.T) {
	st, dst := newFrame(t, 2, 2)
	composeFrame(context.Background(), dst, st)

	sel := st.layout.SwatchRect(2)
	assert.Equal(t, st.theme.PaletteSelected, dst.RGBAAt(sel.Min.X, sel.Min.Y))
	centre := image.Pt((sel.Min.X+sel.Max.X)/2, (sel.Min.Y+sel.Max.Y)/2)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, dst.RGBAAt(centre.X, centre.Y))
}

func TestComposeFrameCanceled(t *testing.T) {
	st, dst := newFrame(t, 2, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, composeFrame(ctx, dst, st))
}

func TestAppStateLayoutFollowsGrid(t *testing.T) {
	s, err := NewSession(4, 4, false)
	require.NoError(t, err)
	a := New(WithSession(s), WithCanvasSize(200, 100))

	l := a.Layout()
	assert.Equal(t, 4, l.Rows)
	assert.Equal(t, 200, l.Height())

	bigger, err := grid.New(10, 20)
	require.NoError(t, err)
	require.NoError(t, s.Grid.ReplaceWith(bigger))

	l = a.Layout()
	w, h := l.CellSize()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
	assert.Equal(t, 200, l.CanvasWidth)
}

func TestNewDefaults(t *testing.T) {
	a := New()
	require.NotNil(t, a.Session)
	rows, cols := a.Session.Grid.Dimensions()
	assert.Equal(t, 50, rows)
	assert.Equal(t, 50, cols)
	assert.Equal(t, DefaultCanvasSize, a.CanvasWidth)
	assert.NotNil(t, a.Theme)
}
