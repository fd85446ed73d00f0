package appstate

import (
	"errors"
	"image"
	"testing"

	"github.com/example/pixelcanvas/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct{ mock.Mock }

func (m *mockStore) Save(doc []byte) error {
	return m.Called(string(doc)).Error(0)
}

func (m *mockStore) Load() ([]byte, error) {
	args := m.Called()
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockStore) String() string { return "art.txt" }

type mockReporter struct{ mock.Mock }

func (m *mockReporter) Report(n Notice) { m.Called(n) }

// 2×2 grid on a 200×200 canvas: cells are 100px, buttons 33px, swatches 28px.
func testLayout() Layout { return NewLayout(200, 200, 2, 2) }

func toolPoint(l Layout, t Tool) image.Point {
	r := l.ToolRect(int(t))
	return image.Pt(r.Min.X+1, r.Min.Y+1)
}

func swatchPoint(l Layout, idx int) image.Point {
	r := l.SwatchRect(idx)
	return image.Pt(r.Min.X+1, r.Min.Y+1)
}

func newTestRouter(t *testing.T, store Store, rep Reporter) (*Router, *Session) {
	t.Helper()
	s, err := NewSession(2, 2, false)
	require.NoError(t, err)
	return NewRouter(s, store, rep), s
}

func TestLocate(t *testing.T) {
	l := testLayout()
	tests := []struct {
		name string
		p    image.Point
		want Hit
	}{
		{"top left cell", image.Pt(0, 0), Hit{Region: RegionCanvas, Row: 0, Col: 0}},
		{"bottom right cell", image.Pt(199, 199), Hit{Region: RegionCanvas, Row: 1, Col: 1}},
		{"cell boundary", image.Pt(100, 99), Hit{Region: RegionCanvas, Row: 0, Col: 1}},
		{"first button", image.Pt(0, 200), Hit{Region: RegionToolbar, Index: 0}},
		{"last button", image.Pt(197, 249), Hit{Region: RegionToolbar, Index: 5}},
		{"toolbar remainder", image.Pt(198, 220), Hit{Region: RegionNone}},
		{"first swatch", image.Pt(0, 250), Hit{Region: RegionPalette, Index: 0}},
		{"third swatch", image.Pt(57, 280), Hit{Region: RegionPalette, Index: 2}},
		{"palette remainder", image.Pt(196, 280), Hit{Region: RegionNone}},
		{"below palette", image.Pt(10, 300), Hit{Region: RegionNone}},
		{"negative", image.Pt(-1, 10), Hit{Region: RegionNone}},
		{"right of canvas", image.Pt(200, 10), Hit{Region: RegionNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Locate(tt.p))
		})
	}
}

func TestLocateUnevenCells(t *testing.T) {
	// 3 rows over 100px leaves a 1px strip below the last row
	l := NewLayout(100, 100, 3, 3)
	assert.Equal(t, RegionCanvas, l.Locate(image.Pt(98, 98)).Region)
	assert.Equal(t, RegionNone, l.Locate(image.Pt(99, 99)).Region)

	// more rows than pixels leaves no addressable cells
	l = NewLayout(10, 10, 20, 20)
	assert.Equal(t, RegionNone, l.Locate(image.Pt(1, 1)).Region)
}

func TestCanvasDrawEraseFill(t *testing.T) {
	r, s := newTestRouter(t, nil, nil)
	l := testLayout()

	hit := r.HandlePointerDown(image.Pt(10, 10), l)
	assert.True(t, hit.Changed)
	got, _ := s.Grid.Get(0, 0)
	assert.Equal(t, grid.Black, got)

	hit = r.HandlePointerDown(image.Pt(10, 10), l)
	assert.False(t, hit.Changed, "drawing the same color changes nothing")

	r.HandlePointerDown(toolPoint(l, ToolErase), l)
	assert.Equal(t, ToolErase, s.Tools.CurrentTool())
	r.HandlePointerDown(image.Pt(10, 10), l)
	got, _ = s.Grid.Get(0, 0)
	assert.Equal(t, grid.White, got)

	r.HandlePointerDown(toolPoint(l, ToolFill), l)
	r.HandlePointerDown(swatchPoint(l, 4), l)
	hit = r.HandlePointerDown(image.Pt(150, 150), l)
	assert.True(t, hit.Changed)
	s.Grid.Each(func(row, col int, c grid.Color) {
		assert.Equal(t, grid.Color{B: 255}, c, "cell (%d,%d)", row, col)
	})
}

func TestPaletteSelectionThenDraw(t *testing.T) {
	r, s := newTestRouter(t, nil, nil)
	l := testLayout()

	hit := r.HandlePointerDown(swatchPoint(l, 2), l)
	assert.Equal(t, RegionPalette, hit.Region)
	assert.Equal(t, 2, s.Tools.ColorIndex())
	assert.Equal(t, Palette()[2], s.Tools.CurrentColor())

	r.HandlePointerDown(image.Pt(120, 30), l)
	got, _ := s.Grid.Get(0, 1)
	assert.Equal(t, grid.Color{R: 255}, got)
}

func TestClearKeepsMode(t *testing.T) {
	r, s := newTestRouter(t, nil, nil)
	l := testLayout()
	r.HandlePointerDown(toolPoint(l, ToolFill), l)
	require.NoError(t, s.Grid.Set(1, 1, grid.Black))

	hit := r.HandlePointerDown(toolPoint(l, ToolClear), l)
	assert.True(t, hit.Changed)
	assert.Equal(t, ToolFill, s.Tools.CurrentTool(), "clear is an action, mode stays")
	s.Grid.Each(func(_, _ int, c grid.Color) { assert.Equal(t, grid.White, c) })
}

func TestSaveEncodesGrid(t *testing.T) {
	store := &mockStore{}
	rep := &mockReporter{}
	r, s := newTestRouter(t, store, rep)
	l := testLayout()
	require.NoError(t, s.Grid.Set(0, 0, grid.Black))

	store.On("Save", "2 2\n0,0,0 255,255,255\n255,255,255 255,255,255\n").Return(nil).Once()
	rep.On("Report", Notice{Action: ToolSave, Detail: "art.txt"}).Once()

	hit := r.HandlePointerDown(toolPoint(l, ToolSave), l)
	assert.Equal(t, RegionToolbar, hit.Region)
	assert.False(t, hit.Changed)
	assert.Equal(t, ToolDraw, s.Tools.CurrentTool())
	store.AssertExpectations(t)
	rep.AssertExpectations(t)
}

func TestSaveFailureReported(t *testing.T) {
	store := &mockStore{}
	rep := &mockReporter{}
	r, s := newTestRouter(t, store, rep)
	before := s.Grid.Clone()

	diskFull := errors.New("disk full")
	store.On("Save", mock.Anything).Return(diskFull).Once()
	rep.On("Report", mock.MatchedBy(func(n Notice) bool {
		return n.Action == ToolSave && errors.Is(n.Err, ErrPersistenceIO) && errors.Is(n.Err, diskFull)
	})).Once()

	r.Activate(ToolSave)
	assert.True(t, s.Grid.Equal(before))
	store.AssertExpectations(t)
	rep.AssertExpectations(t)
}

func TestLoadReplacesGrid(t *testing.T) {
	store := &mockStore{}
	rep := &mockReporter{}
	r, s := newTestRouter(t, store, rep)
	l := testLayout()

	store.On("Load").Return([]byte("1 3\n255,0,0 0,0,0 0,0,255\n"), nil).Once()
	rep.On("Report", Notice{Action: ToolLoad, Detail: "art.txt"}).Once()

	hit := r.HandlePointerDown(toolPoint(l, ToolLoad), l)
	assert.True(t, hit.Changed)
	assert.True(t, s.ShowGrid, "load re-enables grid lines")
	rows, cols := s.Grid.Dimensions()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)
	got, _ := s.Grid.Get(0, 2)
	assert.Equal(t, grid.Color{B: 255}, got)
	store.AssertExpectations(t)
	rep.AssertExpectations(t)
}

func TestLoadMalformedLeavesGrid(t *testing.T) {
	store := &mockStore{}
	rep := &mockReporter{}
	r, s := newTestRouter(t, store, rep)
	require.NoError(t, s.Grid.Set(0, 1, grid.Black))
	before := s.Grid.Clone()

	store.On("Load").Return([]byte("3 2\n0,0,0 0,0,0\n0,0,0 0,0,0\n"), nil).Once()
	rep.On("Report", mock.MatchedBy(func(n Notice) bool {
		return n.Action == ToolLoad && errors.Is(n.Err, grid.ErrMalformedDocument)
	})).Once()

	assert.False(t, r.Activate(ToolLoad))
	assert.True(t, s.Grid.Equal(before))
	assert.False(t, s.ShowGrid)
	rep.AssertExpectations(t)
}

func TestLoadIOErrorAndCancel(t *testing.T) {
	store := &mockStore{}
	rep := &mockReporter{}
	r, s := newTestRouter(t, store, rep)
	before := s.Grid.Clone()

	store.On("Load").Return(nil, errors.New("permission denied")).Once()
	rep.On("Report", mock.MatchedBy(func(n Notice) bool {
		return errors.Is(n.Err, ErrPersistenceIO)
	})).Once()
	assert.False(t, r.Activate(ToolLoad))

	store.On("Load").Return(nil, ErrCanceled).Once()
	assert.False(t, r.Activate(ToolLoad))

	assert.True(t, s.Grid.Equal(before))
	store.AssertExpectations(t)
	rep.AssertExpectations(t)
}

func TestNoStoreReports(t *testing.T) {
	var notices []Notice
	r, _ := newTestRouter(t, nil, ReporterFunc(func(n Notice) { notices = append(notices, n) }))
	r.Activate(ToolSave)
	r.Activate(ToolLoad)
	require.Len(t, notices, 2)
	for _, n := range notices {
		assert.ErrorIs(t, n.Err, ErrPersistenceIO)
	}
}

func TestLayoutForOtherDimensionsIgnored(t *testing.T) {
	r, s := newTestRouter(t, nil, nil)
	// layout still drawn for a 4×4 grid after the session shrank to 2×2
	l := NewLayout(200, 200, 4, 4)
	hit := r.HandlePointerDown(image.Pt(180, 180), l)
	assert.Equal(t, RegionCanvas, hit.Region)
	assert.False(t, hit.Changed)
	s.Grid.Each(func(_, _ int, c grid.Color) { assert.Equal(t, grid.White, c) })
}

func TestNoticeString(t *testing.T) {
	assert.Equal(t, "saved a.txt", Notice{Action: ToolSave, Detail: "a.txt"}.String())
	assert.Equal(t, "loaded a.txt", Notice{Action: ToolLoad, Detail: "a.txt"}.String())
	assert.Equal(t, "Load failed: boom", Notice{Action: ToolLoad, Err: errors.New("boom")}.String())
}
