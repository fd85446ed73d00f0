package appstate

import (
	"errors"
	"fmt"
	"image"

	"github.com/example/pixelcanvas/internal/document"
)

var (
	// ErrPersistenceIO wraps failures reported by a Store.
	ErrPersistenceIO = errors.New("persistence failure")
	// ErrCanceled is returned by a Store when the user backs out of a save or
	// load. It is never reported.
	ErrCanceled = errors.New("canceled")
)

// Store is the persistence collaborator used by the Save and Load tools.
type Store interface {
	Save(doc []byte) error
	Load() ([]byte, error)
}

// Notice describes the outcome of a Save or Load for the user.
type Notice struct {
	Action Tool
	Detail string
	Err    error
}

func (n Notice) String() string {
	if n.Err != nil {
		return fmt.Sprintf("%s failed: %v", n.Action, n.Err)
	}
	switch n.Action {
	case ToolSave:
		return "saved " + n.Detail
	case ToolLoad:
		return "loaded " + n.Detail
	}
	return n.Action.String()
}

// Reporter surfaces notices to the user.
type Reporter interface {
	Report(Notice)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Notice)

func (f ReporterFunc) Report(n Notice) { f(n) }

// Region is the band of the window a pointer position falls in.
type Region int

const (
	RegionNone Region = iota
	RegionCanvas
	RegionToolbar
	RegionPalette
)

func (r Region) String() string {
	switch r {
	case RegionCanvas:
		return "canvas"
	case RegionToolbar:
		return "toolbar"
	case RegionPalette:
		return "palette"
	}
	return "none"
}

const (
	DefaultBandHeight = 50
	DefaultCanvasSize = 600
)

// Layout is the window geometry the pointer position is measured against:
// the canvas on top, then the toolbar band, then the palette band.
type Layout struct {
	CanvasWidth   int
	CanvasHeight  int
	ToolbarHeight int
	PaletteHeight int
	Rows, Cols    int
}

// NewLayout returns a layout with the default band heights.
func NewLayout(canvasWidth, canvasHeight, rows, cols int) Layout {
	return Layout{
		CanvasWidth:   canvasWidth,
		CanvasHeight:  canvasHeight,
		ToolbarHeight: DefaultBandHeight,
		PaletteHeight: DefaultBandHeight,
		Rows:          rows,
		Cols:          cols,
	}
}

// Height returns the total height of all three bands.
func (l Layout) Height() int { return l.CanvasHeight + l.ToolbarHeight + l.PaletteHeight }

// CellSize returns the pixel size of one cell. Cells are integer sized, so
// the canvas may have an unused margin on the right and bottom.
func (l Layout) CellSize() (w, h int) {
	if l.Rows <= 0 || l.Cols <= 0 {
		return 0, 0
	}
	return l.CanvasWidth / l.Cols, l.CanvasHeight / l.Rows
}

// ButtonWidth returns the width of one toolbar button.
func (l Layout) ButtonWidth() int { return l.CanvasWidth / len(toolNames) }

// SwatchWidth returns the width of one palette swatch.
func (l Layout) SwatchWidth() int { return l.CanvasWidth / len(palette) }

// ToolRect returns the toolbar rectangle of the idx'th tool.
func (l Layout) ToolRect(idx int) image.Rectangle {
	w := l.ButtonWidth()
	return image.Rect(idx*w, l.CanvasHeight, (idx+1)*w, l.CanvasHeight+l.ToolbarHeight)
}

// SwatchRect returns the palette rectangle of the idx'th color.
func (l Layout) SwatchRect(idx int) image.Rectangle {
	w := l.SwatchWidth()
	y := l.CanvasHeight + l.ToolbarHeight
	return image.Rect(idx*w, y, (idx+1)*w, y+l.PaletteHeight)
}

// Hit is a classified pointer position. Row and Col are set for canvas hits,
// Index for toolbar and palette hits. Changed is filled in by the Router.
type Hit struct {
	Region  Region
	Row     int
	Col     int
	Index   int
	Changed bool
}

// Locate classifies p. Bands are tested top to bottom; a position whose
// computed cell, button or swatch falls outside its range is RegionNone.
func (l Layout) Locate(p image.Point) Hit {
	none := Hit{Region: RegionNone}
	if p.X < 0 || p.Y < 0 || p.X >= l.CanvasWidth {
		return none
	}
	switch {
	case p.Y < l.CanvasHeight:
		cw, ch := l.CellSize()
		if cw == 0 || ch == 0 {
			return none
		}
		row, col := p.Y/ch, p.X/cw
		if row >= l.Rows || col >= l.Cols {
			return none
		}
		return Hit{Region: RegionCanvas, Row: row, Col: col}
	case p.Y < l.CanvasHeight+l.ToolbarHeight:
		return bandHit(RegionToolbar, p.X, l.ButtonWidth(), len(toolNames))
	case p.Y < l.Height():
		return bandHit(RegionPalette, p.X, l.SwatchWidth(), len(palette))
	}
	return none
}

func bandHit(region Region, x, width, count int) Hit {
	if width <= 0 {
		return Hit{Region: RegionNone}
	}
	idx := x / width
	if idx >= count {
		return Hit{Region: RegionNone}
	}
	return Hit{Region: region, Index: idx}
}

// Router turns pointer presses into session changes. It keeps no state of
// its own between calls.
type Router struct {
	session  *Session
	store    Store
	reporter Reporter
}

// NewRouter binds a router to a session and its collaborators. store and
// reporter may be nil.
func NewRouter(s *Session, store Store, reporter Reporter) *Router {
	return &Router{session: s, store: store, reporter: reporter}
}

// Session returns the session the router edits.
func (r *Router) Session() *Session { return r.session }

// HandlePointerDown classifies p against l and dispatches it.
func (r *Router) HandlePointerDown(p image.Point, l Layout) Hit {
	hit := l.Locate(p)
	switch hit.Region {
	case RegionCanvas:
		changed, err := r.session.Apply(hit.Row, hit.Col)
		// A layout drawn for other dimensions can still address a cell the
		// grid lacks; such presses are dropped.
		if err == nil {
			hit.Changed = changed
		}
	case RegionToolbar:
		hit.Changed = r.Activate(Tools()[hit.Index])
	case RegionPalette:
		_ = r.session.Tools.SetColor(hit.Index)
	}
	return hit
}

// Activate runs t as a toolbar press and reports whether the grid changed.
func (r *Router) Activate(t Tool) bool {
	switch t {
	case ToolClear:
		r.session.Grid.Clear()
		return true
	case ToolSave:
		r.save()
		return false
	case ToolLoad:
		return r.load()
	default:
		_ = r.session.Tools.SetTool(t)
		return false
	}
}

func (r *Router) save() {
	if r.store == nil {
		r.report(Notice{Action: ToolSave, Err: fmt.Errorf("%w: no store configured", ErrPersistenceIO)})
		return
	}
	if err := r.store.Save(document.Encode(r.session.Grid)); err != nil {
		if errors.Is(err, ErrCanceled) {
			return
		}
		r.report(Notice{Action: ToolSave, Detail: r.storeName(), Err: fmt.Errorf("%w: %w", ErrPersistenceIO, err)})
		return
	}
	r.report(Notice{Action: ToolSave, Detail: r.storeName()})
}

func (r *Router) load() bool {
	if r.store == nil {
		r.report(Notice{Action: ToolLoad, Err: fmt.Errorf("%w: no store configured", ErrPersistenceIO)})
		return false
	}
	data, err := r.store.Load()
	if err != nil {
		if errors.Is(err, ErrCanceled) {
			return false
		}
		r.report(Notice{Action: ToolLoad, Detail: r.storeName(), Err: fmt.Errorf("%w: %w", ErrPersistenceIO, err)})
		return false
	}
	g, err := document.Decode(data)
	if err != nil {
		r.report(Notice{Action: ToolLoad, Detail: r.storeName(), Err: err})
		return false
	}
	if err := r.session.Grid.ReplaceWith(g); err != nil {
		r.report(Notice{Action: ToolLoad, Detail: r.storeName(), Err: err})
		return false
	}
	r.session.ShowGrid = true
	r.report(Notice{Action: ToolLoad, Detail: r.storeName()})
	return true
}

func (r *Router) storeName() string {
	if s, ok := r.store.(fmt.Stringer); ok {
		return s.String()
	}
	return "document"
}

func (r *Router) report(n Notice) {
	if r.reporter != nil {
		r.reporter.Report(n)
	}
}
