package appstate

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixelcanvas/internal/theme"
)

// frameDropThreshold specifies how many consecutive frames can be canceled
// before a draw is allowed to complete to keep the UI responsive.
const frameDropThreshold = 10

// messageDuration is how long a notice stays on screen.
const messageDuration = 2 * time.Second

// AppState holds the editor window configuration.
type AppState struct {
	Session      *Session
	Store        Store
	Clipboard    Store
	Theme        *theme.Theme
	CanvasWidth  int
	CanvasHeight int
	Title        string

	reporter  Reporter
	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithSession sets the session edited by the window.
func WithSession(s *Session) Option { return func(a *AppState) { a.Session = s } }

// WithStore sets the store used by the Save and Load tools.
func WithStore(st Store) Option { return func(a *AppState) { a.Store = st } }

// WithClipboard sets the store used by the copy and paste shortcuts.
func WithClipboard(st Store) Option { return func(a *AppState) { a.Clipboard = st } }

// WithTheme sets the window colors.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithCanvasSize sets the pixel extent of the canvas band.
func WithCanvasSize(w, h int) Option {
	return func(a *AppState) { a.CanvasWidth, a.CanvasHeight = w, h }
}

// WithReporter registers an additional receiver for save and load notices.
// The window always shows notices itself.
func WithReporter(r Reporter) Option { return func(a *AppState) { a.reporter = r } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		CanvasWidth:  DefaultCanvasSize,
		CanvasHeight: DefaultCanvasSize,
		Title:        "PixelCanvas",
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Session == nil {
		s, err := NewSession(50, 50, true)
		if err != nil {
			panic(err)
		}
		a.Session = s
	}
	return a
}

// Layout returns the geometry for the session's current grid. Loading a
// document of other dimensions changes the cell size, not the canvas extent.
func (a *AppState) Layout() Layout {
	rows, cols := a.Session.Grid.Dimensions()
	return NewLayout(a.CanvasWidth, a.CanvasHeight, rows, cols)
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

// Main runs the window on s until it is closed.
func (a *AppState) Main(s screen.Screen) {
	layout := a.Layout()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: layout.CanvasWidth, Height: layout.Height(), Title: a.Title})
	if err != nil {
		logrus.WithError(err).Fatal("new window")
	}
	defer w.Release()
	defer a.notifyClose()

	notice := &overlay{repaint: func() { w.Send(paint.Event{}) }}
	defer notice.stop()
	show := func(n Notice) {
		message := n.String()
		notice.show(message, messageDuration)
		entry := logrus.WithField("action", n.Action.String())
		if n.Err != nil {
			entry.WithError(n.Err).Warn("persistence failed")
		} else {
			entry.WithField("target", n.Detail).Info(message)
		}
		if a.reporter != nil {
			a.reporter.Report(n)
		}
	}
	reporter := ReporterFunc(show)
	router := NewRouter(a.Session, a.Store, reporter)
	clip := NewRouter(a.Session, a.Clipboard, reporter)

	width, height := layout.CanvasWidth, layout.Height()

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	var dropCount int
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	go func() {
		for st := range paintCh {
			ctx, cancel := context.WithCancel(context.Background())
			paintMu.Lock()
			paintCancel = cancel
			paintMu.Unlock()
			drawFrame(ctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			if ctx.Err() == nil {
				dropCount = 0
			}
			paintMu.Unlock()
			cancel()
		}
	}()

	stop := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	actions := map[string]func(){
		"tool-draw":  func() { router.Activate(ToolDraw) },
		"tool-erase": func() { router.Activate(ToolErase) },
		"tool-fill":  func() { router.Activate(ToolFill) },
		"clear":      func() { router.Activate(ToolClear) },
		"save":       func() { router.Activate(ToolSave) },
		"load":       func() { router.Activate(ToolLoad) },
		"copy":       func() { clip.Activate(ToolSave) },
		"paste":      func() { clip.Activate(ToolLoad) },
		"grid":       func() { a.Session.ShowGrid = !a.Session.ShowGrid },
	}
	for i := range palette {
		actions[colorAction(i)] = func() { _ = a.Session.Tools.SetColor(i) }
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				stop()
				return
			}
		case size.Event:
			width = e.WidthPx
			height = e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			paintMu.Lock()
			if paintCancel != nil && dropCount < frameDropThreshold {
				paintCancel()
				dropCount++
			}
			paintMu.Unlock()
			st := paintState{
				width:    width,
				height:   height,
				layout:   a.Layout(),
				grid:     a.Session.Grid.Clone(),
				showGrid: a.Session.ShowGrid,
				tool:     a.Session.Tools.CurrentTool(),
				colorIdx: a.Session.Tools.ColorIndex(),
				theme:    a.Theme,
				message:  notice.current(),
			}
			queueFrame(paintCh, st)
		case mouse.Event:
			if e.Direction != mouse.DirPress || e.Button != mouse.ButtonLeft {
				continue
			}
			notice.hide()
			hit := router.HandlePointerDown(image.Pt(int(e.X), int(e.Y)), a.Layout())
			if hit.Region != RegionNone {
				w.Send(paint.Event{})
			}
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			action, ok := lookupShortcut(e)
			if !ok {
				continue
			}
			if action == "quit" {
				stop()
				return
			}
			if fn, ok := actions[action]; ok {
				fn()
			}
			w.Send(paint.Event{})
		}
	}
}
