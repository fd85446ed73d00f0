package appstate

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/pixelcanvas/internal/grid"
	"github.com/example/pixelcanvas/internal/render"
	"github.com/example/pixelcanvas/internal/theme"
)

var labelFace font.Face = basicfont.Face7x13

// paintState is a snapshot of everything a frame needs. The grid is a clone
// so the paint goroutine never reads the live session.
type paintState struct {
	width, height int
	layout        Layout
	grid          *grid.Grid
	showGrid      bool
	tool          Tool
	colorIdx      int
	theme         *theme.Theme
	message       string
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		logrus.WithError(err).Error("new buffer")
		return
	}
	defer b.Release()

	if !composeFrame(ctx, b.RGBA(), st) {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// composeFrame paints st into dst and reports whether it ran to completion.
func composeFrame(ctx context.Context, dst *image.RGBA, st paintState) bool {
	th := st.theme
	if th == nil {
		th = theme.Default()
	}
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	cw, ch := st.layout.CellSize()
	render.Draw(dst, image.Point{}, st.grid, render.Options{
		CellWidth:  cw,
		CellHeight: ch,
		ShowGrid:   st.showGrid,
		LineColor:  th.GridLine,
	})
	if ctx.Err() != nil {
		return false
	}

	drawToolbar(dst, st.layout, st.tool, th)
	drawPalette(dst, st.layout, st.colorIdx, th)
	if ctx.Err() != nil {
		return false
	}

	if st.message != "" {
		drawMessage(dst, st.layout, st.message, th)
	}
	return ctx.Err() == nil
}

func drawToolbar(dst *image.RGBA, l Layout, current Tool, th *theme.Theme) {
	band := image.Rect(0, l.CanvasHeight, l.CanvasWidth, l.CanvasHeight+l.ToolbarHeight)
	draw.Draw(dst, band, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	for i, t := range Tools() {
		r := l.ToolRect(i)
		if t == current {
			draw.Draw(dst, r.Inset(1), &image.Uniform{th.ToolActive}, image.Point{}, draw.Src)
		}
		drawBorder(dst, r, th.ButtonBorder, 1)
		drawLabel(dst, r, t.String(), th.ButtonText)
	}
}

func drawPalette(dst *image.RGBA, l Layout, selected int, th *theme.Theme) {
	for i, pc := range PaletteColors() {
		r := l.SwatchRect(i)
		draw.Draw(dst, r, &image.Uniform{pc.Color}, image.Point{}, draw.Src)
		if i == selected {
			drawBorder(dst, r, th.PaletteSelected, 3)
		} else {
			drawBorder(dst, r, th.ButtonBorder, 1)
		}
	}
}

func drawMessage(dst *image.RGBA, l Layout, msg string, th *theme.Theme) {
	d := &font.Drawer{Dst: dst, Src: &image.Uniform{th.Foreground}, Face: labelFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := labelFace.Metrics().Ascent.Ceil()
	descent := labelFace.Metrics().Descent.Ceil()
	px := (l.CanvasWidth - wmsg) / 2
	py := (l.CanvasHeight-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, &image.Uniform{th.MessageBackground}, image.Point{}, draw.Over)
	drawBorder(dst, rect, th.Foreground, 2)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

// drawLabel centres text in r.
func drawLabel(dst *image.RGBA, r image.Rectangle, text string, col color.Color) {
	d := &font.Drawer{Dst: dst, Src: &image.Uniform{col}, Face: labelFace}
	tw := d.MeasureString(text).Ceil()
	ascent := labelFace.Metrics().Ascent.Ceil()
	x := r.Min.X + (r.Dx()-tw)/2
	y := r.Min.Y + (r.Dy()+ascent)/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

func drawBorder(dst *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	u := &image.Uniform{col}
	for i := 0; i < thick; i++ {
		in := r.Inset(i)
		if in.Empty() {
			return
		}
		draw.Draw(dst, image.Rect(in.Min.X, in.Min.Y, in.Max.X, in.Min.Y+1), u, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(in.Min.X, in.Max.Y-1, in.Max.X, in.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(in.Min.X, in.Min.Y, in.Min.X+1, in.Max.Y), u, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(in.Max.X-1, in.Min.Y, in.Max.X, in.Max.Y), u, image.Point{}, draw.Src)
	}
}
