package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/example/pixelcanvas/internal/grid"
)

// DefaultLineColor is the color of cell outlines when grid lines are shown.
var DefaultLineColor = color.RGBA{200, 200, 200, 255}

// Options controls how a grid is rasterized.
type Options struct {
	CellWidth  int
	CellHeight int
	ShowGrid   bool
	// LineColor defaults to DefaultLineColor when nil.
	LineColor color.Color
}

// Pixels returns the grid as an image with one pixel per cell.
func Pixels(g *grid.Grid) *image.RGBA {
	rows, cols := g.Dimensions()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	g.Each(func(r, c int, col grid.Color) {
		img.SetRGBA(c, r, color.RGBA{col.R, col.G, col.B, 255})
	})
	return img
}

// Draw paints g into dst with its top-left cell at origin and returns the
// rectangle covered.
func Draw(dst *image.RGBA, origin image.Point, g *grid.Grid, opts Options) image.Rectangle {
	rows, cols := g.Dimensions()
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		return image.Rectangle{Min: origin, Max: origin}
	}
	area := image.Rect(0, 0, cols*opts.CellWidth, rows*opts.CellHeight).Add(origin)
	src := Pixels(g)
	xdraw.NearestNeighbor.Scale(dst, area, src, src.Bounds(), draw.Src, nil)
	if !opts.ShowGrid {
		return area
	}
	line := opts.LineColor
	if line == nil {
		line = DefaultLineColor
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			tl := origin.Add(image.Pt(c*opts.CellWidth, r*opts.CellHeight))
			outline(dst, image.Rectangle{Min: tl, Max: tl.Add(image.Pt(opts.CellWidth, opts.CellHeight))}, line)
		}
	}
	return area
}

// Image rasterizes g at cell pixels per cell.
func Image(g *grid.Grid, cell int, showGrid bool) *image.RGBA {
	if cell < 1 {
		cell = 1
	}
	rows, cols := g.Dimensions()
	img := image.NewRGBA(image.Rect(0, 0, cols*cell, rows*cell))
	Draw(img, image.Point{}, g, Options{CellWidth: cell, CellHeight: cell, ShowGrid: showGrid})
	return img
}

func outline(dst *image.RGBA, r image.Rectangle, col color.Color) {
	u := &image.Uniform{col}
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), u, image.Point{}, draw.Src)
}
