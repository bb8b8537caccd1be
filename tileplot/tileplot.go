// Package tileplot draws rectangular value-colored tiles on a gonum plot.
// It is the fill layer for grid heatmaps where each data point owns a fixed
// cell, such as a periodic-table chart.
package tileplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Tile is one cell, centered at (X, Y) in data coordinates and filled by
// Value through the grid's color map.
type Tile struct {
	X, Y  float64
	Value float64
}

// Grid is a plot.Plotter that fills one rectangle per tile and strokes its
// border. Tiles with a NaN value are not drawn, so their cell stays blank.
type Grid struct {
	tiles []Tile

	// ColorMap supplies fill colors. Its range must be set before the plot
	// is drawn; values outside the range clamp to the nearest end. A nil
	// ColorMap draws border-only tiles.
	ColorMap palette.ColorMap

	// Border is stroked around each tile. A zero-width style disables it.
	Border draw.LineStyle

	// Width and Height are the tile extents in data units.
	Width, Height float64
}

// New returns a Grid over tiles using cm for fills, with 1x1 tiles and a
// 2 point white border.
func New(tiles []Tile, cm palette.ColorMap) *Grid {
	return &Grid{
		tiles:    tiles,
		ColorMap: cm,
		Border: draw.LineStyle{
			Color: color.White,
			Width: vg.Points(2),
		},
		Width:  1,
		Height: 1,
	}
}

// Plot implements plot.Plotter.
func (g *Grid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, t := range g.tiles {
		if math.IsNaN(t.Value) {
			continue
		}
		x0 := trX(t.X - g.Width/2)
		x1 := trX(t.X + g.Width/2)
		y0 := trY(t.Y - g.Height/2)
		y1 := trY(t.Y + g.Height/2)
		pts := []vg.Point{
			{X: x0, Y: y0},
			{X: x0, Y: y1},
			{X: x1, Y: y1},
			{X: x1, Y: y0},
		}
		if fill := g.colorFor(t.Value); fill != nil {
			c.FillPolygon(fill, pts)
		}
		if g.Border.Width > 0 {
			c.StrokeLines(g.Border, append(pts, pts[0]))
		}
	}
}

// DataRange implements plot.DataRanger, covering tile edges rather than
// centers so border cells are not halved.
func (g *Grid) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(g.tiles) == 0 {
		return 0, 1, 0, 1
	}
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, t := range g.tiles {
		xmin = math.Min(xmin, t.X-g.Width/2)
		xmax = math.Max(xmax, t.X+g.Width/2)
		ymin = math.Min(ymin, t.Y-g.Height/2)
		ymax = math.Max(ymax, t.Y+g.Height/2)
	}
	return xmin, xmax, ymin, ymax
}

// colorFor maps a value through the color map, clamping to the range ends.
func (g *Grid) colorFor(v float64) color.Color {
	if g.ColorMap == nil {
		return nil
	}
	if min := g.ColorMap.Min(); v < min {
		v = min
	}
	if max := g.ColorMap.Max(); v > max {
		v = max
	}
	clr, err := g.ColorMap.At(v)
	if err != nil {
		return nil
	}
	return clr
}
