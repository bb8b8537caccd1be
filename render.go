package pthm

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/pthm/element"
	"github.com/banshee-data/pthm/tileplot"
)

var (
	labelGray  = color.Gray{Y: 0x80} // column indexes and period numbers
	labelLight = color.Gray{Y: 0xd3} // tile text on dark fills
)

// Color-scale geometry, in table grid units.
const (
	barCenterX  = 19.7
	barHalfW    = 0.3
	barTopY     = 1.5
	barBottomY  = 9
	barSegments = 64
)

// Plot builds the heatmap figure for one property column of the frame and
// returns it. The returned plot may be adjusted further before Save, which
// writes the most recently built figure.
func (h *HeatMap) Plot(property string) (*plot.Plot, error) {
	values, err := h.propertyValues(property)
	if err != nil {
		return nil, err
	}
	cells := h.mergeCells(values)

	var finite []float64
	for _, c := range cells {
		if c.has {
			finite = append(finite, c.value)
		}
	}
	if len(finite) == 0 {
		return nil, fmt.Errorf("property %q has no finite values to plot", property)
	}

	p, err := h.render(property, cells, finite)
	if err != nil {
		return nil, err
	}
	h.fig = p
	h.state = built
	return p, nil
}

// propertyValues fetches one numeric property column as floats.
func (h *HeatMap) propertyValues(property string) ([]float64, error) {
	if property == ElementColumn || !hasColumn(h.df, property) {
		avail := propertyColumns(h.df)
		if len(avail) == 0 {
			return nil, fmt.Errorf("no property column %q: frame has none", property)
		}
		return nil, fmt.Errorf("no property column %q (have %s)", property, strings.Join(avail, ", "))
	}
	col := h.df.Col(property)
	if col.Err != nil {
		return nil, fmt.Errorf("property column %q: %w", property, col.Err)
	}
	if col.Type() == series.String {
		return nil, fmt.Errorf("property column %q is not numeric", property)
	}
	return col.Float(), nil
}

// cell joins one catalog element with its value for the plotted property.
// Elements the frame does not cover keep has == false and render blank.
type cell struct {
	el    element.Element
	pos   element.GridPos
	value float64
	has   bool
}

func (h *HeatMap) mergeCells(values []float64) []cell {
	all := element.All()
	cells := make([]cell, len(all))
	for i, el := range all {
		c := cell{el: el, pos: element.PosOf(el)}
		if row, ok := h.rowBySym[el.Symbol]; ok {
			// a non-finite cell stays blank even with a default set
			if v := values[row]; isFinite(v) {
				c.value, c.has = v, true
			}
		} else if h.cfg.DefaultValue != nil && isFinite(*h.cfg.DefaultValue) {
			c.value, c.has = *h.cfg.DefaultValue, true
		}
		cells[i] = c
	}
	return cells
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (h *HeatMap) render(property string, cells []cell, finite []float64) (*plot.Plot, error) {
	minV, maxV := floats.Min(finite), floats.Max(finite)
	h.cmap.SetMin(minV)
	if maxV > minV {
		h.cmap.SetMax(maxV)
	} else {
		// zero-width range: park the scale so every tile maps to its low end
		h.cmap.SetMax(minV + 1)
	}

	sorted := append([]float64(nil), finite...)
	sort.Float64s(sorted)
	q75 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)

	p := plot.New()
	p.BackgroundColor = color.White
	p.HideX()
	stylePeriodAxis(&p.Y)

	var tiles []tileplot.Tile
	for _, c := range cells {
		if !c.has {
			continue
		}
		tiles = append(tiles, tileplot.Tile{
			X:     float64(c.pos.Col),
			Y:     float64(c.pos.Row),
			Value: c.value,
		})
	}
	p.Add(tileplot.New(tiles, h.cmap))

	if err := h.addTileLabels(p, cells, q75); err != nil {
		return nil, err
	}
	if err := addColumnIndexes(p); err != nil {
		return nil, err
	}
	title := h.cfg.LegendTitle
	if title == "" {
		title = property
	}
	if err := h.addColorScale(p, title, minV, maxV); err != nil {
		return nil, err
	}

	// Tight limits: the table spans x 0.5..18.5 with the color scale to its
	// right; y keeps a half-row margin under the actinide series.
	p.X.Min, p.X.Max = 0.5, 22.4
	p.X.Padding = 0
	p.Y.Min, p.Y.Max = 0, 10.5
	p.Y.Padding = 0
	return p, nil
}

// stylePeriodAxis reduces the y axis to bare gray period numbers 1..7 with
// period 1 at the top. The axis line and tick marks are hidden, and the
// detached rows carry no number.
func stylePeriodAxis(ax *plot.Axis) {
	ax.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	ax.LineStyle.Width = 0
	ax.Tick.LineStyle.Width = 0
	ax.Tick.Length = 0
	ax.Tick.Label.Color = labelGray
	ax.Tick.Label.Font.Size = vg.Points(9)
	ticks := make(plot.ConstantTicks, 0, 7)
	for period := 1; period <= 7; period++ {
		ticks = append(ticks, plot.Tick{Value: float64(period), Label: strconv.Itoa(period)})
	}
	ax.Tick.Marker = ticks
}

// labelSet gathers anchors and strings for one text layer.
type labelSet struct {
	xys    plotter.XYs
	labels []string
}

func (s *labelSet) add(x, y float64, label string) {
	s.xys = append(s.xys, plotter.XY{X: x, Y: y})
	s.labels = append(s.labels, label)
}

// addLabelLayer adds one configured text layer to the plot. Empty sets are
// skipped. colors must hold one entry per label.
func addLabelLayer(p *plot.Plot, set labelSet, colors []color.Color, size vg.Length, xAlign text.XAlignment, yAlign text.YAlignment) error {
	if len(set.xys) == 0 {
		return nil
	}
	layer, err := plotter.NewLabels(plotter.XYLabels{XYs: set.xys, Labels: set.labels})
	if err != nil {
		return fmt.Errorf("label layer: %w", err)
	}
	for i := range layer.TextStyle {
		sty := &layer.TextStyle[i]
		sty.Font.Size = size
		sty.XAlign = xAlign
		sty.YAlign = yAlign
		sty.Color = colors[i]
	}
	p.Add(layer)
	return nil
}

// addTileLabels overlays element symbols plus the optional atomic-number and
// value annotations. Tiles above the 75th percentile get light text so it
// stays readable on dark fills.
func (h *HeatMap) addTileLabels(p *plot.Plot, cells []cell, q75 float64) error {
	var symbols, numbers, values labelSet
	var symColors, numColors, valColors []color.Color
	for _, c := range cells {
		if !c.has {
			continue
		}
		x, y := float64(c.pos.Col), float64(c.pos.Row)
		clr := valueLabelColor(c.value, q75)
		symbols.add(x, y, c.el.Symbol)
		symColors = append(symColors, clr)
		if h.cfg.showNumbers() {
			// nudged toward the tile's upper left corner
			numbers.add(x-0.3, y-0.3, strconv.Itoa(c.el.Number))
			numColors = append(numColors, clr)
		}
		if h.cfg.showValues() {
			values.add(x, y+0.3, formatValue(c.value))
			valColors = append(valColors, clr)
		}
	}
	if err := addLabelLayer(p, symbols, symColors, vg.Points(14), text.XCenter, text.YCenter); err != nil {
		return err
	}
	if err := addLabelLayer(p, numbers, numColors, vg.Points(7), text.XCenter, text.YCenter); err != nil {
		return err
	}
	return addLabelLayer(p, values, valColors, vg.Points(7), text.XCenter, text.YCenter)
}

// valueLabelColor picks the text color for one tile: black at or below the
// q75 threshold, light gray above it.
func valueLabelColor(v, q75 float64) color.Color {
	if v > q75 {
		return labelLight
	}
	return color.Black
}

// addColumnIndexes writes the 1..18 column numbers just above the topmost
// occupied cell of each main-table column.
func addColumnIndexes(p *plot.Plot) error {
	var set labelSet
	var colors []color.Color
	for col := 1; col <= element.Columns; col++ {
		top := element.TopOccupiedRow(col)
		if top == 0 {
			continue
		}
		set.add(float64(col), float64(top)-0.525, strconv.Itoa(col))
		colors = append(colors, labelGray)
	}
	return addLabelLayer(p, set, colors, vg.Points(9), text.XCenter, text.YBottom)
}

// addColorScale draws the value scale to the right of the table: a vertical
// gradient strip sampled from the active color map, readings at both ends
// and the midpoint, and a title above.
func (h *HeatMap) addColorScale(p *plot.Plot, title string, minV, maxV float64) error {
	tiles := make([]tileplot.Tile, barSegments)
	segH := (barBottomY - barTopY) / barSegments
	for i := range tiles {
		frac := (float64(i) + 0.5) / barSegments
		tiles[i] = tileplot.Tile{
			X: barCenterX,
			// low values sit at the strip's bottom
			Y:     barBottomY - (float64(i)+0.5)*segH,
			Value: minV + (maxV-minV)*frac,
		}
	}
	strip := tileplot.New(tiles, h.cmap)
	strip.Width = 2 * barHalfW
	strip.Height = segH * 1.1 // slight overlap hides segment seams
	strip.Border = draw.LineStyle{}
	p.Add(strip)

	var readings labelSet
	var readColors []color.Color
	for _, tick := range []struct{ y, v float64 }{
		{barBottomY, minV},
		{(barTopY + barBottomY) / 2, (minV + maxV) / 2},
		{barTopY, maxV},
	} {
		readings.add(barCenterX+barHalfW+0.2, tick.y, formatValue(tick.v))
		readColors = append(readColors, color.Black)
	}
	if err := addLabelLayer(p, readings, readColors, vg.Points(9), text.XLeft, text.YCenter); err != nil {
		return err
	}

	var head labelSet
	head.add(barCenterX-barHalfW, barTopY-0.4, title)
	return addLabelLayer(p, head, []color.Color{color.Black}, vg.Points(12), text.XLeft, text.YBottom)
}

// formatValue renders a property value the shortest way that round-trips.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
