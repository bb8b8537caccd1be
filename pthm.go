// Package pthm renders periodic-table heatmaps. Every element becomes a tile
// at its conventional spot on the 18-column grid, with the lanthanide and
// actinide series detached below the main table, and tiles are filled by a
// continuous color scale over a caller-supplied numeric property.
//
// Input is a gota dataframe with one identifier column named "element"
// (symbols like "Fe" or names like "iron") and any number of numeric
// property columns:
//
//	df := dataframe.New(
//		series.New([]string{"H", "He"}, series.String, "element"),
//		series.New([]float64{25, 120}, series.Float, "atomic_radius"),
//	)
//	hm, err := pthm.New(df, pthm.Config{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if _, err := hm.Plot("atomic_radius"); err != nil {
//		log.Fatal(err)
//	}
//	if err := hm.Save("radius.pdf"); err != nil {
//		log.Fatal(err)
//	}
//
// Identifiers that match no known element are skipped with a warning through
// Logf. Elements the frame does not cover render as blank cells unless
// Config.DefaultValue fills them in.
package pthm

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/pthm/colormap"
	"github.com/banshee-data/pthm/element"
)

// ElementColumn is the identifier column every property frame must carry.
const ElementColumn = "element"

// ErrNotPlotted is returned by Save before any figure has been built.
var ErrNotPlotted = errors.New("no figure built: call Plot before Save")

// Logf is the package warning logger, used for skipped identifiers while
// constructing a HeatMap. It defaults to log.Printf.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil silences it.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Config adjusts how a HeatMap renders. The zero value is ready to use:
// YlGnBu colors, number and value overlays on, a 12x6 inch figure.
type Config struct {
	// Colormap names the fill scale, resolved by colormap.Lookup. Empty
	// selects colormap.DefaultName.
	Colormap string

	// DefaultValue, when set, is assigned to every element the frame does
	// not mention, so the whole table gets tiles. Elements present in the
	// frame with a NaN value stay blank regardless.
	DefaultValue *float64

	// ShowNumbers toggles the atomic-number overlay. Defaults to true.
	ShowNumbers *bool

	// ShowValues toggles the property-value overlay. Defaults to true.
	ShowValues *bool

	// LegendTitle overrides the color-scale title. Empty uses the property
	// column name passed to Plot.
	LegendTitle string

	// Width and Height set the figure size for Save. Zero means 12x6 inches.
	Width  vg.Length
	Height vg.Length
}

func (c Config) colormapName() string {
	if c.Colormap == "" {
		return colormap.DefaultName
	}
	return c.Colormap
}

func (c Config) showNumbers() bool {
	if c.ShowNumbers == nil {
		return true
	}
	return *c.ShowNumbers
}

func (c Config) showValues() bool {
	if c.ShowValues == nil {
		return true
	}
	return *c.ShowValues
}

func (c Config) figWidth() vg.Length {
	if c.Width <= 0 {
		return 12 * vg.Inch
	}
	return c.Width
}

func (c Config) figHeight() vg.Length {
	if c.Height <= 0 {
		return 6 * vg.Inch
	}
	return c.Height
}

// lifecycle tracks whether a figure exists to save.
type lifecycle int

const (
	unbuilt lifecycle = iota
	built
)

// HeatMap builds periodic-table heatmap figures from one property frame. The
// frame is resolved against the element catalog once, at construction; Plot
// may then be called for each of its property columns. A HeatMap is not safe
// for concurrent use.
type HeatMap struct {
	cfg  Config
	df   dataframe.DataFrame
	cmap palette.ColorMap

	// rowBySym maps an element symbol to the frame row that describes it.
	// Unknown identifiers are dropped here; of duplicates the last row wins.
	rowBySym map[string]int

	state lifecycle
	fig   *plot.Plot
}

// New validates the property frame, resolves its identifier column, and
// returns a heatmap ready to plot. Identifiers that match no element are
// skipped with one warning each.
func New(df dataframe.DataFrame, cfg Config) (*HeatMap, error) {
	if err := df.Error(); err != nil {
		return nil, fmt.Errorf("property frame: %w", err)
	}
	if !hasColumn(df, ElementColumn) {
		return nil, fmt.Errorf("property frame has no %q column", ElementColumn)
	}
	cmap, err := colormap.Lookup(cfg.colormapName())
	if err != nil {
		return nil, err
	}

	ids := df.Col(ElementColumn).Records()
	rowBySym := make(map[string]int, len(ids))
	for i, id := range ids {
		el, ok := element.Resolve(id)
		if !ok {
			Logf("skipping unknown element identifier %q (row %d)", id, i)
			continue
		}
		if prev, dup := rowBySym[el.Symbol]; dup {
			Logf("duplicate rows for element %q: keeping row %d over row %d", el.Symbol, i, prev)
		}
		rowBySym[el.Symbol] = i
	}

	return &HeatMap{cfg: cfg, df: df, cmap: cmap, rowBySym: rowBySym}, nil
}

// Plotted reports whether a figure has been built, meaning Save will work.
func (h *HeatMap) Plotted() bool { return h.state == built }

// Save writes the last built figure to path, sized per Config. The image
// format follows the path extension (.png, .pdf, .svg, .eps, .jpg, .tif or
// .tex). Save fails with ErrNotPlotted until Plot has succeeded.
func (h *HeatMap) Save(path string) error {
	if h.state != built {
		return ErrNotPlotted
	}
	if err := h.fig.Save(h.cfg.figWidth(), h.cfg.figHeight(), path); err != nil {
		return fmt.Errorf("save heatmap: %w", err)
	}
	return nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// propertyColumns lists every column other than the identifier column.
func propertyColumns(df dataframe.DataFrame) []string {
	var cols []string
	for _, n := range df.Names() {
		if n != ElementColumn {
			cols = append(cols, n)
		}
	}
	return cols
}
