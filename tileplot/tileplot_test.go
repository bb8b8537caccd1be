package tileplot

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"

	"github.com/banshee-data/pthm/colormap"
)

func testMap(t *testing.T) *colormap.Gradient {
	t.Helper()
	g, err := colormap.New(color.Black, color.White)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDataRangeCoversTileEdges(t *testing.T) {
	g := New([]Tile{
		{X: 1, Y: 1, Value: 0},
		{X: 18, Y: 10, Value: 1},
	}, testMap(t))

	xmin, xmax, ymin, ymax := g.DataRange()
	if xmin != 0.5 || xmax != 18.5 || ymin != 0.5 || ymax != 10.5 {
		t.Errorf("DataRange = (%v, %v, %v, %v), want (0.5, 18.5, 0.5, 10.5)",
			xmin, xmax, ymin, ymax)
	}
}

func TestDataRangeEmpty(t *testing.T) {
	g := New(nil, testMap(t))
	xmin, xmax, ymin, ymax := g.DataRange()
	if xmin != 0 || xmax != 1 || ymin != 0 || ymax != 1 {
		t.Errorf("DataRange on no tiles = (%v, %v, %v, %v)", xmin, xmax, ymin, ymax)
	}
}

func TestColorForClamps(t *testing.T) {
	cm := testMap(t)
	cm.SetMin(0)
	cm.SetMax(10)
	g := New(nil, cm)

	low, err := cm.At(0)
	if err != nil {
		t.Fatal(err)
	}
	high, err := cm.At(10)
	if err != nil {
		t.Fatal(err)
	}

	if got := g.colorFor(-5); got != low {
		t.Errorf("colorFor below range = %v, want %v", got, low)
	}
	if got := g.colorFor(15); got != high {
		t.Errorf("colorFor above range = %v, want %v", got, high)
	}
	if got := g.colorFor(math.NaN()); got != nil {
		t.Errorf("colorFor(NaN) = %v, want nil", got)
	}
}

func TestColorForNilMap(t *testing.T) {
	g := New([]Tile{{X: 1, Y: 1, Value: 3}}, nil)
	if got := g.colorFor(3); got != nil {
		t.Errorf("colorFor with nil map = %v, want nil", got)
	}
}

func TestGridRenders(t *testing.T) {
	cm := testMap(t)
	cm.SetMin(0)
	cm.SetMax(2)
	g := New([]Tile{
		{X: 1, Y: 1, Value: 0},
		{X: 2, Y: 1, Value: 2},
		{X: 3, Y: 1, Value: math.NaN()}, // must render as a blank cell, not crash
	}, cm)

	p := plot.New()
	p.Add(g)

	out := filepath.Join(t.TempDir(), "tiles.png")
	if err := p.Save(300, 100, out); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("saved plot is empty")
	}
}
