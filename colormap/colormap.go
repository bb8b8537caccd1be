// Package colormap maps scalar values onto colors for heatmap fills. It
// provides a piecewise-linear Gradient over a list of color stops and a
// registry of named scales backed by the ColorBrewer and Moreland palettes
// shipped with gonum/plot.
package colormap

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// Gradient is a palette.ColorMap that interpolates linearly, channel by
// channel, between evenly spaced color stops. The zero value is not usable;
// construct one with New or FromHex.
type Gradient struct {
	stops    []color.Color
	min, max float64
	alpha    float64
}

// New returns a Gradient over the given stops with range [0, 1]. At least two
// stops are required.
func New(stops ...color.Color) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("gradient needs at least 2 color stops, got %d", len(stops))
	}
	return &Gradient{stops: stops, max: 1, alpha: 1}, nil
}

// FromHex builds a Gradient from "#RRGGBB" (or "#RGB") stop strings.
func FromHex(stops ...string) (*Gradient, error) {
	colors := make([]color.Color, len(stops))
	for i, s := range stops {
		c, err := parseHex(s)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return New(colors...)
}

// At returns the color for v within [Min, Max]. Values outside the range
// return palette.ErrUnderflow or palette.ErrOverflow, and NaN returns
// palette.ErrNaN. When Min == Max every in-range value maps to the first
// stop.
func (g *Gradient) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < g.min:
		return nil, palette.ErrUnderflow
	case v > g.max:
		return nil, palette.ErrOverflow
	}
	t := 0.0
	if g.max > g.min {
		t = (v - g.min) / (g.max - g.min)
	}
	return g.interpolate(t), nil
}

// Min returns the lower end of the mapped range.
func (g *Gradient) Min() float64 { return g.min }

// Max returns the upper end of the mapped range.
func (g *Gradient) Max() float64 { return g.max }

// SetMin sets the lower end of the mapped range.
func (g *Gradient) SetMin(v float64) { g.min = v }

// SetMax sets the upper end of the mapped range.
func (g *Gradient) SetMax(v float64) { g.max = v }

// Alpha returns the opacity of the colors the gradient hands out, in [0, 1].
func (g *Gradient) Alpha() float64 { return g.alpha }

// SetAlpha sets the opacity of the colors the gradient hands out. Zero is
// fully transparent and one fully opaque; SetAlpha panics outside [0, 1].
func (g *Gradient) SetAlpha(alpha float64) {
	if alpha < 0 || alpha > 1 {
		panic("colormap: alpha out of range")
	}
	g.alpha = alpha
}

// Palette returns n evenly spaced colors sampled across the gradient.
func (g *Gradient) Palette(n int) palette.Palette {
	if n < 1 {
		return sampled(nil)
	}
	out := make([]color.Color, n)
	for i := range out {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = g.interpolate(t)
	}
	return sampled(out)
}

// interpolate maps t in [0, 1] across the stop list and applies the
// gradient's opacity.
func (g *Gradient) interpolate(t float64) color.Color {
	last := len(g.stops) - 1
	var c color.Color
	switch {
	case t <= 0:
		c = g.stops[0]
	case t >= 1:
		c = g.stops[last]
	default:
		f := t * float64(last)
		i := int(f)
		c = lerp(g.stops[i], g.stops[i+1], f-float64(i))
	}
	return g.shade(c)
}

// shade scales all four channels by the gradient's opacity.
func (g *Gradient) shade(c color.Color) color.Color {
	if g.alpha == 1 {
		return c
	}
	r, gr, b, a := c.RGBA()
	scale := func(x uint32) uint8 {
		return uint8(float64(x) * g.alpha / 257)
	}
	return color.RGBA{R: scale(r), G: scale(gr), B: scale(b), A: scale(a)}
}

// lerp blends a toward b by t in [0, 1] in RGBA space.
func lerp(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint8 {
		// channels are 16 bit; 257 scales back to 8
		return uint8((float64(x)*(1-t) + float64(y)*t) / 257)
	}
	return color.RGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}

type sampled []color.Color

func (s sampled) Colors() []color.Color { return s }

// parseHex reads a "#RRGGBB" or "#RGB" color string.
func parseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if len(s) == 0 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	bad := false
	hexToByte := func(b byte) byte {
		switch {
		case b >= '0' && b <= '9':
			return b - '0'
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10
		}
		bad = true
		return 0
	}
	switch len(s) {
	case 7:
		c.R = hexToByte(s[1])<<4 + hexToByte(s[2])
		c.G = hexToByte(s[3])<<4 + hexToByte(s[4])
		c.B = hexToByte(s[5])<<4 + hexToByte(s[6])
	case 4:
		c.R = hexToByte(s[1]) * 0x11
		c.G = hexToByte(s[2]) * 0x11
		c.B = hexToByte(s[3]) * 0x11
	default:
		bad = true
	}
	if bad {
		return color.RGBA{A: 0xff}, fmt.Errorf("invalid hex color %q", s)
	}
	return c, nil
}
