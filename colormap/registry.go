package colormap

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// DefaultName is the scale used when a caller does not pick one.
const DefaultName = "YlGnBu"

// Brewer palettes ship with at most this many colors.
const (
	minBrewerCount = 3
	maxBrewerCount = 12
)

// Curated ColorBrewer scales. Any name brewer.GetPalette knows is accepted by
// Lookup; these are the ones Names advertises.
var (
	brewerSequential = []string{
		"Blues", "BuGn", "BuPu", "GnBu", "Greens", "Greys", "OrRd", "Oranges",
		"PuBu", "PuBuGn", "PuRd", "Purples", "RdPu", "Reds", "YlGn", "YlGnBu",
		"YlOrBr", "YlOrRd",
	}
	brewerDiverging = []string{
		"BrBG", "PRGn", "PiYG", "PuOr", "RdBu", "RdGy", "RdYlBu", "RdYlGn",
		"Spectral",
	}
)

// Moreland scales are functions so each Lookup hands out a fresh map with its
// own range. SmoothBlueRed returns the concrete diverging type and needs the
// closure wrapping.
var morelandScales = map[string]func() palette.ColorMap{
	"smooth-blue-red":     func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"coolwarm":            func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"kindlmann":           moreland.Kindlmann,
	"extended-kindlmann":  moreland.ExtendedKindlmann,
	"black-body":          moreland.BlackBody,
	"extended-black-body": moreland.ExtendedBlackBody,
}

// Names returns every advertised scale name, sorted. Brewer names also accept
// an "_r" suffix for the reversed scale.
func Names() []string {
	names := make([]string, 0, len(brewerSequential)+len(brewerDiverging)+len(morelandScales))
	names = append(names, brewerSequential...)
	names = append(names, brewerDiverging...)
	for name := range morelandScales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a scale name to a fresh palette.ColorMap. Moreland names
// are matched first, then ColorBrewer: a Brewer palette is fetched at its
// widest color count and interpolated into a Gradient, and a trailing "_r"
// reverses the stop order.
func Lookup(name string) (palette.ColorMap, error) {
	if build, ok := morelandScales[name]; ok {
		return build(), nil
	}

	base := strings.TrimSuffix(name, "_r")
	colors, err := brewerColors(base)
	if err != nil {
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	if base != name {
		for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
			colors[i], colors[j] = colors[j], colors[i]
		}
	}
	return New(colors...)
}

// brewerColors fetches the widest available variant of a Brewer palette. The
// result is copied so callers may reorder it.
func brewerColors(name string) ([]color.Color, error) {
	for n := maxBrewerCount; n >= minBrewerCount; n-- {
		p, err := brewer.GetPalette(brewer.TypeAny, name, n)
		if err != nil {
			continue
		}
		return append([]color.Color(nil), p.Colors()...), nil
	}
	return nil, fmt.Errorf("no brewer palette %q", name)
}
