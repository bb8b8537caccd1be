// Package element carries the fixed catalog of the 118 known chemical
// elements and their placement on the conventional 18-column periodic-table
// display grid, including the detached lanthanide and actinide rows.
package element

import "strings"

// Element describes one chemical element. Group and Period follow the
// chemistry convention, so every lanthanide and actinide carries group 3;
// where an element renders on the display grid is decided by PosOf.
type Element struct {
	Symbol     string
	Name       string
	Number     int
	AtomicMass float64
	Group      int
	Period     int
}

var (
	bySymbol = make(map[string]int, len(catalog))
	byName   = make(map[string]int, len(catalog))
)

func init() {
	for i, e := range catalog {
		bySymbol[e.Symbol] = i
		byName[strings.ToLower(e.Name)] = i
	}
}

// All returns the full catalog in atomic-number order.
func All() []Element {
	out := make([]Element, len(catalog))
	copy(out, catalog[:])
	return out
}

// FromSymbol looks up an element by chemical symbol. Symbols are matched
// exactly, so "fe" does not find iron.
func FromSymbol(symbol string) (Element, bool) {
	i, ok := bySymbol[symbol]
	if !ok {
		return Element{}, false
	}
	return catalog[i], true
}

// FromName looks up an element by its English name, case-insensitively.
func FromName(name string) (Element, bool) {
	i, ok := byName[strings.ToLower(name)]
	if !ok {
		return Element{}, false
	}
	return catalog[i], true
}

// FromNumber looks up an element by atomic number.
func FromNumber(z int) (Element, bool) {
	if z < 1 || z > len(catalog) {
		return Element{}, false
	}
	return catalog[z-1], true
}

// Resolve matches a free-form identifier the way heatmap input is matched:
// first as a symbol, then as a name.
func Resolve(identifier string) (Element, bool) {
	if e, ok := FromSymbol(identifier); ok {
		return e, true
	}
	return FromName(identifier)
}
