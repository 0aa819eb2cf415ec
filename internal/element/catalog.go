// Package element holds the static catalog of chemical elements known to the
// visualizer. The catalog is built once at startup and only ever read.
package element

import "strings"

// Element describes one catalog entry. Values are immutable.
type Element struct {
	AtomicNumber         int
	Symbol               string
	Name                 string
	StandardAtomicWeight float32
	DefaultNeutrons      int
}

var catalog = []Element{
	{1, "H", "Hydrogen", 1.008, 0},
	{2, "He", "Helium", 4.0026, 2},
	{3, "Li", "Lithium", 6.94, 4},
	{4, "Be", "Beryllium", 9.0122, 5},
	{5, "B", "Boron", 10.81, 6},
	{6, "C", "Carbon", 12.011, 6},
	{7, "N", "Nitrogen", 14.007, 7},
	{8, "O", "Oxygen", 15.999, 8},
	{9, "F", "Fluorine", 18.998, 10},
	{10, "Ne", "Neon", 20.180, 10},
}

// Hydrogen returns the first catalog entry.
func Hydrogen() Element {
	return catalog[0]
}

// ByAtomicNumber looks up an element by Z. The second return value is false
// when Z is not cataloged.
func ByAtomicNumber(z int) (Element, bool) {
	for _, el := range catalog {
		if el.AtomicNumber == z {
			return el, true
		}
	}
	return Element{}, false
}

// BySymbol looks up an element by its symbol, case-insensitively.
func BySymbol(symbol string) (Element, bool) {
	for _, el := range catalog {
		if strings.EqualFold(el.Symbol, symbol) {
			return el, true
		}
	}
	return Element{}, false
}

// All returns the catalog ordered by atomic number. The returned slice is a
// copy and safe to modify.
func All() []Element {
	out := make([]Element, len(catalog))
	copy(out, catalog)
	return out
}

// DefaultNeutronCount returns the neutron count used when building a nucleus
// for this element without an explicit override.
func (e Element) DefaultNeutronCount() int {
	return e.DefaultNeutrons
}
