// Package atom models the logical simulation state: one element, its
// deterministically built nucleus, and the electrons bound to the currently
// visualized orbital.
package atom

import (
	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/orbital"
)

// Electron is a placeholder particle bound to an orbital. Electrons carry no
// individual state beyond the orbital they share.
type Electron struct {
	orbital orbital.Orbital
}

func NewElectron(o orbital.Orbital) Electron {
	return Electron{orbital: o}
}

func (e Electron) Orbital() orbital.Orbital {
	return e.orbital
}

// Atom aggregates an element, its nucleus and electrons, and the active
// orbital. All electrons occupy the same visualized orbital slot; the model
// does not populate shells individually.
type Atom struct {
	element       element.Element
	nucleus       Nucleus
	electrons     []Electron
	activeOrbital orbital.Orbital
}

// New builds an atom for the element: the nucleus is generated from scratch
// and the active orbital resets to the ground state. Changing element means
// constructing a new Atom.
func New(el element.Element) *Atom {
	active := orbital.GroundState()

	electrons := make([]Electron, el.AtomicNumber)
	for i := range electrons {
		electrons[i] = NewElectron(active)
	}

	nucleus := NewNucleusBuilder(el.AtomicNumber, el.DefaultNeutronCount()).Build()

	return &Atom{
		element:       el,
		nucleus:       nucleus,
		electrons:     electrons,
		activeOrbital: active,
	}
}

func (a *Atom) Element() element.Element {
	return a.element
}

func (a *Atom) Nucleus() *Nucleus {
	return &a.nucleus
}

func (a *Atom) Electrons() []Electron {
	return a.electrons
}

func (a *Atom) ActiveOrbital() orbital.Orbital {
	return a.activeOrbital
}

// SetActiveOrbital switches the visualized orbital and rebinds every
// electron to it.
func (a *Atom) SetActiveOrbital(o orbital.Orbital) {
	a.activeOrbital = o
	for i := range a.electrons {
		a.electrons[i] = NewElectron(o)
	}
}
