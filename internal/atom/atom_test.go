package atom

import (
	"testing"

	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/orbital"
)

func TestNewAtom(t *testing.T) {
	he, _ := element.ByAtomicNumber(2)
	a := New(he)

	if len(a.Electrons()) != 2 {
		t.Errorf("helium should carry 2 electrons, got %d", len(a.Electrons()))
	}
	if a.Nucleus().ProtonCount() != 2 {
		t.Errorf("helium nucleus should have 2 protons, got %d", a.Nucleus().ProtonCount())
	}
	if a.Nucleus().NeutronCount() != he.DefaultNeutronCount() {
		t.Errorf("expected default neutron count %d, got %d", he.DefaultNeutronCount(), a.Nucleus().NeutronCount())
	}
	if !a.ActiveOrbital().IsGround() {
		t.Error("new atom should start in the ground state")
	}
}

func TestSetActiveOrbital(t *testing.T) {
	c, _ := element.BySymbol("C")
	a := New(c)

	orb := orbital.MustNew(2, 1, 0)
	a.SetActiveOrbital(orb)

	if a.ActiveOrbital() != orb {
		t.Errorf("active orbital not updated: %v", a.ActiveOrbital())
	}
	for i, e := range a.Electrons() {
		if e.Orbital() != orb {
			t.Errorf("electron %d still bound to %v", i, e.Orbital())
		}
	}
}
