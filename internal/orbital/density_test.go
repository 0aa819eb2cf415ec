package orbital

import (
	"math"
	"testing"

	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/geom"
)

func TestEffectiveBohrRadius(t *testing.T) {
	h, _ := element.ByAtomicNumber(1)
	he, _ := element.ByAtomicNumber(2)

	a1 := EffectiveBohrRadius(h)
	a2 := EffectiveBohrRadius(he)

	if math.Abs(float64(a1)-BohrRadius) > 1e-6 {
		t.Errorf("hydrogen radius should equal a0, got %f", a1)
	}
	if math.Abs(float64(a1)/float64(a2)-2.0) > 1e-4 {
		t.Errorf("helium radius should be half of hydrogen's: %f vs %f", a1, a2)
	}
}

func TestGroundStateDensityPeaksAtOrigin(t *testing.T) {
	h := element.Hydrogen()
	g := GroundState()

	atOrigin := g.ProbabilityDensity(h, geom.Vec3{})
	if math.Abs(float64(atOrigin)-float64(g.MaxDensity(h))) > 1e-3*float64(atOrigin) {
		t.Errorf("1s density at origin %f should equal max density %f", atOrigin, g.MaxDensity(h))
	}

	farther := g.ProbabilityDensity(h, geom.Vec3{X: 1})
	if farther >= atOrigin {
		t.Error("1s density should decay with radius")
	}
	if farther <= 0 {
		t.Error("1s density should stay positive")
	}
}

func Test2sDensityNode(t *testing.T) {
	h := element.Hydrogen()
	o := MustNew(2, 0, 0)
	a := EffectiveBohrRadius(h)

	// The 2s state has a radial node at r = 2a.
	node := o.ProbabilityDensity(h, geom.Vec3{X: 2 * a})
	peak := o.ProbabilityDensity(h, geom.Vec3{})
	if node > peak*1e-5 {
		t.Errorf("expected node at r=2a, density %g", node)
	}
	if peak <= 0 {
		t.Error("2s density at origin should be positive")
	}
}

func TestGaussianFallback(t *testing.T) {
	h := element.Hydrogen()
	o := MustNew(2, 1, 0)

	center := o.ProbabilityDensity(h, geom.Vec3{})
	edge := o.ProbabilityDensity(h, geom.Vec3{X: o.BoundingRadius(h)})
	if center <= 0 {
		t.Error("fallback density should be positive at the origin")
	}
	if edge >= center {
		t.Error("fallback density should decay radially")
	}
	if o.MaxDensity(h) != 1.0 {
		t.Errorf("fallback max density should be the conservative 1.0, got %f", o.MaxDensity(h))
	}
}

func TestBoundingRadius(t *testing.T) {
	h := element.Hydrogen()
	a := float64(EffectiveBohrRadius(h))

	cases := []struct {
		orb  Orbital
		want float64
	}{
		{GroundState(), 4 * a},
		{MustNew(2, 0, 0), 8 * a},
		{MustNew(3, 1, 0), 36 * a},
		{MustNew(4, 2, 1), 64 * a},
	}
	for _, c := range cases {
		got := float64(c.orb.BoundingRadius(h))
		if math.Abs(got-c.want) > 1e-4 {
			t.Errorf("%s bounding radius: got %f, want %f", c.orb, got, c.want)
		}
	}

	// Heavier elements shrink the bounding volume.
	he, _ := element.ByAtomicNumber(2)
	if GroundState().BoundingRadius(he) >= GroundState().BoundingRadius(h) {
		t.Error("bounding radius should shrink with atomic number")
	}
}
