package orbital

import (
	"math"

	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/geom"
)

// BohrRadius is the physical Bohr radius a0 in Angstroms.
const BohrRadius = 0.52917721067

// EffectiveBohrRadius returns a0 / Z, the characteristic length scale of the
// orbital. Dividing by the atomic number approximates nuclear charge
// screening for elements heavier than hydrogen.
func EffectiveBohrRadius(el element.Element) float32 {
	z := float64(el.AtomicNumber)
	if z < 1 {
		z = 1
	}
	return float32(BohrRadius / z)
}

// ProbabilityDensity evaluates |psi|^2 at the given position.
//
// The 1s and 2s states use the exact hydrogenic densities. Every other
// (n, l, m) substitutes a normalized radially symmetric Gaussian with
// sigma = BoundingRadius/3 — a documented approximation with no angular
// dependence and no radial nodes.
func (o Orbital) ProbabilityDensity(el element.Element, position geom.Vec3) float32 {
	r := float64(position.Length())
	a := float64(EffectiveBohrRadius(el))

	switch {
	case o.N == 1 && o.L == 0 && o.M == 0:
		norm := 1.0 / (math.Pi * a * a * a)
		return float32(norm * math.Exp(-2.0*r/a))
	case o.N == 2 && o.L == 0 && o.M == 0:
		norm := 1.0 / (32.0 * math.Pi * a * a * a)
		factor := 2.0 - r/a
		return float32(norm * math.Exp(-r/a) * factor * factor)
	default:
		sigma := float64(o.BoundingRadius(el)) / 3.0
		return float32(radialGaussian(r, sigma))
	}
}

// MaxDensity returns an upper bound on ProbabilityDensity, used to normalize
// rejection sampling. Exact for 1s/2s; the Gaussian fallback reports a
// conservative 1.0.
func (o Orbital) MaxDensity(el element.Element) float32 {
	a := float64(EffectiveBohrRadius(el))
	switch {
	case o.N == 1 && o.L == 0:
		return float32(1.0 / (math.Pi * a * a * a))
	case o.N == 2 && o.L == 0:
		return float32(1.0 / (32.0 * math.Pi * a * a * a))
	default:
		return 1.0
	}
}

// BoundingRadius returns a radius capturing the bulk of the orbital's
// probability mass. It sizes the rejection-sampling volume.
func (o Orbital) BoundingRadius(el element.Element) float32 {
	a := EffectiveBohrRadius(el)
	switch o.N {
	case 1:
		return 4 * a
	case 2:
		return 8 * a
	default:
		return float32(o.N*o.N) * 4 * a
	}
}

// radialGaussian is the density of an isotropic 3-D Gaussian, normalized to
// integrate to one.
func radialGaussian(r, sigma float64) float64 {
	sigma2 := sigma * sigma
	norm := 1.0 / (math.Pow(2.0*math.Pi, 1.5) * sigma * sigma2)
	return norm * math.Exp(-0.5*r*r/sigma2)
}
