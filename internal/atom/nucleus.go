package atom

import (
	"math"

	"github.com/san-kum/orbitals/internal/geom"
)

// Nucleon masses in atomic mass units.
const (
	ProtonMassAMU  = 1.007276
	NeutronMassAMU = 1.008665
)

// Proton is a positively charged nucleon at a fixed visualization position.
type Proton struct {
	Position geom.Vec3
}

// Neutron is an uncharged nucleon at a fixed visualization position.
type Neutron struct {
	Position geom.Vec3
}

// Nucleus holds the deterministically placed nucleons of one atom.
type Nucleus struct {
	Protons  []Proton
	Neutrons []Neutron
}

func (n *Nucleus) ProtonCount() int {
	return len(n.Protons)
}

func (n *Nucleus) NeutronCount() int {
	return len(n.Neutrons)
}

// TotalMass returns the summed nucleon mass in amu.
func (n *Nucleus) TotalMass() float32 {
	return float32(n.ProtonCount())*ProtonMassAMU + float32(n.NeutronCount())*NeutronMassAMU
}

// NucleusBuilder places nucleons on concentric Fibonacci-lattice spheres.
// Placement is purely geometric; no dynamics are simulated.
type NucleusBuilder struct {
	protonCount  int
	neutronCount int
}

func NewNucleusBuilder(protonCount, neutronCount int) *NucleusBuilder {
	return &NucleusBuilder{
		protonCount:  protonCount,
		neutronCount: neutronCount,
	}
}

// Build generates the nucleus. Protons sit on a sphere at 0.6x the base
// radius, neutrons on the base radius itself.
func (b *NucleusBuilder) Build() Nucleus {
	total := b.protonCount + b.neutronCount
	if total < 1 {
		total = 1
	}
	base := nuclearRadius(float64(total))

	protonPositions := fibonacciSphere(b.protonCount, base*0.6)
	neutronPositions := fibonacciSphere(b.neutronCount, base)

	protons := make([]Proton, len(protonPositions))
	for i, p := range protonPositions {
		protons[i] = Proton{Position: p}
	}
	neutrons := make([]Neutron, len(neutronPositions))
	for i, p := range neutronPositions {
		neutrons[i] = Neutron{Position: p}
	}

	return Nucleus{Protons: protons, Neutrons: neutrons}
}

// nuclearRadius applies the empirical law r = r0 * A^(1/3), scaled down into
// visualization units.
func nuclearRadius(massNumber float64) float32 {
	const r0 = 1.2
	return float32(r0 * math.Cbrt(massNumber) * 0.01)
}

// fibonacciSphere distributes count points evenly on a sphere using the
// golden-angle spiral. A single point lands on the origin.
func fibonacciSphere(count int, radius float32) []geom.Vec3 {
	if count == 0 {
		return nil
	}
	if count == 1 {
		return []geom.Vec3{{}}
	}

	goldenAngle := math.Pi * (3.0 - math.Sqrt(5.0))
	points := make([]geom.Vec3, 0, count)

	for i := 0; i < count; i++ {
		y := 1.0 - 2.0*(float64(i)+0.5)/float64(count)
		radialXZ := math.Sqrt(math.Max(0, 1.0-y*y))
		theta := goldenAngle * float64(i)
		p := geom.Vec3{
			X: float32(radialXZ * math.Cos(theta)),
			Y: float32(y),
			Z: float32(radialXZ * math.Sin(theta)),
		}
		points = append(points, p.Scale(radius))
	}

	return points
}
