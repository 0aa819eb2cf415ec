package atom

import (
	"math"
	"testing"
)

func TestBuildEmpty(t *testing.T) {
	n := NewNucleusBuilder(0, 0).Build()
	if n.ProtonCount() != 0 || n.NeutronCount() != 0 {
		t.Errorf("empty builder should yield empty nucleus, got %dp %dn", n.ProtonCount(), n.NeutronCount())
	}
	if n.TotalMass() != 0 {
		t.Errorf("empty nucleus should have zero mass, got %f", n.TotalMass())
	}
}

func TestBuildSingleParticleAtOrigin(t *testing.T) {
	n := NewNucleusBuilder(1, 0).Build()
	if n.ProtonCount() != 1 {
		t.Fatalf("expected 1 proton, got %d", n.ProtonCount())
	}
	p := n.Protons[0].Position
	if p.Length() != 0 {
		t.Errorf("single proton should sit at the origin, got %v", p)
	}
}

func TestBuildCounts(t *testing.T) {
	n := NewNucleusBuilder(6, 6).Build()
	if n.ProtonCount() != 6 {
		t.Errorf("expected 6 protons, got %d", n.ProtonCount())
	}
	if n.NeutronCount() != 6 {
		t.Errorf("expected 6 neutrons, got %d", n.NeutronCount())
	}

	want := 6*ProtonMassAMU + 6*NeutronMassAMU
	if math.Abs(float64(n.TotalMass())-want) > 1e-4 {
		t.Errorf("total mass: got %f, want %f", n.TotalMass(), want)
	}
}

func TestProtonsInsideNeutronShell(t *testing.T) {
	n := NewNucleusBuilder(4, 4).Build()

	base := nuclearRadius(8)
	for _, p := range n.Protons {
		r := p.Position.Length()
		if math.Abs(float64(r)-float64(base)*0.6) > 1e-5 {
			t.Errorf("proton radius %f, want %f", r, base*0.6)
		}
	}
	for _, nn := range n.Neutrons {
		r := nn.Position.Length()
		if math.Abs(float64(r)-float64(base)) > 1e-5 {
			t.Errorf("neutron radius %f, want %f", r, base)
		}
	}
}

func TestFibonacciSphereSpread(t *testing.T) {
	points := fibonacciSphere(50, 1.0)
	if len(points) != 50 {
		t.Fatalf("expected 50 points, got %d", len(points))
	}
	// Golden-angle placement never stacks two points.
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].Sub(points[j]).Length() < 1e-4 {
				t.Fatalf("points %d and %d coincide", i, j)
			}
		}
	}
}
