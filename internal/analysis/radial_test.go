package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/orbitals/internal/cloud"
	"github.com/san-kum/orbitals/internal/geom"
)

func cloudAt(radii ...float32) []cloud.CloudSample {
	samples := make([]cloud.CloudSample, len(radii))
	for i, r := range radii {
		samples[i] = cloud.CloudSample{Position: geom.Vec3{X: r}, Weight: 0.5}
	}
	return samples
}

func TestMeanRadius(t *testing.T) {
	samples := cloudAt(1, 3)
	if got := MeanRadius(samples); math.Abs(got-2.0) > 1e-6 {
		t.Errorf("mean radius: got %f, want 2", got)
	}
	if MeanRadius(nil) != 0 {
		t.Error("empty cloud should have zero mean radius")
	}
}

func TestRMSRadius(t *testing.T) {
	samples := cloudAt(1, 3)
	want := math.Sqrt((1.0 + 9.0) / 2.0)
	if got := RMSRadius(samples); math.Abs(got-want) > 1e-6 {
		t.Errorf("rms radius: got %f, want %f", got, want)
	}
}

func TestMeanWeight(t *testing.T) {
	samples := cloudAt(1, 2, 3)
	if got := MeanWeight(samples); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("mean weight: got %f, want 0.5", got)
	}
}

func TestRadialProfile(t *testing.T) {
	samples := cloudAt(0.5, 1.5, 1.6, 3.9)
	counts, width := RadialProfile(samples, 4)

	if len(counts) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(counts))
	}
	if math.Abs(width-3.9/4.0) > 1e-5 {
		t.Errorf("bin width: got %f", width)
	}

	total := 0.0
	for _, c := range counts {
		total += c
	}
	if total != 4 {
		t.Errorf("profile should count every sample, got %f", total)
	}
	// The largest radius lands in the last bin.
	if counts[3] < 1 {
		t.Error("max-radius sample missing from last bin")
	}
}

func TestRadialProfileDegenerate(t *testing.T) {
	if counts, _ := RadialProfile(nil, 10); counts != nil {
		t.Error("empty cloud should produce no profile")
	}

	// All samples at the origin collapse into the first bin.
	counts, width := RadialProfile(cloudAt(0, 0, 0), 5)
	if width != 0 {
		t.Errorf("degenerate width should be 0, got %f", width)
	}
	if counts[0] != 3 {
		t.Errorf("all samples should land in bin 0, got %v", counts)
	}
}
