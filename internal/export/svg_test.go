package export

import (
	"strings"
	"testing"

	"github.com/san-kum/orbitals/internal/cloud"
	"github.com/san-kum/orbitals/internal/geom"
)

func TestCloudToSVG(t *testing.T) {
	samples := []cloud.CloudSample{
		{Position: geom.Vec3{X: 1, Y: 1}, Weight: 0.8},
		{Position: geom.Vec3{X: -1, Y: -1}, Weight: 0.3},
		{Position: geom.Vec3{X: 0.5, Y: 0}, Weight: 0}, // filler, skipped
	}

	svg := CloudToSVG(samples, 200, 100)
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `width="200" height="100"`) {
		t.Error("missing dimensions")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 circles (filler skipped), got %d", got)
	}
}

func TestCloudToSVGEmpty(t *testing.T) {
	if svg := CloudToSVG(nil, 100, 100); svg != "" {
		t.Errorf("empty cloud should produce empty output, got %q", svg)
	}
}
