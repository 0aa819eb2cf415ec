package cloud

import "github.com/san-kum/orbitals/internal/geom"

// CloudSample is one point of the visualized cloud. The renderer consumes
// these as opaque vertex data: a position and a scalar weight in [0, 1].
type CloudSample struct {
	Position geom.Vec3
	Weight   float32
}

// SampleConfig controls one sampling call.
type SampleConfig struct {
	Samples int
}

func NewSampleConfig(samples int) SampleConfig {
	return SampleConfig{Samples: samples}
}

// Stats records how the most recent sampling call went. Filled > 0 means
// rejection sampling missed its quota and zero-weight filler points were
// synthesized.
type Stats struct {
	Accepted   int
	Attempts   int
	Expansions int
	Filled     int
	Direct     bool
}

// AcceptanceRate returns accepted/attempts, or zero before any attempt.
func (s Stats) AcceptanceRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Attempts)
}
