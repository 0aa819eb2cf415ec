package cloud

import (
	"log"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/geom"
	"github.com/san-kum/orbitals/internal/orbital"
)

// DefaultSeed makes repeated runs with unchanged inputs reproducible.
const DefaultSeed uint64 = 42

// minDensityFloor guards the weight division when a density model reports a
// vanishing maximum.
const minDensityFloor = 1e-6

// Sampler draws weighted cloud points whose spatial distribution follows an
// orbital's probability density. The owned generator is the only mutable
// state; it advances monotonically on every call regardless of outcome.
type Sampler struct {
	rng   *rand.Rand
	stats Stats
}

// NewSampler returns a sampler seeded with DefaultSeed.
func NewSampler() *Sampler {
	return NewSamplerWithSeed(DefaultSeed)
}

// NewSamplerWithSeed returns a deterministic sampler for the given seed.
func NewSamplerWithSeed(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// LastStats returns diagnostics for the most recent SampleOrbital call.
func (s *Sampler) LastStats() Stats {
	return s.stats
}

// SampleOrbital produces exactly cfg.Samples cloud points for the orbital.
// A zero sample count yields an empty result. The call never fails: if the
// rejection path cannot fill its quota the remainder is zero-weight filler.
func (s *Sampler) SampleOrbital(el element.Element, orb orbital.Orbital, cfg SampleConfig) []CloudSample {
	s.stats = Stats{}
	if cfg.Samples <= 0 {
		return nil
	}

	if samples, ok := s.sampleGroundDirect(el, orb, cfg); ok {
		return samples
	}
	return s.sampleRejection(el, orb, cfg)
}

// sampleGroundDirect is the 1s fast path. The 1s radial probability
// r^2*exp(-2r/a) is a Gamma(3, a/2) density, so the radius can be drawn
// directly and paired with a uniform direction; no candidates are rejected.
// Returns ok=false for non-ground orbitals or when the Gamma scale is not a
// positive finite number, in which case the caller falls back to rejection.
func (s *Sampler) sampleGroundDirect(el element.Element, orb orbital.Orbital, cfg SampleConfig) ([]CloudSample, bool) {
	if !orb.IsGround() {
		return nil, false
	}

	scale := float64(orbital.EffectiveBohrRadius(el)) / 2.0
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, false
	}

	gamma := distuv.Gamma{Alpha: 3.0, Beta: 1.0 / scale, Src: s.rng}
	maxDensity := math.Max(float64(orb.MaxDensity(el)), minDensityFloor)

	samples := make([]CloudSample, 0, cfg.Samples)
	for i := 0; i < cfg.Samples; i++ {
		r := float32(gamma.Rand())
		position := s.randomUnitVector().Scale(r)
		density := float64(orb.ProbabilityDensity(el, position))
		weight := math.Sqrt(clamp01(density / maxDensity))
		samples = append(samples, CloudSample{Position: position, Weight: float32(weight)})
	}

	s.stats = Stats{Accepted: cfg.Samples, Attempts: cfg.Samples, Direct: true}
	return samples, true
}

// sampleRejection is the general path: uniform candidates in a cubic volume,
// accepted against a uniform threshold in [0, maxDensity]. When the attempt
// budget runs out the box grows by 1.5x, up to four expansions; any quota
// still unmet is filled with zero-weight points so the caller always gets
// exactly cfg.Samples results.
func (s *Sampler) sampleRejection(el element.Element, orb orbital.Orbital, cfg SampleConfig) []CloudSample {
	bounds := geom.Cube(orb.BoundingRadius(el))
	maxDensity := math.Max(float64(orb.MaxDensity(el)), minDensityFloor)

	accepted := make([]CloudSample, 0, cfg.Samples)
	expansions := 0

	for len(accepted) < cfg.Samples && expansions <= 4 {
		attempts := 0
		maxAttempts := cfg.Samples * 50
		if maxAttempts < 10000 {
			maxAttempts = 10000
		}

		for len(accepted) < cfg.Samples && attempts < maxAttempts {
			attempts++
			candidate := bounds.RandomPoint(s.rng)
			density := float64(orb.ProbabilityDensity(el, candidate))
			threshold := s.rng.Float64() * maxDensity

			if threshold <= density {
				weight := math.Sqrt(clamp01(density / maxDensity))
				accepted = append(accepted, CloudSample{Position: candidate, Weight: float32(weight)})
			}
		}
		s.stats.Attempts += attempts

		if len(accepted) < cfg.Samples {
			expansions++
			bounds = bounds.Scaled(1.5)
		}
	}
	s.stats.Expansions = expansions
	s.stats.Accepted = len(accepted)

	if len(accepted) < cfg.Samples {
		remaining := cfg.Samples - len(accepted)
		log.Printf("cloud: accepted %d of %d points for %s; filling remainder with zero-weight samples",
			len(accepted), cfg.Samples, orb)
		for i := 0; i < remaining; i++ {
			accepted = append(accepted, CloudSample{Position: bounds.RandomPoint(s.rng)})
		}
		s.stats.Filled = remaining
	}

	return accepted
}

// randomUnitVector draws a uniformly distributed direction: z uniform in
// (-1, 1), azimuth uniform in [0, 2pi).
func (s *Sampler) randomUnitVector() geom.Vec3 {
	z := s.rng.Float64()*2.0 - 1.0
	azimuth := s.rng.Float64() * 2.0 * math.Pi
	radial := math.Sqrt(math.Max(0, 1.0-z*z))
	return geom.Vec3{
		X: float32(radial * math.Cos(azimuth)),
		Y: float32(radial * math.Sin(azimuth)),
		Z: float32(z),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
