// Package analysis provides data reductions over sampled clouds for the
// plot and stats surfaces.
package analysis

import (
	"math"

	"github.com/san-kum/orbitals/internal/cloud"
)

// Radii extracts each sample's distance from the origin.
func Radii(samples []cloud.CloudSample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Position.Length())
	}
	return out
}

// MeanRadius returns the average distance from the origin, or zero for an
// empty cloud.
func MeanRadius(samples []cloud.CloudSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += float64(s.Position.Length())
	}
	return sum / float64(len(samples))
}

// RMSRadius returns the root-mean-square distance from the origin.
func RMSRadius(samples []cloud.CloudSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += float64(s.Position.LengthSquared())
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// MeanWeight returns the average sample weight, or zero for an empty cloud.
func MeanWeight(samples []cloud.CloudSample) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range samples {
		sum += float64(s.Weight)
	}
	return sum / float64(len(samples))
}

// RadialProfile bins sample counts by radius. It returns the per-bin counts
// and the bin width; both are zero-valued for an empty cloud or bins < 1.
func RadialProfile(samples []cloud.CloudSample, bins int) ([]float64, float64) {
	if len(samples) == 0 || bins < 1 {
		return nil, 0
	}

	maxR := 0.0
	radii := Radii(samples)
	for _, r := range radii {
		if r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		counts := make([]float64, bins)
		counts[0] = float64(len(samples))
		return counts, 0
	}

	width := maxR / float64(bins)
	counts := make([]float64, bins)
	for _, r := range radii {
		idx := int(r / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, width
}
