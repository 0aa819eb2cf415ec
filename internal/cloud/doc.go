// Package cloud converts an orbital probability density into a weighted
// point cloud by Monte Carlo sampling.
//
// The package defines the sampler and its output types:
//
//   - [CloudSample]: one position-plus-weight output record
//   - [SampleConfig]: how many samples to draw
//   - [Sampler]: seeded generator producing the cloud
//   - [Stats]: diagnostics for the most recent sampling call
//
// # Example
//
//	s := cloud.NewSampler()
//	el, _ := element.ByAtomicNumber(1)
//	samples := s.SampleOrbital(el, orbital.GroundState(), cloud.NewSampleConfig(50000))
//
// # Thread Safety
//
// Sampler instances are NOT thread-safe: the owned random generator mutates
// in place on every call. Use one Sampler per goroutine or synchronize
// externally.
package cloud
