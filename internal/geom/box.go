package geom

import "golang.org/x/exp/rand"

// Box is an axis-aligned box, used as the candidate volume for rejection
// sampling.
type Box struct {
	Min, Max Vec3
}

// Cube returns a box centered on the origin with the given half-width.
func Cube(half float32) Box {
	if half < 0 {
		half = -half
	}
	return Box{
		Min: Vec3{-half, -half, -half},
		Max: Vec3{half, half, half},
	}
}

// Scaled returns the box with both corners scaled by factor.
func (b Box) Scaled(factor float32) Box {
	return Box{
		Min: b.Min.Scale(factor),
		Max: b.Max.Scale(factor),
	}
}

// RandomPoint draws a uniformly distributed point inside the box.
func (b Box) RandomPoint(rng *rand.Rand) Vec3 {
	return Vec3{
		X: b.Min.X + float32(rng.Float64())*(b.Max.X-b.Min.X),
		Y: b.Min.Y + float32(rng.Float64())*(b.Max.Y-b.Min.Y),
		Z: b.Min.Z + float32(rng.Float64())*(b.Max.Z-b.Min.Z),
	}
}
