package pointgen

import (
	"math/rand/v2"

	"github.com/golang/geo/r3"

	"github.com/arcwise/svoronoi/sphere"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0,
// mirroring tsp/rng.go's rngFromSeed policy.
const defaultSeed uint64 = 1

// Random returns n points sampled uniformly at random on the unit
// sphere, using rejection sampling from the cube [-1,1]^3 (the same
// distribution original_source/src/main.rs draws from before
// normalising). seed==0 selects defaultSeed, so the same seed always
// reproduces the same cloud.
//
// Preconditions:
//  1. n must be non-negative (ErrInvalidCount).
func Random(n int, seed uint64) ([]sphere.Point, error) {
	if n < 0 {
		return nil, ErrInvalidCount
	}
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	points := make([]sphere.Point, 0, n)
	for len(points) < n {
		v := r3.Vector{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}
		if v.Norm2() > 1 {
			continue // outside the unit ball; reject and redraw
		}
		p, err := sphere.NewPoint(v)
		if err != nil {
			continue // zero-norm draw, vanishingly rare; resample
		}
		points = append(points, p)
	}
	return points, nil
}
