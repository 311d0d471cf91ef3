// Package pointgen produces sphere.Point inputs for svoronoi: seeded
// random clouds for benchmarking and testing, and fixed Platonic-solid
// fixtures whose symmetry makes expected diagram shapes easy to state.
//
// Grounded on original_source/src/main.rs's random point cloud (range
// [-1,1]^3, normalised onto the sphere by construction) and
// tsp/rng.go's deterministic seeded-RNG idiom (seed==0 maps to a fixed
// default seed so callers always get reproducible output).
package pointgen
