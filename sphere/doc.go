// Package sphere provides the spherical primitives the sweep engine is
// built on: normalised points with cached (value, sin, cos) angles, the
// two wrap conventions the rest of the engine needs, and the three-way
// angular in-range test used by the beach line's ordering.
//
// Points are built on github.com/golang/geo's s2/r3/s1 types so that
// normalisation, cross/dot products, and angle arithmetic reuse a
// battle-tested spherical-geometry library instead of a hand-rolled
// 3-vector type.
package sphere
