package sphere

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Point is an immutable direction on the unit sphere, plus the cached
// (value, sin, cos) of its θ (colatitude, [0,π]) and φ (azimuth,
// (−π,π]). It is produced only by NewPoint, which normalises a raw
// 3-vector.
//
// Grounded on original_source/src/point.rs's Point{theta,phi,position}
// and its From<Position> constructor; built on golang/geo's s2.Point
// (normalisation) and r3.Vector/s1.Angle (arithmetic), as used in
// other_examples' s2voronoi package for the same domain.
type Point struct {
	Pos   s2.Point
	Theta Angle
	Phi   Angle
}

// NewPoint normalises (x, y, z) onto the unit sphere and caches its
// spherical coordinates. Returns ErrZeroVector for a zero-norm input.
func NewPoint(v r3.Vector) (Point, error) {
	if v.Norm() == 0 {
		return Point{}, ErrZeroVector
	}
	pos := s2.PointFromCoords(v.X, v.Y, v.Z)
	theta := math.Acos(ClampUnit(pos.Z))
	phi := math.Atan2(pos.Y, pos.X)
	return Point{
		Pos:   pos,
		Theta: NewAngle(s1.Angle(theta)),
		Phi:   NewAngle(s1.Angle(phi)),
	}, nil
}

// FromSpherical builds a Point directly from a (θ, φ) pair, the
// inverse of the θ/φ cache above.
func FromSpherical(theta, phi float64) Point {
	sinT, cosT := math.Sincos(theta)
	sinP, cosP := math.Sincos(phi)
	pos := s2.PointFromCoords(sinT*cosP, sinT*sinP, cosT)
	return Point{
		Pos:   pos,
		Theta: NewAngle(s1.Angle(theta)),
		Phi:   NewAngle(s1.Angle(phi)),
	}
}

// Distance returns the great-circle distance between a and b.
func Distance(a, b Point) s1.Angle {
	cross := a.Pos.Vector.Cross(b.Pos.Vector)
	dot := a.Pos.Vector.Dot(b.Pos.Vector)
	return s1.Angle(math.Atan2(cross.Norm(), dot))
}

// ClampUnit clamps v into [-1, 1], guarding acos/asin call sites against
// domain errors from floating-point overshoot.
func ClampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
