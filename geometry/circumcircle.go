package geometry

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/arcwise/svoronoi/sphere"
)

// Circumcircle computes the circumcircle of three consecutive beach
// line arcs' focus points (p0, p1, p2 in left-to-right order), per
// spec §4.4. ok is false when the three points are collinear (through
// the origin) and have no well-defined circumcircle, or when the three
// cells the caller intends to merge would not be pairwise distinct —
// that second check is the caller's job (spec §9: reject circle events
// whose three cells are not pairwise distinct).
func Circumcircle(p0, p1, p2 sphere.Point) (centre sphere.Point, eventTheta s1.Angle, ok bool) {
	d0 := p0.Pos.Vector.Sub(p1.Pos.Vector)
	d2 := p2.Pos.Vector.Sub(p1.Pos.Vector)
	raw := d0.Cross(d2)

	centre, err := sphere.NewPoint(raw)
	if err != nil {
		return sphere.Point{}, 0, false
	}

	radius := math.Acos(sphere.ClampUnit(centre.Pos.Vector.Dot(p0.Pos.Vector)))
	eventTheta = s1.Angle(math.Acos(sphere.ClampUnit(centre.Pos.Z)) + radius)
	return centre, eventTheta, true
}
