package pointgen

import (
	"github.com/golang/geo/r3"

	"github.com/arcwise/svoronoi/sphere"
)

// mustPoint normalises a vector known at compile time to be non-zero.
// Panics on ErrZeroVector, which would indicate a mistake in one of
// the fixture coordinates below, never caller input.
func mustPoint(x, y, z float64) sphere.Point {
	p, err := sphere.NewPoint(r3.Vector{X: x, Y: y, Z: z})
	if err != nil {
		panic(err)
	}
	return p
}

// Tetrahedron returns the four vertices of a regular tetrahedron
// inscribed in the unit sphere, the smallest input that produces a
// non-degenerate diagram with interior vertices on every cell.
func Tetrahedron() []sphere.Point {
	return []sphere.Point{
		mustPoint(1, 1, 1),
		mustPoint(1, -1, -1),
		mustPoint(-1, 1, -1),
		mustPoint(-1, -1, 1),
	}
}

// Octahedron returns the six vertices of a regular octahedron, one
// pair of antipodal points per axis.
func Octahedron() []sphere.Point {
	return []sphere.Point{
		mustPoint(1, 0, 0),
		mustPoint(-1, 0, 0),
		mustPoint(0, 1, 0),
		mustPoint(0, -1, 0),
		mustPoint(0, 0, 1),
		mustPoint(0, 0, -1),
	}
}
