package geometry_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/arcwise/svoronoi/geometry"
	"github.com/arcwise/svoronoi/sphere"
)

func mustPoint(t *testing.T, x, y, z float64) sphere.Point {
	t.Helper()
	p, err := sphere.NewPoint(r3.Vector{X: x, Y: y, Z: z})
	require.NoError(t, err)
	return p
}

func TestIntersect_BothAtFocus(t *testing.T) {
	p0 := mustPoint(t, 0, 0, 1)
	p1 := mustPoint(t, 1, 0, 0)
	// Sweep sits before both sites' theta, so both arcs are still points
	// at their own focus: not yet a meaningful boundary.
	_, ok := geometry.Intersect(p0, p1, s1.Angle(-1))
	require.False(t, ok)
}

func TestIntersect_OneAtFocus(t *testing.T) {
	north := mustPoint(t, 0, 0, 1) // theta = 0
	equator := mustPoint(t, 1, 0, 0) // theta = pi/2
	phi, ok := geometry.Intersect(north, equator, s1.Angle(0.1))
	require.True(t, ok)
	require.InDelta(t, float64(equator.Phi.Value), phi, 1e-12)
}

func TestIntersect_Symmetric(t *testing.T) {
	p0 := mustPoint(t, 1, 0.2, 0.3)
	p1 := mustPoint(t, -0.3, 1, 0.1)
	scan := s1.Angle(math.Pi / 2)
	phi01, ok1 := geometry.Intersect(p0, p1, scan)
	phi10, ok2 := geometry.Intersect(p1, p0, scan)
	require.True(t, ok1)
	require.True(t, ok2)
	// The two orderings describe the two boundaries of the lens between
	// the arcs; they need not be equal, but both must be finite and in
	// range.
	require.False(t, math.IsNaN(phi01))
	require.False(t, math.IsNaN(phi10))
	require.LessOrEqual(t, phi01, math.Pi+1e-9)
	require.GreaterOrEqual(t, phi01, -math.Pi-1e-9)
}

func TestCircumcircle_Octant(t *testing.T) {
	p0 := mustPoint(t, 1, 0, 0)
	p1 := mustPoint(t, 0, 1, 0)
	p2 := mustPoint(t, 0, 0, 1)
	centre, eventTheta, ok := geometry.Circumcircle(p0, p1, p2)
	require.True(t, ok)

	d0 := sphere.Distance(centre, p0).Radians()
	d1 := sphere.Distance(centre, p1).Radians()
	d2 := sphere.Distance(centre, p2).Radians()
	require.InDelta(t, d0, d1, 1e-9)
	require.InDelta(t, d1, d2, 1e-9)

	expected := mustPoint(t, 1, 1, 1)
	distToExpected := sphere.Distance(centre, expected).Radians()
	require.True(t, distToExpected < 1e-9 || math.Abs(distToExpected-math.Pi) < 1e-9,
		"centre should align with (1,1,1) up to sign, got distance %v", distToExpected)
	require.Greater(t, float64(eventTheta), 0.0)
}

func TestCircumcircle_Degenerate(t *testing.T) {
	p0 := mustPoint(t, 1, 0, 0)
	p1 := mustPoint(t, 2, 0, 0) // same direction as p0 after normalisation
	p2 := mustPoint(t, 3, 0, 0)
	_, _, ok := geometry.Circumcircle(p0, p1, p2)
	require.False(t, ok)
}
