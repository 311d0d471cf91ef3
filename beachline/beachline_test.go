package beachline_test

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/require"

	"github.com/arcwise/svoronoi/beachline"
	"github.com/arcwise/svoronoi/sphere"
)

func octantPoints(t *testing.T) []sphere.Point {
	t.Helper()
	coords := [][3]float64{
		{1, 0, 0.1},
		{0, 1, 0.1},
		{-1, 0, 0.1},
		{0, -1, 0.1},
	}
	pts := make([]sphere.Point, len(coords))
	for i, c := range coords {
		p, err := sphere.NewPoint(r3.Vector{X: c[0], Y: c[1], Z: c[2]})
		require.NoError(t, err)
		pts[i] = p
	}
	return pts
}

func TestBeachLine_InsertFirstAndSecond(t *testing.T) {
	pts := octantPoints(t)
	bl := beachline.New(pts)

	a0 := bl.InsertFirst(0)
	require.Equal(t, 1, bl.Len())
	require.Equal(t, a0, bl.Next(a0))
	require.Equal(t, a0, bl.Prev(a0))

	a1 := bl.InsertSecond(1)
	require.Equal(t, 2, bl.Len())
	require.Equal(t, a1, bl.Next(a0))
	require.Equal(t, a0, bl.Next(a1))
	require.Equal(t, a1, bl.Prev(a0))
	require.Equal(t, a0, bl.Prev(a1))
}

func TestBeachLine_SplitForSite(t *testing.T) {
	pts := octantPoints(t)
	bl := beachline.New(pts)

	a0 := bl.InsertFirst(0)
	a1 := bl.InsertSecond(1)
	_ = a1

	// thetaScan must be past both existing arcs' own θ (≈1.471) for
	// their boundary to be a real curve rather than a degenerate point.
	twin, arc, split := bl.SplitForSite(s1.Angle(1.6), float64(pts[2].Phi.Value), 2)
	require.Equal(t, 4, bl.Len())
	require.Equal(t, bl.Cell(split), bl.Cell(twin), "twin shares the split arc's cell")
	require.Equal(t, 2, bl.Cell(arc))

	prevOfTwin, nextOfArc := bl.Prev(twin), bl.Next(arc)
	require.Equal(t, arc, bl.Next(twin))
	require.Equal(t, split, nextOfArc)
	require.Equal(t, twin, bl.Next(prevOfTwin))
	_ = a0
}

// TestBeachLine_SplitForSite_PicksArcContainingQueryPhi pins down the
// bug spec §4.3's search_for_insertion must not have: the chosen split
// arc has to depend on the new site's own φ, not just fall out of
// wherever the absolute boundary sequence happens to wrap.
func TestBeachLine_SplitForSite_PicksArcContainingQueryPhi(t *testing.T) {
	mk := func(t *testing.T, x, y, z float64) sphere.Point {
		t.Helper()
		p, err := sphere.NewPoint(r3.Vector{X: x, Y: y, Z: z})
		require.NoError(t, err)
		return p
	}

	// Cell 0 sits at φ≈0, cell 1 at φ≈π, both at the same colatitude,
	// so their shared boundary bisects the sphere at φ=±π/2. Cells 2
	// and 3 sit closer to the equator (larger θ, so their site events
	// fall after cell 0/1's arcs already exist) near φ=0 and φ=π
	// respectively, each well inside the matching existing arc's half.
	pts := []sphere.Point{
		mk(t, 1, 0, 0.5),
		mk(t, -1, 0, 0.5),
		mk(t, 0.9, 0.1, 0.2),
		mk(t, -0.9, -0.1, 0.2),
	}

	near := beachline.New(pts)
	near.InsertFirst(0)
	near.InsertSecond(1)
	_, _, split := near.SplitForSite(pts[2].Theta.Value, float64(pts[2].Phi.Value), 2)
	require.Equal(t, 0, near.Cell(split), "site near φ=0 must split the arc focused on the site at φ=0")

	far := beachline.New(pts)
	far.InsertFirst(0)
	far.InsertSecond(1)
	_, _, split = far.SplitForSite(pts[3].Theta.Value, float64(pts[3].Phi.Value), 3)
	require.Equal(t, 1, far.Cell(split), "site near φ=π must split the arc focused on the site at φ=π")
}

func TestBeachLine_RemoveAndFreeListRecycles(t *testing.T) {
	pts := octantPoints(t)
	bl := beachline.New(pts)

	a0 := bl.InsertFirst(0)
	a1 := bl.InsertSecond(1)
	bl.Remove(a1)
	require.Equal(t, 1, bl.Len())
	require.Equal(t, a0, bl.Next(a0))

	recycled := bl.InsertSecond(2)
	require.Equal(t, 2, bl.Cell(recycled))
}

func TestBeachLine_CommonStartResolution(t *testing.T) {
	pts := octantPoints(t)
	bl := beachline.New(pts)
	a0 := bl.InsertFirst(0)
	a1 := bl.InsertSecond(1)
	bl.AddCommonStart(a0, a1)

	start := bl.Start(a0)
	require.Equal(t, beachline.StartTemporary, start.Kind)

	_, ok := bl.ResolveTemporary(start.Slot, 7)
	require.False(t, ok, "first resolution just records the vertex")

	vertex, ok := bl.ResolveTemporary(start.Slot, 9)
	require.True(t, ok)
	require.Equal(t, 7, vertex)
}

func TestBeachLine_CircleLifecycle(t *testing.T) {
	pts := octantPoints(t)
	bl := beachline.New(pts)
	a0 := bl.InsertFirst(0)

	require.False(t, bl.CircleValid(a0))
	centre := pts[0]
	bl.AttachCircle(a0, s1.Angle(1.0), centre)
	require.True(t, bl.CircleValid(a0))
	require.Equal(t, s1.Angle(1.0), bl.CircleTheta(a0))

	bl.DetachCircle(a0)
	require.False(t, bl.CircleValid(a0))
}
