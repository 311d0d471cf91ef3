package voronoi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	voronoi "github.com/arcwise/svoronoi"
	"github.com/arcwise/svoronoi/pointgen"
	"github.com/arcwise/svoronoi/sweep"
)

func TestBuild_PlainSweepByDefault(t *testing.T) {
	d, err := voronoi.Build(pointgen.Tetrahedron())
	require.NoError(t, err)
	require.Equal(t, 4, d.CellCount())
	require.Len(t, d.Vertices(), 4)
}

func TestBuild_WithRelaxations(t *testing.T) {
	d, err := voronoi.Build(pointgen.Tetrahedron(), voronoi.WithRelaxations(2))
	require.NoError(t, err)
	require.Equal(t, 4, d.CellCount())
}

func TestBuild_ForwardsSweepOptions(t *testing.T) {
	points, err := pointgen.Random(30, 11)
	require.NoError(t, err)
	d, err := voronoi.Build(points, voronoi.WithSweepOptions(sweep.WithCoincidenceEpsilon(1e-6)))
	require.NoError(t, err)
	require.Equal(t, 30, d.CellCount())
}

func TestWithRelaxations_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() {
		_, _ = voronoi.Build(pointgen.Tetrahedron(), voronoi.WithRelaxations(-1))
	})
}

// TestBuild_OctahedronMatchesScenario2 exercises the full facade
// (rather than sweep.Build directly) against spec §8 scenario 2.
func TestBuild_OctahedronMatchesScenario2(t *testing.T) {
	d, err := voronoi.Build(pointgen.Octahedron())
	require.NoError(t, err)
	require.Equal(t, 6, d.CellCount())
	require.Len(t, d.Vertices(), 8)
	require.Len(t, d.Edges(), 12)
}

// TestBuild_RandomInputSatisfiesEuler checks spec §8 scenario 5's
// Euler invariant through the relaxed facade path, not just the bare
// sweep.
func TestBuild_RandomInputSatisfiesEuler(t *testing.T) {
	points, err := pointgen.Random(100, 3)
	require.NoError(t, err)

	d, err := voronoi.Build(points, voronoi.WithRelaxations(2))
	require.NoError(t, err)

	v, e, f := len(d.Vertices()), len(d.Edges()), d.CellCount()
	require.Equal(t, 2, v-e+f)
}
