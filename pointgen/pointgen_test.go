package pointgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcwise/svoronoi/pointgen"
)

func TestRandom_RejectsNegativeCount(t *testing.T) {
	_, err := pointgen.Random(-1, 0)
	require.ErrorIs(t, err, pointgen.ErrInvalidCount)
}

func TestRandom_ProducesUnitVectors(t *testing.T) {
	points, err := pointgen.Random(50, 7)
	require.NoError(t, err)
	require.Len(t, points, 50)
	for _, p := range points {
		require.InDelta(t, 1.0, p.Pos.Norm(), 1e-9)
	}
}

func TestRandom_SameSeedReproducesSameCloud(t *testing.T) {
	a, err := pointgen.Random(20, 42)
	require.NoError(t, err)
	b, err := pointgen.Random(20, 42)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRandom_ZeroSeedIsDeterministic(t *testing.T) {
	a, err := pointgen.Random(5, 0)
	require.NoError(t, err)
	b, err := pointgen.Random(5, 0)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestTetrahedron_HasFourUnitPoints(t *testing.T) {
	points := pointgen.Tetrahedron()
	require.Len(t, points, 4)
	for _, p := range points {
		require.InDelta(t, 1.0, p.Pos.Norm(), 1e-9)
	}
}

func TestOctahedron_HasSixUnitPoints(t *testing.T) {
	points := pointgen.Octahedron()
	require.Len(t, points, 6)
	for _, p := range points {
		require.InDelta(t, 1.0, p.Pos.Norm(), 1e-9)
	}
}
