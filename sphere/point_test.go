package sphere_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"

	"github.com/arcwise/svoronoi/sphere"
)

func TestNewPoint_Normalizes(t *testing.T) {
	p, err := sphere.NewPoint(r3.Vector{X: 2, Y: 0, Z: 0})
	require.NoError(t, err)
	require.InDelta(t, 1.0, p.Pos.Norm(), 1e-12)
	require.InDelta(t, math.Pi/2, float64(p.Theta.Value), 1e-12)
	require.InDelta(t, 0.0, float64(p.Phi.Value), 1e-12)
}

func TestNewPoint_ZeroVector(t *testing.T) {
	_, err := sphere.NewPoint(r3.Vector{})
	require.ErrorIs(t, err, sphere.ErrZeroVector)
}

func TestDistance_Antipodal(t *testing.T) {
	a, err := sphere.NewPoint(r3.Vector{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	b, err := sphere.NewPoint(r3.Vector{X: -1, Y: 0, Z: 0})
	require.NoError(t, err)
	require.InDelta(t, math.Pi, float64(sphere.Distance(a, b)), 1e-12)
}

func TestDistance_SamePoint(t *testing.T) {
	a, err := sphere.NewPoint(r3.Vector{X: 0, Y: 1, Z: 1})
	require.NoError(t, err)
	require.InDelta(t, 0.0, float64(sphere.Distance(a, a)), 1e-12)
}

func TestWrapSymmetric(t *testing.T) {
	require.InDelta(t, 0.0, sphere.WrapSymmetric(2*math.Pi), 1e-9)
	require.InDelta(t, -math.Pi/2, sphere.WrapSymmetric(3*math.Pi/2), 1e-9)
	require.InDelta(t, math.Pi/4, sphere.WrapSymmetric(math.Pi/4), 1e-12)
}

func TestInRange_SimpleInterval(t *testing.T) {
	require.Equal(t, sphere.Equal, sphere.InRange(0.5, 0, 1))
	require.Equal(t, sphere.Less, sphere.InRange(-0.5, 0, 1))
	require.Equal(t, sphere.Greater, sphere.InRange(1.5, 0, 1))
}

func TestInRange_WrappingInterval(t *testing.T) {
	// Range wraps through ±π: [3, π] ∪ [−π, −3].
	start, end := 3.0, -3.0
	require.Equal(t, sphere.Equal, sphere.InRange(math.Pi, start, end))
	require.Equal(t, sphere.Equal, sphere.InRange(-math.Pi, start, end))
	require.Equal(t, sphere.Equal, sphere.InRange(3.1, start, end))
	require.Equal(t, sphere.Equal, sphere.InRange(-3.1, start, end))
	require.NotEqual(t, sphere.Equal, sphere.InRange(0.0, start, end))
}
