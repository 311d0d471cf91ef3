package sphere

import (
	"math"

	"github.com/golang/geo/s1"
)

// Angle caches a radian value alongside its sine and cosine, so the hot
// trigonometric paths in geometry and beachline never recompute
// sin/cos for the same θ or φ more than once per sweep step.
//
// Grounded on original_source/src/point.rs's Angle{value,sin,cos} and
// its From<f64> constructor.
type Angle struct {
	Value s1.Angle
	Sin   float64
	Cos   float64
}

// NewAngle builds an Angle, computing and caching sin/cos once.
func NewAngle(value s1.Angle) Angle {
	sin, cos := math.Sincos(float64(value))
	return Angle{Value: value, Sin: sin, Cos: cos}
}

// Wrap reduces a into [0, 2π).
func Wrap(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// WrapSymmetric reduces a into (−π, π], the convention used throughout
// the beach line's cyclic φ ordering.
func WrapSymmetric(a float64) float64 {
	w := Wrap(a+math.Pi) - math.Pi
	if w == -math.Pi {
		return math.Pi
	}
	return w
}

// Ordering is the three-way result of the cyclic in-range test (§4.1).
type Ordering int

const (
	// Less means the query angle lies before the arc's range.
	Less Ordering = iota
	// Equal means the query angle lies within the arc's range.
	Equal
	// Greater means the query angle lies after the arc's range.
	Greater
)

// InRange implements the three-way angular in-range test of spec §4.1:
// given a query φ and an arc's (start, end) cyclic range, report
// whether φ falls inside the range, or which side it falls on.
//
// Grounded on original_source/src/angle.rs's is_in_range/is_between.
func InRange(phi, start, end float64) Ordering {
	if isBetween(phi, start, end) {
		return Equal
	}
	distToEnd := math.Abs(WrapSymmetric(phi - end))
	distToStart := math.Abs(WrapSymmetric(phi - start))
	if distToEnd < distToStart {
		return Greater
	}
	return Less
}

func isBetween(phi, start, end float64) bool {
	if start <= end {
		return start <= phi && phi <= end
	}
	return phi >= start || phi <= end
}
