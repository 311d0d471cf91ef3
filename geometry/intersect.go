package geometry

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/arcwise/svoronoi/sphere"
)

// intersectEps absorbs floating-point overshoot in the |c| > L guard
// of spec §4.4.
const intersectEps = 1e-9

// Intersect computes the azimuth φ at which the arc focused on p0 (the
// left neighbour) meets the arc focused on p1 (the right neighbour)
// under the sweep at thetaScan, per spec §4.4.
//
// ok is false only when both sites lie at or beyond the sweep (θ ≥
// thetaScan); phi is then 0 and neither arc bounds anything yet.
// When exactly one site lies at or beyond the sweep, phi is that
// site's own φ. When the formula has no real solution, phi is the φ
// of the site with the larger θ and ok is still true.
func Intersect(p0, p1 sphere.Point, thetaScan s1.Angle) (phi float64, ok bool) {
	theta0 := p0.Theta.Value
	theta1 := p1.Theta.Value

	// Guard: either site already at or past the sweep degenerates to
	// its own focus.
	if theta0 >= thetaScan && theta1 >= thetaScan {
		return 0, false
	}
	if theta0 >= thetaScan {
		return float64(p0.Phi.Value), true
	}
	if theta1 >= thetaScan {
		return float64(p1.Phi.Value), true
	}

	sinScan, cosScan := math.Sincos(float64(thetaScan))
	sinT0, cosT0 := p0.Theta.Sin, p0.Theta.Cos
	sinT1, cosT1 := p1.Theta.Sin, p1.Theta.Cos
	cosP0, sinP0 := p0.Phi.Cos, p0.Phi.Sin
	cosP1, sinP1 := p1.Phi.Cos, p1.Phi.Sin

	u1 := (cosScan - cosT1) * sinT0
	u2 := (cosScan - cosT0) * sinT1
	a := u1*cosP0 - u2*cosP1
	b := u1*sinP0 - u2*sinP1
	c := (cosT0 - cosT1) * sinScan
	length := math.Hypot(a, b)

	if math.Abs(c) > length+intersectEps || length == 0 {
		// No real solution: both sites are already above the sweep, so
		// fall back to the φ of the one with the larger θ (the one
		// nearer the sweep).
		if theta0 >= theta1 {
			return float64(p0.Phi.Value), true
		}
		return float64(p1.Phi.Value), true
	}

	gamma := math.Atan2(a, b)
	phiStar := math.Asin(sphere.ClampUnit(c/length)) - gamma
	return sphere.WrapSymmetric(phiStar), true
}
