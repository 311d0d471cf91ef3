package svqueue

import (
	"github.com/golang/geo/s1"

	"github.com/arcwise/svoronoi/sphere"
)

// ArcHandle is an opaque reference to a beachline arc. svqueue never
// dereferences it; it exists only so a Circle event can tell the
// driver which arc to re-validate against beachline's circle_valid
// flag before acting on the event (spec §9: no back-references from
// queue entries into the beach line).
type ArcHandle int

// Kind distinguishes the two event tags of spec §3's "Event" union.
type Kind int

const (
	// KindSite marks the arrival of an input point under the sweep.
	KindSite Kind = iota
	// KindCircle marks the scheduled disappearance of an arc.
	KindCircle
)

// Event is the tagged union described in spec §3. Site events carry a
// dense cell index; circle events carry the arc handle and the
// precomputed vertex position (the circle's centre), so the driver
// never needs to recompute geometry just to emit a vertex.
type Event struct {
	Theta  s1.Angle
	Kind   Kind
	Cell   int
	Arc    ArcHandle
	Center sphere.Point

	seq uint64
}
