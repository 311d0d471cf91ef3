package beachline

import (
	"github.com/golang/geo/s1"

	"github.com/arcwise/svoronoi/sphere"
)

// height bounds the skip structure's levels. Spec §4.3(b) allows 5 to
// 8; original_source/src/beach_line.rs uses 5, kept here for fidelity.
const height = 5

// ArcHandle identifies an arc on the beach line. It stays valid from
// the moment the arc is created until Remove is called on it. Remove
// puts the handle on a free list, so a later insertion in the same
// sweep may be given the same handle again.
type ArcHandle int

// invalidArc is the sentinel stored in links that don't point anywhere
// yet, mirroring original_source's usize::MAX convention.
const invalidArc ArcHandle = -1

// StartKind discriminates an arc's pending-start slot (spec §3).
type StartKind int

const (
	// StartNone means the arc has no pending left edge.
	StartNone StartKind = iota
	// StartVertex means the left edge already starts at a known vertex.
	StartVertex
	// StartTemporary means the left edge starts at a vertex shared with
	// one other arc, not yet resolved.
	StartTemporary
)

// Start is the sum type {None, Vertex(v), Temporary(t)} from spec §3.
type Start struct {
	Kind   StartKind
	Vertex int // meaningful iff Kind == StartVertex
	Slot   int // meaningful iff Kind == StartTemporary, indexes BeachLine.slots
}

// arcData is the arena-backed record for one arc. Cached intersection
// fields implement the memoisation spec §4.4 requires: a query with
// scanTheta no larger than the cached one reuses cachedPhi instead of
// recomputing the trigonometry.
type arcData struct {
	cell int

	start Start

	circleValid  bool
	circleCentre sphere.Point
	circleTheta  s1.Angle

	prev, next           ArcHandle
	prevSkips, nextSkips [height]ArcHandle

	cachedTheta s1.Angle
	cachedPhi   float64
	hasCache    bool
}
