package sweep

import (
	"sort"

	"github.com/golang/geo/s1"

	"github.com/arcwise/svoronoi/beachline"
	"github.com/arcwise/svoronoi/diagram"
	"github.com/arcwise/svoronoi/geometry"
	"github.com/arcwise/svoronoi/sphere"
	"github.com/arcwise/svoronoi/svqueue"
)

// Build runs the sweep to completion over points and returns the
// finished diagram.
//
// Preconditions and validation (in order):
//  1. Coincident points (within cfg.CoincidenceEpsilon) are collapsed
//     to one site.
//  2. At least two distinct sites must remain (ErrFewPoints).
//
// Complexity: O(n log n) expected for the sweep itself, per spec §2's
// budget, dominated by the event queue and beach-line operations; the
// coincidence pass (dedupeCoincident) before it is O(n²).
func Build(points []sphere.Point, opts ...Option) (*diagram.Diagram, error) {
	// 1) Build and apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Deduplicate coincident sites.
	sites := dedupeCoincident(points, cfg.CoincidenceEpsilon)

	// 3) Reject degenerate input.
	if len(sites) < 2 {
		return nil, ErrFewPoints
	}

	// 4) Sort sites by θ ascending; their index in this order is their
	//    dense cell id (spec §4.5's initialisation).
	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Theta.Value < sites[j].Theta.Value
	})

	// 5) Seed the event queue with one site event per cell.
	queue := svqueue.NewEventQueue()
	for cell, p := range sites {
		queue.PushSite(cell, p.Theta.Value)
	}

	s := &sweeper{
		sites:   sites,
		beach:   beachline.New(sites),
		queue:   queue,
		diagram: diagram.New(),
	}
	s.run()
	s.diagram.Finish()
	return s.diagram, nil
}

// sweeper holds the state one sweep owns exclusively for its duration
// (spec §5's shared-resource policy): the event queue, the beach line,
// and the diagram under construction.
type sweeper struct {
	sites   []sphere.Point
	beach   *beachline.BeachLine
	queue   *svqueue.EventQueue
	diagram *diagram.Diagram
}

// run is the main loop of spec §4.5: pop the smallest-θ event and
// dispatch it, discarding circle events whose arc is no longer live
// or whose scheduled θ no longer matches the arc's current circle
// (the double-stale-event guard noted in DESIGN.md under Open
// Question #4).
func (s *sweeper) run() {
	for {
		e, ok := s.queue.Pop()
		if !ok {
			return
		}
		switch e.Kind {
		case svqueue.KindSite:
			s.handleSite(e.Cell)
		case svqueue.KindCircle:
			arc := beachline.ArcHandle(e.Arc)
			if s.beach.CircleValid(arc) && s.beach.CircleTheta(arc) == e.Theta {
				s.handleCircle(arc, e.Theta)
			}
		}
	}
}

// handleSite implements spec §4.5.1.
func (s *sweeper) handleSite(cell int) {
	site := s.sites[cell]
	s.diagram.Cell(site)

	switch s.beach.Len() {
	case 0:
		s.beach.InsertFirst(cell)
	case 1:
		existing, _ := s.beach.Head()
		arc := s.beach.InsertSecond(cell)
		s.beach.AddCommonStart(existing, arc)
	default:
		twin, arc, _ := s.beach.SplitForSite(site.Theta.Value, float64(site.Phi.Value), cell)
		s.beach.AddCommonStart(twin, arc)

		prevN, nextN := s.beach.Neighbors(arc) // (twin, split)
		if prevN != nextN {
			s.beach.DetachCircle(prevN)
			s.beach.DetachCircle(nextN)
			s.attachCircle(prevN, site.Theta.Value)
			s.attachCircle(nextN, site.Theta.Value)
		}

		// The arc immediately before twin kept its cell but gained a
		// new right neighbour (twin, not the original split arc), so
		// any circle event it had scheduled is stale.
		prevOfTwin := s.beach.Prev(twin)
		s.beach.DetachCircle(prevOfTwin)
		s.attachCircle(prevOfTwin, site.Theta.Value)
	}
}

// handleCircle implements spec §4.5.2.
func (s *sweeper) handleCircle(arc beachline.ArcHandle, theta s1.Angle) {
	prev, next := s.beach.Neighbors(arc)
	centre := s.beach.CircleCentre(arc)

	s.beach.DetachCircle(arc)
	s.beach.DetachCircle(prev)
	s.beach.DetachCircle(next)

	cells := [3]diagram.CellHandle{
		diagram.CellHandle(s.beach.Cell(prev)),
		diagram.CellHandle(s.beach.Cell(arc)),
		diagram.CellHandle(s.beach.Cell(next)),
	}
	vertex := s.diagram.Vertex(centre, cells)

	s.closeEdge(prev, vertex)
	s.closeEdge(arc, vertex)
	s.beach.Remove(arc)

	if s.beach.Prev(prev) == next {
		s.closeEdge(next, vertex)
		s.beach.Remove(prev)
		s.beach.Remove(next)
		return
	}

	if s.attachCircle(prev, theta) {
		s.beach.SetStart(prev, int(vertex))
	}
	s.attachCircle(next, theta)
}

// closeEdge implements spec §4.5.3.
func (s *sweeper) closeEdge(arc beachline.ArcHandle, end diagram.VertexHandle) {
	start := s.beach.Start(arc)
	switch start.Kind {
	case beachline.StartNone:
		return
	case beachline.StartVertex:
		s.diagram.Edge(diagram.VertexHandle(start.Vertex), end)
	case beachline.StartTemporary:
		if other, ok := s.beach.ResolveTemporary(start.Slot, int(end)); ok {
			s.diagram.Edge(diagram.VertexHandle(other), end)
		}
	}
}

// attachCircle tries to schedule a circle event on arc using its
// current neighbours, per spec §4.4's acceptance rule
// (event_theta ≥ minTheta) and §9's pairwise-distinct-cells rule. It
// reports whether a circle event was scheduled.
func (s *sweeper) attachCircle(arc beachline.ArcHandle, minTheta s1.Angle) bool {
	prev, next := s.beach.Neighbors(arc)
	if prev == arc || next == arc || prev == next {
		return false // fewer than 3 distinct arcs on the beach line
	}

	cellPrev, cellArc, cellNext := s.beach.Cell(prev), s.beach.Cell(arc), s.beach.Cell(next)
	if cellPrev == cellArc || cellArc == cellNext || cellPrev == cellNext {
		return false
	}

	p0, p1, p2 := s.sites[cellPrev], s.sites[cellArc], s.sites[cellNext]
	centre, theta, ok := geometry.Circumcircle(p0, p1, p2)
	if !ok || theta < minTheta {
		return false
	}

	s.beach.AttachCircle(arc, theta, centre)
	s.queue.PushCircle(svqueue.ArcHandle(arc), theta, centre)
	return true
}

// dedupeCoincident collapses points whose great-circle distance is
// within eps into a single representative, keeping the first of each
// cluster. O(n²); fine for the input sizes this sweep targets (spec
// §2's budget does not include a faster dedup pass).
func dedupeCoincident(points []sphere.Point, eps float64) []sphere.Point {
	out := make([]sphere.Point, 0, len(points))
	for _, p := range points {
		dup := false
		for _, q := range out {
			if sphere.Distance(p, q).Radians() < eps {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
