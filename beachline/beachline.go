package beachline

import (
	"github.com/golang/geo/s1"

	"github.com/arcwise/svoronoi/geometry"
	"github.com/arcwise/svoronoi/sphere"
)

// BeachLine is the cyclic ordered collection of arcs described in spec
// §4.3. Arcs are focused on cells, whose site points are supplied once
// at construction and never mutated; points is indexed by cell id.
//
// Grounded on original_source/src/beach_line.rs's BeachLine.
type BeachLine struct {
	points []sphere.Point

	arcs []arcData
	free []ArcHandle

	head ArcHandle
	len  int

	levels [height]int

	slots []int // temporary-start resolution table; -1 means unresolved
}

// New builds an empty beach line over the given cell sites, indexed by
// cell id (spec §3's cell identifier is the slice index).
func New(points []sphere.Point) *BeachLine {
	return &BeachLine{
		points: points,
		head:   invalidArc,
	}
}

// Len reports the number of arcs currently on the beach line.
func (b *BeachLine) Len() int { return b.len }

// Cell returns the cell focused on the given arc.
func (b *BeachLine) Cell(arc ArcHandle) int { return b.data(arc).cell }

// Head returns an arbitrary arc on the beach line, or invalidArc if
// the line is empty. Callers use it to seed a traversal.
func (b *BeachLine) Head() (ArcHandle, bool) {
	if b.len == 0 {
		return invalidArc, false
	}
	return b.head, true
}

// Prev returns the cyclic predecessor of arc; in a single-arc line it
// returns arc itself.
func (b *BeachLine) Prev(arc ArcHandle) ArcHandle { return b.data(arc).prev }

// Next returns the cyclic successor of arc; in a single-arc line it
// returns arc itself.
func (b *BeachLine) Next(arc ArcHandle) ArcHandle { return b.data(arc).next }

// Neighbors returns (prev(arc), next(arc)) in one call.
func (b *BeachLine) Neighbors(arc ArcHandle) (ArcHandle, ArcHandle) {
	d := b.data(arc)
	return d.prev, d.next
}

// Start returns arc's pending-start slot.
func (b *BeachLine) Start(arc ArcHandle) Start { return b.data(arc).start }

// SetStart overwrites arc's pending-start slot with a resolved vertex.
func (b *BeachLine) SetStart(arc ArcHandle, vertex int) {
	b.data(arc).start = Start{Kind: StartVertex, Vertex: vertex}
}

// AddCommonStart installs a shared Temporary slot on arc0 and arc1, the
// twin/new-arc pair created when a site splits an existing arc (spec
// §4.3), or the existing and new arc when a one-arc line grows to two
// (spec §4.5.1). If arc0 == arc1, the slot is left None instead: an
// arc shares no start with itself.
func (b *BeachLine) AddCommonStart(arc0, arc1 ArcHandle) {
	if arc0 == arc1 {
		b.data(arc0).start = Start{Kind: StartNone}
		return
	}
	slot := len(b.slots)
	b.slots = append(b.slots, -1)
	start := Start{Kind: StartTemporary, Slot: slot}
	b.data(arc0).start = start
	b.data(arc1).start = start
}

// ResolveTemporary implements original_source/src/beach_line.rs's edge():
// looks up the shared Temporary slot. If it is still unresolved, it
// records end and reports ok=false (the edge is still pending on the
// other arc). If another arc already wrote a vertex there, it reports
// that vertex and ok=true: the caller should emit the edge now.
func (b *BeachLine) ResolveTemporary(slot int, end int) (vertex int, ok bool) {
	v := b.slots[slot]
	if v == -1 {
		b.slots[slot] = end
		return 0, false
	}
	return v, true
}

// CircleValid reports whether arc currently has a scheduled circle
// event (spec §3's circle_valid flag).
func (b *BeachLine) CircleValid(arc ArcHandle) bool { return b.data(arc).circleValid }

// CircleCentre returns the cached circle centre for arc.
func (b *BeachLine) CircleCentre(arc ArcHandle) sphere.Point { return b.data(arc).circleCentre }

// CircleTheta returns the θ at which arc's scheduled circle event fires.
func (b *BeachLine) CircleTheta(arc ArcHandle) s1.Angle { return b.data(arc).circleTheta }

// AttachCircle records that arc has a scheduled circle event at theta
// with the given centre.
func (b *BeachLine) AttachCircle(arc ArcHandle, theta s1.Angle, centre sphere.Point) {
	d := b.data(arc)
	d.circleValid = true
	d.circleTheta = theta
	d.circleCentre = centre
}

// DetachCircle cancels arc's scheduled circle event, if any. The event
// queue entry (if already pushed) is left to be discarded lazily on
// pop, per spec §4.2's cancellation policy.
func (b *BeachLine) DetachCircle(arc ArcHandle) {
	b.data(arc).circleValid = false
}

// InsertFirst seeds an empty beach line with a single arc.
func (b *BeachLine) InsertFirst(cell int) ArcHandle {
	arc := b.createArc(cell)
	b.head = arc
	skips := [height]ArcHandle{}
	for level := range skips {
		skips[level] = arc
	}
	b.addLinks(arc, arc, arc, &skips)
	return arc
}

// InsertSecond grows a one-arc beach line to two, linking the new arc
// as both the predecessor and successor of the existing one.
func (b *BeachLine) InsertSecond(cell int) ArcHandle {
	head := b.head
	arc := b.createArc(cell)
	skips := [height]ArcHandle{}
	for level := range skips {
		skips[level] = head
	}
	b.addLinks(arc, head, head, &skips)
	return arc
}

// SplitForSite finds the arc whose φ-range under thetaScan contains
// queryPhi — the new site's own azimuth — and splits it, following
// original_source/src/beach_line.rs's insert(): descend the skip
// structure from the top level, recording the last arc visited at
// each level, then do a level-0 linear scan to pin down the exact arc
// to split (splitArc). twin carries splitArc's cell and becomes its
// new left neighbour; arc carries cell and sits between twin and
// splitArc, so the resulting order is …, prev, twin, arc, splitArc, …
//
// original_source/src/event.rs's intersect anchors every comparison
// to the query site by subtracting its own φ before wrapping; this
// port instead tests each candidate span against queryPhi directly
// with sphere.InRange (spec §4.1), which needs no such anchor.
//
// Both loops stop rather than advance whenever a candidate boundary
// ties its neighbour (same handle, or the same cached φ — the latter
// happens when two sites share the same θ and intersectWithNext falls
// back to the degenerate ok=false case for both): InRange has no
// "already seen this span" memory of its own, so an advance decision
// driven purely by it could cycle between two tied candidates forever.
func (b *BeachLine) SplitForSite(thetaScan s1.Angle, queryPhi float64, cell int) (twin, arc, splitArc ArcHandle) {
	arc = b.createArc(cell)

	current := b.head
	level := height - 1
	var skips [height]ArcHandle
	for {
		nextSkip := b.nextSkip(current, level)
		start := b.intersectWithNext(current, thetaScan)
		end := b.intersectWithNext(nextSkip, thetaScan)
		if nextSkip != current && start != end && sphere.InRange(queryPhi, start, end) != sphere.Equal {
			current = nextSkip
			continue
		}
		skips[level] = current
		if level == 0 {
			break
		}
		level--
	}

	next := b.Next(current)
	start := b.intersectWithNext(current, thetaScan)
	end := b.intersectWithNext(next, thetaScan)
	for next != current && start != end && sphere.InRange(queryPhi, start, end) != sphere.Equal {
		next = b.Next(next)
		start = end
		end = b.intersectWithNext(next, thetaScan)
	}

	splitArc = next
	twin = b.createArc(b.Cell(splitArc))
	b.addLinks(twin, current, splitArc, &skips)
	b.addLinks(arc, twin, splitArc, &skips)
	return twin, arc, splitArc
}

// Remove deletes arc from the beach line and retires its handle.
func (b *BeachLine) Remove(arc ArcHandle) {
	if arc == b.head {
		nextSkip := b.nextSkip(b.head, height-1)
		if nextSkip != b.head {
			b.head = nextSkip
		} else {
			next := b.Next(b.head)
			h := b.levelHeight(next)
			b.levels[h-1]--
			b.levels[height-1]++
			for level := h; level < height; level++ {
				ns := b.nextSkip(b.head, level)
				b.setPrevSkip(ns, level, next)
				b.setNextSkip(next, level, ns)
				b.setPrevSkip(next, level, b.head)
				b.setNextSkip(b.head, level, next)
			}
			b.head = next
		}
	}
	b.removeLinks(arc)
	b.free = append(b.free, arc)
}

func (b *BeachLine) createArc(cell int) ArcHandle {
	data := arcData{
		cell: cell,
		prev: invalidArc,
		next: invalidArc,
	}
	for i := range data.prevSkips {
		data.prevSkips[i] = invalidArc
		data.nextSkips[i] = invalidArc
	}
	if n := len(b.free); n > 0 {
		arc := b.free[n-1]
		b.free = b.free[:n-1]
		b.arcs[arc] = data
		return arc
	}
	b.arcs = append(b.arcs, data)
	return ArcHandle(len(b.arcs) - 1)
}

func (b *BeachLine) data(arc ArcHandle) *arcData { return &b.arcs[arc] }

func (b *BeachLine) skips(arc ArcHandle, level int) (ArcHandle, ArcHandle) {
	d := b.data(arc)
	return d.prevSkips[level], d.nextSkips[level]
}

func (b *BeachLine) setPrevSkip(arc ArcHandle, level int, prev ArcHandle) {
	b.data(arc).prevSkips[level] = prev
}

func (b *BeachLine) nextSkip(arc ArcHandle, level int) ArcHandle {
	return b.data(arc).nextSkips[level]
}

func (b *BeachLine) setNextSkip(arc ArcHandle, level int, next ArcHandle) {
	b.data(arc).nextSkips[level] = next
}

// intersectWithNext returns the memoised φ at which arc meets
// b.Next(arc), recomputing only if queryTheta advances past the
// cached value (spec §4.4's memoisation rule).
func (b *BeachLine) intersectWithNext(arc ArcHandle, queryTheta s1.Angle) float64 {
	d := b.data(arc)
	if !d.hasCache || d.cachedTheta < queryTheta {
		prevSite := b.points[d.cell]
		nextSite := b.points[b.Cell(d.next)]
		phi, _ := geometry.Intersect(prevSite, nextSite, queryTheta)
		d.cachedTheta = queryTheta
		d.cachedPhi = phi
		d.hasCache = true
	}
	return d.cachedPhi
}

func (b *BeachLine) addLinks(arc, prev, next ArcHandle, skips *[height]ArcHandle) {
	d := b.data(arc)
	d.prev = prev
	d.next = next
	b.data(prev).next = arc
	b.data(next).prev = arc

	h := b.insertionHeight()
	for level := 0; level < h; level++ {
		p := skips[level]
		n := b.nextSkip(p, level)
		if n == invalidArc {
			n = p
		}
		b.setPrevSkip(arc, level, p)
		b.setNextSkip(arc, level, n)
		b.setPrevSkip(n, level, arc)
		b.setNextSkip(p, level, arc)
		skips[level] = arc
	}
	b.len++
	b.levels[h-1]++
}

func (b *BeachLine) removeLinks(arc ArcHandle) {
	prev, next := b.Neighbors(arc)
	b.data(prev).next = next
	b.data(next).prev = prev

	h := b.levelHeight(arc)
	for level := 0; level < h; level++ {
		prevSkip, nextSkip := b.skips(arc, level)
		b.setPrevSkip(nextSkip, level, prevSkip)
		b.setNextSkip(prevSkip, level, nextSkip)
	}
	b.len--
	b.levels[h-1]--
}

// levelHeight reports how many skip levels arc participates in.
func (b *BeachLine) levelHeight(arc ArcHandle) int {
	for level := 0; level < height; level++ {
		if b.nextSkip(arc, level) == invalidArc {
			return level
		}
	}
	return height
}

// insertionHeight picks the skip height that keeps Σ 2^level·count
// minimal across levels, per spec §4.3(b); a brand-new (empty) line
// always inserts its first arc at full height so later descents have
// somewhere to start.
func (b *BeachLine) insertionHeight() int {
	if b.len == 0 {
		return height
	}
	bestHeight := 1
	bestRatio := b.levels[0]
	multiplier := 1
	for level := 0; level < height; level++ {
		ratio := b.levels[level] * multiplier
		if ratio < bestRatio {
			bestRatio = ratio
			bestHeight = level + 1
		}
		multiplier *= 2
	}
	return bestHeight
}
