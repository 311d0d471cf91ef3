package svqueue

import (
	"container/heap"

	"github.com/golang/geo/s1"

	"github.com/arcwise/svoronoi/sphere"
)

// EventQueue is a min-priority structure keyed by θ (spec §4.2).
// Ties are broken first by Kind (site events win over circle events
// scheduled at the same θ — spec §4.2's "design where site arrivals
// always win ties") and then by insertion order, so the queue's
// behaviour never depends on accidental heap shuffling.
type EventQueue struct {
	items  eventHeap
	nextSeq uint64
}

// NewEventQueue returns an empty queue ready for seeding.
func NewEventQueue() *EventQueue {
	q := &EventQueue{}
	heap.Init(&q.items)
	return q
}

// PushSite schedules the arrival of cell at colatitude theta.
func (q *EventQueue) PushSite(cell int, theta s1.Angle) {
	q.push(Event{Theta: theta, Kind: KindSite, Cell: cell})
}

// PushCircle schedules the disappearance of arc at colatitude theta,
// recording the vertex position (centre) the circle will emit.
func (q *EventQueue) PushCircle(arc ArcHandle, theta s1.Angle, centre sphere.Point) {
	q.push(Event{Theta: theta, Kind: KindCircle, Arc: arc, Center: centre})
}

func (q *EventQueue) push(e Event) {
	e.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.items, e)
}

// Pop returns the smallest-θ event, or ok=false if the queue is empty.
// Lazy cancellation of stale circle events is the caller's
// responsibility (svqueue holds no reference into the beach line to
// check itself — see spec §9's design notes); the driver checks the
// named arc's circle_valid flag before acting on a Circle event.
func (q *EventQueue) Pop() (Event, bool) {
	if q.items.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.items).(Event), true
}

// PeekTheta returns the smallest queued θ without popping. Like Pop,
// it does not skip stale circle events, so the θ it reports may belong
// to an event the driver will discard.
func (q *EventQueue) PeekTheta() (s1.Angle, bool) {
	if q.items.Len() == 0 {
		return 0, false
	}
	return q.items[0].Theta, true
}

// Len reports the number of events still queued.
func (q *EventQueue) Len() int { return q.items.Len() }

// eventHeap is the container/heap.Interface implementation backing
// EventQueue, in the same shape as dijkstra/dijkstra.go's nodePQ.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Theta != h[j].Theta {
		return h[i].Theta < h[j].Theta
	}
	if h[i].Kind != h[j].Kind {
		return h[i].Kind < h[j].Kind // KindSite (0) before KindCircle (1)
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(Event)) }

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
