// Package svqueue implements the sweep's event queue: a min-heap over θ
// holding site and circle events, with lazy cancellation of circle
// events left to the caller (the queue never back-references the beach
// line — see spec design notes in DESIGN.md).
//
// Grounded on dijkstra/dijkstra.go's container/heap "lazy-decrease-key"
// idiom (nodeItem/nodePQ) and original_source/src/events.rs's
// BinaryHeap<Event> with invalidate-in-place circle events.
package svqueue
