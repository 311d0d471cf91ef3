// Package sweep drives the spherical Fortune sweep: it owns the event
// queue, the beach line, and the diagram being built, and implements
// the site/circle event handlers that turn one into the other.
//
// Grounded on original_source/src/builder.rs's Builder (the most
// evolved revision: attach_circle/detach_circle around a generic
// arc-neighbour lookup) and dijkstra/dijkstra.go's numbered-precondition
// validation and functional-options style.
package sweep
