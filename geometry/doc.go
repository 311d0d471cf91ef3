// Package geometry computes the two pieces of numerically delicate
// arc math the sweep needs: where two neighbouring beach-line arcs
// currently intersect (Intersect), and the circumcircle of three
// consecutive arcs (Circumcircle), which determines whether and when
// a circle event fires.
//
// Grounded on original_source/src/voronoi.rs's arc_intersection and
// try_add_circle (the intersection formula spec §4.4 transcribes) and
// src/event.rs's intersect (an earlier, incompatible wrap convention —
// deliberately not used here; see DESIGN.md Open Question #1).
package geometry
