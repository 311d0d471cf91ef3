// Package diagram is the concrete Visitor (spec §6) that the sweep
// driver feeds: it allocates dense cell identifiers, records Voronoi
// vertices and edges as they are emitted, and performs the finishing
// pass that turns the raw emission stream into a cell/vertex/edge mesh
// with each cell's boundary ordered clockwise around its site.
//
// Grounded on original_source/src/diagram.rs (Diagram, cleanup_vertices,
// finish_faces, compare_clockwise) and core/methods_vertices.go's
// dense-handle storage idiom. The spatial index and run identifier are
// ambient additions (no equivalent in original_source) so the package
// is independently useful as a point-location service, grounded on
// github.com/google/btree and github.com/google/uuid respectively.
package diagram
