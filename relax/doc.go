// Package relax implements Lloyd relaxation over the spherical sweep:
// it repeatedly builds a diagram, replaces each site with the centroid
// of its cell's vertices, and re-normalises the result onto the unit
// sphere before sweeping again.
//
// Grounded on original_source/src/generator.rs's CentroidGenerator
// (accumulate vertex positions into a per-cell running sum/count) and
// src/relaxed.rs's build_relaxed (the round-bounded rebuild loop), in
// the style of tsp/two_opt.go's iterative local-search driver.
package relax
