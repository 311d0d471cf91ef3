// Package voronoi is the single public entry-point for svoronoi: it
// composes the sweep driver and the Lloyd relaxation loop behind one
// Build call, the way builder/api.go's BuildGraph composes graph
// constructors behind one orchestrator.
//
// Subpackages:
//
//	sphere/    — spherical point/angle primitives
//	geometry/  — arc-intersection and circumcircle formulas
//	svqueue/   — θ-ordered site/circle event queue
//	beachline/ — skip-list ordered beach line of arcs
//	diagram/   — vertex/edge/cell mesh and its post-processing pass
//	sweep/     — the Fortune-sweep driver (Build)
//	relax/     — Lloyd relaxation on top of sweep
//	pointgen/  — seeded random clouds and fixed Platonic fixtures
package voronoi
