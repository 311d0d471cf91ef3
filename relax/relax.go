package relax

import (
	"github.com/golang/geo/r3"

	"github.com/arcwise/svoronoi/diagram"
	"github.com/arcwise/svoronoi/sphere"
	"github.com/arcwise/svoronoi/sweep"
)

// Build runs Lloyd relaxation: it sweeps points, then for Rounds−1
// further iterations replaces each site with the re-normalised
// centroid of its cell's boundary vertices and sweeps again. The final
// round's diagram is returned.
//
// Complexity: Rounds times the cost of one sweep.Build (O(n log n)
// sweep plus its O(n²) coincidence pass), each round paying the full
// cost independently (no incremental reuse between rounds).
func Build(points []sphere.Point, opts ...Option) (*diagram.Diagram, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	sites := points
	var d *diagram.Diagram
	var err error
	for round := 0; round < cfg.Rounds; round++ {
		d, err = sweep.Build(sites, cfg.BuildOptions...)
		if err != nil {
			return nil, err
		}
		if round == cfg.Rounds-1 {
			break
		}
		sites = centroidSites(d)
	}
	return d, nil
}

// centroidSites computes one relaxation step: for each cell, the
// centroid of its boundary vertices' positions, re-normalised back
// onto the unit sphere. A cell with no boundary vertices (e.g. one of
// only two surviving sites) keeps its current site position, per
// original_source/src/generator.rs's CentroidGenerator, whose Centroid
// starts at count=1.0 so an untouched cell's "centroid" is its own
// prior contribution.
func centroidSites(d *diagram.Diagram) []sphere.Point {
	n := d.CellCount()
	sums := make([]r3.Vector, n)
	counts := make([]float64, n)

	for _, v := range d.Vertices() {
		pos := d.VertexPosition(v).Pos.Vector
		for _, c := range d.VertexCells(v) {
			sums[c] = sums[c].Add(pos)
			counts[c]++
		}
	}

	out := make([]sphere.Point, n)
	for c := 0; c < n; c++ {
		if counts[c] == 0 {
			out[c] = d.CellPoint(diagram.CellHandle(c))
			continue
		}
		p, err := sphere.NewPoint(sums[c])
		if err != nil {
			out[c] = d.CellPoint(diagram.CellHandle(c))
			continue
		}
		out[c] = p
	}
	return out
}
