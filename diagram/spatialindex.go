package diagram

import (
	"math"

	"github.com/google/btree"

	"github.com/arcwise/svoronoi/sphere"
)

// SpatialIndex answers "which cell is nearest this azimuth" queries
// over a finished diagram's cells, ordered by φ. It's a coarse
// point-location aid for callers that want to start a great-circle
// nearest-site search from a good candidate rather than scanning every
// cell; it is not part of the sweep itself.
//
// Grounded on other_examples' mikenye-geom2d line-segment sweep event
// queue, which keys a btree.BTreeG on a geometric ordering the same
// way this index keys on φ.
type SpatialIndex struct {
	tree *btree.BTreeG[indexEntry]
}

type indexEntry struct {
	phi  float64
	cell CellHandle
}

func lessByPhi(a, b indexEntry) bool {
	return a.phi < b.phi || (a.phi == b.phi && a.cell < b.cell)
}

// NewSpatialIndex builds an index over every cell currently in d.
func NewSpatialIndex(d *Diagram) *SpatialIndex {
	tree := btree.NewG(32, lessByPhi)
	for i, c := range d.cells {
		tree.ReplaceOrInsert(indexEntry{phi: c.point.Phi.Value.Radians(), cell: CellHandle(i)})
	}
	return &SpatialIndex{tree: tree}
}

// Nearest returns the cell whose φ is closest to query's, wrapping
// around ±π. Ties are broken toward the cell with the smaller handle.
func (idx *SpatialIndex) Nearest(query sphere.Point) (CellHandle, bool) {
	if idx.tree.Len() == 0 {
		return 0, false
	}
	qphi := query.Phi.Value.Radians()
	pivot := indexEntry{phi: qphi}

	var after, before indexEntry
	haveAfter, haveBefore := false, false
	idx.tree.AscendGreaterOrEqual(pivot, func(e indexEntry) bool {
		after, haveAfter = e, true
		return false
	})
	idx.tree.DescendLessOrEqual(pivot, func(e indexEntry) bool {
		before, haveBefore = e, true
		return false
	})

	if !haveAfter {
		after, haveAfter = idx.tree.Min()
	}
	if !haveBefore {
		before, haveBefore = idx.tree.Max()
	}

	switch {
	case haveAfter && haveBefore:
		dAfter := math.Abs(sphere.WrapSymmetric(after.phi - qphi))
		dBefore := math.Abs(sphere.WrapSymmetric(qphi - before.phi))
		if dAfter < dBefore || (dAfter == dBefore && after.cell <= before.cell) {
			return after.cell, true
		}
		return before.cell, true
	case haveAfter:
		return after.cell, true
	case haveBefore:
		return before.cell, true
	default:
		return 0, false
	}
}

// Len reports how many cells the index covers.
func (idx *SpatialIndex) Len() int { return idx.tree.Len() }
