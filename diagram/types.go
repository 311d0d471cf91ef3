package diagram

import "github.com/arcwise/svoronoi/sphere"

// CellHandle identifies a Voronoi cell, one per distinct input site.
type CellHandle int

// VertexHandle identifies a Voronoi vertex.
type VertexHandle int

// EdgeHandle identifies a Voronoi edge.
type EdgeHandle int

type cellData struct {
	point    sphere.Point
	edges    []EdgeHandle
	vertices []VertexHandle
}

type vertexData struct {
	position sphere.Point
	cells    [3]CellHandle
	edges    []EdgeHandle
	removed  bool
}

type edgeData struct {
	vertices [2]VertexHandle
	cells    [2]CellHandle
	removed  bool
}
