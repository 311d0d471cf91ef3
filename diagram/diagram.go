package diagram

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/google/uuid"

	"github.com/arcwise/svoronoi/sphere"
)

// Diagram stores the cell/vertex/edge mesh the sweep driver builds.
// It implements the sweep's Visitor contract (spec §6) directly: Cell,
// Vertex, and Edge are called by the driver as it emits the sweep's
// results.
//
// Grounded on original_source/src/diagram.rs's Diagram.
type Diagram struct {
	// RunID identifies one Build invocation, useful for correlating
	// logs across a relaxation's repeated sweeps.
	RunID uuid.UUID

	cells    []cellData
	vertices []vertexData
	edges    []edgeData
}

// New creates an empty diagram.
func New() *Diagram {
	return &Diagram{RunID: uuid.New()}
}

// Cell allocates a dense cell identifier for point, in sweep order
// (spec §6's cell() hook).
func (d *Diagram) Cell(point sphere.Point) CellHandle {
	d.cells = append(d.cells, cellData{point: point})
	return CellHandle(len(d.cells) - 1)
}

// Vertex records a Voronoi vertex at position with its three incident
// cells (spec §6's vertex() hook).
func (d *Diagram) Vertex(position sphere.Point, cells [3]CellHandle) VertexHandle {
	d.vertices = append(d.vertices, vertexData{position: position, cells: cells})
	return VertexHandle(len(d.vertices) - 1)
}

// Edge records an edge between two previously emitted vertices (spec
// §6's edge() hook). Cell membership for the edge is resolved later,
// in Finish.
func (d *Diagram) Edge(v0, v1 VertexHandle) EdgeHandle {
	edge := EdgeHandle(len(d.edges))
	d.edges = append(d.edges, edgeData{vertices: [2]VertexHandle{v0, v1}})
	d.vertices[v0].edges = append(d.vertices[v0].edges, edge)
	d.vertices[v1].edges = append(d.vertices[v1].edges, edge)
	return edge
}

// CellCount reports the number of cells.
func (d *Diagram) CellCount() int { return len(d.cells) }

// CellPoint returns the site point a cell was built from.
func (d *Diagram) CellPoint(c CellHandle) sphere.Point { return d.cells[c].point }

// CellVertices returns the cell's boundary vertices, clockwise around
// its site after Finish has run.
func (d *Diagram) CellVertices(c CellHandle) []VertexHandle { return d.cells[c].vertices }

// CellEdges returns the cell's boundary edges after Finish has run.
func (d *Diagram) CellEdges(c CellHandle) []EdgeHandle { return d.cells[c].edges }

// Vertices returns the handles of all live vertices (those Finish did
// not drop as degenerate).
func (d *Diagram) Vertices() []VertexHandle {
	out := make([]VertexHandle, 0, len(d.vertices))
	for i, v := range d.vertices {
		if !v.removed {
			out = append(out, VertexHandle(i))
		}
	}
	return out
}

// VertexPosition returns a vertex's 3D position.
func (d *Diagram) VertexPosition(v VertexHandle) sphere.Point { return d.vertices[v].position }

// VertexCells returns a vertex's three incident cells.
func (d *Diagram) VertexCells(v VertexHandle) [3]CellHandle { return d.vertices[v].cells }

// Edges returns the handles of all live edges.
func (d *Diagram) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, len(d.edges))
	for i, e := range d.edges {
		if !e.removed {
			out = append(out, EdgeHandle(i))
		}
	}
	return out
}

// EdgeVertices returns an edge's two endpoints.
func (d *Diagram) EdgeVertices(e EdgeHandle) (VertexHandle, VertexHandle) {
	v := d.edges[e].vertices
	return v[0], v[1]
}

// EdgeCells returns an edge's two separating cells, valid after Finish.
func (d *Diagram) EdgeCells(e EdgeHandle) (CellHandle, CellHandle) {
	c := d.edges[e].cells
	return c[0], c[1]
}

// OtherEdgeVertex returns the endpoint of edge that isn't vertex.
func (d *Diagram) OtherEdgeVertex(edge EdgeHandle, vertex VertexHandle) (VertexHandle, error) {
	v0, v1 := d.EdgeVertices(edge)
	switch vertex {
	case v0:
		return v1, nil
	case v1:
		return v0, nil
	default:
		return 0, ErrNotIncident
	}
}

// Finish runs the post-processing pass the raw emission stream needs
// before cell boundaries and edge-cell membership can be queried:
// degree-2 "fake" vertices (an artefact of near-coincident circle
// events) are collapsed into a direct edge between their two true
// neighbours, then every edge's separating cell pair and every cell's
// clockwise vertex ring are computed.
//
// Grounded on original_source/src/diagram.rs's cleanup_vertices and
// finish_faces.
func (d *Diagram) Finish() {
	d.cleanupVertices()
	d.finishFaces()
}

func (d *Diagram) cleanupVertices() {
	type bridge struct{ v0, v1 VertexHandle }
	var newEdges []bridge
	for i := range d.vertices {
		v := VertexHandle(i)
		if d.vertices[i].removed || countDistinctCells(d.vertices[i].cells) != 2 {
			continue
		}
		edges := d.vertices[i].edges
		if len(edges) != 2 {
			continue
		}
		other0, err0 := d.OtherEdgeVertex(edges[0], v)
		other1, err1 := d.OtherEdgeVertex(edges[1], v)
		if err0 != nil || err1 != nil {
			continue
		}
		newEdges = append(newEdges, bridge{other0, other1})
	}
	for _, b := range newEdges {
		d.Edge(b.v0, b.v1)
	}

	isBadVertex := func(v VertexHandle) bool {
		return countDistinctCells(d.vertices[v].cells) <= 2
	}
	for i := range d.edges {
		e := &d.edges[i]
		if e.removed {
			continue
		}
		if isBadVertex(e.vertices[0]) || isBadVertex(e.vertices[1]) {
			e.removed = true
		}
	}
	for i := range d.vertices {
		if !d.vertices[i].removed && isBadVertex(VertexHandle(i)) {
			d.vertices[i].removed = true
		}
	}
}

// countDistinctCells reports how many of a vertex's up-to-three
// incident cells are pairwise distinct. The sweep's attachCircle
// never schedules a circle event over cells that are not pairwise
// distinct, so emitted vertices normally have three; a count below
// three is what marks a vertex for cleanup.
func countDistinctCells(cells [3]CellHandle) int {
	seen := make(map[CellHandle]struct{}, 3)
	for _, c := range cells {
		seen[c] = struct{}{}
	}
	return len(seen)
}

func (d *Diagram) finishFaces() {
	for i := range d.edges {
		e := &d.edges[i]
		if e.removed {
			continue
		}
		v0, v1 := e.vertices[0], e.vertices[1]
		common := commonCells(d.vertices[v0].cells, d.vertices[v1].cells)
		e.cells = common
		d.cells[common[0]].edges = append(d.cells[common[0]].edges, EdgeHandle(i))
		d.cells[common[1]].edges = append(d.cells[common[1]].edges, EdgeHandle(i))
	}

	for i := range d.vertices {
		if d.vertices[i].removed {
			continue
		}
		v := VertexHandle(i)
		for _, c := range d.vertices[i].cells {
			d.cells[c].vertices = append(d.cells[c].vertices, v)
		}
	}

	for i := range d.cells {
		c := &d.cells[i]
		n := c.point.Pos.Vector
		sort.Slice(c.vertices, func(a, b int) bool {
			va := d.vertices[c.vertices[a]].position.Pos.Vector
			vb := d.vertices[c.vertices[b]].position.Pos.Vector
			return compareClockwise(n, va, vb) < 0
		})
	}
}

// commonCells returns the two handles shared between a and b, the
// pair of cells an edge separates. Panics if the sets don't share
// exactly two entries; Finish is only ever called on a diagram whose
// bad vertices have already been dropped, so this invariant always
// holds by construction (spec invariant 5).
func commonCells(a, b [3]CellHandle) [2]CellHandle {
	var out [2]CellHandle
	n := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out[n] = x
				n++
			}
		}
	}
	if n != 2 {
		panic("diagram: edge endpoints do not share exactly two cells")
	}
	return out
}

// compareClockwise orders v1, v2 as seen from the cell site direction
// n, per original_source/src/diagram.rs's compare_clockwise.
func compareClockwise(n, v1, v2 r3.Vector) float64 {
	return v1.Sub(n).Cross(v2.Sub(n)).Dot(n)
}
