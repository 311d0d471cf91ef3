package diagram

import "errors"

// ErrNotIncident is returned by OtherEdgeVertex when the given vertex
// is not one of the edge's two endpoints.
var ErrNotIncident = errors.New("diagram: vertex not incident to edge")
