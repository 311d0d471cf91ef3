package sphere

import "errors"

// Sentinel errors for the sphere package.
var (
	// ErrZeroVector indicates a raw 3-vector with zero norm was given to
	// NewPoint; it has no well-defined direction on the unit sphere.
	ErrZeroVector = errors.New("sphere: cannot normalise a zero vector")
)
