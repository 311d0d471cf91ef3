package pointgen

import "errors"

// ErrInvalidCount is returned by Random when asked for a negative
// number of points.
var ErrInvalidCount = errors.New("pointgen: n must be non-negative")
