package sweep

import "errors"

// ErrFewPoints is returned when fewer than two distinct points remain
// after coincidence deduplication (spec §6, §4.5.4).
var ErrFewPoints = errors.New("sweep: fewer than two distinct input points")
