package voronoi

import (
	"github.com/arcwise/svoronoi/diagram"
	"github.com/arcwise/svoronoi/relax"
	"github.com/arcwise/svoronoi/sphere"
	"github.com/arcwise/svoronoi/sweep"
)

// Options configures one Build call.
//
// Relaxations — number of Lloyd relaxation passes to run after the
// initial sweep. 0 (the default) disables relaxation: Build degrades
// to a single sweep.Build call.
type Options struct {
	Relaxations  int
	SweepOptions []sweep.Option
}

// Option is a functional option for Build.
type Option func(*Options)

// WithRelaxations enables Lloyd relaxation for n passes after the
// initial sweep. Panics if n is negative.
func WithRelaxations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("voronoi: Relaxations must be non-negative")
		}
		o.Relaxations = n
	}
}

// WithSweepOptions forwards sweep.Option values to every underlying
// sweep.Build call, including each relaxation round's.
func WithSweepOptions(opts ...sweep.Option) Option {
	return func(o *Options) {
		o.SweepOptions = opts
	}
}

// DefaultOptions returns the default Build configuration.
func DefaultOptions() Options {
	return Options{Relaxations: 0}
}

// Build creates a new spherical Voronoi diagram from points and
// returns it, applying sweep.Build once and, if Relaxations > 0,
// following it with that many Lloyd relaxation passes.
//
// Rationale:
//   - Single public entry-point keeps option resolution and package
//     wiring in one place; callers needing lower-level control can
//     still import sweep or relax directly.
//
// Complexity: one sweep.Build (O(n log n) sweep plus its O(n²)
// coincidence pass) with Relaxations == 0; Relaxations+1 of them
// otherwise, each pass paying the full sweep cost independently.
func Build(points []sphere.Point, opts ...Option) (*diagram.Diagram, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if cfg.Relaxations == 0 {
		return sweep.Build(points, cfg.SweepOptions...)
	}

	relaxOpts := make([]relax.Option, 0, 2)
	relaxOpts = append(relaxOpts, relax.WithRounds(cfg.Relaxations+1))
	if len(cfg.SweepOptions) > 0 {
		relaxOpts = append(relaxOpts, relax.WithBuildOptions(cfg.SweepOptions...))
	}
	return relax.Build(points, relaxOpts...)
}
