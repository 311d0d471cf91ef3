package relax

import "github.com/arcwise/svoronoi/sweep"

// Options configures one Build call.
//
// Rounds — number of Lloyd relaxation iterations to run before
// returning the final diagram. Round 1 is a plain sweep.Build with no
// relaxation applied. Must be ≥ 1. Default is 3, matching
// original_source/src/main.rs's generate_relaxed(&points, 3) call.
type Options struct {
	Rounds       int
	BuildOptions []sweep.Option
}

// Option is a functional option for Build.
type Option func(*Options)

// WithRounds overrides the number of relaxation rounds. Panics if
// rounds is less than 1.
func WithRounds(rounds int) Option {
	return func(o *Options) {
		if rounds < 1 {
			panic("relax: Rounds must be at least 1")
		}
		o.Rounds = rounds
	}
}

// WithBuildOptions forwards sweep.Option values to every round's
// underlying sweep.Build call (e.g. a custom CoincidenceEpsilon).
func WithBuildOptions(opts ...sweep.Option) Option {
	return func(o *Options) {
		o.BuildOptions = opts
	}
}

// DefaultOptions returns the default Build configuration.
func DefaultOptions() Options {
	return Options{Rounds: 3}
}
