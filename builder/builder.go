package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphord/core"
)

// Sentinel errors returned by constructors and Build.
var (
	// ErrTooFewVertices indicates a constructor received an n below its
	// topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadDimension indicates a non-positive grid dimension.
	ErrBadDimension = errors.New("builder: non-positive grid dimension")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("builder: probability outside [0,1]")

	// ErrNilConstructor indicates a nil Constructor was passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// config is the resolved, immutable builder configuration for one Build
// call.
type config struct {
	idFormat string // fmt verb taking one int, e.g. "v%d"
	seed     int64  // RNG seed for stochastic constructors
}

// Option adjusts the builder configuration.
type Option func(*config)

// WithIDFormat sets the fmt format string used to derive vertex IDs from
// their index. The format must consume exactly one integer verb.
func WithIDFormat(format string) Option {
	return func(c *config) { c.idFormat = format }
}

// WithSeed fixes the RNG seed used by stochastic constructors, making
// their output reproducible. Default seed is 1.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

func newConfig(opts []Option) config {
	c := config{idFormat: "v%d", seed: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// id renders the vertex ID for index i under this configuration.
func (c config) id(i int) string { return fmt.Sprintf(c.idFormat, i) }

// Constructor applies one deterministic topology to g. Implementations
// validate their parameters first, add vertices in increasing index order,
// and emit edges in a fixed documented order.
type Constructor func(g *core.Graph, cfg config) error

// Build creates a graph with the given core options, resolves the builder
// options once, and applies every constructor in order. The first
// constructor error aborts the build; no partial cleanup is attempted.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder.Build: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder.Build: %w", err)
		}
	}

	return g, nil
}
