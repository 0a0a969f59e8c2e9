package randomizer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/nullnet/digraph"
)

// Defaults shared by every randomizer constructor.
const (
	// DefaultTimeout bounds one Random() call at 1000 rejection attempts.
	DefaultTimeout = 1000

	// DefaultBias is the target bias of UniformBias generation unless
	// WithBias overrides it.
	DefaultBias = 0.5

	// MaxArity caps the width of generated logic functions; a node with
	// more inputs would enumerate over 2^MaxArity conditions.
	MaxArity = 25
)

// TopologyFactory builds a topology randomizer over a working graph.
// The packaged factories (FixedTopologyFactory, MeanDegreeFactory,
// InDegreeFactory, OutDegreeFactory) wrap the four strategy
// constructors in this shape for WithTopologyFactory.
type TopologyFactory func(g *digraph.Graph, opts ...Option) (GraphRandomizer, error)

// Option configures randomizer construction via functional arguments.
// An invalid value is recorded internally and surfaced by the
// constructor, wrapped around the matching sentinel. Options a
// constructor does not consume are ignored.
type Option func(*options)

// options is the resolved configuration shared by all constructors.
type options struct {
	timeout  int
	rng      *rand.Rand
	bias     float64
	topology GraphRandomizer
	factory  TopologyFactory
	fixCanal bool

	// first error recorded during option application
	err error
}

// defaultOptions returns the baseline configuration:
//   - DefaultTimeout rejection attempts per draw
//   - DefaultBias for uniform generation
//   - no explicit RNG (resolve seeds one from the process-wide source)
//   - FixedTopology as the implied topology collaborator.
func defaultOptions() options {
	return options{
		timeout: DefaultTimeout,
		bias:    DefaultBias,
	}
}

// resolve applies opts over the defaults and materializes the RNG.
// Without WithSeed or WithRand the stream is seeded from the
// process-wide generator, so independent randomizers never share state.
func resolve(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return o, nil
}

// WithTimeout sets the retry budget for one Random() call.
//
//	n > 0:  fail with ErrExhausted after n rejected candidates
//	n <= 0: retry without bound (the caller accepts the risk of
//	        non-termination under unsatisfiable constraints)
func WithTimeout(n int) Option {
	return func(o *options) { o.timeout = n }
}

// WithSeed derives a deterministic RNG from seed. Draws become
// reproducible across runs with the same seed and option set.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG, which the randomizer then owns.
// A nil value is invalid → ErrOption.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOption)
			return
		}
		o.rng = r
	}
}

// WithBias sets the target bias for uniform function generation.
// Values outside [0,1] (and NaN) are invalid → ErrBias.
func WithBias(p float64) Option {
	return func(o *options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: %v", ErrBias, p)
			return
		}
		o.bias = p
	}
}

// WithTopology hands the network randomizer an existing topology
// randomizer instance, keeping that instance's own budget and RNG.
// A nil instance is invalid → ErrOption.
func WithTopology(tr GraphRandomizer) Option {
	return func(o *options) {
		if tr == nil {
			o.err = fmt.Errorf("%w: nil topology randomizer", ErrOption)
			return
		}
		o.topology = tr
	}
}

// WithTopologyFactory lets the network randomizer build its own
// topology collaborator over the reference wiring, propagating its
// retry budget and RNG into the new instance.
// A nil factory is invalid → ErrOption.
func WithTopologyFactory(f TopologyFactory) Option {
	return func(o *options) {
		if f == nil {
			o.err = fmt.Errorf("%w: nil topology factory", ErrOption)
			return
		}
		o.factory = f
	}
}

// WithFixCanalizing additionally resamples each node's function until
// its canalizing status matches the reference node's status. Requires a
// logic-table reference network.
func WithFixCanalizing() Option {
	return func(o *options) { o.fixCanal = true }
}
