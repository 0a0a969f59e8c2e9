package randomizer

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nullnet/boolnet"
	"github.com/katalvlaran/nullnet/constraint"
)

// NetworkRandomizer draws full boolean networks: it pairs a topology
// collaborator (any GraphRandomizer) with per-node function generation
// and rejection-tests the assembled network against its dynamical
// constraints. Topological constraints are never checked here; they
// are routed to the collaborator and hold already when a graph comes
// back from it.
type NetworkRandomizer struct {
	net         boolnet.Network
	trand       GraphRandomizer
	gen         FunctionGenerator
	constraints []constraint.Dynamical
	opts        options
}

// newRandomizer is the shared assembly path behind every constructor:
// resolve options, resolve the topology collaborator, then build the
// strategy's function generator (which may inspect both).
func newRandomizer(net boolnet.Network, makeGen func(o options, trand GraphRandomizer) (FunctionGenerator, error), opts []Option) (*NetworkRandomizer, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil reference network", ErrReference)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	trand, err := resolveTopology(net, o)
	if err != nil {
		return nil, err
	}
	gen, err := makeGen(o, trand)
	if err != nil {
		return nil, err
	}
	if o.fixCanal {
		gen, err = wrapCanalizing(net, gen)
		if err != nil {
			return nil, err
		}
	}

	return &NetworkRandomizer{net: net, trand: trand, gen: gen, opts: o}, nil
}

// resolveTopology picks the topology collaborator: an explicit
// instance keeps its own budget and RNG, a factory (or the
// FixedTopology default) is built over the reference wiring with this
// randomizer's budget and RNG propagated in.
func resolveTopology(net boolnet.Network, o options) (GraphRandomizer, error) {
	if o.topology != nil {
		return o.topology, nil
	}
	factory := o.factory
	if factory == nil {
		factory = FixedTopologyFactory
	}

	return factory(net.Graph(), WithTimeout(o.timeout), WithRand(o.rng))
}

// wrapCanalizing decorates gen so every generated function reproduces
// the reference node's canalizing status. Requires a logic-table
// reference; anything else fails with boolnet.ErrNoLogicTable.
func wrapCanalizing(net boolnet.Network, gen FunctionGenerator) (FunctionGenerator, error) {
	logic, err := boolnet.AsLogic(net)
	if err != nil {
		return nil, err
	}
	names := logic.Names()
	want := make(map[string]bool, len(names))
	for i, name := range names {
		canal, err := logic.IsCanalizing(i)
		if err != nil {
			return nil, err
		}
		want[name] = canal
	}

	return canalizingGen{inner: gen, want: want}, nil
}

// NewUniformBias builds a randomizer whose nodes all share one target
// bias: DefaultBias, or the value given via WithBias. Any reference
// network kind works, only its wiring is consulted.
func NewUniformBias(net boolnet.Network, opts ...Option) (*NetworkRandomizer, error) {
	return newRandomizer(net, func(o options, _ GraphRandomizer) (FunctionGenerator, error) {
		return uniformGen{p: o.bias}, nil
	}, opts)
}

// NewMeanBias builds a randomizer whose shared target bias is the
// arithmetic mean of the reference network's per-node biases. Requires
// a logic-table reference; anything else fails at construction with
// boolnet.ErrNoLogicTable. WithBias is ignored by this strategy.
func NewMeanBias(net boolnet.Network, opts ...Option) (*NetworkRandomizer, error) {
	return newRandomizer(net, func(_ options, _ GraphRandomizer) (FunctionGenerator, error) {
		logic, err := boolnet.AsLogic(net)
		if err != nil {
			return nil, err
		}

		return uniformGen{p: logic.MeanBias()}, nil
	}, opts)
}

// NewLocalBias builds a randomizer preserving each node's own
// reference bias rather than a global average. Requires a logic-table
// reference (boolnet.ErrNoLogicTable otherwise) and a topology
// collaborator that keeps the node-to-bias correspondence intact:
// FixedTopology or InDegree. Any other collaborator fails at
// construction with ErrIncompatibleTopology.
func NewLocalBias(net boolnet.Network, opts ...Option) (*NetworkRandomizer, error) {
	return newRandomizer(net, func(_ options, trand GraphRandomizer) (FunctionGenerator, error) {
		switch trand.(type) {
		case *FixedTopology, *InDegree:
		default:
			return nil, fmt.Errorf("%w: per-node bias needs FixedTopology or InDegree, got %T", ErrIncompatibleTopology, trand)
		}
		logic, err := boolnet.AsLogic(net)
		if err != nil {
			return nil, err
		}
		names := logic.Names()
		p := make(map[string]float64, len(names))
		for i, name := range names {
			b, err := logic.Bias(i)
			if err != nil {
				return nil, err
			}
			p[name] = b
		}

		return localGen{p: p}, nil
	}, opts)
}

// NewNetworkRandomizer builds a randomizer around a caller-supplied
// function generator, for strategies this package does not ship.
// A nil generator is invalid.
func NewNetworkRandomizer(net boolnet.Network, gen FunctionGenerator, opts ...Option) (*NetworkRandomizer, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: nil function generator", ErrOption)
	}

	return newRandomizer(net, func(_ options, _ GraphRandomizer) (FunctionGenerator, error) {
		return gen, nil
	}, opts)
}

// draw produces one candidate network: a fresh constraint-checked
// graph from the topology collaborator, then one generated function
// per node, assembled in reference node order.
func (r *NetworkRandomizer) draw() (*boolnet.LogicNetwork, error) {
	g, err := r.trand.Random()
	if err != nil {
		return nil, err
	}
	names := r.net.Names()
	rows := make([]boolnet.Row, 0, len(names))
	for pos, name := range names {
		inputs, err := g.Predecessors(name)
		if err != nil {
			return nil, fmt.Errorf("%w: drawn topology lacks node %q", ErrReference, name)
		}
		on, err := r.gen.Generate(NodeContext{Name: name, Pos: pos, K: len(inputs)}, r.opts.rng)
		if err != nil {
			return nil, err
		}
		rows = append(rows, boolnet.Row{Node: name, Inputs: inputs, On: on})
	}

	return boolnet.NewLogicNetwork(rows)
}

// check evaluates the dynamical constraints in assignment order.
func (r *NetworkRandomizer) check(net *boolnet.LogicNetwork) (bool, error) {
	for _, c := range r.constraints {
		ok, err := c.Satisfies(net)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Random draws one boolean network satisfying every constraint, both
// families. Each retry redraws the whole candidate, topology included.
// A spent budget fails with ErrExhausted; errors from the topology
// collaborator, the generator, or a constraint pass through unwrapped.
func (r *NetworkRandomizer) Random() (*boolnet.LogicNetwork, error) {
	return sample(r.draw, r.check, r.opts.timeout)
}

// Networks returns an unbounded lazy stream of independent draws.
// Consumers bound it by breaking out of the range.
func (r *NetworkRandomizer) Networks() iter.Seq2[*boolnet.LogicNetwork, error] {
	return sequence(r.Random)
}

// Network returns the reference network.
func (r *NetworkRandomizer) Network() boolnet.Network {
	return r.net
}

// SetNetwork replaces the reference network and pushes its wiring into
// the topology collaborator. A FixedTopology collaborator may reject
// the new wiring against its stored constraints, in which case nothing
// changes. Strategy parameters derived from the previous reference
// (mean bias, per-node biases, canalizing statuses) are kept as
// constructed.
func (r *NetworkRandomizer) SetNetwork(net boolnet.Network) error {
	if net == nil {
		return fmt.Errorf("%w: nil reference network", ErrReference)
	}
	if err := r.trand.SetGraph(net.Graph()); err != nil {
		return err
	}
	r.net = net

	return nil
}

// Constraints returns a copy of the dynamical partition. The
// topological partition lives on Topology().
func (r *NetworkRandomizer) Constraints() []constraint.Dynamical {
	return append([]constraint.Dynamical(nil), r.constraints...)
}

// SetConstraints replaces both partitions wholesale: dynamical
// constraints stay on this randomizer, topological ones are forwarded
// to the topology collaborator, and each partition keeps its relative
// assignment order. A nil entry or a foreign Constraint implementation
// fails with ErrConstraintKind and leaves both partitions untouched;
// an eager collaborator rejection (ErrUnsatisfiable) does the same.
func (r *NetworkRandomizer) SetConstraints(cs ...constraint.Constraint) error {
	tcs := make([]constraint.Topological, 0, len(cs))
	dcs := make([]constraint.Dynamical, 0, len(cs))
	for _, c := range cs {
		switch c := c.(type) {
		case constraint.Dynamical:
			dcs = append(dcs, c)
		case constraint.Topological:
			tcs = append(tcs, c)
		default:
			return fmt.Errorf("%w: %T", ErrConstraintKind, c)
		}
	}
	if err := r.trand.SetConstraints(tcs...); err != nil {
		return err
	}
	r.constraints = dcs

	return nil
}

// AddConstraint appends one constraint to the partition its family
// selects. Returns ErrConstraintKind for nil or foreign values, and
// passes through an eager collaborator rejection.
func (r *NetworkRandomizer) AddConstraint(c constraint.Constraint) error {
	switch c := c.(type) {
	case constraint.Dynamical:
		r.constraints = append(r.constraints, c)

		return nil
	case constraint.Topological:
		return r.trand.AddConstraint(c)
	default:
		return fmt.Errorf("%w: %T", ErrConstraintKind, c)
	}
}

// Topology returns the internal topology collaborator, mainly so
// callers can inspect or adjust the topological constraint partition.
func (r *NetworkRandomizer) Topology() GraphRandomizer {
	return r.trand
}

// Timeout returns the retry budget (<= 0 means unbounded).
func (r *NetworkRandomizer) Timeout() int {
	return r.opts.timeout
}

// Compile-time check: the packaged factories match TopologyFactory.
var _ = []TopologyFactory{FixedTopologyFactory, MeanDegreeFactory, InDegreeFactory, OutDegreeFactory}
