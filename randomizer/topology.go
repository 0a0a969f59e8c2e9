package randomizer

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/nullnet/constraint"
	"github.com/katalvlaran/nullnet/digraph"
)

// GraphRandomizer is the engine surface of every topology strategy:
// rejection-sampled graph draws plus reference and constraint
// management. Dynamical constraints cannot be assigned here; the
// signatures admit only the topological family.
type GraphRandomizer interface {
	// Random draws one graph satisfying every stored constraint.
	Random() (*digraph.Graph, error)
	// Graphs returns an unbounded lazy stream of independent draws.
	Graphs() iter.Seq2[*digraph.Graph, error]
	// Graph returns the reference graph (read-only for callers).
	Graph() *digraph.Graph
	// SetGraph replaces the reference graph.
	SetGraph(g *digraph.Graph) error
	// Constraints returns a copy of the stored constraint list.
	Constraints() []constraint.Topological
	// SetConstraints replaces the stored list wholesale.
	SetConstraints(cs ...constraint.Topological) error
	// AddConstraint appends a single constraint.
	AddConstraint(c constraint.Topological) error
	// Timeout returns the retry budget (<= 0 means unbounded).
	Timeout() int
}

// graphBase carries the state all topology strategies share: the owned
// working clone of the reference graph, the constraint list, and the
// resolved options.
type graphBase struct {
	ref         *digraph.Graph
	constraints []constraint.Topological
	opts        options
}

// newGraphBase validates the reference, resolves the options, and
// takes an owning clone of g.
func newGraphBase(g *digraph.Graph, opts []Option) (graphBase, error) {
	if g == nil {
		return graphBase{}, fmt.Errorf("%w: nil reference graph", ErrReference)
	}
	o, err := resolve(opts)
	if err != nil {
		return graphBase{}, err
	}

	return graphBase{ref: g.Clone(), opts: o}, nil
}

// Graph returns the working reference. Callers must treat it as
// read-only and replace it via SetGraph rather than mutating.
func (b *graphBase) Graph() *digraph.Graph {
	return b.ref
}

// SetGraph replaces the reference with an owning clone of g.
// Returns ErrReference for a nil graph.
func (b *graphBase) SetGraph(g *digraph.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil reference graph", ErrReference)
	}
	b.ref = g.Clone()

	return nil
}

// Constraints returns a copy of the stored constraint list.
func (b *graphBase) Constraints() []constraint.Topological {
	return append([]constraint.Topological(nil), b.constraints...)
}

// SetConstraints replaces the stored list wholesale, discarding the
// previous list. Returns ErrConstraintKind for a nil entry.
func (b *graphBase) SetConstraints(cs ...constraint.Topological) error {
	fresh := make([]constraint.Topological, 0, len(cs))
	for _, c := range cs {
		if c == nil {
			return fmt.Errorf("%w: nil constraint", ErrConstraintKind)
		}
		fresh = append(fresh, c)
	}
	b.constraints = fresh

	return nil
}

// AddConstraint appends one constraint.
// Returns ErrConstraintKind for a nil value.
func (b *graphBase) AddConstraint(c constraint.Topological) error {
	if c == nil {
		return fmt.Errorf("%w: nil constraint", ErrConstraintKind)
	}
	b.constraints = append(b.constraints, c)

	return nil
}

// Timeout returns the retry budget (<= 0 means unbounded).
func (b *graphBase) Timeout() int {
	return b.opts.timeout
}

// check evaluates every stored constraint against the candidate in
// assignment order, short-circuiting on the first rejection or error.
func (b *graphBase) check(g *digraph.Graph) (bool, error) {
	for _, c := range b.constraints {
		ok, err := c.Satisfies(g)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// FixedTopology reproduces the reference graph on every draw.
//
// Because the output never varies, constraints are validated eagerly:
// assigning one the reference graph cannot satisfy fails immediately
// with ErrUnsatisfiable instead of surfacing as ErrExhausted at draw
// time, and Random is then guaranteed to pass its own rejection test.
type FixedTopology struct {
	graphBase
}

// NewFixedTopology builds the strategy over reference graph g.
// Returns ErrReference for a nil graph, or the recorded option error.
func NewFixedTopology(g *digraph.Graph, opts ...Option) (*FixedTopology, error) {
	base, err := newGraphBase(g, opts)
	if err != nil {
		return nil, err
	}

	return &FixedTopology{graphBase: base}, nil
}

// validate checks cs against the fixed reference, converting a
// rejection into ErrUnsatisfiable and passing evaluation errors
// through untouched.
func (s *FixedTopology) validate(cs []constraint.Topological) error {
	for _, c := range cs {
		if c == nil {
			return fmt.Errorf("%w: nil constraint", ErrConstraintKind)
		}
		ok, err := c.Satisfies(s.ref)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: reference graph rejected", ErrUnsatisfiable)
		}
	}

	return nil
}

// SetConstraints eagerly validates the whole list against the fixed
// reference before replacing the stored one; on failure the previous
// list stays in place.
func (s *FixedTopology) SetConstraints(cs ...constraint.Topological) error {
	if err := s.validate(cs); err != nil {
		return err
	}

	return s.graphBase.SetConstraints(cs...)
}

// AddConstraint eagerly validates c against the fixed reference before
// appending it.
func (s *FixedTopology) AddConstraint(c constraint.Topological) error {
	if err := s.validate([]constraint.Topological{c}); err != nil {
		return err
	}

	return s.graphBase.AddConstraint(c)
}

// SetGraph replaces the reference only if every stored constraint
// accepts the new graph; on failure the previous reference stays.
func (s *FixedTopology) SetGraph(g *digraph.Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil reference graph", ErrReference)
	}
	old := s.ref
	s.ref = g.Clone()
	if err := s.validate(s.constraints); err != nil {
		s.ref = old

		return err
	}

	return nil
}

// draw hands out an independent clone, so no two draws alias storage.
func (s *FixedTopology) draw() (*digraph.Graph, error) {
	return s.ref.Clone(), nil
}

// Random returns a clone of the reference graph.
// Complexity: O(n + m) per draw.
func (s *FixedTopology) Random() (*digraph.Graph, error) {
	return sample(s.draw, s.check, s.opts.timeout)
}

// Graphs returns an unbounded lazy stream of independent draws.
func (s *FixedTopology) Graphs() iter.Seq2[*digraph.Graph, error] {
	return sequence(s.Random)
}

// MeanDegree draws graphs with the reference's node and edge counts,
// therefore its exact mean total degree, but with edges placed
// uniformly at random over ordered node pairs (self-loops included).
type MeanDegree struct {
	graphBase
}

// NewMeanDegree builds the strategy over reference graph g.
// Returns ErrReference for a nil graph, or the recorded option error.
func NewMeanDegree(g *digraph.Graph, opts ...Option) (*MeanDegree, error) {
	base, err := newGraphBase(g, opts)
	if err != nil {
		return nil, err
	}

	return &MeanDegree{graphBase: base}, nil
}

// draw keeps the reference node IDs and scatters the same number of
// edges uniformly, redrawing collisions with already-placed edges.
// Complexity: O(n + m) expected while m is well below n².
func (s *MeanDegree) draw() (*digraph.Graph, error) {
	names := s.ref.Nodes()
	m := s.ref.EdgeCount()
	out := digraph.New()
	for _, id := range names {
		_ = out.AddNode(id)
	}
	for placed := 0; placed < m; {
		u := names[s.opts.rng.Intn(len(names))]
		v := names[s.opts.rng.Intn(len(names))]
		if out.HasEdge(u, v) {
			continue
		}
		_ = out.AddEdge(u, v)
		placed++
	}

	return out, nil
}

// Random draws one uniformly rewired graph satisfying every stored
// constraint.
func (s *MeanDegree) Random() (*digraph.Graph, error) {
	return sample(s.draw, s.check, s.opts.timeout)
}

// Graphs returns an unbounded lazy stream of independent draws.
func (s *MeanDegree) Graphs() iter.Seq2[*digraph.Graph, error] {
	return sequence(s.Random)
}

// InDegree draws graphs preserving every node's exact in-degree: each
// node receives the same number of in-edges as in the reference, from
// predecessors chosen uniformly without replacement.
type InDegree struct {
	graphBase
}

// NewInDegree builds the strategy over reference graph g.
// Returns ErrReference for a nil graph, or the recorded option error.
func NewInDegree(g *digraph.Graph, opts ...Option) (*InDegree, error) {
	base, err := newGraphBase(g, opts)
	if err != nil {
		return nil, err
	}

	return &InDegree{graphBase: base}, nil
}

// draw reassigns each node's predecessors by taking a fresh uniform
// k-subset of the node set, k being the node's reference in-degree.
// Complexity: O(n²) per draw.
func (s *InDegree) draw() (*digraph.Graph, error) {
	names := s.ref.Nodes()
	out := digraph.New()
	for _, id := range names {
		_ = out.AddNode(id)
	}
	for _, id := range names {
		k, err := s.ref.InDegree(id)
		if err != nil {
			return nil, err
		}
		perm := s.opts.rng.Perm(len(names))
		for _, pi := range perm[:k] {
			_ = out.AddEdge(names[pi], id)
		}
	}

	return out, nil
}

// Random draws one in-degree-preserving graph satisfying every stored
// constraint.
func (s *InDegree) Random() (*digraph.Graph, error) {
	return sample(s.draw, s.check, s.opts.timeout)
}

// Graphs returns an unbounded lazy stream of independent draws.
func (s *InDegree) Graphs() iter.Seq2[*digraph.Graph, error] {
	return sequence(s.Random)
}

// OutDegree draws graphs preserving every node's exact out-degree: each
// node keeps its reference fan-out, with successors chosen uniformly
// without replacement.
type OutDegree struct {
	graphBase
}

// NewOutDegree builds the strategy over reference graph g.
// Returns ErrReference for a nil graph, or the recorded option error.
func NewOutDegree(g *digraph.Graph, opts ...Option) (*OutDegree, error) {
	base, err := newGraphBase(g, opts)
	if err != nil {
		return nil, err
	}

	return &OutDegree{graphBase: base}, nil
}

// draw reassigns each node's successors by taking a fresh uniform
// k-subset of the node set, k being the node's reference out-degree.
// Complexity: O(n²) per draw.
func (s *OutDegree) draw() (*digraph.Graph, error) {
	names := s.ref.Nodes()
	out := digraph.New()
	for _, id := range names {
		_ = out.AddNode(id)
	}
	for _, id := range names {
		k, err := s.ref.OutDegree(id)
		if err != nil {
			return nil, err
		}
		perm := s.opts.rng.Perm(len(names))
		for _, pi := range perm[:k] {
			_ = out.AddEdge(id, names[pi])
		}
	}

	return out, nil
}

// Random draws one out-degree-preserving graph satisfying every stored
// constraint.
func (s *OutDegree) Random() (*digraph.Graph, error) {
	return sample(s.draw, s.check, s.opts.timeout)
}

// Graphs returns an unbounded lazy stream of independent draws.
func (s *OutDegree) Graphs() iter.Seq2[*digraph.Graph, error] {
	return sequence(s.Random)
}

// Packaged factories adapting the strategy constructors to the
// TopologyFactory shape, for WithTopologyFactory.
var (
	FixedTopologyFactory TopologyFactory = func(g *digraph.Graph, opts ...Option) (GraphRandomizer, error) {
		return NewFixedTopology(g, opts...)
	}
	MeanDegreeFactory TopologyFactory = func(g *digraph.Graph, opts ...Option) (GraphRandomizer, error) {
		return NewMeanDegree(g, opts...)
	}
	InDegreeFactory TopologyFactory = func(g *digraph.Graph, opts ...Option) (GraphRandomizer, error) {
		return NewInDegree(g, opts...)
	}
	OutDegreeFactory TopologyFactory = func(g *digraph.Graph, opts ...Option) (GraphRandomizer, error) {
		return NewOutDegree(g, opts...)
	}
)

// Compile-time checks: every strategy satisfies the engine surface.
var (
	_ GraphRandomizer = (*FixedTopology)(nil)
	_ GraphRandomizer = (*MeanDegree)(nil)
	_ GraphRandomizer = (*InDegree)(nil)
	_ GraphRandomizer = (*OutDegree)(nil)
)
