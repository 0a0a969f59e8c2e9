package constraint

import (
	"errors"

	"github.com/katalvlaran/nullnet/boolnet"
	"github.com/katalvlaran/nullnet/digraph"
)

// Sentinel errors for constraint construction and evaluation.
var (
	// ErrNegativeTarget indicates a count-based constraint was given a
	// negative target.
	ErrNegativeTarget = errors.New("constraint: negative target count")

	// ErrUndefined indicates the checked property is undefined for the
	// subject, e.g. connectivity of the null graph.
	ErrUndefined = errors.New("constraint: property undefined for subject")

	// ErrNilSubject indicates Satisfies received a nil subject.
	ErrNilSubject = errors.New("constraint: nil subject")

	// ErrNilPredicate indicates an adapter wraps a nil function.
	ErrNilPredicate = errors.New("constraint: nil predicate")
)

// Constraint is the sealed root of the taxonomy. Implementations live
// in this package; arbitrary predicates enter through the
// TopologicalFunc and DynamicalFunc adapters.
type Constraint interface {
	sealed()
}

// Topological is a constraint judged against a directed graph.
type Topological interface {
	Constraint
	Satisfies(g *digraph.Graph) (bool, error)
}

// Dynamical is a constraint judged against a full boolean network.
type Dynamical interface {
	Constraint
	Satisfies(net boolnet.Network) (bool, error)
}

// TopologicalFunc adapts a bare graph predicate into a Topological
// constraint. The wrapped function must be non-nil by the time
// Satisfies runs.
type TopologicalFunc func(g *digraph.Graph) bool

func (TopologicalFunc) sealed() {}

// Satisfies evaluates the wrapped predicate.
// Returns ErrNilPredicate for a nil function and ErrNilSubject for a
// nil graph.
func (f TopologicalFunc) Satisfies(g *digraph.Graph) (bool, error) {
	if f == nil {
		return false, ErrNilPredicate
	}
	if g == nil {
		return false, ErrNilSubject
	}

	return f(g), nil
}

// DynamicalFunc adapts a bare network predicate into a Dynamical
// constraint. The wrapped function must be non-nil by the time
// Satisfies runs.
type DynamicalFunc func(net boolnet.Network) bool

func (DynamicalFunc) sealed() {}

// Satisfies evaluates the wrapped predicate.
// Returns ErrNilPredicate for a nil function and ErrNilSubject for a
// nil network.
func (f DynamicalFunc) Satisfies(net boolnet.Network) (bool, error) {
	if f == nil {
		return false, ErrNilPredicate
	}
	if net == nil {
		return false, ErrNilSubject
	}

	return f(net), nil
}

// Compile-time interface checks for every concrete constraint.
var (
	_ Topological = ExternalNodes{}
	_ Topological = Connected{}
	_ Topological = TopologicalFunc(nil)
	_ Dynamical   = Irreducible{}
	_ Dynamical   = CanalizingNodes{}
	_ Dynamical   = DynamicalFunc(nil)
)
