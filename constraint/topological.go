package constraint

import (
	"fmt"

	"github.com/katalvlaran/nullnet/digraph"
)

// ExternalNodes requires the candidate graph to contain exactly the
// target number of external nodes, nodes with in-degree zero.
type ExternalNodes struct {
	target int
}

// NewExternalNodes builds the constraint with a fixed target count.
// Returns ErrNegativeTarget for count < 0.
func NewExternalNodes(count int) (ExternalNodes, error) {
	if count < 0 {
		return ExternalNodes{}, fmt.Errorf("%w: %d", ErrNegativeTarget, count)
	}

	return ExternalNodes{target: count}, nil
}

// ExternalNodesOf infers the target from a reference graph: the number
// of its in-degree-0 nodes. Returns ErrNilSubject for a nil graph.
func ExternalNodesOf(g *digraph.Graph) (ExternalNodes, error) {
	if g == nil {
		return ExternalNodes{}, fmt.Errorf("%w: reference graph", ErrNilSubject)
	}

	return ExternalNodes{target: countExternal(g)}, nil
}

// Target returns the required external-node count.
func (c ExternalNodes) Target() int {
	return c.target
}

func (ExternalNodes) sealed() {}

// Satisfies reports whether g has exactly the target number of
// external nodes. Returns ErrNilSubject for a nil graph.
// Complexity: O(n)
func (c ExternalNodes) Satisfies(g *digraph.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilSubject
	}

	return countExternal(g) == c.target, nil
}

// countExternal counts nodes with no in-edges.
func countExternal(g *digraph.Graph) int {
	count := 0
	for _, id := range g.Nodes() {
		if k, err := g.InDegree(id); err == nil && k == 0 {
			count++
		}
	}

	return count
}

// Connected requires the candidate graph to be weakly connected:
// connected once edge direction is ignored.
type Connected struct{}

func (Connected) sealed() {}

// Satisfies reports weak connectivity. Connectivity of the null graph
// is undefined, so a zero-node subject yields ErrUndefined rather than
// a verdict. Returns ErrNilSubject for a nil graph.
// Complexity: O(n + m)
func (Connected) Satisfies(g *digraph.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilSubject
	}
	if g.NodeCount() == 0 {
		return false, fmt.Errorf("%w: connectivity of the null graph", ErrUndefined)
	}

	return g.WeaklyConnected(), nil
}
