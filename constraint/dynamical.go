package constraint

import (
	"fmt"

	"github.com/katalvlaran/nullnet/boolnet"
)

// Irreducible requires every node of the candidate network to depend
// logically on each of its declared inputs: no wired-but-ignored
// regulators. Only networks with an explicit logic table can be
// judged; others yield boolnet.ErrNoLogicTable.
type Irreducible struct{}

func (Irreducible) sealed() {}

// Satisfies walks every (node, input) pair and fails on the first
// input the node is insensitive to.
// Complexity: O(Σ k_i·|On_i|)
func (Irreducible) Satisfies(net boolnet.Network) (bool, error) {
	if net == nil {
		return false, ErrNilSubject
	}
	logic, err := boolnet.AsLogic(net)
	if err != nil {
		return false, err
	}

	for _, row := range logic.Rows() {
		for _, in := range row.Inputs {
			dep, err := logic.DependsOn(row.Node, in)
			if err != nil {
				return false, err
			}
			if !dep {
				return false, nil
			}
		}
	}

	return true, nil
}

// CanalizingNodes requires the candidate network to contain exactly
// the target number of canalizing nodes. Only networks with an
// explicit logic table can be judged; others yield
// boolnet.ErrNoLogicTable.
type CanalizingNodes struct {
	target int
}

// NewCanalizingNodes builds the constraint with a fixed target count.
// Returns ErrNegativeTarget for count < 0.
func NewCanalizingNodes(count int) (CanalizingNodes, error) {
	if count < 0 {
		return CanalizingNodes{}, fmt.Errorf("%w: %d", ErrNegativeTarget, count)
	}

	return CanalizingNodes{target: count}, nil
}

// CanalizingNodesOf infers the target from a reference network: its
// own canalizing-node count. Returns ErrNilSubject for a nil network
// and boolnet.ErrNoLogicTable for one without a table.
func CanalizingNodesOf(net boolnet.Network) (CanalizingNodes, error) {
	if net == nil {
		return CanalizingNodes{}, fmt.Errorf("%w: reference network", ErrNilSubject)
	}
	logic, err := boolnet.AsLogic(net)
	if err != nil {
		return CanalizingNodes{}, err
	}

	return CanalizingNodes{target: logic.CanalizingCount()}, nil
}

// Target returns the required canalizing-node count.
func (c CanalizingNodes) Target() int {
	return c.target
}

func (CanalizingNodes) sealed() {}

// Satisfies reports whether the candidate's canalizing-node count
// equals the target.
// Complexity: O(Σ k_i·2^k_i)
func (c CanalizingNodes) Satisfies(net boolnet.Network) (bool, error) {
	if net == nil {
		return false, ErrNilSubject
	}
	logic, err := boolnet.AsLogic(net)
	if err != nil {
		return false, err
	}

	return logic.CanalizingCount() == c.target, nil
}
