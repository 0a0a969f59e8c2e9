package boolnet

import (
	"fmt"

	"github.com/katalvlaran/nullnet/digraph"
)

// ThresholdNetwork is a boolean network defined by signed interaction
// weights and per-node firing thresholds rather than an explicit logic
// table. Weights[i][j] is the influence of node j on node i; a
// non-zero weight induces the edge j → i.
//
// The representation intentionally satisfies only the Network surface:
// table-derived queries reached through AsLogic report ErrNoLogicTable,
// which is exactly how weight-based references exercise the
// not-implemented paths of table-only strategies.
type ThresholdNetwork struct {
	names      []string
	weights    [][]float64
	thresholds []float64
	index      map[string]int
}

// NewThresholdNetwork validates names, the square weight matrix and the
// threshold vector into a ThresholdNetwork.
//
// Validation, in order: at least one name; non-empty unique names; the
// weight matrix is len(names) × len(names); thresholds has len(names)
// entries.
// Complexity: O(n^2)
func NewThresholdNetwork(names []string, weights [][]float64, thresholds []float64) (*ThresholdNetwork, error) {
	if len(names) == 0 {
		return nil, ErrEmptyNetwork
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyName, i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		index[name] = i
	}
	if len(weights) != len(names) {
		return nil, fmt.Errorf("%w: %d weight rows for %d nodes", ErrDimension, len(weights), len(names))
	}
	for i, row := range weights {
		if len(row) != len(names) {
			return nil, fmt.Errorf("%w: weight row %d has %d columns for %d nodes",
				ErrDimension, i, len(row), len(names))
		}
	}
	if len(thresholds) != len(names) {
		return nil, fmt.Errorf("%w: %d thresholds for %d nodes", ErrDimension, len(thresholds), len(names))
	}

	t := &ThresholdNetwork{
		names:      append([]string(nil), names...),
		weights:    make([][]float64, len(weights)),
		thresholds: append([]float64(nil), thresholds...),
		index:      index,
	}
	for i, row := range weights {
		t.weights[i] = append([]float64(nil), row...)
	}

	return t, nil
}

// Size returns the number of nodes.
func (t *ThresholdNetwork) Size() int {
	return len(t.names)
}

// Names returns the node names in declaration order.
func (t *ThresholdNetwork) Names() []string {
	return append([]string(nil), t.names...)
}

// Graph returns the wiring induced by non-zero weights: edge j → i for
// every Weights[i][j] ≠ 0. Nodes are present even when isolated.
// Complexity: O(n^2)
func (t *ThresholdNetwork) Graph() *digraph.Graph {
	g := digraph.New()
	for _, name := range t.names {
		_ = g.AddNode(name)
	}
	for i, row := range t.weights {
		for j, w := range row {
			if w != 0 {
				_ = g.AddEdge(t.names[j], t.names[i])
			}
		}
	}

	return g
}

// Weights returns a deep copy of the interaction matrix.
func (t *ThresholdNetwork) Weights() [][]float64 {
	w := make([][]float64, len(t.weights))
	for i, row := range t.weights {
		w[i] = append([]float64(nil), row...)
	}

	return w
}

// Thresholds returns a copy of the per-node firing thresholds.
func (t *ThresholdNetwork) Thresholds() []float64 {
	return append([]float64(nil), t.thresholds...)
}
