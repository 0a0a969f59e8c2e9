package boolnet

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/nullnet/digraph"
)

// Sentinel errors for network construction and queries.
var (
	// ErrEmptyNetwork indicates a network was constructed with zero nodes.
	ErrEmptyNetwork = errors.New("boolnet: network has no nodes")

	// ErrEmptyName indicates a node or input name is the empty string.
	ErrEmptyName = errors.New("boolnet: node name is empty")

	// ErrDuplicateNode indicates two rows declare the same node name.
	ErrDuplicateNode = errors.New("boolnet: duplicate node name")

	// ErrDuplicateInput indicates a row lists the same input twice.
	ErrDuplicateInput = errors.New("boolnet: duplicate input name")

	// ErrUnknownInput indicates a row's input names an undeclared node.
	ErrUnknownInput = errors.New("boolnet: input names an undeclared node")

	// ErrBadBitstring indicates a condition string has the wrong width
	// or a character other than '0'/'1'.
	ErrBadBitstring = errors.New("boolnet: malformed condition bitstring")

	// ErrDuplicatePattern indicates an on-set lists a condition twice.
	ErrDuplicatePattern = errors.New("boolnet: duplicate on-set condition")

	// ErrDimension indicates threshold data with inconsistent shapes.
	ErrDimension = errors.New("boolnet: inconsistent dimensions")

	// ErrNodeNotFound indicates a lookup by unknown name or index.
	ErrNodeNotFound = errors.New("boolnet: node not found")

	// ErrNoLogicTable indicates a logic-table operation was requested
	// from a network representation that carries no table.
	ErrNoLogicTable = errors.New("boolnet: no logic table for this network")
)

// Network is the capability surface shared by every representation.
//
// Names returns the fixed node ordering; position in that ordering is
// the node index used by index-based queries and by position-keyed
// generation strategies. Graph returns the induced wiring with one
// edge input → node per table entry or non-zero weight.
type Network interface {
	Size() int
	Names() []string
	Graph() *digraph.Graph
}

// Row is one node's logic-table entry.
//
// Inputs holds the node's predecessors in condition-string order:
// character j of every On entry is the state of Inputs[j]. On is the
// set of conditions for which the node turns on; an input-less node
// (len(Inputs) == 0) is on iff On contains the empty condition "".
type Row struct {
	Node   string
	Inputs []string
	On     []string
}

// LogicNetwork is a boolean network backed by an explicit logic table.
//
// Rows are normalized at construction (on-sets sorted, storage owned by
// the network) and never mutated afterwards; all accessors hand out
// copies.
type LogicNetwork struct {
	rows  []Row
	index map[string]int // node name → row position
}

// NewLogicNetwork validates and normalizes rows into a LogicNetwork.
//
// Validation, in order: at least one row; non-empty unique node names;
// non-empty input names without duplicates, each naming a declared
// node; every on-set condition exactly len(Inputs) wide over '0'/'1',
// with no duplicates. Returns the first violation wrapped around the
// matching sentinel.
// Complexity: O(Σ(k_i + |On_i|·k_i)) over rows.
func NewLogicNetwork(rows []Row) (*LogicNetwork, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyNetwork
	}

	index := make(map[string]int, len(rows))
	for i, r := range rows {
		if r.Node == "" {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyName, i)
		}
		if _, dup := index[r.Node]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, r.Node)
		}
		index[r.Node] = i
	}

	normalized := make([]Row, len(rows))
	for i, r := range rows {
		seen := make(map[string]struct{}, len(r.Inputs))
		for _, in := range r.Inputs {
			if in == "" {
				return nil, fmt.Errorf("%w: input of %q", ErrEmptyName, r.Node)
			}
			if _, dup := seen[in]; dup {
				return nil, fmt.Errorf("%w: %q on node %q", ErrDuplicateInput, in, r.Node)
			}
			seen[in] = struct{}{}
			if _, ok := index[in]; !ok {
				return nil, fmt.Errorf("%w: %q on node %q", ErrUnknownInput, in, r.Node)
			}
		}

		onSeen := make(map[string]struct{}, len(r.On))
		for _, cond := range r.On {
			if len(cond) != len(r.Inputs) || strings.Trim(cond, "01") != "" {
				return nil, fmt.Errorf("%w: %q on node %q (arity %d)",
					ErrBadBitstring, cond, r.Node, len(r.Inputs))
			}
			if _, dup := onSeen[cond]; dup {
				return nil, fmt.Errorf("%w: %q on node %q", ErrDuplicatePattern, cond, r.Node)
			}
			onSeen[cond] = struct{}{}
		}

		normalized[i] = copyRow(r)
		sort.Strings(normalized[i].On)
	}

	return &LogicNetwork{rows: normalized, index: index}, nil
}

// Size returns the number of nodes.
func (n *LogicNetwork) Size() int {
	return len(n.rows)
}

// Names returns the node names in row order.
func (n *LogicNetwork) Names() []string {
	names := make([]string, len(n.rows))
	for i, r := range n.rows {
		names[i] = r.Node
	}

	return names
}

// Graph returns the wiring induced by the table: one edge input → node
// per declared input. Nodes are present even when isolated.
// Complexity: O(n + m)
func (n *LogicNetwork) Graph() *digraph.Graph {
	g := digraph.New()
	for _, r := range n.rows {
		_ = g.AddNode(r.Node)
	}
	for _, r := range n.rows {
		for _, in := range r.Inputs {
			_ = g.AddEdge(in, r.Node)
		}
	}

	return g
}

// Rows returns a deep copy of the logic table in node order.
func (n *LogicNetwork) Rows() []Row {
	rows := make([]Row, len(n.rows))
	for i, r := range n.rows {
		rows[i] = copyRow(r)
	}

	return rows
}

// Row returns a deep copy of the table entry at position i.
// Returns ErrNodeNotFound for an out-of-range index.
func (n *LogicNetwork) Row(i int) (Row, error) {
	if i < 0 || i >= len(n.rows) {
		return Row{}, fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}

	return copyRow(n.rows[i]), nil
}

// AsLogic returns the logic-table view of net.
// Returns ErrNoLogicTable when the representation carries no table.
func AsLogic(net Network) (*LogicNetwork, error) {
	ln, ok := net.(*LogicNetwork)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNoLogicTable, net)
	}

	return ln, nil
}

// Pattern renders pattern index idx as the canonical fixed-width
// condition string: character j is the state of input j, the first
// input occupying the most significant bit. Width 0 yields "".
func Pattern(idx, width int) string {
	if width == 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", width, idx)
}

// copyRow clones a Row including its backing slices.
func copyRow(r Row) Row {
	c := Row{Node: r.Node}
	if r.Inputs != nil {
		c.Inputs = append([]string(nil), r.Inputs...)
	}
	if r.On != nil {
		c.On = append([]string(nil), r.On...)
	}

	return c
}
