// Package digraph defines the Graph type and its mutation and query
// primitives. See doc.go for the package overview.
package digraph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID or edge endpoint is the empty string.
	ErrEmptyNodeID = errors.New("digraph: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("digraph: node not found")
)

// Edge is a directed connection From → To.
type Edge struct {
	From string
	To   string
}

// Graph is a directed simple graph over string node IDs.
//
// Self-loops are allowed; duplicate edges are silently ignored.
// Both adjacency directions are indexed, so in- and out-degree queries
// are O(1). The zero value is not usable; construct with New.
type Graph struct {
	succ  map[string]map[string]struct{} // node → successor set
	pred  map[string]map[string]struct{} // node → predecessor set
	edges int                            // edge count, maintained incrementally
}

// New creates an empty directed graph.
// Complexity: O(1)
func New() *Graph {
	return &Graph{
		succ: make(map[string]map[string]struct{}),
		pred: make(map[string]map[string]struct{}),
	}
}

// AddNode inserts a node with the given ID.
// Adding an existing node is a no-op.
// Returns ErrEmptyNodeID if id is empty.
// Complexity: O(1)
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.ensure(id)

	return nil
}

// AddEdge inserts the directed edge from → to, implicitly adding any
// missing endpoint. Self-loops are allowed; adding an existing edge is
// a no-op. Returns ErrEmptyNodeID if either endpoint is empty.
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: edge (%q,%q)", ErrEmptyNodeID, from, to)
	}
	g.ensure(from)
	g.ensure(to)
	if _, dup := g.succ[from][to]; dup {
		return nil
	}
	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}
	g.edges++

	return nil
}

// ensure creates the adjacency buckets for id if absent.
func (g *Graph) ensure(id string) {
	if _, ok := g.succ[id]; ok {
		return
	}
	g.succ[id] = make(map[string]struct{})
	g.pred[id] = make(map[string]struct{})
}

// HasNode reports whether id is present.
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	_, ok := g.succ[id]

	return ok
}

// HasEdge reports whether the directed edge from → to is present.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	out, ok := g.succ[from]
	if !ok {
		return false
	}
	_, ok = out[to]

	return ok
}

// NodeCount returns the number of nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	return len(g.succ)
}

// EdgeCount returns the number of directed edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(n log n)
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.succ))
	for id := range g.succ {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all directed edges sorted by (From, To).
// Complexity: O(n + m log m)
func (g *Graph) Edges() []Edge {
	es := make([]Edge, 0, g.edges)
	for from, out := range g.succ {
		for to := range out {
			es = append(es, Edge{From: from, To: to})
		}
	}
	sort.Slice(es, func(i, j int) bool {
		if es[i].From != es[j].From {
			return es[i].From < es[j].From
		}

		return es[i].To < es[j].To
	})

	return es
}

// Successors returns the targets of all out-edges of id, sorted.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d)
func (g *Graph) Successors(id string) ([]string, error) {
	out, ok := g.succ[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return sortedKeys(out), nil
}

// Predecessors returns the sources of all in-edges of id, sorted.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d)
func (g *Graph) Predecessors(id string) ([]string, error) {
	in, ok := g.pred[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return sortedKeys(in), nil
}

// OutDegree returns the number of out-edges of id.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(1)
func (g *Graph) OutDegree(id string) (int, error) {
	out, ok := g.succ[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return len(out), nil
}

// InDegree returns the number of in-edges of id.
// Returns ErrNodeNotFound if id is absent.
// Complexity: O(1)
func (g *Graph) InDegree(id string) (int, error) {
	in, ok := g.pred[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return len(in), nil
}

// Clone returns a deep copy sharing no storage with g.
// Complexity: O(n + m)
func (g *Graph) Clone() *Graph {
	c := New()
	for id, out := range g.succ {
		c.ensure(id)
		for to := range out {
			c.succ[id][to] = struct{}{}
		}
	}
	for id, in := range g.pred {
		for from := range in {
			c.pred[id][from] = struct{}{}
		}
	}
	c.edges = g.edges

	return c
}

// sortedKeys flattens a string set into a sorted slice.
func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
