// Package digraph implements the directed simple graph used as the
// structural substrate for null-model generation.
//
// What:
//
//   - Graph stores string-identified nodes and directed edges.
//   - Self-loops are permitted; parallel edges are not (adding an
//     existing edge is a no-op).
//   - All iteration orders (Nodes, Edges, Predecessors, Successors)
//     are sorted, so identical mutation sequences produce identical
//     observable state.
//   - WeaklyConnected reports reachability ignoring edge direction.
//   - Isomorphic performs a structural equivalence check intended for
//     validation and tests, not for large instances.
//
// Why:
//
//   - Randomized rewiring strategies need cheap degree queries on both
//     edge directions, deterministic traversal for reproducible draws,
//     and cloning that never aliases the source.
//
// Complexity:
//
//   - AddNode / AddEdge / HasNode / HasEdge: O(1) expected.
//   - InDegree / OutDegree: O(1); Predecessors / Successors: O(d log d).
//   - Nodes: O(n log n); Edges: O(n + m log m); Clone: O(n + m).
//   - WeaklyConnected: O(n + m).
//   - Isomorphic: exponential in the worst case; degree screening keeps
//     typical regulatory-network sizes fast.
//
// Errors:
//
//   - ErrEmptyNodeID: a node or edge endpoint has the empty string ID.
//   - ErrNodeNotFound: a degree or adjacency query referenced an
//     absent node.
//
// Concurrency: a Graph is not synchronized. Randomizer pipelines are
// single-threaded per instance; share graphs across goroutines only
// after all mutation is done.
package digraph
