// Package boolnet models boolean regulatory networks: nodes whose next
// state is decided by which predecessor-input patterns turn them on.
//
// What:
//
//   - Network is the capability surface every representation offers:
//     node count, the fixed node ordering, and the induced wiring as a
//     digraph.Graph.
//   - LogicNetwork stores an explicit logic table, one Row per node:
//     the ordered predecessor names plus the set of condition
//     bitstrings for which the node turns on. Derived quantities
//     (per-node bias, mean bias, canalizing status, input dependency)
//     are computed on demand and never cached.
//   - ThresholdNetwork stores signed interaction weights and firing
//     thresholds. It has no logic table, so table-derived queries are
//     reached through AsLogic and report ErrNoLogicTable.
//   - Myeloid and SPombe construct the two published reference
//     networks used throughout the test-suites and examples.
//
// Why:
//
//   - Null-model generation compares a real regulatory network against
//     randomized look-alikes; both the real reference and the sampled
//     candidates share this representation.
//
// Condition bitstrings:
//
//   - A condition string has one character per predecessor, in Row
//     input order: character j is the state of input j. Pattern(idx,
//     width) is the canonical encoding of pattern index idx; width 0
//     yields the empty string (the sole input pattern of an input-less
//     node).
//
// Errors:
//
//   - ErrEmptyNetwork, ErrEmptyName, ErrDuplicateNode, ErrDuplicateInput,
//     ErrUnknownInput, ErrBadBitstring, ErrDuplicatePattern, ErrDimension:
//     construction-time validation.
//   - ErrNodeNotFound: a lookup used an unknown name or index.
//   - ErrNoLogicTable: a logic-table view was requested from a network
//     without one.
package boolnet
