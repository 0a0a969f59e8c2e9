// Package constraint defines the typed predicates a randomizer tests
// its candidates against.
//
// What:
//
//   - Constraint is the sealed root of the taxonomy; it carries no
//     behavior of its own and exists so mixed lists can be routed.
//   - Topological constraints judge a *digraph.Graph: ExternalNodes
//     (exact count of in-degree-0 nodes), Connected (weak
//     connectivity), and the TopologicalFunc adapter for arbitrary
//     graph predicates.
//   - Dynamical constraints judge a boolnet.Network: Irreducible
//     (every node depends on each declared input), CanalizingNodes
//     (exact count of canalizing nodes), and the DynamicalFunc adapter.
//
// Why:
//
//   - The two families are checked at different stages of the sampling
//     pipeline. Splitting them at the type level lets the network
//     randomizer partition a mixed list without inspecting concrete
//     types, while the static signatures rule out handing a network to
//     a graph predicate at compile time.
//
// Satisfies returns (ok, err). An error means the check itself could
// not be evaluated and aborts the enclosing draw; a false result
// merely rejects the candidate and the engine redraws.
//
// Errors:
//
//   - ErrNegativeTarget: a count-based constraint was built with a
//     negative target.
//   - ErrUndefined: the property is mathematically undefined for the
//     subject (connectivity of the null graph).
//   - ErrNilSubject: Satisfies received a nil graph or network.
//   - ErrNilPredicate: an adapter wraps a nil function.
//   - boolnet.ErrNoLogicTable (propagated): a table-only constraint met
//     a network without a logic table.
package constraint
