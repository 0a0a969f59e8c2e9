// Package randomizer generates random null-model graphs and boolean
// networks by rejection sampling against caller-supplied constraints.
//
// What
//
//   - A generic rejection engine: draw a candidate, test every stored
//     constraint, return the first candidate that passes; a positive
//     retry budget fails with ErrExhausted after exactly that many
//     rejected candidates, zero or negative retries without bound.
//   - Topology strategies producing *digraph.Graph:
//   - FixedTopology: always the reference graph (constraints checked
//     eagerly at assignment, so draws cannot fail their own test)
//   - MeanDegree:    same node and edge count, edges placed uniformly
//   - InDegree:      every node keeps its exact reference in-degree
//   - OutDegree:     every node keeps its exact reference out-degree
//   - Network strategies producing *boolnet.LogicNetwork by pairing a
//     topology collaborator with bias-controlled function generation:
//   - NewUniformBias: one shared target bias (default 0.5)
//   - NewMeanBias:    shared bias = reference mean bias
//   - NewLocalBias:   each node keeps its own reference bias
//   - WithFixCanalizing() resamples per node until the reference
//     node's canalizing status is reproduced.
//   - Constraint routing: a NetworkRandomizer partitions a flat
//     constraint list by family — topological constraints go to the
//     internal topology collaborator, dynamical ones stay local — so
//     each family is checked at its own pipeline stage, never twice.
//
// Why
//
//   - Null models: comparing an observed network statistic against an
//     ensemble of randomized peers requires samples that hold selected
//     properties fixed (degrees, bias, canalization) while scrambling
//     everything else.
//   - Generate-and-test keeps every strategy simple and composable; no
//     backtracking, no exact-sampling machinery.
//
// Bias control
//
//	Function generation targets a bias p by stochastic rounding: the
//	on-set size is floor(p·2^k) plus one extra pattern with probability
//	equal to the fractional remainder, so the expected size is exactly
//	p·2^k even when that product is not an integer. Long-run node bias
//	converges to p; any single draw differs from p by at most 2^-k.
//
// Randomness
//
//	Every randomizer owns one *rand.Rand, seeded from the process-wide
//	source unless WithSeed or WithRand pins it. Instances never share
//	state; a single instance is not safe for concurrent use.
//
// Usage
//
//	net := boolnet.Myeloid()
//	rand, err := randomizer.NewLocalBias(
//	    net,
//	    randomizer.WithTopologyFactory(randomizer.InDegreeFactory),
//	    randomizer.WithSeed(42),
//	    randomizer.WithTimeout(500),
//	)
//	if err != nil {
//	    // ErrReference, ErrBias, boolnet.ErrNoLogicTable, ...
//	}
//	if err := rand.SetConstraints(constraint.Irreducible{}); err != nil {
//	    // ErrConstraintKind, ErrUnsatisfiable
//	}
//	sample, err := rand.Random() // one draw
//	for net, err := range rand.Networks() {
//	    if err != nil {
//	        break
//	    }
//	    _ = net // consume; break to stop the unbounded stream
//	}
//
// Errors
//
//   - ErrOption / ErrBias / ErrArity   invalid construction parameters
//   - ErrReference                     nil or unusable reference object
//   - ErrConstraintKind                wrong constraint family (or nil)
//   - ErrUnsatisfiable                 eager rejection by FixedTopology
//   - ErrIncompatibleTopology          LocalBias with a collaborator
//     that breaks node correspondence
//   - ErrExhausted                     retry budget spent
//   - boolnet.ErrNoLogicTable          table-dependent strategy over a
//     reference without a logic table
//
// See boolnet for network analysis and constraint for the predicate
// families this package routes.
package randomizer
