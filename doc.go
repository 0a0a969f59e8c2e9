// Package nullnet generates random "null model" networks: directed graphs
// and boolean logic networks that resemble a reference network while
// satisfying user-supplied structural and behavioral constraints.
//
// 🚀 What is nullnet?
//
//	A small, deterministic rejection-sampling library that brings together:
//		• Directed simple graphs: sorted iteration, degrees, cloning, isomorphism
//		• Network models: explicit logic tables & signed threshold networks
//		• Constraints: topological (external nodes, connectivity) and
//		  dynamical (irreducibility, canalizing counts), plus func adapters
//		• Topology strategies: FixedTopology, MeanDegree, InDegree, OutDegree
//		• Bias strategies: UniformBias, MeanBias, LocalBias, fix-canalizing
//		• Documents: YAML load/save of logic networks
//
// ✨ Why choose nullnet?
//
//   - Reproducible ensembles: per-randomizer RNG with WithSeed/WithRand
//   - Honest failure: retry budgets end in ErrExhausted, never in hangs
//   - Exact statistics: degree sequences and dyadic biases preserved per draw
//   - Pure Go, tiny dependency surface
//
// Everything is organized under five subpackages:
//
//	digraph/    — directed simple graph primitive & queries
//	boolnet/    — Network interface, LogicNetwork, ThresholdNetwork, fixtures
//	constraint/ — typed predicates over graphs or networks
//	randomizer/ — the rejection engine, topology & bias strategies
//	netio/      — YAML document codec for logic networks
//
// Quick ASCII example:
//
//	    GATA1 ⇄ PU1
//
//	a two-node toggle switch; LocalBias redraws its logic while keeping
//	each gene's wiring and activation bias untouched.
//
// Dive into the examples/ programs for full ensemble-generation scenarios.
//
//	go get github.com/katalvlaran/nullnet
package nullnet
