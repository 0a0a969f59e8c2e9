package randomizer_test

import (
	"fmt"

	"github.com/katalvlaran/nullnet/boolnet"
	"github.com/katalvlaran/nullnet/constraint"
	"github.com/katalvlaran/nullnet/digraph"
	"github.com/katalvlaran/nullnet/randomizer"
)

// ExampleNewFixedTopology draws clones of its reference; the wiring
// never changes, only ownership does.
func ExampleNewFixedTopology() {
	g := digraph.New()
	g.AddEdge("SCL", "GATA1")
	g.AddEdge("PU1", "GATA1")

	tr, err := randomizer.NewFixedTopology(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	h, _ := tr.Random()
	fmt.Println(h.NodeCount(), h.EdgeCount())
	fmt.Println(g.Isomorphic(h))
	// Output:
	// 3 2
	// true
}

// ExampleNewInDegree streams degree-preserving rewirings of the
// fission-yeast cell-cycle wiring.
func ExampleNewInDegree() {
	ref := boolnet.SPombe().Graph()
	tr, err := randomizer.NewInDegree(ref, randomizer.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}

	count := 0
	for g, err := range tr.Graphs() {
		if err != nil {
			fmt.Println(err)
			return
		}
		k, _ := g.InDegree("Cdc2_Cdc13_active")
		fmt.Println(k)
		count++
		if count == 3 {
			break
		}
	}
	// Output:
	// 5
	// 5
	// 5
}

// ExampleNewLocalBias keeps each node's own bias: with the arity
// preserved, the target count is integral and the realized bias is
// exact on every draw.
func ExampleNewLocalBias() {
	ref := boolnet.Myeloid()
	r, err := randomizer.NewLocalBias(ref, randomizer.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}

	net, _ := r.Random()
	want, _ := ref.Bias(0)
	got, _ := net.Bias(0)
	fmt.Println(ref.Names()[0], want == got)
	// Output:
	// GATA2 true
}

// ExampleNetworkRandomizer_SetConstraints shows family routing: the
// dynamical predicate stays local, the topological one moves to the
// internal topology collaborator.
func ExampleNetworkRandomizer_SetConstraints() {
	r, err := randomizer.NewUniformBias(boolnet.Myeloid())
	if err != nil {
		fmt.Println(err)
		return
	}

	err = r.SetConstraints(constraint.Irreducible{}, constraint.Connected{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("dynamical:", len(r.Constraints()))
	fmt.Println("topological:", len(r.Topology().Constraints()))
	// Output:
	// dynamical: 1
	// topological: 1
}

// ExampleNewUniformBias draws a random boolean network over the
// reference wiring.
func ExampleNewUniformBias() {
	r, err := randomizer.NewUniformBias(boolnet.Myeloid(), randomizer.WithSeed(3))
	if err != nil {
		fmt.Println(err)
		return
	}

	net, err := r.Random()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(net.Size(), net.Graph().EdgeCount())
	// Output:
	// 11 30
}
