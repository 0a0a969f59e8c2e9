package digraph_test

import (
	"fmt"

	"github.com/katalvlaran/nullnet/digraph"
)

// ExampleGraph builds a small regulatory wiring and prints its sorted views.
func ExampleGraph() {
	g := digraph.New()
	g.AddEdge("SCL", "GATA1")
	g.AddEdge("GATA1", "GATA1") // autoregulation as a self-loop
	g.AddEdge("PU1", "GATA1")

	fmt.Println(g.Nodes())
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	pred, _ := g.Predecessors("GATA1")
	fmt.Println("regulators of GATA1:", pred)
	// Output:
	// [GATA1 PU1 SCL]
	// GATA1 -> GATA1
	// PU1 -> GATA1
	// SCL -> GATA1
	// regulators of GATA1: [GATA1 PU1 SCL]
}

// ExampleGraph_WeaklyConnected shows that edge direction is ignored.
func ExampleGraph_WeaklyConnected() {
	g := digraph.New()
	g.AddEdge("A", "B")
	g.AddEdge("C", "B") // no directed A⇝C path, but undirected A-B-C

	fmt.Println(g.WeaklyConnected())

	g.AddNode("D") // isolated
	fmt.Println(g.WeaklyConnected())
	// Output:
	// true
	// false
}

// ExampleGraph_Isomorphic compares a triangle against its relabeling.
func ExampleGraph_Isomorphic() {
	g := digraph.New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	h := digraph.New()
	h.AddEdge("y", "z")
	h.AddEdge("z", "x")
	h.AddEdge("x", "y")

	fmt.Println(g.Isomorphic(h))
	// Output:
	// true
}
