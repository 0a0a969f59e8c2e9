package netio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/nullnet/netio"
)

// ExampleDecode parses a two-node toggle switch and queries the result.
func ExampleDecode() {
	doc := `nodes:
  - name: GATA1
    inputs: [PU1]
    on: ["0"]
  - name: PU1
    inputs: [GATA1]
    on: ["0"]
`
	net, err := netio.Decode(strings.NewReader(doc))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(net.Names())
	dep, _ := net.DependsOn("GATA1", "PU1")
	fmt.Println("GATA1 depends on PU1:", dep)
	// Output:
	// [GATA1 PU1]
	// GATA1 depends on PU1: true
}
