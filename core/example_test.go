package core_test

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

// ExampleGraph builds a three-valve corridor and lists the neighbors of the middle valve.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddValve(10, 0)
	mid, _ := g.AddValve(11, 7)
	_, _ = g.AddValve(12, 3)
	_ = g.AddEdge(10, 11)
	_ = g.AddEdge(11, 12)

	for n := range g.Neighbors(mid) {
		v, _ := g.Valve(n)
		fmt.Printf("valve %d rate %d\n", v.ID, v.Rate)
	}
	// Output:
	// valve 12 rate 3
	// valve 10 rate 0
}
