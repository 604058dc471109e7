package core_test

import (
	"fmt"

	"github.com/katalvlaran/poa/core"
)

// ExampleGraph_Consensus seeds a graph with one read, threads in a second
// read that disagrees at one position twice over, and extracts the
// majority consensus.
func ExampleGraph_Consensus() {
	g := core.NewGraph()
	if _, err := g.AddSequence([]byte("ACT")); err != nil {
		fmt.Println("error:", err)

		return
	}

	// Both later reads say G where the seed said C.
	trace := core.Alignment{
		{Node: 0, Query: 0},
		{Node: 1, Query: 1},
		{Node: 2, Query: 2},
	}
	_ = g.AddAlignment(trace, []byte("AGT"))
	_ = g.AddAlignment(trace, []byte("AGT"))

	cns, err := g.Consensus()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("nodes=%d consensus=%s\n", g.NodeCount(), cns)
	// Output:
	// nodes=4 consensus=AGT
}
