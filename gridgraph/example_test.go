// SPDX-License-Identifier: MIT
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvbits/gridgraph"
)

// ExampleGridGraph_ConnectedComponents identifies contiguous islands of
// non-zero cells; values 1, 2 and 3 are all land under the default threshold,
// so the 3 at (0,2) joins the island of 1s above it.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (0,1) (1,1) (0,2)
	// component 1: (4,0) (3,1) (4,1) (2,2) (3,2)
}

// ExampleGridGraph_ExpandIsland computes the cheapest bridge between two islands.
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	path, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Printf("convert %d water cell(s):", cost)
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()

	// Output:
	// convert 1 water cell(s): (2,0) (3,0) (3,1)
}

// ExampleGridGraph_CoastMask marks land cells touching water or the map edge.
func ExampleGridGraph_CoastMask() {
	grid := [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)
	fmt.Println(gg.CoastMask())

	// Output:
	// 000000
	// 011110
	// 010010
	// 011100
	// 000000
}
