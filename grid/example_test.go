// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/katalvlaran/skeletrack/grid"
)

// ExampleGrid_Neighbors shows the canonical enumeration order of the
// foreground 8-neighbours around a junction pixel.
//
//	1 0 1
//	0 1 0
//	0 1 0
func ExampleGrid_Neighbors() {
	g, _ := grid.From2D([][]float64{
		{1, 0, 1},
		{0, 1, 0},
		{0, 1, 0},
	})
	for i, p := range g.Neighbors(grid.Pixel{X: 1, Y: 1}) {
		fmt.Printf("direction %d: (%d,%d)\n", i, p.X, p.Y)
	}
	// Output:
	// direction 0: (0,0)
	// direction 1: (2,0)
	// direction 2: (1,2)
}

// ExampleGrid_Components counts separate skeleton pieces.
func ExampleGrid_Components() {
	g, _ := grid.From2D([][]float64{
		{1, 1, 0, 0, 1},
		{0, 0, 0, 0, 1},
		{0, 1, 1, 0, 0},
	})
	comps := g.Components()
	fmt.Println("pieces:", len(comps))
	// Output:
	// pieces: 3
}
