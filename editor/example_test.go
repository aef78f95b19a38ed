package editor_test

import (
	"fmt"

	"github.com/katalvlaran/skeletrack/editor"
	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
)

// ExampleFindSegment snaps a click to the nearest path pixel and follows
// the path to both of its nodes.
func ExampleFindSegment() {
	g, _ := grid.From2D([][]float64{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0},
	})
	nodes, _, _ := topology.Classify(g, topology.Quiet())

	click, _ := editor.FindClosestPointOnPath(g, grid.Pixel{X: 2, Y: 2}, nodes)
	seg, _ := editor.FindSegment(g, nodes, click)
	fmt.Println(click, seg.Node1.Position, seg.Node2.Position, seg.Len())
	// Output: {2 1} {1 1} {4 1} 2
}
