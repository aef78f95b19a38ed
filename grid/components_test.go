// File: grid/components_test.go
package grid

import (
	"sort"
	"testing"
)

// TestComponents_TwoPieces tests Components on a 5×3 grid with two
// skeleton pieces that do not touch, not even diagonally.
//
// Grid (1 = foreground, 0 = background):
//
//	1 1 0 0 1
//	0 1 0 0 1
//	0 0 0 1 0
//
// Expected: 2 pieces of sizes 3 and 3.
func TestComponents_TwoPieces(t *testing.T) {
	g, err := From2D([][]float64{
		{1, 1, 0, 0, 1},
		{0, 1, 0, 0, 1},
		{0, 0, 0, 1, 0},
	})
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}

	comps := g.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if sizes[0] != 3 || sizes[1] != 3 {
		t.Errorf("component sizes = %v; want [3 3]", sizes)
	}
}

// TestComponents_DiagonalChain checks that diagonal contact joins pixels.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//
// Expect: 1 component of size 5.
func TestComponents_DiagonalChain(t *testing.T) {
	g, _ := From2D([][]float64{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
	})
	comps := g.Components()
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := len(comps[0]); size != 5 {
		t.Errorf("component size = %d; want 5", size)
	}
	if comps[0][0] != (Pixel{0, 0}) {
		t.Errorf("first pixel = %v; want (0,0) from row-major scan", comps[0][0])
	}
}

// TestComponents_Empty tests an all-background grid.
func TestComponents_Empty(t *testing.T) {
	g, _ := New(3, 2)
	if comps := g.Components(); len(comps) != 0 {
		t.Errorf("background grid: got %d components; want 0", len(comps))
	}
}
