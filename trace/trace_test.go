package trace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
	"github.com/katalvlaran/skeletrack/trace"
)

// classified builds a grid from rows and classifies it quietly.
func classified(t *testing.T, rows [][]float64) (*grid.Grid, *topology.NodeSet) {
	t.Helper()
	g, err := grid.From2D(rows)
	require.NoError(t, err)
	nodes, _, err := topology.Classify(g, topology.Quiet())
	require.NoError(t, err)
	return g, nodes
}

// lineRows returns a w×h frame with a horizontal line on row y from x0 to x1.
func lineRows(w, h, y, x0, x1 int) [][]float64 {
	rows := make([][]float64, h)
	for i := range rows {
		rows[i] = make([]float64, w)
	}
	for x := x0; x <= x1; x++ {
		rows[y][x] = 1
	}
	return rows
}

// TestTrace_StraightLine walks both ways from an interior pixel.
func TestTrace_StraightLine(t *testing.T) {
	g, nodes := classified(t, lineRows(10, 5, 2, 1, 8))
	start := grid.Pixel{X: 4, Y: 2}

	left, err := trace.Trace(g, nodes, start, 0)
	require.NoError(t, err)
	require.True(t, left.Found)
	require.Equal(t, []grid.Pixel{{X: 3, Y: 2}, {X: 2, Y: 2}}, left.Points)
	require.Equal(t, grid.Pixel{X: 1, Y: 2}, left.Node.Position)
	require.Equal(t, 1, left.Node.Degree)

	right, err := trace.Trace(g, nodes, start, 1)
	require.NoError(t, err)
	require.Len(t, right.Points, 3)
	require.Equal(t, grid.Pixel{X: 8, Y: 2}, right.Node.Position)

	missing, err := trace.Trace(g, nodes, start, 2)
	require.NoError(t, err)
	require.False(t, missing.Found)
	require.Empty(t, missing.Points)
}

// TestTrace_StartOnNode returns immediately in strict mode and walks out
// of the node in tolerant mode.
func TestTrace_StartOnNode(t *testing.T) {
	g, nodes := classified(t, lineRows(10, 5, 2, 1, 8))
	end := grid.Pixel{X: 1, Y: 2}

	p, err := trace.Trace(g, nodes, end, 0)
	require.NoError(t, err)
	require.True(t, p.Found)
	require.Empty(t, p.Points)
	require.Equal(t, end, p.Node.Position)

	p, err = trace.Trace(g, nodes, end, 0, trace.IgnoreDeadEnds())
	require.NoError(t, err)
	require.Len(t, p.Points, 6)
	require.Equal(t, grid.Pixel{X: 8, Y: 2}, p.Node.Position)
}

// TestTrace_ClosedLoop traces a junction-free ring of 16 pixels.
//
//	0 0 1 1 1 0 0
//	0 1 0 0 0 1 0
//	1 0 0 0 0 0 1
//	1 0 0 0 0 0 1
//	1 0 0 0 0 0 1
//	0 1 0 0 0 1 0
//	0 0 1 1 1 0 0
func TestTrace_ClosedLoop(t *testing.T) {
	g, nodes := classified(t, [][]float64{
		{0, 0, 1, 1, 1, 0, 0},
		{0, 1, 0, 0, 0, 1, 0},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0, 1, 0},
		{0, 0, 1, 1, 1, 0, 0},
	})
	require.Zero(t, nodes.Len(), "a ring has no junctions or dead ends")
	require.Equal(t, 16, g.Foreground())

	start := grid.Pixel{X: 2, Y: 0}
	fwd, err := trace.Trace(g, nodes, start, 0)
	require.NoError(t, err)
	require.True(t, fwd.Found)
	require.False(t, fwd.Node.Registered())
	require.Equal(t, start, fwd.Node.Position)
	require.Equal(t, 2, fwd.Node.Degree)
	require.Len(t, fwd.Points, 15)

	// Same ring length the other way round, starting from the synthetic node.
	back, err := trace.Trace(g, nodes, fwd.Node.Position, 1)
	require.NoError(t, err)
	require.Equal(t, start, back.Node.Position)
	require.Len(t, back.Points, len(fwd.Points))
	require.Equal(t, fwd.Points[0], back.Points[len(back.Points)-1])
}

// TestTrace_StaleNodes reports an inconsistency when the walk runs off the
// end of a line that has no registered node.
func TestTrace_StaleNodes(t *testing.T) {
	g, _ := classified(t, lineRows(10, 5, 2, 1, 8))

	_, err := trace.Trace(g, topology.NewNodeSet(), grid.Pixel{X: 4, Y: 2}, 0)
	require.ErrorIs(t, err, trace.ErrGraphInconsistency)
}

// junctionRows is a 3-way junction at (3,3) whose up and left branches
// touch diagonally at (3,2)/(2,3):
//
//	0 0 0 1 0 0 0
//	0 0 0 1 0 0 0
//	0 0 0 1 0 0 0
//	0 1 1 1 0 0 0
//	0 0 0 0 1 0 0
//	0 0 0 0 0 1 0
//	0 0 0 0 0 0 0
var junctionRows = [][]float64{
	{0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 1, 0, 0, 0},
	{0, 1, 1, 1, 0, 0, 0},
	{0, 0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 0, 0},
}

// TestTrace_JunctionTieBreak walks out of the junction through the
// ambiguous pixel (3,2) and keeps going straight up.
func TestTrace_JunctionTieBreak(t *testing.T) {
	g, nodes := classified(t, junctionRows)
	j, ok := nodes.Lookup(grid.Pixel{X: 3, Y: 3})
	require.True(t, ok)
	require.Equal(t, 3, j.Degree)

	up, err := trace.Trace(g, nodes, j.Position, 0, trace.IgnoreDeadEnds())
	require.NoError(t, err)
	require.Equal(t, []grid.Pixel{{X: 3, Y: 2}, {X: 3, Y: 1}}, up.Points)
	require.Equal(t, grid.Pixel{X: 3, Y: 0}, up.Node.Position)

	left, err := trace.Trace(g, nodes, j.Position, 1, trace.IgnoreDeadEnds())
	require.NoError(t, err)
	require.Equal(t, []grid.Pixel{{X: 2, Y: 3}}, left.Points)
	require.Equal(t, grid.Pixel{X: 1, Y: 3}, left.Node.Position)

	diag, err := trace.Trace(g, nodes, j.Position, 2, trace.IgnoreDeadEnds())
	require.NoError(t, err)
	require.Equal(t, []grid.Pixel{{X: 4, Y: 4}}, diag.Points)
	require.Equal(t, grid.Pixel{X: 5, Y: 5}, diag.Node.Position)
}

// TestTrace_PrefersStoppingAtNode ends on the junction when it is one of
// several continuations.
func TestTrace_PrefersStoppingAtNode(t *testing.T) {
	g, nodes := classified(t, junctionRows)

	p, err := trace.Trace(g, nodes, grid.Pixel{X: 3, Y: 1}, 1)
	require.NoError(t, err)
	require.Equal(t, []grid.Pixel{{X: 3, Y: 2}}, p.Points)
	require.Equal(t, grid.Pixel{X: 3, Y: 3}, p.Node.Position)
}

// TestTrace_StepLimit stops a walk that exceeds the cap.
func TestTrace_StepLimit(t *testing.T) {
	g, nodes := classified(t, lineRows(10, 5, 2, 1, 8))

	_, err := trace.Trace(g, nodes, grid.Pixel{X: 2, Y: 2}, 1, trace.WithMaxSteps(2))
	require.ErrorIs(t, err, trace.ErrGraphInconsistency)
}
