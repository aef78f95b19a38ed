package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletrack/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		err  error
	}{
		{"EmptyRows", [][]float64{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.From2D(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestAt_OutOfBoundsIsBackground checks reads and writes outside the extent.
func TestAt_OutOfBoundsIsBackground(t *testing.T) {
	g, err := grid.From2D([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.Equal(t, 4.0, g.At(grid.Pixel{X: 1, Y: 1}))
	for _, p := range []grid.Pixel{{-1, 0}, {2, 0}, {0, 2}, {0, -1}} {
		require.Zero(t, g.At(p), "At(%v)", p)
		require.False(t, g.IsForeground(p), "IsForeground(%v)", p)
	}

	g.Set(grid.Pixel{X: 5, Y: 5}, 9) // dropped
	require.Equal(t, 4, g.Foreground())
}

// TestClone_IsDeep ensures edits to a clone do not leak back.
func TestClone_IsDeep(t *testing.T) {
	g, _ := grid.From2D([][]float64{{1, 1}})
	c := g.Clone()
	c.Zero(grid.Pixel{X: 0, Y: 0})

	require.True(t, g.IsForeground(grid.Pixel{X: 0, Y: 0}))
	require.False(t, c.IsForeground(grid.Pixel{X: 0, Y: 0}))
}

//----------------------------------------------------------------------------//
// Canonical neighbourhood
//----------------------------------------------------------------------------//

// TestNeighbors_CanonicalOrder checks the row-major enumeration that
// direction indices depend on.
func TestNeighbors_CanonicalOrder(t *testing.T) {
	g, _ := grid.From2D([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	c := grid.Pixel{X: 1, Y: 1}
	want := []grid.Pixel{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	require.Equal(t, want, g.Neighbors(c))
	require.Equal(t, 8, g.CountNeighbors(c))

	got := g.NeighborsExcept(c, grid.Pixel{X: 1, Y: 0})
	require.Len(t, got, 7)
	require.NotContains(t, got, grid.Pixel{X: 1, Y: 0})
}

// TestConnectivity covers the 8-/4-connectivity predicates.
func TestConnectivity(t *testing.T) {
	a := grid.Pixel{X: 3, Y: 3}
	require.True(t, grid.Is8Connected(a, grid.Pixel{X: 4, Y: 4}))
	require.False(t, grid.Is4Connected(a, grid.Pixel{X: 4, Y: 4}))
	require.True(t, grid.Is4Connected(a, grid.Pixel{X: 3, Y: 4}))
	require.False(t, grid.Is8Connected(a, grid.Pixel{X: 5, Y: 3}))
	require.Equal(t, 2, grid.Chebyshev(a, grid.Pixel{X: 1, Y: 2}))
	require.Equal(t, 3, grid.Manhattan(a, grid.Pixel{X: 1, Y: 2}))
}

//----------------------------------------------------------------------------//
// DrawLine
//----------------------------------------------------------------------------//

// TestDrawLine_ThinAndConnected verifies that drawn lines are one pixel
// wide: every interior pixel has exactly two foreground neighbours.
func TestDrawLine_ThinAndConnected(t *testing.T) {
	cases := []struct {
		name string
		a, b grid.Pixel
		n    int
	}{
		{"Horizontal", grid.Pixel{X: 1, Y: 5}, grid.Pixel{X: 9, Y: 5}, 9},
		{"Diagonal", grid.Pixel{X: 1, Y: 1}, grid.Pixel{X: 8, Y: 8}, 8},
		{"Shallow", grid.Pixel{X: 10, Y: 2}, grid.Pixel{X: 1, Y: 6}, 10},
		{"Steep", grid.Pixel{X: 3, Y: 0}, grid.Pixel{X: 6, Y: 9}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := grid.New(12, 12)
			g.DrawLine(tc.a, tc.b, 255)

			require.Equal(t, tc.n, g.Foreground())
			require.Equal(t, 1, g.CountNeighbors(tc.a))
			require.Equal(t, 1, g.CountNeighbors(tc.b))
			g.Scan(func(p grid.Pixel, v float64) {
				if v > 0 && p != tc.a && p != tc.b {
					require.Equal(t, 2, g.CountNeighbors(p), "pixel %v", p)
				}
			})
		})
	}
}

//----------------------------------------------------------------------------//
// Stack
//----------------------------------------------------------------------------//

// TestStack_FrameIndex checks 1-based addressing and extent validation.
func TestStack_FrameIndex(t *testing.T) {
	f1, _ := grid.New(4, 4)
	f2, _ := grid.New(4, 4)
	s, err := grid.NewStack(f1, f2)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	got, err := s.Frame(2)
	require.NoError(t, err)
	require.Same(t, f2, got)

	_, err = s.Frame(0)
	require.ErrorIs(t, err, grid.ErrFrameIndex)
	_, err = s.Frame(3)
	require.ErrorIs(t, err, grid.ErrFrameIndex)

	odd, _ := grid.New(5, 4)
	_, err = grid.NewStack(f1, odd)
	require.ErrorIs(t, err, grid.ErrSizeMismatch)
}
