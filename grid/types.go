// Package grid defines the raster types, options, and sentinel errors
// shared by every other skeletrack package.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrFrameIndex indicates a requested frame index is outside 1..N.
	ErrFrameIndex = errors.New("grid: frame index out of range")
	// ErrSizeMismatch indicates frames of one stack have differing extents.
	ErrSizeMismatch = errors.New("grid: all frames must have the same extent")
)

// Pixel is an integer image coordinate. Equality is exact integer equality,
// so Pixel is usable as a map key.
type Pixel struct {
	X, Y int
}

// Add returns p shifted by the offset d.
func (p Pixel) Add(d Pixel) Pixel {
	return Pixel{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the component-wise difference p - q.
func (p Pixel) Sub(q Pixel) Pixel {
	return Pixel{X: p.X - q.X, Y: p.Y - q.Y}
}

// NeighborOffsets is the canonical 8-neighbourhood enumeration order:
// row-major relative offsets, top row first, the centre skipped.
//
//	0 1 2
//	3 . 4
//	5 6 7
//
// Direction indices used by the path tracer are positions in the list of
// foreground neighbours produced in this order, so it must never change.
var NeighborOffsets = [8]Pixel{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is one frame of a 2-D intensity raster. A pixel is foreground when
// its value is > 0. Reads outside the extent return 0 and writes outside
// it are dropped.
//
// A Grid is not safe for concurrent use; one goroutine owns a frame.
type Grid struct {
	Width, Height int
	values        []float64
}

// Stack is a time-ordered sequence of frames with a common extent,
// addressed 1..N.
type Stack struct {
	frames []*Grid
}
