// Package grid treats one frame of a skeletonized binary image as a
// bounded raster, the input of every other skeletrack package.
//
// What:
//
//   - Grid wraps a rectangular field of float64 intensities; value > 0 is
//     foreground (skeleton), anything else is background.
//   - Reads outside the extent return 0, writes outside it are dropped.
//   - NeighborOffsets fixes the one 8-neighbourhood enumeration order;
//     Neighbors/NeighborsExcept/CountNeighbors are the only way the
//     classifier and tracer look at adjacent pixels.
//   - Components lists 8-connected skeleton pieces.
//   - DrawLine/DrawPath paint repairs into a frame.
//   - Stack addresses a time series of frames 1..N.
//
// Complexity:
//
//   - At, Set, InBounds: O(1).
//   - Neighbors, CountNeighbors: O(8).
//   - Components: O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrFrameIndex: requested frame outside 1..N.
//   - ErrSizeMismatch: frames of a stack differ in extent.
package grid
