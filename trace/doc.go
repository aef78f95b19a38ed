// Package trace follows a skeleton pixel by pixel from a start point to the
// next registered node.
//
// What
//
//   - Trace returns a PartialSegment: the interior pixels walked and the
//     node that ended the walk.
//   - The direction argument picks the i-th foreground neighbour of the
//     start pixel in grid.NeighborOffsets order, the same order the
//     classifier uses.
//   - A junction-free closed loop ends at a synthetic degree-2 node placed
//     on the start pixel.
//
// Errors
//
//	ErrGraphInconsistency means the walk could not reach a node. Trace does
//	not retry; callers decide whether to re-classify the frame (see
//	editor.PruneAllDeadEnds).
package trace
