// Package track follows a 3-way junction or a segment through a stack of
// frames and keeps the identity of the junction's branches.
//
// What
//
//   - Seed resolves the entity nearest to a position in a reference frame,
//     then runs a forward pass to the last frame and a backward pass to the
//     first. Every frame visit classifies a private copy of the frame from
//     scratch.
//   - NodeMode follows the degree-3 node nearest to the previous position.
//     SegmentMode samples the previous segment at 1/2, 1/3 and 2/3 of its
//     length and keeps the first sample that still lies on a segment.
//   - A frame without a match halts its pass. Frames already resolved are
//     kept and the tracker ends PartiallyTracked.
//   - Step, Correct and Propagate extend or repair a run interactively.
//   - Measure reports per-frame branch lengths and mean intensities,
//     carrying branch slots with ReconcileBranches.
//
// Branch state
//
//	ReconcileBranches is a pure function of the previous BranchState and
//	the current vectors; the state travels between frames as a value.
package track
