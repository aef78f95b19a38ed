// Package editor queries and edits the implicit graph of a skeleton frame.
//
// What
//
//   - FindClosestPointOnPath snaps an approximate position to a plain path
//     pixel (two neighbours, not a node) within a small square radius.
//   - FindSegment joins the two walks leaving a path pixel into a Segment
//     running from one node to the other.
//   - DeleteSegment clears a segment's pixels and lowers its endpoints'
//     degrees; dead ends that lose their only edge disappear too.
//   - PruneAllDeadEnds removes every dead-end segment present when it
//     starts, re-classifying the frame once whenever a walk finds the grid
//     and the NodeSet disagree.
//   - FindBranches returns the walks leaving a node, one per direction.
//
// Edits are in place: both the grid.Grid and the topology.NodeSet passed in
// are mutated, and the caller owns both for the duration of a call.
package editor
