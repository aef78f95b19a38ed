// Package topology classifies the pixels of a skeleton frame into graph
// vertices: dead ends and junctions.
//
// What
//
//   - Classify runs three steps on a grid.Grid, in order:
//     RemoveSpecialCases (ambiguous filled 2×2 clusters, repeated to a
//     bounded fixed point), RemoveRedundantPixels (thickness that carries no
//     topology, one pass), and ExtractNodes.
//   - ExtractNodes emits a degree-1 Node per dead end and a Node per pixel
//     whose EffectiveDegree is > 2. Neighbours that touch 4-connectedly are
//     the same line and count once.
//   - NodeSet is an arena with stable integer Handles and a position index.
//     It stores no adjacency: segments are always re-traced from the grid.
//
// Determinism
//
//	Scans are row-major and neighbours are enumerated in
//	grid.NeighborOffsets order, so the same frame always yields the same
//	nodes in the same registration order.
//
// Side effects
//
//	Classify edits the frame: moved special-case pixels, cleared redundant
//	and isolated pixels. Running it again on its own output changes nothing.
package topology
