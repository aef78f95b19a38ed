// Package spatial finds the nodes of a frame closest to a continuous
// position, using a gonum k-d tree.
//
// The tracker re-resolves a branching point in every frame by asking for
// the degree-3 node nearest to where it was in the previous one;
// ClosestDegree3 widens its k-nearest query in steps until one shows up.
package spatial
