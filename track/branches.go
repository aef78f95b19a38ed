package track

import (
	"fmt"

	"github.com/katalvlaran/skeletrack/topology"
	"github.com/katalvlaran/skeletrack/trace"
)

// Vector is a branch direction: far node minus junction.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// SqDist returns the squared Euclidean distance between v and w.
func (v Vector) SqDist(w Vector) float64 {
	dx, dy := v.X-w.X, v.Y-w.Y
	return dx*dx + dy*dy
}

// BranchState is the last known direction of each of the three branches
// of a tracked junction. It is passed into and returned from
// ReconcileBranches.
type BranchState [3]Vector

// permutations lists the one-to-one assignments in comparison order.
var permutations = [6][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// ReconcileBranches assigns the current branch vectors to the slots of
// prev. order[j] is the index into cur that continues slot j; next holds
// cur in slot order and is the state for the following frame.
// The assignment minimises the total squared displacement; on equal
// totals the first permutation in comparison order wins, so an unchanged
// frame keeps the identity order.
func ReconcileBranches(prev, cur BranchState) (next BranchState, order [3]int) {
	best := -1.0
	for _, perm := range permutations {
		var total float64
		for j, i := range perm {
			total += prev[j].SqDist(cur[i])
		}
		if best < 0 || total < best {
			best, order = total, perm
		}
	}
	for j, i := range order {
		next[j] = cur[i]
	}
	return next, order
}

// VectorsOf returns the directions of the three branches leaving center.
func VectorsOf(center topology.Node, branches []trace.PartialSegment) (BranchState, error) {
	var st BranchState
	if len(branches) != 3 {
		return st, fmt.Errorf("%w: junction %v has %d branches", ErrNoCorrespondence, center.Position, len(branches))
	}
	for i, b := range branches {
		st[i] = Vector{
			X: float64(b.Node.Position.X - center.Position.X),
			Y: float64(b.Node.Position.Y - center.Position.Y),
		}
	}
	return st, nil
}
