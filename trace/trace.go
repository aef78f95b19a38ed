// Package trace walks a one-pixel-wide skeleton from a start pixel to the
// next registered node, the primitive every segment query is built on.
package trace

import (
	"fmt"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
)

// Trace walks g from start in the given direction until it reaches a node
// of nodes.
//
// Behavior:
//  1. If start is a node and IgnoreDeadEnds is off, return that node with
//     no points ("clicked exactly on a node").
//  2. The first step goes to the direction-th foreground neighbour of start
//     in grid.NeighborOffsets order; a missing direction returns a result
//     with Found == false.
//  3. Each step looks at the foreground neighbours of the current pixel
//     except the one it came from:
//     • none: back at start closes a junction-free loop and yields a
//     synthetic degree-2 node at start (ID topology.NoHandle); anywhere
//     else it is ErrGraphInconsistency.
//     • one: step to it; stop if it is a node.
//     • several: stop at the first candidate that is a node. Without one,
//     strict mode fails with ErrGraphInconsistency; tolerant mode steps to
//     the candidate at Chebyshev distance >= 2 from the previous pixel when
//     that pixel is a 3-way junction, and fails otherwise.
//
// Complexity: O(L) for a walk of L pixels, Memory: O(L).
func Trace(g *grid.Grid, nodes *topology.NodeSet, start grid.Pixel, direction int, opts ...Option) (PartialSegment, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	limit := o.MaxSteps
	if limit == 0 {
		limit = g.Width * g.Height
	}

	if n, ok := nodes.Lookup(start); ok && !o.IgnoreDeadEnds {
		return PartialSegment{Node: n, Found: true}, nil
	}

	first := g.Neighbors(start)
	if direction < 0 || direction >= len(first) {
		return PartialSegment{}, nil
	}

	w := walker{g: g, nodes: nodes, opts: o, start: start, prev: start, next: first[direction]}
	w.node, w.found = nodes.Lookup(w.next)

	for steps := 0; !w.found; steps++ {
		if steps >= limit {
			return PartialSegment{}, w.fail("walk exceeded %d steps", limit)
		}
		if w.next == w.start {
			// closed loop without a junction
			loop := topology.Node{ID: topology.NoHandle, Position: start, Degree: 2}
			return PartialSegment{Points: w.points, Node: loop, Found: true}, nil
		}
		if err := w.step(); err != nil {
			return PartialSegment{}, err
		}
	}

	return PartialSegment{Points: w.points, Node: w.node, Found: true}, nil
}

// walker encapsulates mutable walk state.
type walker struct {
	g     *grid.Grid
	nodes *topology.NodeSet
	opts  Options

	start, prev, next grid.Pixel
	points            []grid.Pixel
	node              topology.Node
	found             bool
}

// step records next as visited and advances prev/next by one pixel, or
// stops at a node among the candidates.
func (w *walker) step() error {
	w.points = append(w.points, w.next)
	cands := w.g.NeighborsExcept(w.next, w.prev)

	switch len(cands) {
	case 0:
		return w.fail("dead end at %v", w.next)
	case 1:
		w.advance(cands[0])
		return nil
	}

	for _, c := range cands {
		if n, ok := w.nodes.Lookup(c); ok {
			w.node, w.found = n, true
			return nil
		}
	}
	if !w.opts.IgnoreDeadEnds {
		return w.fail("%d continuations at %v, none is a node", len(cands), w.next)
	}
	// walk straight through a junction instead of re-entering it diagonally
	if n, ok := w.nodes.Lookup(w.prev); ok && n.Degree == 3 {
		for _, c := range cands {
			if grid.Chebyshev(c, w.prev) >= 2 {
				w.advance(c)
				return nil
			}
		}
	}
	return w.fail("cannot choose between %d continuations at %v", len(cands), w.next)
}

func (w *walker) advance(to grid.Pixel) {
	w.prev, w.next = w.next, to
	w.node, w.found = w.nodes.Lookup(to)
}

func (w *walker) fail(format string, args ...any) error {
	return fmt.Errorf("%w: from %v: %s", ErrGraphInconsistency, w.start, fmt.Sprintf(format, args...))
}
