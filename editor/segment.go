package editor

import (
	"fmt"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
	"github.com/katalvlaran/skeletrack/trace"
)

// FindSegment returns the segment through click: the walk in direction 0
// reversed, click itself, then the walk in direction 1.
// Returns ErrInvalidQueryPoint when click is background, when a direction
// is missing, or when both walks collapse onto the same node without
// points (click is on a node); trace.ErrGraphInconsistency when a walk
// fails.
// Complexity: O(L) for a segment of L pixels.
func FindSegment(g *grid.Grid, nodes *topology.NodeSet, click grid.Pixel) (Segment, error) {
	if !g.IsForeground(click) {
		return Segment{}, fmt.Errorf("%w: %v is background", ErrInvalidQueryPoint, click)
	}
	s1, err := trace.Trace(g, nodes, click, 0)
	if err != nil {
		return Segment{}, err
	}
	s2, err := trace.Trace(g, nodes, click, 1)
	if err != nil {
		return Segment{}, err
	}
	if !s1.Found || !s2.Found {
		return Segment{}, fmt.Errorf("%w: %v is not on a path", ErrInvalidQueryPoint, click)
	}
	if sameNode(s1.Node, s2.Node) && len(s1.Points) == 0 && len(s2.Points) == 0 {
		return Segment{}, fmt.Errorf("%w: %v is a node", ErrInvalidQueryPoint, click)
	}

	points := make([]grid.Pixel, 0, len(s1.Points)+1+len(s2.Points))
	for i := len(s1.Points) - 1; i >= 0; i-- {
		points = append(points, s1.Points[i])
	}
	points = append(points, click)
	points = append(points, s2.Points...)

	return Segment{Points: points, Node1: s1.Node, Node2: s2.Node}, nil
}

// FindClosestPointOnPath searches square rings of radius 0..Radius around
// approx (x outer, y inner) for a plain path pixel:
// foreground, exactly two foreground neighbours, not a node. The first
// match wins. Returns ErrInvalidQueryPoint when none exists.
// Complexity: O(R³) pixel reads for radius R.
func FindClosestPointOnPath(g *grid.Grid, approx grid.Pixel, nodes *topology.NodeSet, opts ...Option) (grid.Pixel, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return grid.Pixel{}, err
	}
	for r := 0; r <= o.Radius; r++ {
		for x := approx.X - r; x <= approx.X+r; x++ {
			for y := approx.Y - r; y <= approx.Y+r; y++ {
				p := grid.Pixel{X: x, Y: y}
				if !g.IsForeground(p) || g.CountNeighbors(p) != 2 {
					continue
				}
				if _, isNode := nodes.Lookup(p); isNode {
					continue
				}
				return p, nil
			}
		}
	}
	return grid.Pixel{}, fmt.Errorf("%w: no path pixel within %d of %v", ErrInvalidQueryPoint, o.Radius, approx)
}

// FindBranches traces the center.Degree walks leaving a node, direction
// by direction, in tolerant mode. Every walk must reach a node.
func FindBranches(g *grid.Grid, nodes *topology.NodeSet, center topology.Node) ([]trace.PartialSegment, error) {
	branches := make([]trace.PartialSegment, 0, center.Degree)
	for dir := 0; dir < center.Degree; dir++ {
		p, err := trace.Trace(g, nodes, center.Position, dir, trace.IgnoreDeadEnds())
		if err != nil {
			return nil, err
		}
		if !p.Found {
			return nil, fmt.Errorf("%w: node %v has no direction %d", trace.ErrGraphInconsistency, center.Position, dir)
		}
		branches = append(branches, p)
	}
	return branches, nil
}

func sameNode(a, b topology.Node) bool {
	return a.ID == b.ID && a.Position == b.Position
}
