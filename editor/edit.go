package editor

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
	"github.com/katalvlaran/skeletrack/trace"
)

// DeleteSegment clears every pixel of seg and removes one edge from each
// registered endpoint. An endpoint that was a dead end is removed from
// nodes and its pixel cleared. Synthetic endpoints are only cleared with
// the points. Returns topology.ErrNodeNotFound for a stale endpoint; the
// pixels are cleared regardless.
func DeleteSegment(seg Segment, g *grid.Grid, nodes *topology.NodeSet) error {
	_, err := deleteSegment(seg, g, nodes)
	return err
}

// deleteSegment is DeleteSegment returning the number of pixels cleared.
func deleteSegment(seg Segment, g *grid.Grid, nodes *topology.NodeSet) (int, error) {
	cleared := 0
	for _, p := range seg.Points {
		if g.IsForeground(p) {
			cleared++
		}
		g.Zero(p)
	}
	var errs []error
	for _, n := range []topology.Node{seg.Node1, seg.Node2} {
		if !n.Registered() {
			continue
		}
		removed, err := nodes.Reduce(n.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if removed {
			g.Zero(n.Position)
			cleared++
		}
	}
	return cleared, errors.Join(errs...)
}

// PruneAllDeadEnds repeatedly deletes the segment hanging off a dead end
// until none of the dead ends present at the start is left.
//
// Behavior:
//  1. Snapshot the positions of the current degree-1 nodes.
//  2. Take the first live degree-1 node (registration order) at a snapshot
//     position, trace to its neighbour in tolerant mode, delete the
//     segment and reduce both endpoints.
//  3. If the trace fails, re-classify g into nodes and retry once; a second
//     failure is returned.
//  4. Stop when no snapshot dead end remains. Junctions reduced to dead
//     ends by this run are not in the snapshot and stay.
//
// The run is capped at MaxIterations removals (default twice the snapshot
// plus one) and returns ErrPruneLimit beyond it.
func PruneAllDeadEnds(g *grid.Grid, nodes *topology.NodeSet, opts ...Option) (PruneReport, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return PruneReport{}, err
	}
	var rep PruneReport

	snapshot := make(map[grid.Pixel]bool)
	for _, n := range nodes.DeadEnds() {
		snapshot[n.Position] = true
	}
	limit := o.MaxIterations
	if limit == 0 {
		limit = 2*len(snapshot) + 1
	}

	for iter := 0; ; iter++ {
		end, ok := nextDeadEnd(nodes, snapshot)
		if !ok {
			break
		}
		if iter >= limit {
			return rep, fmt.Errorf("%w: %d iterations", ErrPruneLimit, limit)
		}

		p, err := traceDeadEnd(g, nodes, end)
		if err != nil {
			o.Logger.Warn("graph inconsistency, re-analyzing frame", "from", end.Position, "err", err)
			fresh, _, cerr := topology.Classify(g, o.Classify...)
			if cerr != nil {
				return rep, cerr
			}
			nodes.Replace(fresh)
			rep.Reclassified++

			end, ok = nodes.Lookup(end.Position)
			if !ok || end.Degree != 1 {
				continue
			}
			if p, err = traceDeadEnd(g, nodes, end); err != nil {
				return rep, fmt.Errorf("editor: prune dead end at %v: %w", end.Position, err)
			}
		}

		cleared, err := deleteSegment(Segment{Points: p.Points, Node1: end, Node2: p.Node}, g, nodes)
		if err != nil {
			return rep, err
		}
		rep.Segments++
		rep.Pixels += cleared
	}

	if rep.Segments > 0 {
		o.Logger.Info("pruned dead ends", "segments", rep.Segments, "pixels", rep.Pixels, "reanalyzed", rep.Reclassified)
	}
	return rep, nil
}

// nextDeadEnd returns the first live degree-1 node at a snapshot position.
func nextDeadEnd(nodes *topology.NodeSet, snapshot map[grid.Pixel]bool) (topology.Node, bool) {
	for _, n := range nodes.DeadEnds() {
		if snapshot[n.Position] {
			return n, true
		}
	}
	return topology.Node{}, false
}

func traceDeadEnd(g *grid.Grid, nodes *topology.NodeSet, end topology.Node) (trace.PartialSegment, error) {
	p, err := trace.Trace(g, nodes, end.Position, 0, trace.IgnoreDeadEnds())
	if err != nil {
		return p, err
	}
	if !p.Found {
		return p, fmt.Errorf("%w: dead end %v has no neighbour", trace.ErrGraphInconsistency, end.Position)
	}
	return p, nil
}
