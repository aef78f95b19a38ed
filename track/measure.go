package track

import (
	"fmt"

	"github.com/katalvlaran/skeletrack/editor"
	"github.com/katalvlaran/skeletrack/grid"
)

// Measure revisits every resolved frame in ascending order and records the
// length of each branch and its mean intensity in each channel. In
// NodeMode the branches of the junction are carried slot by slot with
// ReconcileBranches, starting from the first resolved frame. Channels must
// have as many frames as the tracked stack, of the same size.
func (t *Tracker) Measure(channels ...*grid.Stack) ([]Record, error) {
	if t.status == NotInitialized {
		return nil, ErrNotSeeded
	}
	for c, ch := range channels {
		if ch == nil || ch.Len() != t.stack.Len() {
			return nil, fmt.Errorf("%w: channel %d frame count", grid.ErrSizeMismatch, c+1)
		}
	}

	var (
		records []Record
		state   BranchState
	)
	for i, r := range t.Results() {
		var (
			rec    = Record{Frame: r.Frame}
			points [3][]grid.Pixel
		)
		if t.opts.Mode == SegmentMode {
			points[0] = r.Segment.Points
			rec.Lengths[0] = len(r.Segment.Points)
			rec.Vectors[0] = Vector{
				X: float64(r.Segment.Node2.Position.X - r.Segment.Node1.Position.X),
				Y: float64(r.Segment.Node2.Position.Y - r.Segment.Node1.Position.Y),
			}
		} else {
			g, nodes, err := t.visit(r.Frame)
			if err != nil {
				return records, err
			}
			center, ok := nodes.Lookup(r.Node.Position)
			if !ok {
				return records, fmt.Errorf("%w: frame %d: junction %v vanished", ErrNoCorrespondence, r.Frame, r.Node.Position)
			}
			branches, err := editor.FindBranches(g, nodes, center)
			if err != nil {
				return records, fmt.Errorf("frame %d: %w", r.Frame, err)
			}
			cur, err := VectorsOf(center, branches)
			if err != nil {
				return records, fmt.Errorf("frame %d: %w", r.Frame, err)
			}
			order := [3]int{0, 1, 2}
			if i == 0 {
				state = cur
			} else {
				state, order = ReconcileBranches(state, cur)
			}
			rec.Vectors = state
			for j, b := range order {
				points[j] = branches[b].Points
				rec.Lengths[j] = len(branches[b].Points)
			}
		}

		for c, ch := range channels {
			cg, err := ch.Frame(r.Frame)
			if err != nil {
				return records, err
			}
			if cg.Width != t.width() || cg.Height != t.height() {
				return records, fmt.Errorf("%w: channel %d frame %d", grid.ErrSizeMismatch, c+1, r.Frame)
			}
			var m [3]float64
			for j := range points {
				m[j] = editor.MeanIntensity(cg, points[j])
			}
			rec.Means = append(rec.Means, m)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (t *Tracker) width() int {
	f, _ := t.stack.Frame(1)
	return f.Width
}

func (t *Tracker) height() int {
	f, _ := t.stack.Frame(1)
	return f.Height
}
