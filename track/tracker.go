package track

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/skeletrack/editor"
	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/spatial"
	"github.com/katalvlaran/skeletrack/topology"
)

// Tracker follows one entity through a stack of frames.
// A Tracker is not safe for concurrent use; independent Trackers share
// nothing and may run in parallel.
type Tracker struct {
	// ID tags every log message of this tracker.
	ID uuid.UUID

	stack  *grid.Stack
	opts   Options
	logger *log.Logger

	status   Status
	ref      int
	lo, hi   int
	results  []Result
	resolved []bool
}

// NewTracker returns an unseeded tracker over stack.
func NewTracker(stack *grid.Stack, opts ...Option) (*Tracker, error) {
	if stack == nil {
		return nil, grid.ErrEmptyGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	id := uuid.New()
	return &Tracker{
		ID:       id,
		stack:    stack,
		opts:     o,
		logger:   o.Logger.With("session", id.String()),
		results:  make([]Result, stack.Len()),
		resolved: make([]bool, stack.Len()),
	}, nil
}

// Status returns the current state.
func (t *Tracker) Status() Status { return t.status }

// Mode returns the tracking mode.
func (t *Tracker) Mode() Mode { return t.opts.Mode }

// Reference returns the seeded frame, 0 before seeding.
func (t *Tracker) Reference() int { return t.ref }

// Result returns the entity resolved in frame.
func (t *Tracker) Result(frame int) (Result, bool) {
	if frame < 1 || frame > len(t.results) || !t.resolved[frame-1] {
		return Result{}, false
	}
	return t.results[frame-1], true
}

// Results returns the resolved frames in ascending order.
func (t *Tracker) Results() []Result {
	var out []Result
	for i, ok := range t.resolved {
		if ok {
			out = append(out, t.results[i])
		}
	}
	return out
}

// Seed resolves the entity nearest to point in frame and runs the forward
// pass, then the backward pass. A pass that finds no correspondence stops
// early and leaves the tracker PartiallyTracked; Seed still returns nil.
// Seed fails, leaving the tracker unchanged, only when frame is out of
// range or nothing can be resolved at point.
func (t *Tracker) Seed(frame int, point spatial.Point) error {
	g, nodes, err := t.visit(frame)
	if err != nil {
		return err
	}
	r, err := t.resolveAt(g, nodes, point)
	if err != nil {
		return fmt.Errorf("seed frame %d: %w", frame, err)
	}
	r.Frame = frame

	t.reset()
	t.ref = frame
	t.store(r)
	t.logger.Info("seeded", "frame", frame, "mode", t.opts.Mode)

	t.status = ForwardPass
	_ = t.pass(frame, Forward)
	t.status = BackwardPass
	_ = t.pass(frame, Backward)
	t.settle()

	return nil
}

// Step resolves one frame past the last resolved frame in direction.
// It returns the frame it resolved; grid.ErrFrameIndex at the end of the
// stack, ErrNoCorrespondence when the frame has no match and
// ErrOptionViolation for a direction other than Forward or Backward.
func (t *Tracker) Step(dir Direction) (int, error) {
	if !dir.valid() {
		return 0, fmt.Errorf("%w: direction %d", ErrOptionViolation, int(dir))
	}
	if t.status == NotInitialized {
		return 0, ErrNotSeeded
	}
	edge := t.hi
	if dir == Backward {
		edge = t.lo
	}
	frame := edge + int(dir)
	if frame < 1 || frame > t.stack.Len() {
		return 0, fmt.Errorf("%w: %d not in 1..%d", grid.ErrFrameIndex, frame, t.stack.Len())
	}
	err := t.advance(frame, dir)
	t.settle()
	if err != nil {
		return 0, err
	}
	return frame, nil
}

// Correct replaces the entity of an already resolved frame with the one
// nearest to point, for use before re-running Propagate from that frame.
func (t *Tracker) Correct(frame int, point spatial.Point) error {
	if t.status == NotInitialized {
		return ErrNotSeeded
	}
	if _, ok := t.Result(frame); !ok {
		return fmt.Errorf("%w: %d", ErrFrameNotResolved, frame)
	}
	g, nodes, err := t.visit(frame)
	if err != nil {
		return err
	}
	r, err := t.resolveAt(g, nodes, point)
	if err != nil {
		return fmt.Errorf("correct frame %d: %w", frame, err)
	}
	r.Frame = frame
	t.store(r)
	return nil
}

// Propagate discards every frame past from in direction and re-runs the
// pass from there. from must be resolved. The returned error is the one
// that halted the pass, nil when it reached the end of the stack.
func (t *Tracker) Propagate(from int, dir Direction) error {
	if !dir.valid() {
		return fmt.Errorf("%w: direction %d", ErrOptionViolation, int(dir))
	}
	if t.status == NotInitialized {
		return ErrNotSeeded
	}
	if _, ok := t.Result(from); !ok {
		return fmt.Errorf("%w: %d", ErrFrameNotResolved, from)
	}
	for f := from + int(dir); f >= 1 && f <= t.stack.Len(); f += int(dir) {
		t.resolved[f-1] = false
		t.results[f-1] = Result{}
	}
	if dir == Forward {
		t.hi = from
		t.status = ForwardPass
	} else {
		t.lo = from
		t.status = BackwardPass
	}
	err := t.pass(from, dir)
	t.settle()
	return err
}

// pass resolves frames from+dir, from+2·dir, … until the stack ends or a
// frame has no match.
func (t *Tracker) pass(from int, dir Direction) error {
	for f := from + int(dir); f >= 1 && f <= t.stack.Len(); f += int(dir) {
		if err := t.advance(f, dir); err != nil {
			return err
		}
	}
	return nil
}

// advance resolves frame from its already resolved predecessor in dir.
func (t *Tracker) advance(frame int, dir Direction) error {
	prev, ok := t.Result(frame - int(dir))
	if !ok {
		return fmt.Errorf("%w: %d", ErrFrameNotResolved, frame-int(dir))
	}
	g, nodes, err := t.visit(frame)
	if err != nil {
		return err
	}
	r, err := t.follow(g, nodes, prev)
	if err != nil {
		t.logger.Warn("tracking halted", "frame", frame, "direction", dir, "err", err)
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	r.Frame = frame
	t.store(r)
	t.logger.Debug("resolved", "frame", frame, "direction", dir)
	return nil
}

// visit classifies a private copy of frame from scratch.
func (t *Tracker) visit(frame int) (*grid.Grid, *topology.NodeSet, error) {
	f, err := t.stack.Frame(frame)
	if err != nil {
		return nil, nil, err
	}
	g := f.Clone()
	opts := append([]topology.Option{topology.WithLogger(t.logger), topology.WithFrame(frame)}, t.opts.Classify...)
	nodes, _, err := topology.Classify(g, opts...)
	if err != nil {
		return nil, nil, err
	}
	return g, nodes, nil
}

// resolveAt finds the entity nearest to a free position.
func (t *Tracker) resolveAt(g *grid.Grid, nodes *topology.NodeSet, point spatial.Point) (Result, error) {
	if t.opts.Mode == SegmentMode {
		seg, err := t.segmentNear(g, nodes, roundPixel(point))
		if err != nil {
			return Result{}, err
		}
		return Result{Segment: seg}, nil
	}
	nb, ok := spatial.NewIndex(nodes).ClosestDegree3(point)
	if !ok {
		return Result{}, fmt.Errorf("%w: no 3-way junction near %v", ErrNoCorrespondence, point)
	}
	return Result{Node: nb.Node}, nil
}

// follow finds the entity continuing prev in the next frame.
func (t *Tracker) follow(g *grid.Grid, nodes *topology.NodeSet, prev Result) (Result, error) {
	if t.opts.Mode == SegmentMode {
		for _, p := range samples(prev.Segment.Points) {
			seg, err := t.segmentNear(g, nodes, p)
			if err == nil {
				return Result{Segment: seg}, nil
			}
		}
		return Result{}, fmt.Errorf("%w: segment lost", ErrNoCorrespondence)
	}

	from := spatial.PointOf(prev.Node.Position)
	nb, ok := spatial.NewIndex(nodes).ClosestDegree3(from)
	if !ok {
		return Result{}, fmt.Errorf("%w: no 3-way junction near %v", ErrNoCorrespondence, prev.Node.Position)
	}
	if t.opts.MaxDisplacement > 0 && nb.Dist > t.opts.MaxDisplacement {
		return Result{}, fmt.Errorf("%w: junction moved %.1f > %.1f", ErrNoCorrespondence, nb.Dist, t.opts.MaxDisplacement)
	}
	return Result{Node: nb.Node}, nil
}

func (t *Tracker) segmentNear(g *grid.Grid, nodes *topology.NodeSet, p grid.Pixel) (editor.Segment, error) {
	click, err := editor.FindClosestPointOnPath(g, p, nodes, t.opts.Editor...)
	if err != nil {
		return editor.Segment{}, fmt.Errorf("%w: %w", ErrNoCorrespondence, err)
	}
	seg, err := editor.FindSegment(g, nodes, click)
	if err != nil {
		return editor.Segment{}, fmt.Errorf("%w: %w", ErrNoCorrespondence, err)
	}
	return seg, nil
}

// samples returns the points at 1/2, 1/3 and 2/3 of points, in that order.
func samples(points []grid.Pixel) []grid.Pixel {
	n := len(points)
	if n == 0 {
		return nil
	}
	return []grid.Pixel{points[n/2], points[n/3], points[2*n/3]}
}

func roundPixel(p spatial.Point) grid.Pixel {
	return grid.Pixel{X: int(math.Floor(p.X + 0.5)), Y: int(math.Floor(p.Y + 0.5))}
}

func (t *Tracker) reset() {
	for i := range t.results {
		t.results[i] = Result{}
		t.resolved[i] = false
	}
	t.lo, t.hi = 0, 0
}

func (t *Tracker) store(r Result) {
	t.results[r.Frame-1] = r
	t.resolved[r.Frame-1] = true
	if t.lo == 0 || r.Frame < t.lo {
		t.lo = r.Frame
	}
	if r.Frame > t.hi {
		t.hi = r.Frame
	}
}

// settle picks the final status from the resolved range.
func (t *Tracker) settle() {
	if t.lo == 1 && t.hi == t.stack.Len() {
		t.status = FullyTracked
	} else {
		t.status = PartiallyTracked
	}
	t.logger.Info("tracking", "status", t.status, "first", t.lo, "last", t.hi)
}
