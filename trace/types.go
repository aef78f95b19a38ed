// Package trace provides options and error definitions for walking a
// skeleton from a pixel to the next node.
package trace

import (
	"errors"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
)

// ErrGraphInconsistency is returned when a walk dead-ends, or cannot
// choose between several continuations, without reaching a registered
// node. The node set is stale or the frame was edited; re-classify.
var ErrGraphInconsistency = errors.New("trace: graph inconsistency")

// PartialSegment is one directed half-walk from a start pixel to the first
// node met. Points holds the interior pixels in walk order and excludes
// both the start pixel and the terminating node.
//
// Found is false when the requested direction does not exist at the start
// pixel; Points is then empty and Node is the zero value.
type PartialSegment struct {
	Points []grid.Pixel
	Node   topology.Node
	Found  bool
}

// Option configures Trace via functional arguments.
type Option func(*Options)

// Options holds tracer parameters.
type Options struct {
	// IgnoreDeadEnds starts walking even when the start pixel is itself a
	// node, and resolves ambiguous steps next to a 3-way junction instead
	// of failing. Used when tracing out of nodes (pruning, branches).
	IgnoreDeadEnds bool

	// MaxSteps caps the walk length; 0 means Width*Height of the grid.
	MaxSteps int
}

// DefaultOptions returns strict tracing with the grid-area step cap.
func DefaultOptions() Options {
	return Options{}
}

// IgnoreDeadEnds enables the tolerant mode described on Options.
func IgnoreDeadEnds() Option {
	return func(o *Options) {
		o.IgnoreDeadEnds = true
	}
}

// WithMaxSteps caps the walk length; n <= 0 keeps the grid-area default.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSteps = n
		}
	}
}
