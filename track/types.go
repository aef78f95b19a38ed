// Package track defines the tracker state machine types, options, and
// sentinel errors for following a junction or a segment through time.
package track

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/skeletrack/editor"
	"github.com/katalvlaran/skeletrack/topology"
)

// Sentinel errors for tracking.
var (
	// ErrNoCorrespondence indicates no matching entity was found in a frame.
	ErrNoCorrespondence = errors.New("track: no correspondence found")

	// ErrNotSeeded is returned by operations that need a reference entity.
	ErrNotSeeded = errors.New("track: tracker not seeded")

	// ErrFrameNotResolved indicates a frame without a tracked entity.
	ErrFrameNotResolved = errors.New("track: frame not resolved")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("track: invalid option supplied")
)

// Mode selects what identity is carried from frame to frame.
type Mode int

const (
	// NodeMode tracks a 3-way junction.
	NodeMode Mode = iota
	// SegmentMode tracks a segment between two nodes.
	SegmentMode
)

func (m Mode) String() string {
	switch m {
	case NodeMode:
		return "node"
	case SegmentMode:
		return "segment"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "node" or "segment" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "node", "":
		return NodeMode, nil
	case "segment":
		return SegmentMode, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
}

// Status is the tracker's position in its state machine.
type Status int

// Tracker states. Seed moves NotInitialized through ForwardPass and
// BackwardPass to one of the two final states.
const (
	NotInitialized Status = iota
	ForwardPass
	BackwardPass
	FullyTracked
	PartiallyTracked
)

func (s Status) String() string {
	switch s {
	case NotInitialized:
		return "not initialized"
	case ForwardPass:
		return "forward pass"
	case BackwardPass:
		return "backward pass"
	case FullyTracked:
		return "fully tracked"
	case PartiallyTracked:
		return "partially tracked"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Direction is the time direction of a pass.
type Direction int

// Pass directions.
const (
	Backward Direction = -1
	Forward  Direction = 1
)

// valid reports whether d is Forward or Backward.
func (d Direction) valid() bool {
	return d == Forward || d == Backward
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Result is the entity resolved in one frame. Node is set in NodeMode,
// Segment in SegmentMode.
type Result struct {
	Frame   int
	Node    topology.Node
	Segment editor.Segment
}

// Record is one measured frame. Slot j holds the branch that continues
// slot j of the previous record. In SegmentMode only slot 0 is used.
type Record struct {
	Frame   int         `json:"frame" yaml:"frame"`
	Lengths [3]int      `json:"lengths" yaml:"lengths"`
	Vectors BranchState `json:"vectors" yaml:"vectors"`
	// Means holds one entry per measured channel.
	Means [][3]float64 `json:"means,omitempty" yaml:"means,omitempty"`
}

// Option configures a Tracker via functional arguments.
type Option func(*Options)

// Options holds tracker parameters.
type Options struct {
	// Logger receives pass progress; the tracker adds its session ID.
	Logger *log.Logger

	// Mode selects junction or segment tracking.
	Mode Mode

	// MaxDisplacement bounds how far a junction may move between frames;
	// 0 means unbounded.
	MaxDisplacement float64

	// Classify holds options for the per-frame classification.
	Classify []topology.Option

	// Editor holds options for segment queries.
	Editor []editor.Option

	err error
}

// DefaultOptions returns NodeMode, unbounded displacement and log.Default().
func DefaultOptions() Options {
	return Options{Logger: log.Default(), Mode: NodeMode}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMode selects NodeMode or SegmentMode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != NodeMode && m != SegmentMode {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithMaxDisplacement bounds the junction displacement between frames.
//
//	d > 0: a junction farther than d from its previous position is no match
//	d == 0: unbounded
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDisplacement(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDisplacement cannot be negative (%g)", ErrOptionViolation, d)
			return
		}
		o.MaxDisplacement = d
	}
}

// WithClassifyOptions passes options to every per-frame classification.
func WithClassifyOptions(opts ...topology.Option) Option {
	return func(o *Options) {
		o.Classify = append(o.Classify, opts...)
	}
}

// WithEditorOptions passes options to segment queries, e.g. the search
// radius.
func WithEditorOptions(opts ...editor.Option) Option {
	return func(o *Options) {
		o.Editor = append(o.Editor, opts...)
	}
}
