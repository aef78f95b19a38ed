// Package topology defines the Node registry, classifier options, and
// sentinel errors for turning a skeleton frame into graph vertices.
package topology

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/skeletrack/grid"
)

// Sentinel errors for topology operations.
var (
	// ErrNodeNotFound indicates a handle that is unknown or already removed.
	ErrNodeNotFound = errors.New("topology: node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("topology: invalid option supplied")
)

// Handle is a stable index of a Node inside its NodeSet. Handles are never
// reused within one NodeSet, so a removed node's handle stays invalid.
type Handle int

// NoHandle marks a Node that is not registered in any NodeSet: the
// synthetic degree-2 node the tracer creates for a closed loop.
const NoHandle Handle = -1

// Node is a topologically significant skeleton pixel: a dead end
// (Degree 1), a junction (Degree >= 3), or a synthetic loop closure
// (Degree 2). Nodes carry no adjacency; edges are re-derived by tracing.
type Node struct {
	ID       Handle
	Position grid.Pixel
	Degree   int
}

// Registered reports whether n belongs to a NodeSet.
func (n Node) Registered() bool {
	return n.ID != NoHandle
}

// NodeSet is the arena of Nodes of one frame, with a position index.
// It is not safe for concurrent use.
type NodeSet struct {
	nodes []Node
	alive []bool
	at    map[grid.Pixel]Handle
	live  int
}

// Report counts the pixel-level cleanups done by one Classify call.
type Report struct {
	// SpecialCases is the number of ambiguous 2×2 clusters resolved.
	SpecialCases int
	// SpecialCasePasses is the number of full scans the special-case
	// removal needed, including the final clean one.
	SpecialCasePasses int
	// Redundant is the number of pixels removed because their neighbours
	// stay connected without them.
	Redundant int
	// Isolated is the number of pixels with no neighbours that were cleared.
	Isolated int
}

// Option configures Classify via functional arguments.
type Option func(*Options)

// Options holds the classifier parameters.
type Options struct {
	// Logger receives cleanup counts. Defaults to log.Default().
	Logger *log.Logger

	// Frame is attached to log messages; 0 omits it.
	Frame int

	// MaxSpecialCasePasses caps the repeated special-case scans.
	MaxSpecialCasePasses int

	err error
}

// DefaultMaxSpecialCasePasses bounds the special-case fixed point loop.
const DefaultMaxSpecialCasePasses = 16

// DefaultOptions returns Options with log.Default(), no frame tag and
// DefaultMaxSpecialCasePasses.
func DefaultOptions() Options {
	return Options{
		Logger:               log.Default(),
		MaxSpecialCasePasses: DefaultMaxSpecialCasePasses,
	}
}

// WithLogger sets the logger used for cleanup counts.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Quiet silences the classifier.
func Quiet() Option {
	return WithLogger(log.New(io.Discard))
}

// WithFrame tags log messages with the frame index t.
func WithFrame(t int) Option {
	return func(o *Options) {
		o.Frame = t
	}
}

// WithMaxSpecialCasePasses caps the special-case scans.
//
//	n > 0: at most n scans
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxSpecialCasePasses(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSpecialCasePasses must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSpecialCasePasses = n
	}
}
