// Package editor defines segment types, options, and sentinel errors for
// querying and editing the implicit graph of a skeleton frame.
package editor

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
)

// Sentinel errors for editor operations.
var (
	// ErrInvalidQueryPoint indicates there is no segment at the queried
	// point: no plain path pixel within the search radius, or the point is
	// a node itself. It is an expected outcome of interactive queries.
	ErrInvalidQueryPoint = errors.New("editor: no segment at query point")

	// ErrPruneLimit indicates dead-end pruning hit its iteration cap.
	ErrPruneLimit = errors.New("editor: prune iteration limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("editor: invalid option supplied")
)

// MaxSearchRadius is the largest ring FindClosestPointOnPath searches.
const MaxSearchRadius = 5

// Segment is the full path between two nodes through a queried pixel.
// Points runs from Node1 to Node2 and excludes both nodes.
type Segment struct {
	Points []grid.Pixel
	Node1  topology.Node
	Node2  topology.Node
}

// Len returns the number of interior pixels.
func (s Segment) Len() int {
	return len(s.Points)
}

// MeanIntensity averages g over the segment's points; 0 for an empty
// segment.
func (s Segment) MeanIntensity(g *grid.Grid) float64 {
	return MeanIntensity(g, s.Points)
}

// MeanIntensity returns sum(g at p) / len(points), or 0 for no points.
func MeanIntensity(g *grid.Grid, points []grid.Pixel) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += g.At(p)
	}
	return sum / float64(len(points))
}

// PruneReport summarises a PruneAllDeadEnds run.
type PruneReport struct {
	// Segments is the number of dead-end segments deleted.
	Segments int
	// Pixels is the number of pixels cleared, nodes included.
	Pixels int
	// Reclassified is the number of self-healing re-classifications.
	Reclassified int
}

// Option configures editor operations via functional arguments.
type Option func(*Options)

// Options holds editor parameters.
type Options struct {
	// Logger receives prune progress and self-healing warnings.
	Logger *log.Logger

	// Radius is the FindClosestPointOnPath search radius, 0..MaxSearchRadius.
	Radius int

	// MaxIterations caps PruneAllDeadEnds; 0 derives the cap from the
	// dead-end snapshot.
	MaxIterations int

	// Classify holds the options used when pruning re-classifies a frame.
	Classify []topology.Option

	err error
}

// DefaultOptions returns log.Default(), the maximum search radius and a
// derived prune cap.
func DefaultOptions() Options {
	return Options{
		Logger: log.Default(),
		Radius: MaxSearchRadius,
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRadius sets the search radius.
//
//	0 <= r <= MaxSearchRadius: search rings 0..r
//	otherwise: invalid option → ErrOptionViolation
func WithRadius(r int) Option {
	return func(o *Options) {
		if r < 0 || r > MaxSearchRadius {
			o.err = fmt.Errorf("%w: radius must be in 0..%d (%d)", ErrOptionViolation, MaxSearchRadius, r)
			return
		}
		o.Radius = r
	}
}

// WithMaxIterations caps the number of dead ends PruneAllDeadEnds removes.
//
//	n > 0: explicit cap
//	n == 0: derived cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithClassifyOptions passes options to the re-classification pruning
// falls back on.
func WithClassifyOptions(opts ...topology.Option) Option {
	return func(o *Options) {
		o.Classify = append(o.Classify, opts...)
	}
}
