// Package spatial defines the nearest-node index over a frame's NodeSet.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/skeletrack/grid"
	"github.com/katalvlaran/skeletrack/topology"
)

// Degree3Steps is the k escalation ClosestDegree3 walks through.
var Degree3Steps = []int{5, 15, 25, 35, 45, 55, 65, 75, 85, 95}

// Point is a continuous query position.
type Point struct {
	X, Y float64
}

// PointOf converts a pixel to a Point.
func PointOf(p grid.Pixel) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Neighbor is a node found by a query together with its distance.
type Neighbor struct {
	Node topology.Node
	Dist float64
}

// entry is a node stored in the tree.
type entry struct {
	x, y float64
	node topology.Node
}

var _ kdtree.Comparable = entry{}

func (e entry) coord(d kdtree.Dim) float64 {
	if d == 0 {
		return e.x
	}
	return e.y
}

// Compare implements kdtree.Comparable.
func (e entry) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return e.coord(d) - c.(entry).coord(d)
}

// Dims implements kdtree.Comparable.
func (e entry) Dims() int { return 2 }

// Distance implements kdtree.Comparable; it is the squared distance.
func (e entry) Distance(c kdtree.Comparable) float64 {
	q := c.(entry)
	dx, dy := e.x-q.x, e.y-q.y
	return dx*dx + dy*dy
}

// entries implements kdtree.Interface.
type entries []entry

var _ kdtree.Interface = entries(nil)

func (es entries) Index(i int) kdtree.Comparable { return es[i] }
func (es entries) Len() int                      { return len(es) }
func (es entries) Slice(start, end int) kdtree.Interface {
	return es[start:end]
}
func (es entries) Pivot(d kdtree.Dim) int {
	return plane{entries: es, dim: d}.Pivot()
}

// plane sorts entries along one dimension for median selection.
type plane struct {
	entries
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	return p.entries[i].coord(p.dim) < p.entries[j].coord(p.dim)
}
func (p plane) Swap(i, j int) {
	p.entries[i], p.entries[j] = p.entries[j], p.entries[i]
}
func (p plane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.entries = p.entries[start:end]
	return p
}
