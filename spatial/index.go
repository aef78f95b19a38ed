package spatial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/skeletrack/topology"
)

// Index answers nearest-node queries over a snapshot of a NodeSet.
// Later edits to the NodeSet are not reflected; build a new Index per
// frame visit.
type Index struct {
	tree *kdtree.Tree
	n    int
}

// NewIndex builds a k-d tree over the live nodes.
// Complexity: O(N log N).
func NewIndex(nodes *topology.NodeSet) *Index {
	live := nodes.Nodes()
	es := make(entries, len(live))
	for i, n := range live {
		es[i] = entry{x: float64(n.Position.X), y: float64(n.Position.Y), node: n}
	}
	ix := &Index{n: len(es)}
	if len(es) > 0 {
		ix.tree = kdtree.New(es, false)
	}
	return ix
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.n }

// Nearest returns the node closest to q, or false for an empty index.
func (ix *Index) Nearest(q Point) (Neighbor, bool) {
	found := ix.KNearest(q, 1)
	if len(found) == 0 {
		return Neighbor{}, false
	}
	return found[0], true
}

// KNearest returns up to k nodes ordered by ascending distance to q.
// Equal distances are ordered by handle.
func (ix *Index) KNearest(q Point, k int) []Neighbor {
	if ix.tree == nil || k <= 0 {
		return nil
	}
	keep := kdtree.NewNKeeper(k)
	ix.tree.NearestSet(keep, entry{x: q.X, y: q.Y})

	out := make([]Neighbor, 0, k)
	for _, cd := range keep.Heap {
		// the keeper is seeded with a nil sentinel
		if cd.Comparable == nil {
			continue
		}
		out = append(out, Neighbor{Node: cd.Comparable.(entry).node, Dist: math.Sqrt(cd.Dist)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dist != out[j].Dist {
			return out[i].Dist < out[j].Dist
		}
		return out[i].Node.ID < out[j].Node.ID
	})
	return out
}

// ClosestDegree3 returns the degree-3 node nearest to q. It asks for the
// k nearest nodes with k stepping through Degree3Steps and stops at the
// first k whose answer contains a degree-3 node.
func (ix *Index) ClosestDegree3(q Point) (Neighbor, bool) {
	for _, k := range Degree3Steps {
		for _, nb := range ix.KNearest(q, k) {
			if nb.Node.Degree == 3 {
				return nb, true
			}
		}
		if k >= ix.n {
			break
		}
	}
	return Neighbor{}, false
}
