package topology

import (
	"fmt"

	"github.com/katalvlaran/skeletrack/grid"
)

// NewNodeSet returns an empty registry.
func NewNodeSet() *NodeSet {
	return &NodeSet{at: make(map[grid.Pixel]Handle)}
}

// Add registers a node at p with the given degree and returns its handle.
// A live node already at p is replaced.
func (s *NodeSet) Add(p grid.Pixel, degree int) Handle {
	if h, ok := s.at[p]; ok {
		s.alive[h] = false
		s.live--
	}
	h := Handle(len(s.nodes))
	s.nodes = append(s.nodes, Node{ID: h, Position: p, Degree: degree})
	s.alive = append(s.alive, true)
	s.at[p] = h
	s.live++

	return h
}

// Lookup returns the live node at p.
// Complexity: O(1).
func (s *NodeSet) Lookup(p grid.Pixel) (Node, bool) {
	h, ok := s.at[p]
	if !ok {
		return Node{}, false
	}
	return s.nodes[h], true
}

// Node returns the live node with handle h.
func (s *NodeSet) Node(h Handle) (Node, bool) {
	if !s.valid(h) {
		return Node{}, false
	}
	return s.nodes[h], true
}

// Len returns the number of live nodes.
func (s *NodeSet) Len() int {
	return s.live
}

// Nodes returns a snapshot of the live nodes in registration order.
func (s *NodeSet) Nodes() []Node {
	out := make([]Node, 0, s.live)
	for h, n := range s.nodes {
		if s.alive[h] {
			out = append(out, n)
		}
	}
	return out
}

// DeadEnds returns a snapshot of the live degree-1 nodes.
func (s *NodeSet) DeadEnds() []Node {
	var out []Node
	for h, n := range s.nodes {
		if s.alive[h] && n.Degree == 1 {
			out = append(out, n)
		}
	}
	return out
}

// Reduce removes one incident edge from node h. A dead end loses its last
// edge and is removed (removed == true); any other node has its degree
// decremented. Degrees never go negative.
func (s *NodeSet) Reduce(h Handle) (removed bool, err error) {
	if !s.valid(h) {
		return false, fmt.Errorf("%w: handle %d", ErrNodeNotFound, h)
	}
	if s.nodes[h].Degree <= 1 {
		s.remove(h)
		return true, nil
	}
	s.nodes[h].Degree--

	return false, nil
}

// Remove drops node h from the live set.
func (s *NodeSet) Remove(h Handle) error {
	if !s.valid(h) {
		return fmt.Errorf("%w: handle %d", ErrNodeNotFound, h)
	}
	s.remove(h)
	return nil
}

// Replace swaps the content of s for other's, keeping s's address, so
// callers holding s see a re-classified frame. Handles of s are invalid
// afterwards; look nodes up again by position.
func (s *NodeSet) Replace(other *NodeSet) {
	s.nodes = make([]Node, len(other.nodes))
	copy(s.nodes, other.nodes)
	s.alive = make([]bool, len(other.alive))
	copy(s.alive, other.alive)
	s.at = make(map[grid.Pixel]Handle, len(other.at))
	for p, h := range other.at {
		s.at[p] = h
	}
	s.live = other.live
}

func (s *NodeSet) valid(h Handle) bool {
	return h >= 0 && int(h) < len(s.nodes) && s.alive[h]
}

func (s *NodeSet) remove(h Handle) {
	s.alive[h] = false
	delete(s.at, s.nodes[h].Position)
	s.live--
}

// Statistics summarises the live nodes by degree.
type Statistics struct {
	// DeadEnds is the number of degree-1 nodes.
	DeadEnds int
	// LeftOverForks is the number of degree-2 nodes (junctions reduced by
	// segment deletion).
	LeftOverForks int
	// Forks maps a degree >= 3 to the number of nodes with it.
	Forks map[int]int
}

// Statistics counts the live nodes by degree.
func (s *NodeSet) Statistics() Statistics {
	st := Statistics{Forks: make(map[int]int)}
	for _, n := range s.Nodes() {
		switch {
		case n.Degree == 1:
			st.DeadEnds++
		case n.Degree == 2:
			st.LeftOverForks++
		case n.Degree >= 3:
			st.Forks[n.Degree]++
		}
	}
	return st
}
