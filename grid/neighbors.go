package grid

// Neighbors returns the foreground 8-neighbours of p in NeighborOffsets
// order. Out-of-bounds positions are background.
func (g *Grid) Neighbors(p Pixel) []Pixel {
	out := make([]Pixel, 0, 8)
	for _, d := range NeighborOffsets {
		q := p.Add(d)
		if g.IsForeground(q) {
			out = append(out, q)
		}
	}
	return out
}

// NeighborsExcept is Neighbors with exclude left out.
func (g *Grid) NeighborsExcept(p, exclude Pixel) []Pixel {
	out := make([]Pixel, 0, 8)
	for _, d := range NeighborOffsets {
		q := p.Add(d)
		if q != exclude && g.IsForeground(q) {
			out = append(out, q)
		}
	}
	return out
}

// CountNeighbors returns len(Neighbors(p)) without allocating.
func (g *Grid) CountNeighbors(p Pixel) int {
	n := 0
	for _, d := range NeighborOffsets {
		if g.IsForeground(p.Add(d)) {
			n++
		}
	}
	return n
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(a, b Pixel) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

// Manhattan returns |dx| + |dy|.
func Manhattan(a, b Pixel) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Is8Connected reports whether a and b touch in the 8-neighbourhood
// (true for a == b as well).
func Is8Connected(a, b Pixel) bool {
	return Chebyshev(a, b) < 2
}

// Is4Connected reports whether a and b touch in the 4-neighbourhood
// (true for a == b as well).
func Is4Connected(a, b Pixel) bool {
	return Manhattan(a, b) < 2
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
