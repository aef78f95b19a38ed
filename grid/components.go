package grid

// Components finds all 8-connected regions of foreground pixels, i.e. the
// separate skeleton pieces of the frame.
// Returns a slice of components; each component lists its pixels in BFS
// order starting from the first pixel met in row-major scan order.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Pixel {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Pixel

	g.Scan(func(p Pixel, v float64) {
		if v <= 0 || seen[g.index(p)] {
			return
		}
		// BFS to collect component
		queue := []Pixel{p}
		seen[g.index(p)] = true
		var comp []Pixel

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, q := range g.Neighbors(u) {
				if i := g.index(q); !seen[i] {
					seen[i] = true
					queue = append(queue, q)
				}
			}
		}
		comps = append(comps, comp)
	})

	return comps
}
