// Package grid provides the raster accessor the skeleton engine works on:
// bounded reads and writes of non-negative intensities at integer
// coordinates, plus the one canonical 8-neighbourhood enumeration.
package grid

// New returns a zeroed Width×Height grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{
		Width:  width,
		Height: height,
		values: make([]float64, width*height),
	}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice indexed
// rows[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, _ := New(w, h)
	for y := 0; y < h; y++ {
		copy(g.values[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Pixel) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the intensity at p, or 0 outside the grid.
func (g *Grid) At(p Pixel) float64 {
	if !g.InBounds(p) {
		return 0
	}
	return g.values[g.index(p)]
}

// Set stores v at p. Writes outside the grid are ignored.
func (g *Grid) Set(p Pixel, v float64) {
	if !g.InBounds(p) {
		return
	}
	g.values[g.index(p)] = v
}

// Zero clears p to background.
func (g *Grid) Zero(p Pixel) {
	g.Set(p, 0)
}

// IsForeground reports whether the intensity at p is > 0.
func (g *Grid) IsForeground(p Pixel) bool {
	return g.At(p) > 0
}

// Foreground counts foreground pixels.
// Complexity: O(W×H).
func (g *Grid) Foreground() int {
	n := 0
	for _, v := range g.values {
		if v > 0 {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, values: make([]float64, len(g.values))}
	copy(c.values, g.values)
	return c
}

// Scan calls fn for every pixel in row-major order (y outer, x inner).
// Pixels changed by fn before the scan reaches them are seen with their
// new value.
func (g *Grid) Scan(fn func(p Pixel, v float64)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Pixel{X: x, Y: y}
			fn(p, g.values[g.index(p)])
		}
	}
}

// Rows returns a copy of the grid as rows[y][x].
func (g *Grid) Rows() [][]float64 {
	rows := make([][]float64, g.Height)
	for y := range rows {
		rows[y] = make([]float64, g.Width)
		copy(rows[y], g.values[y*g.Width:(y+1)*g.Width])
	}
	return rows
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(p Pixel) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Pixel.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Pixel {
	return Pixel{X: idx % g.Width, Y: idx / g.Width}
}
