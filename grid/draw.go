package grid

import "math"

// DrawLine sets every pixel on the digital line from a to b (inclusive) to v.
// It steps one pixel at a time along the major axis and rounds the minor
// coordinate half-up, so consecutive pixels always touch in the
// 8-neighbourhood and no pixel of the line is redundant.
// Pixels outside the grid are skipped.
func (g *Grid) DrawLine(a, b Pixel, v float64) {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	if dx > dy {
		if a.X > b.X {
			a, b = b, a
		}
		inc := float64(b.Y-a.Y) / float64(dx)
		for i := 0; i <= dx; i++ {
			y := roundHalfUp(float64(a.Y) + inc*float64(i))
			g.Set(Pixel{X: a.X + i, Y: y}, v)
		}
		return
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	inc := float64(b.X-a.X) / float64(dy)
	for i := 0; i <= dy; i++ {
		x := roundHalfUp(float64(a.X) + inc*float64(i))
		g.Set(Pixel{X: x, Y: a.Y + i}, v)
	}
}

// DrawPath connects consecutive points with DrawLine.
func (g *Grid) DrawPath(points []Pixel, v float64) {
	if len(points) == 1 {
		g.Set(points[0], v)
	}
	for i := 1; i < len(points); i++ {
		g.DrawLine(points[i-1], points[i], v)
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
