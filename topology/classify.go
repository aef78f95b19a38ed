package topology

import (
	"github.com/katalvlaran/skeletrack/grid"
)

// Classify cleans pixel artifacts in g and returns the frame's nodes:
//
//  1. RemoveSpecialCases until a scan finds none (bounded).
//  2. RemoveRedundantPixels, one row-major pass.
//  3. ExtractNodes.
//
// g is modified in place. On a frame that is already clean, Classify
// removes nothing and returns the same node set every time.
// Returns ErrOptionViolation for invalid options.
//
// Complexity: O(P·W·H) for P special-case passes, Memory: O(nodes).
func Classify(g *grid.Grid, opts ...Option) (*NodeSet, Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, Report{}, o.err
	}
	logger := o.Logger
	if o.Frame > 0 {
		logger = logger.With("frame", o.Frame)
	}

	var rep Report
	var converged bool
	rep.SpecialCases, rep.SpecialCasePasses, converged = removeSpecialCasesBounded(g, o.MaxSpecialCasePasses)
	if rep.SpecialCases > 0 {
		logger.Info("removed special cases", "count", rep.SpecialCases, "passes", rep.SpecialCasePasses)
	}
	if !converged {
		logger.Warn("special-case removal stopped at pass limit", "limit", o.MaxSpecialCasePasses)
	}

	rep.Redundant = RemoveRedundantPixels(g)
	if rep.Redundant > 0 {
		logger.Info("removed redundant pixels", "count", rep.Redundant)
	}

	nodes, isolated := ExtractNodes(g)
	rep.Isolated = isolated
	if isolated > 0 {
		logger.Info("removed isolated pixels", "count", isolated)
	}
	logger.Debug("classified frame", "nodes", nodes.Len())

	return nodes, rep, nil
}

// RemoveSpecialCases resolves, in one row-major scan, every foreground
// pixel p whose left, upper-left and upper neighbours are foreground too
// (a filled 2×2 cluster that would classify as two junctions):
//
//	x  x        x  x
//	 xx          xx
//	 xx    -->   x x
//	x  x        x  x
//
// The value of p moves one step along +x (dropped at the right border)
// and p is cleared. Returns the number of clusters resolved.
func RemoveSpecialCases(g *grid.Grid) int {
	count := 0
	g.Scan(func(p grid.Pixel, v float64) {
		if v <= 0 {
			return
		}
		left := grid.Pixel{X: p.X - 1, Y: p.Y}
		upLeft := grid.Pixel{X: p.X - 1, Y: p.Y - 1}
		up := grid.Pixel{X: p.X, Y: p.Y - 1}
		if !g.IsForeground(left) || !g.IsForeground(upLeft) || !g.IsForeground(up) {
			return
		}
		count++
		g.Set(grid.Pixel{X: p.X + 1, Y: p.Y}, v)
		g.Zero(p)
	})
	return count
}

// removeSpecialCasesBounded repeats RemoveSpecialCases until a scan finds
// nothing or maxPasses scans ran. Returns the total resolved, the number
// of scans, and whether the last scan came back clean.
func removeSpecialCasesBounded(g *grid.Grid, maxPasses int) (total, passes int, converged bool) {
	for passes < maxPasses {
		passes++
		n := RemoveSpecialCases(g)
		total += n
		if n == 0 {
			return total, passes, true
		}
	}
	return total, passes, false
}

// RemoveRedundantPixels clears, in one row-major pass, every foreground
// pixel with at least two foreground neighbours whose neighbours remain
// mutually 8-connected among themselves without it. Such a pixel only adds
// thickness. The test reads the live grid, so earlier removals in the same
// pass are visible; call again to catch newly exposed redundancy.
// Returns the number of pixels cleared.
func RemoveRedundantPixels(g *grid.Grid) int {
	removed := 0
	g.Scan(func(p grid.Pixel, v float64) {
		if v <= 0 {
			return
		}
		neighbors := g.Neighbors(p)
		if len(neighbors) < 2 {
			return
		}
		if connectedWithout(neighbors) {
			g.Zero(p)
			removed++
		}
	})
	return removed
}

// connectedWithout reports whether pts form one 8-connected group using
// only adjacencies among themselves.
func connectedWithout(pts []grid.Pixel) bool {
	inGroup := make([]bool, len(pts))
	inGroup[0] = true
	grouped := 1
	for added := true; added; {
		added = false
		for i, p := range pts {
			if inGroup[i] {
				continue
			}
			for j, q := range pts {
				if inGroup[j] && grid.Is8Connected(p, q) {
					inGroup[i] = true
					grouped++
					added = true
					break
				}
			}
		}
	}
	return grouped == len(pts)
}

// ExtractNodes scans g row-major and registers:
//   - no Node for pixels with 0 neighbours, which are cleared as isolated;
//   - a degree-1 Node for pixels with 1 neighbour;
//   - nothing for pixels with 2 neighbours (plain path);
//   - for more neighbours, the count minus one per 4-connected neighbour
//     pair (each unordered pair once) as effective degree, and a Node
//     when that is still > 2.
//
// Returns the node set and the number of isolated pixels cleared.
func ExtractNodes(g *grid.Grid) (*NodeSet, int) {
	nodes := NewNodeSet()
	isolated := 0
	g.Scan(func(p grid.Pixel, v float64) {
		if v <= 0 {
			return
		}
		neighbors := g.Neighbors(p)
		switch n := len(neighbors); {
		case n == 0:
			g.Zero(p)
			isolated++
		case n == 1:
			nodes.Add(p, 1)
		case n > 2:
			if d := EffectiveDegree(neighbors); d > 2 {
				nodes.Add(p, d)
			}
		}
	})
	return nodes, isolated
}

// EffectiveDegree counts the distinct lines touching a pixel with the
// given foreground neighbours: two 4-connected neighbours belong to the
// same line, so each such pair (i < j) takes one away.
func EffectiveDegree(neighbors []grid.Pixel) int {
	d := len(neighbors)
	for i := 0; i < len(neighbors)-1; i++ {
		for j := i + 1; j < len(neighbors); j++ {
			if grid.Is4Connected(neighbors[i], neighbors[j]) {
				d--
			}
		}
	}
	return d
}
