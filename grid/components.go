package grid

// ConnectedComponents finds every maximal 4-connected set of cells tagged t.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS order. Components are discovered in row-major order
// of their first cell, so the result is deterministic for a given grid.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(t Tile) [][]int {
	seen := make([]bool, len(g.Cells))
	var comps [][]int

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i0 := g.index(x, y)
			if seen[i0] || g.Cells[i0] != t {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := u%g.Width, u/g.Width
				for _, d := range orthogonal {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) {
						continue
					}
					vi := g.index(vx, vy)
					if !seen[vi] && g.Cells[vi] == t {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Regions is ConnectedComponents with indices converted to Coords.
func (g *Grid) Regions(t Tile) []Region {
	comps := g.ConnectedComponents(t)
	regions := make([]Region, len(comps))
	for i, comp := range comps {
		r := make(Region, len(comp))
		for j, idx := range comp {
			r[j] = g.Coordinate(idx)
		}
		regions[i] = r
	}

	return regions
}

// TouchesPerimeter reports whether any cell of r lies on g's outer ring.
func (g *Grid) TouchesPerimeter(r Region) bool {
	for _, c := range r {
		if g.IsPerimeter(c.X, c.Y) {
			return true
		}
	}

	return false
}
