package grid

// Bordered embeds g into a new (W+2b)×(H+2b) grid. The inner region is a copy
// of g; the top and bottom border rows are Open; the left and right border
// columns repeat g's edge cell of the same row. On a generated map the edge
// columns are Wall except in the cleared surface and floor rows, so those
// rows stay open across the full width. size <= 0 returns a plain clone.
// Complexity: O((W+2b)×(H+2b)).
func (g *Grid) Bordered(size int) *Grid {
	if size <= 0 {
		return g.Clone()
	}
	w, h := g.Width+2*size, g.Height+2*size
	out := &Grid{Width: w, Height: h, Cells: make([]Tile, w*h)}
	for y := 0; y < h; y++ {
		if y < size || y >= g.Height+size {
			continue // Open
		}
		iy := y - size
		for x := 0; x < w; x++ {
			ix := min(max(x-size, 0), g.Width-1)
			out.Cells[out.index(x, y)] = g.Cells[g.index(ix, iy)]
		}
	}

	return out
}
