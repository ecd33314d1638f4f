// SPDX-License-Identifier: MIT
// Package: mapgen
//
// Purpose:
//   - One cellular-automaton pass read from a snapshot.

package mapgen

import "github.com/katalvlaran/cavern/grid"

// SmoothMap applies one cellular-automaton pass and returns the next grid.
// Every cell reads the previous snapshot: more than 4 Wall neighbours makes
// it Wall, fewer than 4 makes it Open, exactly 4 leaves it unchanged.
// Out-of-bounds neighbours count as Wall. g is not modified.
//
// Time: O(W·H). Memory: O(W·H) for the returned grid.
func SmoothMap(g *grid.Grid) *grid.Grid {
	next := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			switch n := g.WallNeighbours(x, y); {
			case n > 4:
				next.Cells[y*g.Width+x] = grid.Wall
			case n < 4:
				next.Cells[y*g.Width+x] = grid.Open
			}
		}
	}

	return next
}
