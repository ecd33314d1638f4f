// SPDX-License-Identifier: MIT
// Package: mapgen
//
// Purpose:
//   - Integer line rasterization and disc stamping for corridors.
//
// Contract:
//   - Perimeter cells are never opened.

package mapgen

import "github.com/katalvlaran/cavern/grid"

// Line rasterizes the segment from→to with integer steps only. It steps one
// cell per iteration along the dominant axis and accumulates the gradient on
// the other, so consecutive points are 8-adjacent. Both end points are
// included.
func Line(from, to grid.Coord) []grid.Coord {
	x, y := from.X, from.Y
	dx, dy := to.X-from.X, to.Y-from.Y

	inverted := false
	step, gradientStep := sign(dx), sign(dy)
	longest, shortest := abs(dx), abs(dy)
	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]grid.Coord, 0, longest+1)
	acc := longest / 2
	for i := 0; i < longest; i++ {
		line = append(line, grid.Coord{X: x, Y: y})
		if inverted {
			y += step
		} else {
			x += step
		}
		acc += shortest
		if acc >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			acc -= longest
		}
	}

	return append(line, grid.Coord{X: x, Y: y})
}

// CarvePassage opens a corridor between two tiles by stamping an Open disc
// of the given radius at every point of Line(from, to). Perimeter cells are
// never opened.
//
// Time: O(L·r²) for a line of L points. Memory: O(L).
func CarvePassage(g *grid.Grid, from, to grid.Coord, radius int) {
	for _, c := range Line(from, to) {
		stampDisc(g, c, radius)
	}
}

func stampDisc(g *grid.Grid, c grid.Coord, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := c.X+dx, c.Y+dy
			if g.InBounds(x, y) && !g.IsPerimeter(x, y) {
				g.Cells[y*g.Width+x] = grid.Open
			}
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
