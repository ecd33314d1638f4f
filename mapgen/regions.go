// SPDX-License-Identifier: MIT
// Package: mapgen
//
// Purpose:
//   - Region cleanup, room materialization and row clearing.

package mapgen

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
)

// CleanRegions removes noise from g in place and returns the surviving rooms.
//
//  1. Wall regions smaller than wallThreshold become Open. A wall region that
//     touches the perimeter is always kept so the outer ring stays solid.
//  2. Open regions smaller than roomThreshold become Wall; the rest become
//     Rooms with their edge tiles detected.
//
// Rooms are returned in region discovery order with ID -1.
//
// Time: O(W·H). Memory: O(W·H).
func CleanRegions(g *grid.Grid, wallThreshold, roomThreshold int) []*Room {
	for _, r := range g.Regions(grid.Wall) {
		if len(r) >= wallThreshold || g.TouchesPerimeter(r) {
			continue
		}
		for _, c := range r {
			g.Cells[c.Y*g.Width+c.X] = grid.Open
		}
	}

	var rooms []*Room
	for _, r := range g.Regions(grid.Open) {
		if len(r) < roomThreshold {
			for _, c := range r {
				g.Cells[c.Y*g.Width+c.X] = grid.Wall
			}
			continue
		}
		rooms = append(rooms, newRoom(r, g))
	}

	return rooms
}

// newRoom materializes a region as a Room. A tile is an edge tile when one
// of its orthogonal in-bounds neighbours is Wall.
func newRoom(r grid.Region, g *grid.Grid) *Room {
	room := &Room{
		ID:        -1,
		Tiles:     []grid.Coord(r),
		Connected: mapset.New[int](),
	}
	for _, c := range r {
		for _, d := range [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
			x, y := c.X+d[0], c.Y+d[1]
			if g.InBounds(x, y) && g.At(x, y) == grid.Wall {
				room.EdgeTiles = append(room.EdgeTiles, c)
				break
			}
		}
	}

	return room
}

// ClearRows forces the bottom (floor) and top (surface) rows fully Open.
// Mesh extrusion relies on these rows to find the surface and floor edges.
func ClearRows(g *grid.Grid) {
	g.FillRow(0, grid.Open)
	g.FillRow(g.Height-1, grid.Open)
}
