// SPDX-License-Identifier: MIT
// Package: mesh
//
// Purpose:
//   - Static 16-case marching-squares table and square construction.
//
// Contract:
//   - Every polygon is convex and listed clockwise seen from +Z.

package mesh

// point names one of the eight nodes of a square.
type point uint8

const (
	topLeft point = iota
	topRight
	bottomRight
	bottomLeft
	centreTop
	centreRight
	centreBottom
	centreLeft
)

// Configuration bits, one per active corner.
const (
	bitTopLeft     = 8
	bitTopRight    = 4
	bitBottomRight = 2
	bitBottomLeft  = 1
)

// triangulation maps a square configuration to the polygon covering its
// active corners: 3 points for one corner, 4 for an edge pair, 6 for the two
// saddles (5, 10), 5 for three corners and the full quad for 15. Each polygon
// is fanned from its first point and winds clockwise seen from +Z, so the
// right-handed face normal is -Z.
var triangulation = [16][]point{
	0:  nil,
	1:  {centreLeft, centreBottom, bottomLeft},
	2:  {bottomRight, centreBottom, centreRight},
	3:  {centreRight, bottomRight, bottomLeft, centreLeft},
	4:  {topRight, centreRight, centreTop},
	5:  {centreTop, topRight, centreRight, centreBottom, bottomLeft, centreLeft},
	6:  {centreTop, topRight, bottomRight, centreBottom},
	7:  {centreTop, topRight, bottomRight, bottomLeft, centreLeft},
	8:  {topLeft, centreTop, centreLeft},
	9:  {topLeft, centreTop, centreBottom, bottomLeft},
	10: {topLeft, centreTop, centreRight, bottomRight, centreBottom, centreLeft},
	11: {topLeft, centreTop, centreRight, bottomRight, bottomLeft},
	12: {topLeft, topRight, centreRight, centreLeft},
	13: {topLeft, topRight, centreRight, centreBottom, bottomLeft},
	14: {topLeft, topRight, bottomRight, centreBottom, centreLeft},
	15: {topLeft, topRight, bottomRight, bottomLeft},
}

// square holds the node keys of the cell square whose bottom-left control
// node is (x,y).
type square struct {
	nodes         [8]nodeKey
	configuration int
}

// newSquare names the eight nodes of square (x,y). Midpoints are owned by
// the control node below or left of them: centreTop is topLeft.right,
// centreRight is bottomRight.above, centreBottom is bottomLeft.right and
// centreLeft is bottomLeft.above.
func newSquare(x, y int, active func(x, y int) bool) square {
	var s square
	s.nodes[topLeft] = nodeKey{x, y + 1, control}
	s.nodes[topRight] = nodeKey{x + 1, y + 1, control}
	s.nodes[bottomRight] = nodeKey{x + 1, y, control}
	s.nodes[bottomLeft] = nodeKey{x, y, control}
	s.nodes[centreTop] = nodeKey{x, y + 1, right}
	s.nodes[centreRight] = nodeKey{x + 1, y, above}
	s.nodes[centreBottom] = nodeKey{x, y, right}
	s.nodes[centreLeft] = nodeKey{x, y, above}

	if active(x, y+1) {
		s.configuration |= bitTopLeft
	}
	if active(x+1, y+1) {
		s.configuration |= bitTopRight
	}
	if active(x+1, y) {
		s.configuration |= bitBottomRight
	}
	if active(x, y) {
		s.configuration |= bitBottomLeft
	}
	return s
}
