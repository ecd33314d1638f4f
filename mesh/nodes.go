// SPDX-License-Identifier: MIT
// Package: mesh
//
// Purpose:
//   - Canonical node identity and the lazily filled vertex arena.
//   - Model-space placement of nodes and the lattice frame tests.

package mesh

import "math"

// nodeKind distinguishes the three nodes owned by one grid cell: its control
// node at the cell centre and the two half-edge nodes above and right of it.
type nodeKind uint8

const (
	control nodeKind = iota
	above
	right
)

// nodeKey is the canonical identity of a node. Neighbouring squares name a
// shared corner or midpoint with the same key, so they share its vertex.
type nodeKey struct {
	x, y int
	kind nodeKind
}

// vertexArena assigns vertex indices to nodes lazily. A node absent from the
// index has the sentinel index -1.
type vertexArena struct {
	index    map[nodeKey]int
	vertices []Vec3
}

func newVertexArena(capacity int) *vertexArena {
	return &vertexArena{
		index:    make(map[nodeKey]int, capacity),
		vertices: make([]Vec3, 0, capacity),
	}
}

// vertexIndex returns the index assigned to k, or -1.
func (a *vertexArena) vertexIndex(k nodeKey) int {
	if i, ok := a.index[k]; ok {
		return i
	}
	return -1
}

// assign returns k's index, creating the vertex at pos on first reference.
func (a *vertexArena) assign(k nodeKey, pos Vec3) int {
	if i := a.vertexIndex(k); i >= 0 {
		return i
	}
	i := len(a.vertices)
	a.index[k] = i
	a.vertices = append(a.vertices, pos)

	return i
}

// layout places nodes in model space for a W×H grid of square size s,
// centred on the origin.
type layout struct {
	originX, originY float64
	size             float64
	cols, rows       int
}

func newLayout(width, height int, size float64) layout {
	return layout{
		originX: -float64(width) * size / 2,
		originY: -float64(height) * size / 2,
		size:    size,
		cols:    width,
		rows:    height,
	}
}

func (l layout) position(k nodeKey) Vec3 {
	p := Vec3{
		X: l.originX + float64(k.x)*l.size + l.size/2,
		Y: l.originY + float64(k.y)*l.size + l.size/2,
	}
	switch k.kind {
	case above:
		p.Y += l.size / 2
	case right:
		p.X += l.size / 2
	}
	return p
}

// onFrame reports whether a control node sits on the outer ring of control
// nodes. Squares exist on one side of it only.
func (l layout) onFrame(k nodeKey) bool {
	return k.x == 0 || k.y == 0 || k.x == l.cols-1 || k.y == l.rows-1
}

// frameEdge reports whether p→q runs along the outer side of the square
// lattice. Such edges bound the map itself, not a cave surface.
func (l layout) frameEdge(p, q Vec3) bool {
	lo := Vec2{l.originX + l.size/2, l.originY + l.size/2}
	hi := Vec2{lo.X + float64(l.cols-1)*l.size, lo.Y + float64(l.rows-1)*l.size}
	on := func(a, b, ref float64) bool {
		return math.Abs(a-ref) <= boundaryTolerance && math.Abs(b-ref) <= boundaryTolerance
	}
	return on(p.X, q.X, lo.X) || on(p.X, q.X, hi.X) || on(p.Y, q.Y, lo.Y) || on(p.Y, q.Y, hi.Y)
}
