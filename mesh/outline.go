// SPDX-License-Identifier: MIT
// Package: mesh
//
// Purpose:
//   - Boundary loop tracing over the vertex→triangle index.
//   - Collinear point removal on traced loops.
//
// Contract:
//   - Loops are closed only over a real boundary edge; no bridging step is added.

package mesh

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// traceOutlines walks every boundary loop of the floor triangulation. A
// vertex is visited at most once. Every boundary vertex of a watertight
// triangulation has exactly two boundary edges, so a walk ends next to its
// start and the loop is closed over that edge. A walk that ends anywhere else
// is kept open rather than bridged.
//
// Time: O(V·d²) with d the triangles per vertex (at most 6). Memory: O(V).
func (b *Builder) traceOutlines() []Outline {
	var outlines []Outline
	for v := range b.arena.vertices {
		if b.checked.Has(v) {
			continue
		}
		next := b.connectedOutlineVertex(v)
		if next < 0 {
			continue
		}
		b.checked.Put(v)
		loop := Outline{v}
		for next >= 0 {
			loop = append(loop, next)
			b.checked.Put(next)
			next = b.connectedOutlineVertex(next)
		}
		if b.isOutlineEdge(loop[len(loop)-1], v) {
			loop = append(loop, v)
		}
		outlines = append(outlines, loop)
	}
	return outlines
}

// frameOnly reports whether every edge of o runs along the lattice frame.
func (b *Builder) frameOnly(o Outline) bool {
	vs := b.arena.vertices
	for i := 0; i+1 < len(o); i++ {
		if !b.layout.frameEdge(vs[o[i]], vs[o[i+1]]) {
			return false
		}
	}
	return true
}

// connectedOutlineVertex returns an unvisited vertex joined to v by a
// boundary edge, or -1.
func (b *Builder) connectedOutlineVertex(v int) int {
	for _, t := range b.adjacency[v] {
		for _, w := range t {
			if w == v || b.checked.Has(w) {
				continue
			}
			if b.isOutlineEdge(v, w) {
				return w
			}
		}
	}
	return -1
}

// isOutlineEdge reports whether edge (a,b) belongs to exactly one triangle.
func (b *Builder) isOutlineEdge(a, w int) bool {
	shared := 0
	for _, t := range b.adjacency[a] {
		if t.contains(w) {
			shared++
			if shared > 1 {
				return false
			}
		}
	}
	return shared == 1
}

// rockOnRight reports whether the triangle owning the first edge of o lies
// to the right of the direction of travel. Tracing keeps one direction per
// loop, so one edge decides for the whole outline.
func (b *Builder) rockOnRight(o Outline) bool {
	a, w := o[0], o[1]
	vs := b.arena.vertices
	for _, t := range b.adjacency[a] {
		if !t.contains(w) {
			continue
		}
		c := t[0] + t[1] + t[2] - a - w
		return orient(vs[a], vs[w], vs[c]) < 0
	}
	return true
}

// orient is the z component of (q-p)×(r-p): positive when r is left of p→q.
func orient(p, q, r Vec3) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

const collinearEpsilon = 1e-9

// simplify drops interior points whose incoming and outgoing directions
// agree. The start and end points are always kept, so closed loops stay
// closed and open chains keep their ends.
// Time: O(n). Memory: O(n).
func simplify(o Outline, vs []Vec3) Outline {
	if len(o) < 3 {
		return append(Outline(nil), o...)
	}
	out := Outline{o[0]}
	for i := 1; i < len(o)-1; i++ {
		prev, cur, next := vs[out[len(out)-1]], vs[o[i]], vs[o[i+1]]
		if sameDirection(cur.Sub(prev), next.Sub(cur)) {
			continue
		}
		out = append(out, o[i])
	}
	return append(out, o[len(o)-1])
}

func sameDirection(d1, d2 Vec3) bool {
	cross := d1.X*d2.Y - d1.Y*d2.X
	return math.Abs(cross) < collinearEpsilon && d1.X*d2.X+d1.Y*d2.Y > 0
}

// distinctPoints counts the different vertices of a loop.
func distinctPoints(o Outline) int {
	seen := mapset.New[int]()
	for _, v := range o {
		seen.Put(v)
	}
	return seen.Size()
}
