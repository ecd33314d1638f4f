// SPDX-License-Identifier: MIT
// Package: mesh
//
// Purpose:
//   - Wall quads along outlines, 2D colliders in flat mode.
//
// Contract:
//   - Surface, floor and frame edges never get a wall.

package mesh

import "math"

// boundaryTolerance decides whether an edge lies on the top or bottom of the
// volume.
const boundaryTolerance = 1e-4

// extrude emits one quad per outline edge, offset by +Z*wallHeight. Edges on
// the surface or the floor of the volume stay open, and so do edges on the
// lattice frame, which face out of the map. rockRight is parallel to
// res.Outlines.
//
// Time: O(total outline length). Memory: 4 vertices and 2 triangles per quad.
func (b *Builder) extrude(res *Result, rockRight []bool) *Mesh {
	fv := res.Floor.Vertices
	walls := &Mesh{}
	depth := Vec3{Z: b.wallHeight}

	for i, o := range res.Outlines {
		for j := 0; j+1 < len(o); j++ {
			a, c := o[j], o[j+1]
			if res.skipEdge(fv[a], fv[c]) || b.layout.frameEdge(fv[a], fv[c]) {
				continue
			}
			if !rockRight[i] {
				a, c = c, a
			}
			base := len(walls.Vertices)
			walls.Vertices = append(walls.Vertices,
				fv[a], fv[c], fv[a].Add(depth), fv[c].Add(depth))
			walls.UVs = append(walls.UVs,
				Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, Vec2{1, 1})
			walls.Triangles = append(walls.Triangles,
				base, base+2, base+3,
				base+3, base+1, base)
		}
	}
	return walls
}

// skipEdge reports whether p→q is a surface or floor edge.
func (r *Result) skipEdge(p, q Vec3) bool {
	near := func(v, ref float64) bool { return math.Abs(v-ref) <= boundaryTolerance }
	if near(p.Y, r.MaxUp) && near(q.Y, r.MaxUp) {
		return true
	}
	return near(p.Y, r.MinUp) && near(q.Y, r.MinUp)
}

// colliders projects every outline onto the XY plane.
func colliders(outlines []Outline, vs []Vec3) []Polyline {
	out := make([]Polyline, 0, len(outlines))
	for _, o := range outlines {
		p := make(Polyline, len(o))
		for i, v := range o {
			p[i] = vs[v].XY()
		}
		out = append(out, p)
	}
	return out
}
