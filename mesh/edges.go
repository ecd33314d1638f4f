// SPDX-License-Identifier: MIT
// Package: mesh
//
// Purpose:
//   - Undirected edge counting for watertightness checks.

package mesh

// Edge is an undirected edge between two vertex indices, stored with A < B.
type Edge struct {
	A, B int
}

// NewEdge returns the canonical edge between u and v.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{A: u, B: v}
}

// EdgeUse counts how many triangles of m use each undirected edge. In a
// watertight triangulation interior edges count 2 and boundary edges 1.
func EdgeUse(m *Mesh) map[Edge]int {
	use := make(map[Edge]int, len(m.Triangles))
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a, b, c := m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2]
		use[NewEdge(a, b)]++
		use[NewEdge(b, c)]++
		use[NewEdge(c, a)]++
	}
	return use
}

// BoundaryEdges returns the edges of m used by exactly one triangle.
func BoundaryEdges(m *Mesh) []Edge {
	var out []Edge
	for e, n := range EdgeUse(m) {
		if n == 1 {
			out = append(out, e)
		}
	}
	return out
}
