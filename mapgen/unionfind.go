// SPDX-License-Identifier: MIT
// Package: mapgen
//
// Purpose:
//   - Disjoint-set over room ids backing main-room accessibility.

package mapgen

// unionFind is a disjoint-set over room ids with path compression and union
// by rank. Room 0 is the main room, so accessible(i) means "same set as 0".
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// find walks to the root iteratively, halving the path on the way.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}
	return u
}

func (uf *unionFind) union(u, v int) {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return
	}
	// Attach smaller-rank tree under larger-rank root.
	if uf.rank[ru] < uf.rank[rv] {
		uf.parent[ru] = rv
	} else {
		uf.parent[rv] = ru
		if uf.rank[ru] == uf.rank[rv] {
			uf.rank[ru]++
		}
	}
}

func (uf *unionFind) accessible(u int) bool {
	return uf.find(u) == uf.find(0)
}
