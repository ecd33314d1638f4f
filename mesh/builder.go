// SPDX-License-Identifier: MIT
// Package: mesh
//
// Purpose:
//   - Build entry point: marching-squares floor, UVs and vertical extent.
//   - One vertex per node key; buffers are rebuilt on every call.
//
// Contract:
//   - Square loop is row-major, so vertex order is deterministic for a grid.

package mesh

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
)

// Default builder settings.
const (
	defaultSquareSize = 1.0
	defaultWallHeight = 5.0
	defaultTileAmount = 10.0
)

// Builder turns grids into geometry. It keeps only the Result of its last
// Build; every call starts from empty buffers, so vertex indices are never
// reused across calls. A Builder is not safe for concurrent use.
type Builder struct {
	squareSize float64
	wallHeight float64
	tileAmount float64
	flat       bool

	last *Result

	// per-call state
	layout    layout
	arena     *vertexArena
	triangles []int
	adjacency map[int][]triangle
	checked   mapset.Set[int]
}

// NewBuilder returns a Builder with square size 1, wall height 5 and tile
// amount 10 in volumetric mode, then applies opts in order.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		squareSize: defaultSquareSize,
		wallHeight: defaultWallHeight,
		tileAmount: defaultTileAmount,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Last returns the Result of the most recent successful Build, or nil.
func (b *Builder) Last() *Result { return b.last }

// Build triangulates g, traces its outlines and emits walls or colliders.
// Loops running only along the outer side of the lattice are the rim of the
// map and are dropped. Grids narrower or shorter than two cells have no
// squares and give an empty floor. The same grid always yields the same
// Result.
//
// Time: O(W·H). Memory: O(W·H) for the vertex arena and triangle index.
func (b *Builder) Build(g *grid.Grid) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilGrid)
	}
	b.reset(g)
	b.triangulate(g)

	floor := &Mesh{
		Vertices:  b.arena.vertices,
		Triangles: b.triangles,
		UVs:       b.floorUVs(g),
	}
	res := &Result{Floor: floor}
	res.MinUp, res.MaxUp = verticalExtent(floor.Vertices)

	raw := b.traceOutlines()
	res.Outlines = make([]Outline, 0, len(raw))
	rockRight := make([]bool, 0, len(raw))
	for _, o := range raw {
		s := simplify(o, floor.Vertices)
		if distinctPoints(s) < 3 || b.frameOnly(s) {
			continue
		}
		res.Outlines = append(res.Outlines, s)
		rockRight = append(rockRight, b.rockOnRight(o))
	}

	if b.flat {
		res.Colliders = colliders(res.Outlines, floor.Vertices)
	} else {
		res.Walls = b.extrude(res, rockRight)
	}
	b.last = res

	return res, nil
}

func (b *Builder) reset(g *grid.Grid) {
	n := g.Width * g.Height
	b.layout = newLayout(g.Width, g.Height, b.squareSize)
	b.arena = newVertexArena(n)
	b.triangles = make([]int, 0, 6*n)
	b.adjacency = make(map[int][]triangle, n)
	b.checked = mapset.New[int]()
}

// triangulate emits the fan of every square, row by row.
func (b *Builder) triangulate(g *grid.Grid) {
	active := func(x, y int) bool { return g.At(x, y) == grid.Wall }
	for y := 0; y < g.Height-1; y++ {
		for x := 0; x < g.Width-1; x++ {
			b.triangulateSquare(newSquare(x, y, active))
		}
	}
}

func (b *Builder) triangulateSquare(s square) {
	pattern := triangulation[s.configuration]
	if len(pattern) == 0 {
		return
	}
	var idx [6]int
	for i, p := range pattern {
		k := s.nodes[p]
		idx[i] = b.arena.assign(k, b.layout.position(k))
	}
	for i := 2; i < len(pattern); i++ {
		b.addTriangle(triangle{idx[0], idx[i-1], idx[i]})
	}
	if s.configuration == 15 {
		// Enclosed corners never start or continue an outline. Frame corners
		// still carry the frame edges of their loop.
		for _, p := range pattern {
			if k := s.nodes[p]; !b.layout.onFrame(k) {
				b.checked.Put(b.arena.vertexIndex(k))
			}
		}
	}
}

func (b *Builder) addTriangle(t triangle) {
	b.triangles = append(b.triangles, t[0], t[1], t[2])
	for _, v := range t {
		b.adjacency[v] = append(b.adjacency[v], t)
	}
}

// floorUVs normalizes x and y against the grid extent, scaled by the tile
// amount, so texture density does not depend on map size.
func (b *Builder) floorUVs(g *grid.Grid) []Vec2 {
	halfW := float64(g.Width) * b.squareSize / 2
	halfH := float64(g.Height) * b.squareSize / 2
	uvs := make([]Vec2, len(b.arena.vertices))
	for i, v := range b.arena.vertices {
		uvs[i] = Vec2{
			X: inverseLerp(-halfW, halfW, v.X) * b.tileAmount,
			Y: inverseLerp(-halfH, halfH, v.Y) * b.tileAmount,
		}
	}
	return uvs
}

func inverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	t := (v - a) / (b - a)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

func verticalExtent(vs []Vec3) (lo, hi float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi = vs[0].Y, vs[0].Y
	for _, v := range vs[1:] {
		lo = min(lo, v.Y)
		hi = max(hi, v.Y)
	}
	return lo, hi
}
