// SPDX-License-Identifier: MIT
package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/config"
	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/mapgen"
	"github.com/katalvlaran/cavern/mesh"
)

func mustRows(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows...)
	require.NoError(t, err)
	return g
}

func build(t *testing.T, g *grid.Grid, opts ...mesh.Option) *mesh.Result {
	t.Helper()
	res, err := mesh.NewBuilder(opts...).Build(g)
	require.NoError(t, err)
	return res
}

// centreBlock is a 2×2 wall block in a 4×4 open grid; its outline is an
// octagon around the origin.
func centreBlock(t *testing.T) *grid.Grid {
	return mustRows(t,
		"....",
		".##.",
		".##.",
		"....",
	)
}

//----------------------------------------------------------------------------//
// Triangulation
//----------------------------------------------------------------------------//

func TestBuild_NilGrid(t *testing.T) {
	_, err := mesh.NewBuilder().Build(nil)
	assert.ErrorIs(t, err, mesh.ErrNilGrid)
}

func TestBuild_SingleSquareConfigurations(t *testing.T) {
	tests := []struct {
		name      string
		rows      []string
		vertices  int
		triangles int
	}{
		{"0 all open", []string{"..", ".."}, 0, 0},
		{"1 bottom left", []string{"..", "#."}, 3, 1},
		{"3 bottom pair", []string{"..", "##"}, 4, 2},
		{"5 saddle", []string{".#", "#."}, 6, 4},
		{"7 three corners", []string{".#", "##"}, 5, 3},
		{"10 saddle", []string{"#.", ".#"}, 6, 4},
		{"15 full", []string{"##", "##"}, 4, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := build(t, mustRows(t, tc.rows...))
			assert.Equal(t, tc.vertices, res.Floor.VertexCount())
			assert.Equal(t, tc.triangles, res.Floor.TriangleCount())
			assert.Len(t, res.Floor.UVs, tc.vertices)
		})
	}
}

func TestBuild_SharedVertices(t *testing.T) {
	// Two full squares share their middle column of control nodes.
	res := build(t, mustRows(t, "###", "###"))
	assert.Equal(t, 6, res.Floor.VertexCount())
	assert.Equal(t, 4, res.Floor.TriangleCount())
	assert.Empty(t, res.Outlines, "a loop along the map rim is not a cave outline")
}

func TestBuild_TooSmall(t *testing.T) {
	res := build(t, mustRows(t, "#"))
	assert.True(t, res.Floor.IsEmpty())
	assert.Empty(t, res.Outlines)
	require.NotNil(t, res.Walls)
	assert.True(t, res.Walls.IsEmpty())
}

func TestBuild_FloorWinding(t *testing.T) {
	res := build(t, centreBlock(t))
	vs, tris := res.Floor.Vertices, res.Floor.Triangles
	for i := 0; i < len(tris); i += 3 {
		n := vs[tris[i+1]].Sub(vs[tris[i]]).Cross(vs[tris[i+2]].Sub(vs[tris[i]]))
		assert.Less(t, n.Z, 0.0, "triangle %d", i/3)
	}
}

func TestBuild_Positions(t *testing.T) {
	res := build(t, mustRows(t, "##", "##"), mesh.WithSquareSize(2))
	// Control nodes of a 2×2 grid of size 2 sit at ±1.
	for _, v := range res.Floor.Vertices {
		assert.InDelta(t, 1.0, abs(v.X), 1e-12)
		assert.InDelta(t, 1.0, abs(v.Y), 1e-12)
		assert.Zero(t, v.Z)
	}
	assert.Equal(t, -1.0, res.MinUp)
	assert.Equal(t, 1.0, res.MaxUp)
	assert.Equal(t, 0.0, res.UpAt(0.5))
}

func TestBuild_UVRange(t *testing.T) {
	res := build(t, centreBlock(t), mesh.WithTileAmount(4))
	for _, uv := range res.Floor.UVs {
		assert.GreaterOrEqual(t, uv.X, 0.0)
		assert.LessOrEqual(t, uv.X, 4.0)
		assert.GreaterOrEqual(t, uv.Y, 0.0)
		assert.LessOrEqual(t, uv.Y, 4.0)
	}
}

//----------------------------------------------------------------------------//
// Outlines
//----------------------------------------------------------------------------//

func TestBuild_OctagonOutline(t *testing.T) {
	res := build(t, centreBlock(t))
	require.Len(t, res.Outlines, 1)
	o := res.Outlines[0]
	require.Len(t, o, 9)
	assert.Equal(t, o[0], o[len(o)-1], "closed")
	assert.Len(t, mesh.BoundaryEdges(res.Floor), 8)
	assert.Equal(t, 12, res.Floor.VertexCount())
	assert.Equal(t, 14, res.Floor.TriangleCount())
}

func TestBuild_SimplifiesStraightRuns(t *testing.T) {
	res := build(t, mustRows(t,
		"......",
		".####.",
		".####.",
		"......",
	))
	require.Len(t, res.Outlines, 1)
	o := res.Outlines[0]
	assert.Len(t, o, 9, "12 boundary points collapse to 8 corners")
	assert.Equal(t, o[0], o[len(o)-1])
	assert.Len(t, mesh.BoundaryEdges(res.Floor), 12)
}

func TestBuild_OutlinesAroundHole(t *testing.T) {
	// An open pocket inside rock gives a loop of its own.
	res := build(t, mustRows(t,
		"######",
		"######",
		"##..##",
		"##..##",
		"######",
		"######",
	))
	require.Len(t, res.Outlines, 1)
	for _, o := range res.Outlines {
		assert.Equal(t, o[0], o[len(o)-1])
		assert.GreaterOrEqual(t, len(o)-1, 3)
	}
}

//----------------------------------------------------------------------------//
// Walls and colliders
//----------------------------------------------------------------------------//

func TestBuild_WallsSkipSurfaceAndFloor(t *testing.T) {
	res := build(t, centreBlock(t), mesh.WithWallHeight(3))
	require.NotNil(t, res.Walls)
	assert.Nil(t, res.Colliders)
	// The octagon's top and bottom edges lie on MaxUp and MinUp.
	assert.Equal(t, 24, res.Walls.VertexCount())
	assert.Equal(t, 12, res.Walls.TriangleCount())
	assert.Len(t, res.Walls.UVs, 24)

	for i, v := range res.Walls.Vertices {
		if i%4 < 2 {
			assert.Zero(t, v.Z)
		} else {
			assert.Equal(t, 3.0, v.Z)
		}
	}
}

func TestBuild_WallNormalsFaceOpenSpace(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows []string
		out  float64 // sign of n·(m-centre) for walls facing open space
	}{
		{"block", []string{"....", ".##.", ".##.", "...."}, 1},
		{"pocket", []string{"######", "######", "##..##", "##..##", "######", "######"}, -1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := build(t, mustRows(t, tc.rows...))
			w := res.Walls
			require.False(t, w.IsEmpty())
			for i := 0; i < len(w.Triangles); i += 3 {
				a, b, c := w.Vertices[w.Triangles[i]], w.Vertices[w.Triangles[i+1]], w.Vertices[w.Triangles[i+2]]
				n := b.Sub(a).Cross(c.Sub(a))
				m := mesh.Vec3{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
				assert.Greater(t, tc.out*n.Dot(m), 0.0, "triangle %d", i/3)
			}
		})
	}
}

func TestBuild_FlatColliders(t *testing.T) {
	res := build(t, centreBlock(t), mesh.WithFlat(true))
	assert.Nil(t, res.Walls)
	require.Len(t, res.Colliders, len(res.Outlines))
	c := res.Colliders[0]
	require.Len(t, c, len(res.Outlines[0]))
	assert.Equal(t, c[0], c[len(c)-1])
	first := res.Floor.Vertices[res.Outlines[0][0]]
	assert.Equal(t, first.XY(), c[0])
}

//----------------------------------------------------------------------------//
// Builder state
//----------------------------------------------------------------------------//

func TestBuild_Idempotent(t *testing.T) {
	b := mesh.NewBuilder()
	assert.Nil(t, b.Last())

	g := centreBlock(t)
	first, err := b.Build(g)
	require.NoError(t, err)
	assert.Same(t, first, b.Last())

	// A different grid in between must not leak indices into the next call.
	_, err = b.Build(mustRows(t, "###", "###"))
	require.NoError(t, err)

	again, err := b.Build(g)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { mesh.WithSquareSize(0) })
	assert.Panics(t, func() { mesh.WithWallHeight(-1) })
	assert.Panics(t, func() { mesh.WithTileAmount(0) })
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SquareSize = 2
	cfg.WallHeight = 7
	res := build(t, centreBlock(t), mesh.FromConfig(cfg)...)
	for _, v := range res.Walls.Vertices {
		assert.Contains(t, []float64{0, 7}, v.Z)
	}

	cfg.Is2D = true
	cfg.WallHeight = 0 // ignored in flat mode
	res = build(t, centreBlock(t), mesh.FromConfig(cfg)...)
	assert.Nil(t, res.Walls)
	assert.NotEmpty(t, res.Colliders)
}

// TestBuild_OpenSurfaceRows uses a padded grid shaped like generator output:
// open surface and floor rows across the full width, rock reaching both sides
// of the frame and a notch in the surface.
func TestBuild_OpenSurfaceRows(t *testing.T) {
	res := build(t, mustRows(t,
		"......",
		"......",
		"##..##",
		"######",
		"......",
		"......",
	))
	assert.Equal(t, 1.0, res.MaxUp, "top of the rock row below the surface")
	assert.Equal(t, -1.0, res.MinUp, "bottom of the rock row above the floor")

	require.Len(t, res.Outlines, 1)
	o := res.Outlines[0]
	assert.Equal(t, o[0], o[len(o)-1])
	assertBoundaryRuns(t, res.Floor, o)

	// Only the notch gets walls: two diagonals and its flat bottom.
	assert.Equal(t, 3, res.Walls.VertexCount()/4)
	assertWallBases(t, res)
}

//----------------------------------------------------------------------------//
// Generated maps
//----------------------------------------------------------------------------//

var generatedSeeds = []string{"mesh", "moss", "surface", "floor", "cavern-7"}

func generated(t *testing.T, seed string) *grid.Grid {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 60, 40
	cfg.Seed = seed
	cfg.RandomFillPercent = 47
	m, err := mapgen.New().Generate(cfg)
	require.NoError(t, err)
	return m.Bordered
}

// boundaryAdjacency links the end points of every floor edge used by a
// single triangle.
func boundaryAdjacency(m *mesh.Mesh) map[int][]int {
	adj := make(map[int][]int)
	for _, e := range mesh.BoundaryEdges(m) {
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}
	return adj
}

// boundaryWalk reports whether a straight chain of boundary edges leads from
// vertex a to vertex b.
func boundaryWalk(vs []mesh.Vec3, adj map[int][]int, a, b int) bool {
	d := vs[b].Sub(vs[a])
	length := d.Dot(d)
	for cur := a; cur != b; {
		progress := vs[cur].Sub(vs[a]).Dot(d)
		next := -1
		for _, w := range adj[cur] {
			p := vs[w].Sub(vs[a])
			along := d.Dot(p)
			if math.Abs(d.X*p.Y-d.Y*p.X) < 1e-9 && along > progress && along <= length+1e-9 {
				next = w
				break
			}
		}
		if next < 0 {
			return false
		}
		cur = next
	}
	return true
}

func assertBoundaryRuns(t *testing.T, floor *mesh.Mesh, o mesh.Outline) {
	t.Helper()
	adj := boundaryAdjacency(floor)
	for i := 0; i+1 < len(o); i++ {
		assert.True(t, boundaryWalk(floor.Vertices, adj, o[i], o[i+1]),
			"segment %v -> %v is not on the floor boundary", floor.Vertices[o[i]], floor.Vertices[o[i+1]])
	}
}

// assertWallBases checks that every wall quad stands on floor boundary edges
// and none stands on the surface or floor level.
func assertWallBases(t *testing.T, res *mesh.Result) {
	t.Helper()
	index := make(map[mesh.Vec3]int, len(res.Floor.Vertices))
	for i, v := range res.Floor.Vertices {
		index[v] = i
	}
	adj := boundaryAdjacency(res.Floor)
	w := res.Walls.Vertices
	for q := 0; q+3 < len(w); q += 4 {
		a, okA := index[w[q]]
		b, okB := index[w[q+1]]
		require.True(t, okA && okB, "quad %d base is not made of floor vertices", q/4)
		assert.True(t, boundaryWalk(res.Floor.Vertices, adj, a, b), "quad %d %v -> %v", q/4, w[q], w[q+1])
		for _, level := range []float64{res.MaxUp, res.MinUp} {
			assert.False(t, w[q].Y == level && w[q+1].Y == level, "quad %d lies on level %v", q/4, level)
		}
	}
}

func TestBuild_Watertight(t *testing.T) {
	res := build(t, generated(t, "mesh"))
	require.False(t, res.Floor.IsEmpty())

	degree := make(map[int]int)
	for e, n := range mesh.EdgeUse(res.Floor) {
		require.Contains(t, []int{1, 2}, n, "edge %v", e)
		if n == 1 {
			degree[e.A]++
			degree[e.B]++
		}
	}
	for v, d := range degree {
		assert.Equal(t, 2, d, "vertex %d", v)
	}
}

func TestBuild_GeneratedOutlinesFollowBoundary(t *testing.T) {
	for _, seed := range generatedSeeds {
		t.Run(seed, func(t *testing.T) {
			res := build(t, generated(t, seed))
			require.NotEmpty(t, res.Outlines)
			for i, o := range res.Outlines {
				assert.Equal(t, o[0], o[len(o)-1], "outline %d", i)
				assert.GreaterOrEqual(t, len(o)-1, 3, "outline %d", i)
				assertBoundaryRuns(t, res.Floor, o)
			}
		})
	}
}

func TestBuild_GeneratedSurfaceStaysOpen(t *testing.T) {
	for _, seed := range generatedSeeds {
		t.Run(seed, func(t *testing.T) {
			g := generated(t, seed)
			res := build(t, g)

			// The cleared rows sit one cell inside the border rows.
			half := float64(g.Height) / 2
			assert.Equal(t, half-2, res.MaxUp)
			assert.Equal(t, 2-half, res.MinUp)

			surface, floor := 0, 0
			vs := res.Floor.Vertices
			for _, o := range res.Outlines {
				for i := 0; i+1 < len(o); i++ {
					p, q := vs[o[i]], vs[o[i+1]]
					switch {
					case p.Y == res.MaxUp && q.Y == res.MaxUp:
						surface++
					case p.Y == res.MinUp && q.Y == res.MinUp:
						floor++
					}
				}
			}
			assert.Positive(t, surface, "surface edges")
			assert.Positive(t, floor, "floor edges")

			require.False(t, res.Walls.IsEmpty())
			assertWallBases(t, res)
		})
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
