package mapgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/mapgen"
)

// threeRooms is a 30×12 map with three disconnected pockets of decreasing size.
func threeRooms(t *testing.T) *grid.Grid {
	return mustRows(t,
		"##############################",
		"##############################",
		"##.......#######.....######..#",
		"##.......#######.....######..#",
		"##.......#######.....######..#",
		"##.......#######.....#########",
		"##.......#######.....#########",
		"##.......#####################",
		"##.......#####################",
		"##############################",
		"##############################",
		"##############################",
	)
}

// sameOpenRegion reports whether all given tiles sit in one open region of g.
func sameOpenRegion(g *grid.Grid, tiles []grid.Coord) bool {
	label := map[grid.Coord]int{}
	for i, r := range g.Regions(grid.Open) {
		for _, c := range r {
			label[c] = i
		}
	}
	first, ok := label[tiles[0]]
	if !ok {
		return false
	}
	for _, c := range tiles {
		if l, ok := label[c]; !ok || l != first {
			return false
		}
	}
	return true
}

func TestConnectRooms_AllAccessible(t *testing.T) {
	g := threeRooms(t)
	rooms := mapgen.CleanRegions(g, 0, 1)
	require.Len(t, rooms, 3)

	passages := mapgen.ConnectRooms(g, rooms, 1)
	require.NotEmpty(t, passages)

	// Sorted largest first, ids follow the order.
	assert.Equal(t, 49, rooms[0].Size())
	assert.Equal(t, 25, rooms[1].Size())
	assert.Equal(t, 6, rooms[2].Size())
	for i, r := range rooms {
		assert.Equal(t, i, r.ID)
		assert.Equal(t, i == 0, r.IsMainRoom)
		assert.True(t, r.IsAccessibleFromMainRoom, "room %d", i)
		assert.Positive(t, r.Connected.Size(), "room %d has no passage", i)
	}

	var all []grid.Coord
	for _, r := range rooms {
		all = append(all, r.Tiles...)
	}
	assert.True(t, sameOpenRegion(g, all), "rooms must share one open region after carving")
	assert.True(t, perimeterIsWall(g))
}

func TestConnectRooms_ConnectionsSymmetric(t *testing.T) {
	g := threeRooms(t)
	rooms := mapgen.CleanRegions(g, 0, 1)
	passages := mapgen.ConnectRooms(g, rooms, 1)
	for _, p := range passages {
		a, b := rooms[p.RoomA], rooms[p.RoomB]
		assert.True(t, a.IsConnected(b))
		assert.True(t, b.IsConnected(a))
		assert.Contains(t, a.Tiles, p.From)
		assert.Contains(t, b.Tiles, p.To)
	}
}

// TestConnectRooms_ForcedPhase builds two pairs of rooms where the greedy pass
// links each pair to itself, so only the forced phase can reach the far pair.
func TestConnectRooms_ForcedPhase(t *testing.T) {
	g := mustRows(t,
		"##################################",
		"#....#.....#################..#..#",
		"#....#.....#################..#..#",
		"#....#.....#################..#..#",
		"##################################",
	)
	rooms := mapgen.CleanRegions(g, 0, 1)
	require.Len(t, rooms, 4)

	passages := mapgen.ConnectRooms(g, rooms, 1)
	assert.Len(t, passages, 3, "two greedy links plus one forced link")
	for _, r := range rooms {
		assert.True(t, r.IsAccessibleFromMainRoom)
	}
}

func TestConnectRooms_Empty(t *testing.T) {
	g, err := grid.New(5, 5, grid.Wall)
	require.NoError(t, err)
	assert.Nil(t, mapgen.ConnectRooms(g, nil, 2))
	assert.Equal(t, 25, g.Count(grid.Wall))
}

func TestConnectRooms_SingleRoom(t *testing.T) {
	g := mustRows(t,
		"#####",
		"#...#",
		"#####",
	)
	rooms := mapgen.CleanRegions(g, 0, 1)
	passages := mapgen.ConnectRooms(g, rooms, 1)
	assert.Empty(t, passages)
	require.Len(t, rooms, 1)
	assert.True(t, rooms[0].IsMainRoom)
	assert.True(t, rooms[0].IsAccessibleFromMainRoom)
}

// reachable walks the Connected sets breadth-first from room 0.
func reachable(rooms []*mapgen.Room) map[int]bool {
	seen := map[int]bool{0: true}
	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		rooms[id].Connected.Each(func(n int) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		})
	}
	return seen
}

// TestConnectRooms_AccessibilityMatchesPassageGraph checks the union-find
// flags against a plain walk over the passage graph.
func TestConnectRooms_AccessibilityMatchesPassageGraph(t *testing.T) {
	for _, seed := range []string{"test", "cavern", "rooms", "forced", "x9"} {
		t.Run(seed, func(t *testing.T) {
			cfg := scenarioConfig()
			cfg.Width, cfg.Height = 60, 40
			cfg.Seed = seed
			cfg.PassageRadius = 1
			m, err := mapgen.New().Generate(cfg)
			require.NoError(t, err)
			if len(m.Rooms) == 0 {
				return
			}

			degree := map[int]int{}
			for _, p := range m.Passages {
				degree[p.RoomA]++
				degree[p.RoomB]++
			}
			seen := reachable(m.Rooms)
			for _, r := range m.Rooms {
				assert.Equal(t, seen[r.ID], r.IsAccessibleFromMainRoom, "room %d", r.ID)
				assert.LessOrEqual(t, r.Connected.Size(), degree[r.ID], "room %d", r.ID)
			}
			assert.Len(t, seen, len(m.Rooms))
		})
	}
}
