package mapgen

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cavern/grid"
)

// Room is an open region that survived cleanup.
// ID is its rank after sorting by size (0 is the main room); it is -1 until
// ConnectRooms has run.
type Room struct {
	ID        int
	Tiles     []grid.Coord
	EdgeTiles []grid.Coord
	// Connected holds the ids of rooms joined to this one by a passage.
	Connected mapset.Set[int]

	IsMainRoom               bool
	IsAccessibleFromMainRoom bool
}

// Size returns the tile count.
func (r *Room) Size() int { return len(r.Tiles) }

// IsConnected reports whether a passage joins r and o directly.
func (r *Room) IsConnected(o *Room) bool {
	return r.Connected.Has(o.ID)
}

// candidates returns the tiles used as passage endpoints.
func (r *Room) candidates() []grid.Coord {
	if len(r.EdgeTiles) == 0 {
		return r.Tiles
	}
	return r.EdgeTiles
}

// Passage records one carved connection between two rooms.
type Passage struct {
	RoomA, RoomB int
	From, To     grid.Coord
}

// Map is the output of Generator.Generate.
type Map struct {
	// Seed is the resolved PRNG seed.
	Seed int64
	// Grid is the processed, unbordered grid.
	Grid *grid.Grid
	// Bordered is Grid padded by the configured border; MeshBuilder input.
	Bordered *grid.Grid
	Rooms    []*Room
	Passages []Passage
}

// MainRoom returns the largest room, or nil when no room survived cleanup.
func (m *Map) MainRoom() *Room {
	for _, r := range m.Rooms {
		if r.IsMainRoom {
			return r
		}
	}
	return nil
}
