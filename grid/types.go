package grid

// Tile is the binary tag of one grid cell.
type Tile uint8

const (
	// Open is traversable space.
	Open Tile = iota
	// Wall is solid rock.
	Wall
)

// String renders the tile glyph used by FromRows and Grid.String.
func (t Tile) String() string {
	if t == Wall {
		return "#"
	}
	return "."
}

// Coord is an integer grid index. Coords compare by value.
type Coord struct {
	X, Y int
}

// SqDist returns the squared euclidean distance between c and o.
func (c Coord) SqDist(o Coord) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx*dx + dy*dy
}

// Region is a maximal 4-connected set of same-tag cells, in BFS order.
type Region []Coord

// Grid is a rectangular array of tiles stored row-major: Cells[y*Width+x].
// Dimensions are fixed at construction.
type Grid struct {
	Width, Height int
	Cells         []Tile
}

// orthogonal offsets in the order N, E, S, W (y grows upward).
var orthogonal = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
