package grid

import (
	"fmt"
	"strings"
)

// New allocates a width×height grid with every cell set to fill.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int, fill Tile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrEmptyGrid)
	}
	g := &Grid{Width: width, Height: height, Cells: make([]Tile, width*height)}
	if fill != Open {
		g.Fill(fill)
	}

	return g, nil
}

// FromRows parses an ASCII picture ('#' = Wall, '.' = Open). The first row
// is the TOP of the grid, so the picture reads the way it is rendered.
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{Width: w, Height: h, Cells: make([]Tile, w*h)}
	for i, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		y := h - 1 - i
		for x, r := range row {
			switch r {
			case '#':
				g.Cells[g.index(x, y)] = Wall
			case '.':
				g.Cells[g.index(x, y)] = Open
			default:
				return nil, fmt.Errorf("FromRows: rune %q at (%d,%d): %w", r, x, y, ErrUnknownTile)
			}
		}
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsPerimeter reports whether (x,y) is on the outermost ring of the grid.
func (g *Grid) IsPerimeter(x, y int) bool {
	return x == 0 || y == 0 || x == g.Width-1 || y == g.Height-1
}

// At returns the tile at (x,y). Out-of-bounds reads return Wall, which is
// how every consumer of the grid treats the outside world.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.Cells[g.index(x, y)]
}

// Set writes t at (x,y). Returns ErrOutOfRange outside the grid.
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("Set(%d,%d): %w", x, y, ErrOutOfRange)
	}
	g.Cells[g.index(x, y)] = t

	return nil
}

// Fill sets every cell to t.
func (g *Grid) Fill(t Tile) {
	for i := range g.Cells {
		g.Cells[i] = t
	}
}

// FillRow sets every cell of row y to t. Rows outside the grid are ignored.
func (g *Grid) FillRow(y int, t Tile) {
	if y < 0 || y >= g.Height {
		return
	}
	row := g.Cells[y*g.Width : (y+1)*g.Width]
	for i := range row {
		row[i] = t
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)

	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// Equal reports whether g and o have identical dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}

	return true
}

// Count returns the number of cells tagged t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.Cells {
		if c == t {
			n++
		}
	}

	return n
}

// WallNeighbours counts Wall cells among the 8 neighbours of (x,y).
// Out-of-bounds neighbours count as Wall.
// Complexity: O(1).
func (g *Grid) WallNeighbours(x, y int) int {
	n := 0
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.At(nx, ny) == Wall {
				n++
			}
		}
	}

	return n
}

// String renders the grid top row first, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			sb.WriteString(g.Cells[g.index(x, y)].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}
