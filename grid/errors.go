package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with zero width or height was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates FromRows received rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownTile indicates FromRows met a rune that is not a tile glyph.
	ErrUnknownTile = errors.New("grid: unknown tile glyph")
	// ErrOutOfRange indicates a coordinate outside the grid bounds.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)
