package mesh

import "github.com/katalvlaran/cavern/config"

// Option customizes a Builder before use.
// Option constructors panic on meaningless values; Build never panics.
type Option func(*Builder)

// WithSquareSize sets the world-space size of one grid cell. Panics if s <= 0.
func WithSquareSize(s float64) Option {
	if s <= 0 {
		panic("mesh: WithSquareSize(s<=0)")
	}
	return func(b *Builder) { b.squareSize = s }
}

// WithWallHeight sets the extrusion depth of walls. Panics if h <= 0.
func WithWallHeight(h float64) Option {
	if h <= 0 {
		panic("mesh: WithWallHeight(h<=0)")
	}
	return func(b *Builder) { b.wallHeight = h }
}

// WithTileAmount sets the UV repeat factor across the map. Panics if n <= 0.
func WithTileAmount(n float64) Option {
	if n <= 0 {
		panic("mesh: WithTileAmount(n<=0)")
	}
	return func(b *Builder) { b.tileAmount = n }
}

// WithFlat switches between volumetric walls (false) and 2D colliders (true).
func WithFlat(flat bool) Option {
	return func(b *Builder) { b.flat = flat }
}

// FromConfig returns the options matching a validated config.
func FromConfig(cfg *config.Config) []Option {
	opts := []Option{
		WithSquareSize(cfg.SquareSize),
		WithTileAmount(cfg.TileAmount),
		WithFlat(cfg.Is2D),
	}
	if !cfg.Is2D {
		opts = append(opts, WithWallHeight(cfg.WallHeight))
	}
	return opts
}
