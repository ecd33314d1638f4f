package config

import "fmt"

// Fill modes for the initial occupancy grid.
const (
	// FillRandom draws one value per interior cell from the seeded stream.
	FillRandom = "random"
	// FillPerlin thresholds 2D Perlin noise seeded with the resolved seed.
	FillPerlin = "perlin"
)

// Config holds every knob of the generation pipeline.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Seed          string `json:"seed"`
	UseRandomSeed bool   `json:"use_random_seed"`

	RandomFillPercent   int     `json:"random_fill_percent"` // 0..100
	FillMode            string  `json:"fill_mode"`           // "random" or "perlin"
	NoiseScale          float64 `json:"noise_scale"`         // perlin sampling period in cells
	SmoothingIterations int     `json:"smoothing_iterations"`

	WallThresholdSize int `json:"wall_threshold_size"`
	RoomThresholdSize int `json:"room_threshold_size"`
	PassageRadius     int `json:"passage_radius"`

	SquareSize float64 `json:"square_size"`
	BorderSize int     `json:"border_size"`

	Is2D       bool    `json:"is_2d"`
	WallHeight float64 `json:"wall_height"` // extrusion depth along Z
	TileAmount float64 `json:"tile_amount"` // UV repeat factor
}

// Default returns a Config with the stock cave settings.
func Default() *Config {
	return &Config{
		Width:               128,
		Height:              72,
		Seed:                "cavern",
		RandomFillPercent:   50,
		FillMode:            FillRandom,
		NoiseScale:          8,
		SmoothingIterations: 5,
		WallThresholdSize:   50,
		RoomThresholdSize:   50,
		PassageRadius:       1,
		SquareSize:          1,
		BorderSize:          1,
		WallHeight:          5,
		TileAmount:          10,
	}
}

// Validate checks every field against its constraint. It is called before
// any grid allocation; the first violation is returned wrapped around
// ErrInvalidConfig (or ErrUnknownFillMode).
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return invalid("width", c.Width, "> 0")
	case c.Height <= 0:
		return invalid("height", c.Height, "> 0")
	case c.RandomFillPercent < 0 || c.RandomFillPercent > 100:
		return invalid("random_fill_percent", c.RandomFillPercent, "in [0,100]")
	case c.SmoothingIterations < 0:
		return invalid("smoothing_iterations", c.SmoothingIterations, ">= 0")
	case c.WallThresholdSize < 0:
		return invalid("wall_threshold_size", c.WallThresholdSize, ">= 0")
	case c.RoomThresholdSize < 0:
		return invalid("room_threshold_size", c.RoomThresholdSize, ">= 0")
	case c.PassageRadius < 1:
		return invalid("passage_radius", c.PassageRadius, ">= 1")
	case c.SquareSize <= 0:
		return invalid("square_size", c.SquareSize, "> 0")
	case c.BorderSize < 0:
		return invalid("border_size", c.BorderSize, ">= 0")
	case !c.Is2D && c.WallHeight <= 0:
		return invalid("wall_height", c.WallHeight, "> 0")
	case c.TileAmount <= 0:
		return invalid("tile_amount", c.TileAmount, "> 0")
	}
	switch c.FillMode {
	case "", FillRandom:
	case FillPerlin:
		if c.NoiseScale <= 0 {
			return invalid("noise_scale", c.NoiseScale, "> 0")
		}
	default:
		return fmt.Errorf("fill_mode %q: %w", c.FillMode, ErrUnknownFillMode)
	}

	return nil
}

func invalid(field string, v any, want string) error {
	return fmt.Errorf("%s=%v, want %s: %w", field, v, want, ErrInvalidConfig)
}
