package mapgen

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cavern/config"
	"github.com/katalvlaran/cavern/grid"
)

// Generator runs the map half of the pipeline. It holds no state between
// calls; the zero value is not usable, construct it with New.
type Generator struct {
	now func() time.Time
	log *slog.Logger
}

// New returns a Generator using the wall clock and a discarding logger,
// then applies opts in order.
func New(opts ...Option) *Generator {
	g := &Generator{
		now: time.Now,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates cfg and produces the processed and bordered grids.
// Validation happens before any allocation; a failure wraps
// config.ErrInvalidConfig. A map where no room survives cleanup is not an
// error: connectivity is skipped and the grid is returned as is.
func (gen *Generator) Generate(cfg *config.Config) (*Map, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mapgen: nil config: %w", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}

	seed := ResolveSeed(cfg.Seed, cfg.UseRandomSeed, gen.now)
	g, err := gen.fill(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("mapgen: %w", err)
	}
	gen.log.Debug("map filled", "seed", seed, "mode", cfg.FillMode, "walls", g.Count(grid.Wall))

	for i := 0; i < cfg.SmoothingIterations; i++ {
		g = SmoothMap(g)
	}

	rooms := CleanRegions(g, cfg.WallThresholdSize, cfg.RoomThresholdSize)
	gen.log.Debug("regions cleaned", "rooms", len(rooms))
	ClearRows(g)

	passages := ConnectRooms(g, rooms, cfg.PassageRadius)
	gen.log.Debug("rooms connected", "passages", len(passages))

	return &Map{
		Seed:     seed,
		Grid:     g,
		Bordered: g.Bordered(cfg.BorderSize),
		Rooms:    rooms,
		Passages: passages,
	}, nil
}

func (gen *Generator) fill(cfg *config.Config, seed int64) (*grid.Grid, error) {
	if cfg.FillMode == config.FillPerlin {
		return PerlinFillMap(cfg.Width, cfg.Height, cfg.RandomFillPercent, cfg.NoiseScale, seed)
	}
	return RandomFillMap(cfg.Width, cfg.Height, cfg.RandomFillPercent, newRand(seed))
}
