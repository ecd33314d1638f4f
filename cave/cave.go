package cave

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/cavern/config"
	"github.com/katalvlaran/cavern/mapgen"
	"github.com/katalvlaran/cavern/mesh"
)

// ErrSink wraps failures reported by a sink.
var ErrSink = errors.New("cave: sink failed")

// Result is everything one Generate call produced.
type Result struct {
	Map *mapgen.Map
	// Mesh is nil when the mesh step was skipped.
	Mesh *mesh.Result
}

// Generate validates cfg, builds the map and, when a floor sink is attached,
// the mesh. Configuration errors are returned before any grid is allocated.
func Generate(cfg *config.Config, opts ...Option) (*Result, error) {
	o := options{
		log: slog.New(slog.DiscardHandler),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	gen := mapgen.New(mapgen.WithLogger(o.log), mapgen.WithClock(o.now))
	m, err := gen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	o.log.Info("map generated",
		"seed", m.Seed,
		"width", m.Bordered.Width,
		"height", m.Bordered.Height,
		"rooms", len(m.Rooms),
		"passages", len(m.Passages),
	)

	res := &Result{Map: m}
	if o.floor == nil {
		o.log.Warn("no floor sink attached, mesh step skipped")
		return res, nil
	}

	res.Mesh, err = mesh.NewBuilder(mesh.FromConfig(cfg)...).Build(m.Bordered)
	if err != nil {
		return nil, fmt.Errorf("cave: %w", err)
	}
	o.log.Info("floor built",
		"vertices", res.Mesh.Floor.VertexCount(),
		"triangles", res.Mesh.Floor.TriangleCount(),
		"outlines", len(res.Mesh.Outlines),
	)

	if err := o.floor.WriteMesh(FloorMesh, res.Mesh.Floor); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", FloorMesh, err, ErrSink)
	}
	if err := o.emitBoundary(res.Mesh); err != nil {
		return nil, err
	}

	return res, nil
}

// emitBoundary hands walls or colliders to their sink, depending on mode.
func (o *options) emitBoundary(r *mesh.Result) error {
	if r.Walls == nil {
		if o.colliders == nil {
			o.log.Warn("no collider sink attached, colliders skipped", "colliders", len(r.Colliders))
			return nil
		}
		o.log.Debug("colliders built", "colliders", len(r.Colliders))
		if err := o.colliders.WriteColliders(r.Colliders); err != nil {
			return fmt.Errorf("colliders: %v: %w", err, ErrSink)
		}
		return nil
	}

	if o.walls == nil {
		o.log.Warn("no wall sink attached, walls skipped", "triangles", r.Walls.TriangleCount())
		return nil
	}
	o.log.Debug("walls built", "vertices", r.Walls.VertexCount(), "triangles", r.Walls.TriangleCount())
	if err := o.walls.WriteMesh(WallMesh, r.Walls); err != nil {
		return fmt.Errorf("%s: %v: %w", WallMesh, err, ErrSink)
	}
	return nil
}
