package cave

import (
	"log/slog"
	"time"
)

type options struct {
	log       *slog.Logger
	now       func() time.Time
	floor     MeshSink
	walls     MeshSink
	colliders ColliderSink
}

// Option configures one Generate call. Constructors panic on nil arguments.
type Option func(*options)

// WithLogger routes pipeline logs to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cave: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// WithClock sets the time source for time-based seeds.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("cave: WithClock(nil)")
	}
	return func(o *options) { o.now = now }
}

// WithFloorSink attaches the floor mesh target. Without it the mesh step is
// skipped.
func WithFloorSink(s MeshSink) Option {
	if s == nil {
		panic("cave: WithFloorSink(nil)")
	}
	return func(o *options) { o.floor = s }
}

// WithWallSink attaches the wall mesh target for volumetric builds.
func WithWallSink(s MeshSink) Option {
	if s == nil {
		panic("cave: WithWallSink(nil)")
	}
	return func(o *options) { o.walls = s }
}

// WithColliderSink attaches the collider target for flat builds.
func WithColliderSink(s ColliderSink) Option {
	if s == nil {
		panic("cave: WithColliderSink(nil)")
	}
	return func(o *options) { o.colliders = s }
}
