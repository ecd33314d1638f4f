package mapgen

import (
	"log/slog"
	"time"
)

// Option customizes a Generator before use.
type Option func(*Generator)

// WithClock sets the time source used when UseRandomSeed is requested.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("mapgen: WithClock(nil)")
	}
	return func(g *Generator) {
		g.now = now
	}
}

// WithLogger routes phase-level debug logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mapgen: WithLogger(nil)")
	}
	return func(g *Generator) {
		g.log = l
	}
}
