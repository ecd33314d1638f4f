// Package cave runs the whole generation pipeline: configuration, map
// generation, mesh building and hand-off of the geometry to sinks.
//
// Generate is one synchronous call. The grid half always runs; the mesh half
// runs only when a floor sink is attached, and every missing sink is logged
// as a warning rather than returned as an error.
//
//	res, err := cave.Generate(cfg,
//		cave.WithLogger(log),
//		cave.WithFloorSink(dir),
//		cave.WithWallSink(dir),
//	)
package cave
