// Package cavern generates 2D cave maps and turns them into geometry: a
// seeded occupancy grid, smoothed and cleaned into connected rooms, then
// triangulated into a floor mesh with extruded walls or flat colliders.
//
// Generation is deterministic for a fixed seed string and runs on the
// calling goroutine.
//
// Under the hood the work is split across these packages:
//
//	grid/        Tile, Coord, Grid; flood-fill regions and border padding
//	config/      Config with JSON tags, Default, Validate, Load (go-getter), Merge
//	mapgen/      random/perlin fill, smoothing, region cleanup, room connectivity
//	mesh/        marching squares, outline tracing, wall extrusion, colliders
//	cave/        the end-to-end pipeline with pluggable sinks and slog logging
//	export/      OBJ, JSON and ASCII writers; Dir sink
//	cmd/cavegen  command-line front end
//
// Quick ASCII example (top row first, '#' = Wall):
//
//	##########
//	#...##...#
//	#........#
//	##########
//
// is a grid with one room; after row clearing its top and bottom rows are
// open and the mesh builder extrudes walls only along the sides.
//
//	go get github.com/katalvlaran/cavern
package cavern
