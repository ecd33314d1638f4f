// Package mesh converts a bordered occupancy grid into renderable and
// collidable geometry.
//
// What:
//
//   - Floor: marching squares over the grid's control nodes (one per cell,
//     active when the cell is Wall). New vertices are created only on first
//     reference, so adjacent squares share every corner and edge midpoint.
//   - Outlines: closed loops of boundary edges (edges owned by exactly one
//     triangle), traced over a vertex→triangle adjacency index and then
//     stripped of collinear points.
//   - Walls: each outline edge is extruded along +Z by the wall height,
//     except surface edges (both ends on the top of the volume) and floor
//     edges (both ends on the bottom). The floor triangles double as the
//     cap of the wall volume; no second cap is emitted.
//   - Flat mode: outlines become 2D collider polylines instead of walls.
//
// Axes:
//
//	X grows right, Y grows up (the "up" axis), Z is the extrusion depth.
//	Floor triangles wind clockwise seen from +Z (normal -Z); wall normals
//	face open space.
//
// Complexity:
//
//   - Build: O(W×H) for triangulation and tracing, Memory: O(W×H).
//
// Errors:
//
//   - ErrNilGrid: Build was called without a grid.
package mesh
