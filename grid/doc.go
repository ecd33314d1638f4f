// Package grid holds the binary occupancy grid used by the cave pipeline
// and the flood-fill region analysis performed over it.
//
// What:
//
//   - Grid is a fixed-size, row-major array of Tile values (Wall or Open).
//   - Row y=0 is the bottom (floor) row, y=Height-1 the top (surface) row.
//   - Regions partitions the grid into maximal 4-connected same-tag sets.
//   - Bordered embeds a grid into a padded one for mesh construction.
//
// Complexity:
//
//   - Regions / ConnectedComponents: O(W×H), Memory: O(W×H).
//   - WallNeighbours:               O(1).
//   - Bordered:                     O((W+2b)×(H+2b)).
//
// Errors:
//
//   - ErrEmptyGrid: requested grid has no rows or no columns.
//   - ErrNonRectangular: FromRows input rows have differing lengths.
//   - ErrUnknownTile: FromRows input contains a rune other than '#' or '.'.
//   - ErrOutOfRange: Set was called with coordinates outside the grid.
package grid
