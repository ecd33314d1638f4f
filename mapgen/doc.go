// Package mapgen produces the cleaned, connectivity-guaranteed, bordered
// occupancy grid of a cave.
//
// Pipeline (one synchronous call to Generator.Generate):
//
//	ResolveSeed → RandomFillMap (or PerlinFillMap) → SmoothMap×N
//	→ CleanRegions (walls, then rooms) → ClearRows
//	→ ConnectRooms (+ CarvePassage per connection) → Bordered
//
// Determinism:
//
//   - A fixed seed string hashes (FNV-1a, 64 bit) to the math/rand seed, so
//     identical configs give bit-identical grids across runs and platforms.
//   - UseRandomSeed switches to the generator clock (UnixNano).
//
// Connectivity:
//
//   - Rooms are sorted by size; the largest is the main room.
//   - A greedy pass links each unconnected room to its nearest neighbour,
//     then the globally closest inaccessible/accessible pair is linked until
//     every room is reachable from the main room.
//   - Reachability is a union-find over room ids, so no recursion is needed.
//
// Complexity:
//
//   - Fill, smoothing, cleanup: O(W×H) per pass.
//   - ConnectRooms: O(R² · E²) worst case, R rooms with E edge tiles each.
package mapgen
