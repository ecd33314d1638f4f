// Package export writes generated caves to disk formats: Wavefront OBJ and
// JSON for meshes, JSON for colliders and ASCII for grids.
//
// Dir is a ready-made sink for cave.Generate that writes one file per
// artifact into a directory.
package export
