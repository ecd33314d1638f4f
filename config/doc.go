// Package config defines the single parameter structure consumed by the cave
// pipeline, its deterministic defaults, validation, and loading from local or
// remote JSON documents.
//
// Loading:
//
//   - Load accepts a local path or any hashicorp/go-getter source string
//     (http(s)://, s3::, git::, gcs::, ...). Remote documents are fetched
//     into a temporary directory that is removed before Load returns.
//   - Merge overlays file values onto flag values, keeping every field the
//     user set explicitly on the command line.
//
// Errors:
//
//   - ErrInvalidConfig: a field violates its constraint (see Validate).
//   - ErrUnknownFillMode: FillMode is neither FillRandom nor FillPerlin.
//   - ErrLoad: the document could not be fetched, read or decoded.
package config
