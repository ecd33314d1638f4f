package config

import "errors"

var (
	// ErrInvalidConfig indicates a field outside its documented range.
	// Validate wraps it with the offending field name.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrUnknownFillMode indicates an unsupported FillMode value.
	ErrUnknownFillMode = errors.New("config: unknown fill mode")
	// ErrLoad indicates the config document could not be fetched or decoded.
	ErrLoad = errors.New("config: load failed")
)
