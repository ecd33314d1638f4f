package mesh

import "errors"

// ErrNilGrid indicates Build received a nil grid.
var ErrNilGrid = errors.New("mesh: grid is nil")
