package export

import (
	"io"

	"github.com/katalvlaran/cavern/grid"
)

// WriteASCII renders g top row first, '#' for Wall and '.' for Open.
func WriteASCII(w io.Writer, g *grid.Grid) error {
	_, err := io.WriteString(w, g.String())
	return err
}
