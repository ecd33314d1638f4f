package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/cavern/grid"
	"github.com/katalvlaran/cavern/mesh"
)

// Format selects the mesh encoding of a Dir.
type Format string

const (
	FormatOBJ  Format = "obj"
	FormatJSON Format = "json"
)

// ErrUnknownFormat indicates a format name other than "obj" or "json".
var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat maps a CLI value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatOBJ, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Dir writes each artifact to its own file under Path: <name>.obj or
// <name>.json for meshes, colliders.json and map.txt. The directory is
// created on first write.
type Dir struct {
	Path   string
	Format Format
}

// WriteMesh stores m as <name>.<format>.
func (d Dir) WriteMesh(name string, m *mesh.Mesh) error {
	switch d.Format {
	case FormatJSON:
		return d.create(name+".json", func(w io.Writer) error { return WriteMeshJSON(w, name, m) })
	case FormatOBJ, "":
		return d.create(name+".obj", func(w io.Writer) error { return WriteOBJ(w, name, m) })
	}
	return fmt.Errorf("WriteMesh: %q: %w", d.Format, ErrUnknownFormat)
}

// WriteColliders replaces colliders.json.
func (d Dir) WriteColliders(cs []mesh.Polyline) error {
	return d.create("colliders.json", func(w io.Writer) error { return WriteCollidersJSON(w, cs) })
}

// WriteGrid stores the ASCII picture of g as map.txt.
func (d Dir) WriteGrid(g *grid.Grid) error {
	return d.create("map.txt", func(w io.Writer) error { return WriteASCII(w, g) })
}

func (d Dir) create(file string, write func(io.Writer) error) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(d.Path, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	return f.Close()
}
