package export

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/cavern/mesh"
)

type meshDoc struct {
	Name      string       `json:"name"`
	Vertices  [][3]float64 `json:"vertices"`
	Triangles []int        `json:"triangles"`
	UVs       [][2]float64 `json:"uvs,omitempty"`
}

type collidersDoc struct {
	Colliders [][][2]float64 `json:"colliders"`
}

// WriteMeshJSON writes m as {"name","vertices","triangles","uvs"}.
func WriteMeshJSON(w io.Writer, name string, m *mesh.Mesh) error {
	doc := meshDoc{
		Name:      name,
		Vertices:  make([][3]float64, len(m.Vertices)),
		Triangles: m.Triangles,
	}
	if doc.Triangles == nil {
		doc.Triangles = []int{}
	}
	for i, v := range m.Vertices {
		doc.Vertices[i] = [3]float64{v.X, v.Y, v.Z}
	}
	for _, uv := range m.UVs {
		doc.UVs = append(doc.UVs, [2]float64{uv.X, uv.Y})
	}

	return encode(w, doc)
}

// WriteCollidersJSON writes every polyline as a list of [x,y] points.
func WriteCollidersJSON(w io.Writer, cs []mesh.Polyline) error {
	doc := collidersDoc{Colliders: make([][][2]float64, len(cs))}
	for i, c := range cs {
		pts := make([][2]float64, len(c))
		for j, p := range c {
			pts[j] = [2]float64{p.X, p.Y}
		}
		doc.Colliders[i] = pts
	}

	return encode(w, doc)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
