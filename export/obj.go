package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/cavern/mesh"
)

// WriteOBJ writes m as a single Wavefront object named name. UVs are emitted
// as vt records when present; face indices are 1-based.
func WriteOBJ(w io.Writer, name string, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	hasUV := len(m.UVs) == len(m.Vertices) && len(m.UVs) > 0
	if hasUV {
		for _, uv := range m.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
	}
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a, b, c := m.Triangles[i]+1, m.Triangles[i+1]+1, m.Triangles[i+2]+1
		if hasUV {
			fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}

	return bw.Flush()
}
