package cave

import "github.com/katalvlaran/cavern/mesh"

// Mesh names passed to MeshSink.WriteMesh.
const (
	FloorMesh = "floor"
	WallMesh  = "walls"
)

// MeshSink receives one finished mesh.
type MeshSink interface {
	WriteMesh(name string, m *mesh.Mesh) error
}

// ColliderSink receives the 2D boundary colliders of a flat build. Every call
// replaces whatever the sink received before.
type ColliderSink interface {
	WriteColliders(c []mesh.Polyline) error
}
