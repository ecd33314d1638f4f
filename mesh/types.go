package mesh

// Vec2 is a point in the flat plane or a texture coordinate.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a point in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a+o.
func (a Vec3) Add(o Vec3) Vec3 { return Vec3{a.X + o.X, a.Y + o.Y, a.Z + o.Z} }

// Sub returns a-o.
func (a Vec3) Sub(o Vec3) Vec3 { return Vec3{a.X - o.X, a.Y - o.Y, a.Z - o.Z} }

// Cross returns a×o (right-handed).
func (a Vec3) Cross(o Vec3) Vec3 {
	return Vec3{a.Y*o.Z - a.Z*o.Y, a.Z*o.X - a.X*o.Z, a.X*o.Y - a.Y*o.X}
}

// Dot returns a·o.
func (a Vec3) Dot(o Vec3) float64 { return a.X*o.X + a.Y*o.Y + a.Z*o.Z }

// XY drops the depth coordinate.
func (a Vec3) XY() Vec2 { return Vec2{a.X, a.Y} }

// Mesh is an indexed triangle list. Triangles holds 3 vertex indices per
// triangle; UVs is parallel to Vertices.
type Mesh struct {
	Vertices  []Vec3
	Triangles []int
	UVs       []Vec2
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Vertices) == 0 }

// Outline is a loop of floor vertex indices joined by boundary edges:
// first == last. Consecutive indices always share exactly one floor triangle
// edge, or a collinear run of such edges after simplification.
type Outline []int

// Polyline is one 2D boundary collider, in outline order.
type Polyline []Vec2

// Result is the geometry produced by one Build call.
type Result struct {
	Floor *Mesh
	// Walls is nil in flat mode.
	Walls    *Mesh
	Outlines []Outline
	// Colliders is nil in volumetric mode.
	Colliders []Polyline
	// MinUp and MaxUp bound the floor vertices along Y.
	MinUp, MaxUp float64
}

// UpAt maps a fraction of the vertical extent to a Y coordinate, for
// collaborators that place markers at fixed heights of the volume.
func (r *Result) UpAt(fraction float64) float64 {
	return r.MinUp + fraction*(r.MaxUp-r.MinUp)
}

// triangle is three floor vertex indices in emission order.
type triangle [3]int

func (t triangle) contains(v int) bool {
	return t[0] == v || t[1] == v || t[2] == v
}
