package geom

// Face is a triangle referencing three vertex indices.
// Counter-clockwise winding seen from outside the surface.
type Face [3]int

// Mesh is an indexed triangle mesh. Vertices are identified by their
// position in the slice; faces reference those positions.
//
// For meshes produced by BuildFrustum the vertex groups are recorded
// explicitly so consumers never have to rely on positional offsets:
// BottomRing covers [0, n), TopRing [n, 2n), then BottomCenter and
// TopCenter follow.
type Mesh struct {
	Vertices []Vec3
	Faces    []Face

	BottomRing   IndexRange
	TopRing      IndexRange
	BottomCenter int
	TopCenter    int
}

// IndexRange is a half-open range [Start, End) of vertex indices
type IndexRange struct {
	Start, End int
}

func (r IndexRange) Len() int { return r.End - r.Start }

func (m *Mesh) VertexCount() int { return len(m.Vertices) }
func (m *Mesh) FaceCount() int   { return len(m.Faces) }

// FaceNormal returns the unit outward normal of face i, assuming CCW
// winding. Degenerate faces yield the zero vector.
func (m *Mesh) FaceNormal(i int) Vec3 {
	f := m.Faces[i]
	a := m.Vertices[f[0]]
	b := m.Vertices[f[1]]
	c := m.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Bounds returns the axis-aligned extent of the vertex set
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		if v.X < b.Min.X {
			b.Min.X = v.X
		}
		if v.Y < b.Min.Y {
			b.Min.Y = v.Y
		}
		if v.Z < b.Min.Z {
			b.Min.Z = v.Z
		}
		if v.X > b.Max.X {
			b.Max.X = v.X
		}
		if v.Y > b.Max.Y {
			b.Max.Y = v.Y
		}
		if v.Z > b.Max.Z {
			b.Max.Z = v.Z
		}
	}
	return b
}

// Arrays returns the mesh as flat parallel coordinate and index slices,
// the form 3D plotting front ends consume (x/y/z per vertex, i/j/k per face).
func (m *Mesh) Arrays() (xs, ys, zs []float64, is, js, ks []int) {
	xs = make([]float64, len(m.Vertices))
	ys = make([]float64, len(m.Vertices))
	zs = make([]float64, len(m.Vertices))
	for n, v := range m.Vertices {
		xs[n], ys[n], zs[n] = v.X, v.Y, v.Z
	}
	is = make([]int, len(m.Faces))
	js = make([]int, len(m.Faces))
	ks = make([]int, len(m.Faces))
	for n, f := range m.Faces {
		is[n], js[n], ks[n] = f[0], f[1], f[2]
	}
	return
}

// BoundaryEdges counts directed edges that have no reverse-directed partner.
// A consistently wound closed surface has zero: every edge is shared by
// exactly two faces with opposite winding.
func (m *Mesh) BoundaryEdges() int {
	type edge struct{ a, b int }
	count := make(map[edge]int, len(m.Faces)*3)
	for _, f := range m.Faces {
		count[edge{f[0], f[1]}]++
		count[edge{f[1], f[2]}]++
		count[edge{f[2], f[0]}]++
	}
	open := 0
	for e, n := range count {
		if r := count[edge{e.b, e.a}]; r < n {
			open += n - r
		}
	}
	return open
}

// Watertight reports whether the mesh is a closed, consistently oriented surface
func (m *Mesh) Watertight() bool { return m.BoundaryEdges() == 0 }
