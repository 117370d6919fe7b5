package geom

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestBuildFrustumCounts(t *testing.T) {
	tests := []struct {
		name     string
		segments int
	}{
		{"minimum", 3},
		{"quad", 4},
		{"default", DefaultSegments},
		{"fine", 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildFrustum(V3(0, 0, 0), 1, 2, 3, tt.segments)
			if err != nil {
				t.Fatalf("BuildFrustum: %v", err)
			}
			if got, want := m.VertexCount(), 2*tt.segments+2; got != want {
				t.Errorf("VertexCount = %d, want %d", got, want)
			}
			if got, want := m.FaceCount(), 4*tt.segments; got != want {
				t.Errorf("FaceCount = %d, want %d", got, want)
			}
			for i, f := range m.Faces {
				for _, idx := range f {
					if idx < 0 || idx >= m.VertexCount() {
						t.Fatalf("face %d references out-of-range vertex %d", i, idx)
					}
				}
			}
		})
	}
}

func TestBuildFrustumVertexLayout(t *testing.T) {
	m, err := BuildFrustum(V3(0, 0, 0), 1.0, 0.5, 5.0, 4)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	if m.VertexCount() != 10 || m.FaceCount() != 16 {
		t.Fatalf("got %d vertices / %d faces, want 10 / 16", m.VertexCount(), m.FaceCount())
	}
	if m.BottomRing != (IndexRange{0, 4}) || m.TopRing != (IndexRange{4, 8}) {
		t.Errorf("ring ranges = %v / %v, want [0,4) / [4,8)", m.BottomRing, m.TopRing)
	}
	if m.BottomCenter != 8 || m.TopCenter != 9 {
		t.Errorf("centers = %d / %d, want 8 / 9", m.BottomCenter, m.TopCenter)
	}

	wantVerts := map[int]Vec3{
		0: {0.5, 0, 0}, // first bottom-ring vertex, angle 0
		4: {1.0, 0, 5}, // first top-ring vertex
		8: {0, 0, 0},   // bottom center
		9: {0, 0, 5},   // top center
	}
	for idx, want := range wantVerts {
		if got := m.Vertices[idx]; !vecNear(got, want) {
			t.Errorf("vertex %d = %v, want %v", idx, got, want)
		}
	}
}

func TestBuildFrustumOffsetCenter(t *testing.T) {
	c := V3(2, -1, 0.5)
	m, err := BuildFrustum(c, 0.5, 1.5, 2, 8)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	if got := m.Vertices[m.BottomCenter]; !vecNear(got, c) {
		t.Errorf("bottom center = %v, want %v", got, c)
	}
	if got, want := m.Vertices[m.TopCenter], V3(2, -1, 2.5); !vecNear(got, want) {
		t.Errorf("top center = %v, want %v", got, want)
	}
	// Every bottom-ring vertex sits on the z = center.Z plane at bottomRadius
	for i := m.BottomRing.Start; i < m.BottomRing.End; i++ {
		v := m.Vertices[i]
		if math.Abs(v.Z-c.Z) > 1e-12 {
			t.Errorf("bottom vertex %d at z=%g, want %g", i, v.Z, c.Z)
		}
		if r := v.Sub(c).Len(); math.Abs(r-1.5) > 1e-12 {
			t.Errorf("bottom vertex %d at radius %g, want 1.5", i, r)
		}
	}
}

func TestBuildFrustumWatertight(t *testing.T) {
	tests := []struct {
		name          string
		topR, botR, h float64
		segments      int
	}{
		{"frustum", 1, 0.5, 5, 4},
		{"cylinder", 1, 1, 2, 32},
		{"cone up", 0, 1, 3, 16},
		{"cone down", 1, 0, 3, 16},
		{"flat", 1, 2, 0, 12},
		{"negative height", 1, 0.5, -3, 7},
		{"triangle prismoid", 2, 3, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildFrustum(V3(0, 0, 0), tt.topR, tt.botR, tt.h, tt.segments)
			if err != nil {
				t.Fatalf("BuildFrustum: %v", err)
			}
			if n := m.BoundaryEdges(); n != 0 {
				t.Errorf("BoundaryEdges = %d, want 0", n)
			}
			if !m.Watertight() {
				t.Error("Watertight = false, want true")
			}
		})
	}
}

func TestBuildFrustumZeroTopRadius(t *testing.T) {
	m, err := BuildFrustum(V3(0, 0, 0), 0, 1, 2, 8)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	// Counts are unchanged: the top ring collapses onto the top center
	// but every vertex is still emitted.
	if m.VertexCount() != 18 || m.FaceCount() != 32 {
		t.Fatalf("got %d vertices / %d faces, want 18 / 32", m.VertexCount(), m.FaceCount())
	}
	tc := m.Vertices[m.TopCenter]
	for i := m.TopRing.Start; i < m.TopRing.End; i++ {
		if !vecNear(m.Vertices[i], tc) {
			t.Errorf("top-ring vertex %d = %v, want %v", i, m.Vertices[i], tc)
		}
	}
	if !m.Watertight() {
		t.Error("degenerate cone not watertight")
	}
}

func TestBuildFrustumNegativeHeight(t *testing.T) {
	up, err := BuildFrustum(V3(0, 0, 0), 1, 0.5, 3, 16)
	if err != nil {
		t.Fatalf("BuildFrustum(+3): %v", err)
	}
	down, err := BuildFrustum(V3(0, 0, 0), 1, 0.5, -3, 16)
	if err != nil {
		t.Fatalf("BuildFrustum(-3): %v", err)
	}
	// Identical topology
	if !reflect.DeepEqual(up.Faces, down.Faces) {
		t.Error("face lists differ between +h and -h")
	}
	// Top layer mirrored to center.z - 3
	for i := down.TopRing.Start; i < down.TopRing.End; i++ {
		if got := down.Vertices[i].Z; got != -3 {
			t.Errorf("top vertex %d z = %g, want -3", i, got)
		}
	}
	if got := down.Vertices[down.TopCenter].Z; got != -3 {
		t.Errorf("top center z = %g, want -3", got)
	}
}

func TestBuildFrustumIdempotent(t *testing.T) {
	a, err := BuildFrustum(V3(0.1, -0.2, 0.3), 1.7, 0.9, 4.2, 37)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	b, err := BuildFrustum(V3(0.1, -0.2, 0.3), 1.7, 0.9, 4.2, 37)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two builds with identical arguments differ")
	}
}

func TestBuildFrustumValidation(t *testing.T) {
	tests := []struct {
		name       string
		topR, botR float64
		segments   int
		wantErr    error
	}{
		{"two segments", 1, 1, 2, ErrSegmentCount},
		{"zero segments", 1, 1, 0, ErrSegmentCount},
		{"negative segments", 1, 1, -4, ErrSegmentCount},
		{"negative top radius", -0.1, 1, 8, ErrRadius},
		{"negative bottom radius", 1, -2, 8, ErrRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildFrustum(V3(0, 0, 0), tt.topR, tt.botR, 1, tt.segments)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Error("mesh returned alongside error")
			}
		})
	}
}

func TestBuildFrustumOutwardNormals(t *testing.T) {
	// For a convex solid every face normal must point away from the centroid
	m, err := BuildFrustum(V3(0, 0, 0), 1, 2, 4, 24)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	centroid := m.Bounds().Center()
	for i, f := range m.Faces {
		n := m.FaceNormal(i)
		mid := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Scale(1.0 / 3.0)
		if n.Dot(mid.Sub(centroid)) <= 0 {
			t.Errorf("face %d normal %v points inward", i, n)
		}
	}
}

func vecNear(a, b Vec3) bool {
	const eps = 1e-12
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
