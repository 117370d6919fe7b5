package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSegmentCount is returned for fewer than 3 angular segments,
	// which would produce a degenerate or self-intersecting shape.
	ErrSegmentCount = errors.New("geom: segment count must be at least 3")

	// ErrRadius is returned for a negative radius. Zero is allowed:
	// the circle collapses to its center and the frustum becomes a cone.
	ErrRadius = errors.New("geom: radius must not be negative")
)

// DefaultSegments is the angular resolution used when callers have no opinion
const DefaultSegments = 32

// BuildFrustum computes a closed triangle mesh for a frustum: a cone with a
// flat top, sitting on the z = center.Z plane with its axis along Z.
// A negative height points the frustum downward.
//
// Vertex layout (recorded in the returned Mesh's group fields):
// bottom ring [0, n), top ring [n, 2n), bottom center 2n, top center 2n+1.
// The result always has 2n+2 vertices and 4n faces, all wound outward.
func BuildFrustum(center Vec3, topRadius, bottomRadius, height float64, segments int) (*Mesh, error) {
	if segments < 3 {
		return nil, fmt.Errorf("%w (got %d)", ErrSegmentCount, segments)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("%w (top radius %g)", ErrRadius, topRadius)
	}
	if bottomRadius < 0 {
		return nil, fmt.Errorf("%w (bottom radius %g)", ErrRadius, bottomRadius)
	}

	n := segments
	m := &Mesh{
		Vertices: make([]Vec3, 0, 2*n+2),
		Faces:    make([]Face, 0, 4*n),
	}

	// Rings first: n equally spaced angles over [0, 2π), the last segment
	// wrapping back to angle 0 rather than duplicating it.
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		m.Vertices = append(m.Vertices, Vec3{
			X: center.X + bottomRadius*math.Cos(a),
			Y: center.Y + bottomRadius*math.Sin(a),
			Z: center.Z,
		})
	}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		m.Vertices = append(m.Vertices, Vec3{
			X: center.X + topRadius*math.Cos(a),
			Y: center.Y + topRadius*math.Sin(a),
			Z: center.Z + height,
		})
	}
	m.BottomRing = IndexRange{0, n}
	m.TopRing = IndexRange{n, 2 * n}

	m.Vertices = append(m.Vertices, center)
	m.BottomCenter = len(m.Vertices) - 1
	m.Vertices = append(m.Vertices, Vec3{center.X, center.Y, center.Z + height})
	m.TopCenter = len(m.Vertices) - 1

	// Face indices come from the recorded groups, not raw offsets
	bot := m.BottomRing.Start
	top := m.TopRing.Start

	// Side quads, split along the fixed bottom[i]–top[next] diagonal.
	// Winding is CCW seen from outside so every directed edge is matched
	// by its reverse in the neighboring face.
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Faces = append(m.Faces,
			Face{bot + i, bot + next, top + next},
			Face{bot + i, top + next, top + i},
		)
	}

	// Bottom cap fan, facing -Z
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Faces = append(m.Faces, Face{bot + next, bot + i, m.BottomCenter})
	}

	// Top cap fan, facing +Z
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		m.Faces = append(m.Faces, Face{top + i, top + next, m.TopCenter})
	}

	return m, nil
}
