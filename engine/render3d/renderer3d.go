package render3d

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/skamp931/frustum-viewer/engine/geom"
)

// Style is the presentational part of a mesh draw: base color and opacity.
// It never affects geometry.
type Style struct {
	Color   Color3
	Opacity float64
}

// MeshRenderer projects an indexed mesh and draws it with batched
// colored triangles. Flat shading, painter's-order transparency.
type MeshRenderer struct {
	Camera   *OrbitCamera
	Lighting LightingSetup

	whiteImg *ebiten.Image
}

// NewMeshRenderer creates the renderer
func NewMeshRenderer(screenW, screenH int) *MeshRenderer {
	r := &MeshRenderer{
		Camera:   NewOrbitCamera(screenW, screenH),
		Lighting: DefaultLighting(),
	}

	// 1x1 white image for colored triangle rendering
	r.whiteImg = ebiten.NewImage(4, 4)
	r.whiteImg.Fill(color.White)

	return r
}

// DrawSkyGradient fills the screen with a dark-to-lighter background gradient
func (r *MeshRenderer) DrawSkyGradient(screen *ebiten.Image) {
	h := r.Camera.ScreenH
	w := r.Camera.ScreenW
	// Draw in bands for efficiency
	bands := 32
	bandH := h / bands
	if bandH < 1 {
		bandH = 1
	}
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands)
		cr := uint8(16 + t*22)
		cg := uint8(18 + t*26)
		cb := uint8(30 + t*38)
		by := i * bandH
		bh := bandH
		if i == bands-1 {
			bh = h - by
		}
		vector.DrawFilledRect(screen, 0, float32(by), float32(w), float32(bh), color.RGBA{cr, cg, cb, 255}, false)
	}
}

// DrawMesh renders the mesh with the given style. Faces are depth-sorted
// back-to-front so opacity < 1 composites correctly; fully opaque meshes
// additionally drop back-faces.
func (r *MeshRenderer) DrawMesh(screen *ebiten.Image, m *geom.Mesh, style Style) {
	if m == nil || len(m.Faces) == 0 {
		return
	}

	sw := float64(r.Camera.ScreenW)
	sh := float64(r.Camera.ScreenH)
	vp := r.Camera.ViewProj()
	eye := r.Camera.Eye()
	opaque := style.Opacity >= 1

	// Project every vertex once
	type projected struct {
		x, y, z float64
	}
	pts := make([]projected, len(m.Vertices))
	for i, v := range m.Vertices {
		clip := vp.TransformPoint(v)
		pts[i] = projected{
			x: (clip.X*0.5 + 0.5) * sw,
			y: (1 - (clip.Y*0.5 + 0.5)) * sh,
			z: clip.Z,
		}
	}

	// Painter's order: farthest face first, by eye distance of the midpoint
	order := make([]int, 0, len(m.Faces))
	depth := make([]float64, len(m.Faces))
	for i, f := range m.Faces {
		if pts[f[0]].z > 1 && pts[f[1]].z > 1 && pts[f[2]].z > 1 {
			continue // beyond far plane
		}
		mid := m.Vertices[f[0]].Add(m.Vertices[f[1]]).Add(m.Vertices[f[2]]).Scale(1.0 / 3.0)
		depth[i] = mid.Sub(eye).Len()
		order = append(order, i)
	}
	sort.Slice(order, func(a, b int) bool { return depth[order[a]] > depth[order[b]] })

	vertices := make([]ebiten.Vertex, 0, len(order)*3)
	indices := make([]uint16, 0, len(order)*3)

	for _, fi := range order {
		f := m.Faces[fi]
		p0, p1, p2 := pts[f[0]], pts[f[1]], pts[f[2]]

		// Off-screen rejection with a margin, as partial triangles still matter
		if maxf(p0.x, p1.x, p2.x) < -100 || minf(p0.x, p1.x, p2.x) > sw+100 ||
			maxf(p0.y, p1.y, p2.y) < -100 || minf(p0.y, p1.y, p2.y) > sh+100 {
			continue
		}

		// Screen-space winding (Y-down): outward faces come out negative
		ax, ay := p1.x-p0.x, p1.y-p0.y
		bx, by := p2.x-p0.x, p2.y-p0.y
		cross := ax*by - ay*bx
		if opaque && cross > -0.5 {
			continue // back-face or degenerate
		}

		lit := r.Lighting.ComputeLighting(m.FaceNormal(fi), style.Color)

		base := uint16(len(vertices))
		for _, p := range []projected{p0, p1, p2} {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(p.x),
				DstY:   float32(p.y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(lit.R),
				ColorG: float32(lit.G),
				ColorB: float32(lit.B),
				ColorA: float32(style.Opacity),
			})
		}
		indices = append(indices, base, base+1, base+2)

		// Flush if approaching uint16 limit
		if len(vertices) >= 65000 {
			screen.DrawTriangles(vertices, indices, r.whiteImg, nil)
			vertices = vertices[:0]
			indices = indices[:0]
		}
	}

	if len(vertices) > 0 {
		screen.DrawTriangles(vertices, indices, r.whiteImg, nil)
	}
}

// DrawFloorGrid draws a reference grid on the horizontal plane at the
// bottom of the given extent
func (r *MeshRenderer) DrawFloorGrid(screen *ebiten.Image, b geom.Bounds) {
	pad := b.Size().Len()*0.25 + 1
	area := b.Pad(pad)
	z := b.Min.Z
	step := niceStep(math.Max(area.Max.X-area.Min.X, area.Max.Y-area.Min.Y) / 12)
	gridColor := color.RGBA{255, 255, 255, 28}

	x0 := math.Floor(area.Min.X/step) * step
	y0 := math.Floor(area.Min.Y/step) * step
	for x := x0; x <= area.Max.X; x += step {
		r.strokeWorldLine(screen, geom.V3(x, area.Min.Y, z), geom.V3(x, area.Max.Y, z), 1, gridColor)
	}
	for y := y0; y <= area.Max.Y; y += step {
		r.strokeWorldLine(screen, geom.V3(area.Min.X, y, z), geom.V3(area.Max.X, y, z), 1, gridColor)
	}
}

// DrawAxes draws the world axis triad at the given origin: X red, Y green, Z blue
func (r *MeshRenderer) DrawAxes(screen *ebiten.Image, origin geom.Vec3, length float64) {
	r.strokeWorldLine(screen, origin, origin.Add(geom.V3(length, 0, 0)), 2, color.RGBA{220, 70, 70, 220})
	r.strokeWorldLine(screen, origin, origin.Add(geom.V3(0, length, 0)), 2, color.RGBA{70, 200, 70, 220})
	r.strokeWorldLine(screen, origin, origin.Add(geom.V3(0, 0, length)), 2, color.RGBA{80, 120, 240, 220})
}

func (r *MeshRenderer) strokeWorldLine(screen *ebiten.Image, a, b geom.Vec3, width float32, clr color.Color) {
	ax, ay, az := r.Camera.Project(a)
	bx, by, bz := r.Camera.Project(b)
	// Both endpoints behind the camera / outside depth range: drop the line
	if (az < -1 || az > 1) && (bz < -1 || bz > 1) {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, clr, false)
}

// niceStep rounds a raw spacing up to a 1/2/5 x 10^k value
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag <= 1:
		return mag
	case raw/mag <= 2:
		return 2 * mag
	case raw/mag <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func minf(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func maxf(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
