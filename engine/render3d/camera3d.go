package render3d

import (
	"math"

	"github.com/skamp931/frustum-viewer/engine/geom"
)

// OrbitCamera is a perspective camera orbiting a target point.
// The world is Z-up: the frustum's height axis maps to screen-vertical
// at the default orientation.
type OrbitCamera struct {
	Target   geom.Vec3
	Distance float64
	Yaw      float64 // around +Z, radians
	Pitch    float64 // above the XY plane, radians

	ScreenW, ScreenH int
	FOV              float64 // vertical, radians

	MinDistance, MaxDistance float64

	// Home pose for Reset
	home struct {
		target   geom.Vec3
		distance float64
		yaw      float64
		pitch    float64
	}

	viewProj Mat4
	dirty    bool
}

const (
	defaultYaw   = -60 * math.Pi / 180
	defaultPitch = 25 * math.Pi / 180
	pitchLimit   = math.Pi/2 - 0.01
)

// NewOrbitCamera creates a camera with the default orbit pose
func NewOrbitCamera(screenW, screenH int) *OrbitCamera {
	c := &OrbitCamera{
		Distance:    10,
		Yaw:         defaultYaw,
		Pitch:       defaultPitch,
		ScreenW:     screenW,
		ScreenH:     screenH,
		FOV:         45 * math.Pi / 180,
		MinDistance: 0.5,
		MaxDistance: 500,
		dirty:       true,
	}
	c.rememberHome()
	return c
}

// FitBounds frames the given extent with a margin and makes that the home pose
func (c *OrbitCamera) FitBounds(b geom.Bounds) {
	c.Target = b.Center()
	r := b.Radius()
	if r < 1e-6 {
		r = 1
	}
	c.Distance = 1.2 * r / math.Sin(c.FOV/2)
	c.MinDistance = r * 0.2
	c.MaxDistance = r * 40
	c.Yaw = defaultYaw
	c.Pitch = defaultPitch
	c.rememberHome()
	c.dirty = true
}

func (c *OrbitCamera) rememberHome() {
	c.home.target = c.Target
	c.home.distance = c.Distance
	c.home.yaw = c.Yaw
	c.home.pitch = c.Pitch
}

// Reset restores the pose captured by the last FitBounds
func (c *OrbitCamera) Reset() {
	c.Target = c.home.target
	c.Distance = c.home.distance
	c.Yaw = c.home.yaw
	c.Pitch = c.home.pitch
	c.dirty = true
}

// Rotate orbits the camera. Pitch is clamped short of the poles so the
// up vector never degenerates.
func (c *OrbitCamera) Rotate(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	c.dirty = true
}

// Pan moves the target in the camera plane, dx/dy in pixels
func (c *OrbitCamera) Pan(dx, dy float64) {
	// world units spanned per pixel at the target depth
	scale := 2 * c.Distance * math.Tan(c.FOV/2) / float64(c.ScreenH)
	right, up := c.axes()
	c.Target = c.Target.Add(right.Scale(-dx * scale)).Add(up.Scale(dy * scale))
	c.dirty = true
}

// Dolly moves the camera toward (delta > 0) or away from the target
func (c *OrbitCamera) Dolly(delta float64) {
	c.Distance *= math.Pow(0.9, delta)
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
	c.dirty = true
}

// Resize updates the projection for a new screen size
func (c *OrbitCamera) Resize(w, h int) {
	if w == c.ScreenW && h == c.ScreenH {
		return
	}
	c.ScreenW, c.ScreenH = w, h
	c.dirty = true
}

// Eye returns the camera position in world space
func (c *OrbitCamera) Eye() geom.Vec3 {
	cp := math.Cos(c.Pitch)
	dir := geom.Vec3{
		X: cp * math.Cos(c.Yaw),
		Y: cp * math.Sin(c.Yaw),
		Z: math.Sin(c.Pitch),
	}
	return c.Target.Add(dir.Scale(c.Distance))
}

func (c *OrbitCamera) axes() (right, up geom.Vec3) {
	forward := c.Target.Sub(c.Eye()).Normalize()
	right = forward.Cross(geom.V3(0, 0, 1)).Normalize()
	up = right.Cross(forward)
	return
}

func (c *OrbitCamera) update() {
	if !c.dirty {
		return
	}
	c.dirty = false
	view := Mat4LookAt(c.Eye(), c.Target, geom.V3(0, 0, 1))
	aspect := float64(c.ScreenW) / float64(c.ScreenH)
	near := c.Distance * 0.01
	far := c.Distance*10 + 1
	proj := Mat4Perspective(c.FOV, aspect, near, far)
	c.viewProj = proj.Mul(view)
}

// ViewProj returns the combined view-projection matrix
func (c *OrbitCamera) ViewProj() Mat4 {
	c.update()
	return c.viewProj
}

// Project converts a world point to screen coordinates plus NDC depth
func (c *OrbitCamera) Project(v geom.Vec3) (sx, sy float64, depth float64) {
	clip := c.ViewProj().TransformPoint(v)
	sx = (clip.X*0.5 + 0.5) * float64(c.ScreenW)
	sy = (1 - (clip.Y*0.5 + 0.5)) * float64(c.ScreenH)
	return sx, sy, clip.Z
}
