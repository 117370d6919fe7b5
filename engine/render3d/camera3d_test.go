package render3d

import (
	"math"
	"testing"

	"github.com/skamp931/frustum-viewer/engine/geom"
)

func TestOrbitCameraProjectsTargetToCenter(t *testing.T) {
	c := NewOrbitCamera(800, 600)
	c.Target = geom.V3(1, -2, 3)
	c.dirty = true
	sx, sy, depth := c.Project(c.Target)
	if math.Abs(sx-400) > 1e-6 || math.Abs(sy-300) > 1e-6 {
		t.Errorf("target projects to (%g, %g), want (400, 300)", sx, sy)
	}
	if depth < -1 || depth > 1 {
		t.Errorf("target depth %g outside [-1, 1]", depth)
	}
}

func TestOrbitCameraFitBounds(t *testing.T) {
	m, err := geom.BuildFrustum(geom.V3(0, 0, 0), 1, 0.5, 5, 32)
	if err != nil {
		t.Fatalf("BuildFrustum: %v", err)
	}
	b := m.Bounds()
	c := NewOrbitCamera(800, 600)
	c.FitBounds(b)

	if !near3(c.Target, b.Center()) {
		t.Errorf("Target = %v, want bounds center %v", c.Target, b.Center())
	}
	// Every vertex must land on screen and in front of the camera
	for i, v := range m.Vertices {
		sx, sy, depth := c.Project(v)
		if sx < 0 || sx > 800 || sy < 0 || sy > 600 {
			t.Errorf("vertex %d projects off-screen: (%g, %g)", i, sx, sy)
		}
		if depth < -1 || depth > 1 {
			t.Errorf("vertex %d depth %g outside [-1, 1]", i, depth)
		}
	}
}

func TestOrbitCameraPitchClamp(t *testing.T) {
	c := NewOrbitCamera(800, 600)
	c.Rotate(0, 10)
	if c.Pitch > pitchLimit {
		t.Errorf("pitch %g exceeds limit %g", c.Pitch, pitchLimit)
	}
	c.Rotate(0, -20)
	if c.Pitch < -pitchLimit {
		t.Errorf("pitch %g below limit %g", c.Pitch, -pitchLimit)
	}
}

func TestOrbitCameraDollyClamp(t *testing.T) {
	c := NewOrbitCamera(800, 600)
	c.MinDistance, c.MaxDistance = 2, 50
	for i := 0; i < 200; i++ {
		c.Dolly(1)
	}
	if c.Distance != 2 {
		t.Errorf("Distance after dolly-in = %g, want clamped to 2", c.Distance)
	}
	for i := 0; i < 200; i++ {
		c.Dolly(-1)
	}
	if c.Distance != 50 {
		t.Errorf("Distance after dolly-out = %g, want clamped to 50", c.Distance)
	}
}

func TestOrbitCameraReset(t *testing.T) {
	c := NewOrbitCamera(800, 600)
	c.FitBounds(geom.Bounds{Min: geom.V3(-1, -1, 0), Max: geom.V3(1, 1, 4)})
	home := *c

	c.Rotate(1.1, 0.2)
	c.Pan(30, -40)
	c.Dolly(3)
	c.Reset()

	if !near3(c.Target, home.Target) || c.Distance != home.Distance ||
		c.Yaw != home.Yaw || c.Pitch != home.Pitch {
		t.Errorf("Reset pose = %+v, want %+v", c, home)
	}
}

func TestOrbitCameraPanMovesTargetInCameraPlane(t *testing.T) {
	c := NewOrbitCamera(800, 600)
	before := c.Target
	c.Pan(100, 0)
	moved := c.Target.Sub(before)
	if moved.Len() == 0 {
		t.Fatal("Pan did not move the target")
	}
	// Horizontal pan stays in the XY plane (right axis has no Z component)
	if math.Abs(moved.Z) > 1e-9 {
		t.Errorf("horizontal pan moved target vertically by %g", moved.Z)
	}
}
