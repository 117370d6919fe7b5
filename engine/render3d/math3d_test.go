package render3d

import (
	"math"
	"testing"

	"github.com/skamp931/frustum-viewer/engine/geom"
)

func TestMat4MulIdentity(t *testing.T) {
	m := Mat4Translate(1, 2, 3).Mul(Mat4RotateZ(0.7)).Mul(Mat4Scale(2, 2, 2))
	if got := m.Mul(Mat4Identity()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := Mat4Identity().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMat4InvertRoundtrip(t *testing.T) {
	m := Mat4Perspective(1.0, 16.0/9.0, 0.1, 100).
		Mul(Mat4LookAt(geom.V3(5, 4, 3), geom.V3(0, 0, 1), geom.V3(0, 0, 1)))
	id := m.Mul(m.Invert())
	want := Mat4Identity()
	for i := range id {
		if math.Abs(id[i]-want[i]) > 1e-9 {
			t.Fatalf("m * m^-1 [%d] = %g, want %g", i, id[i], want[i])
		}
	}
}

func TestMat4TransformPoint(t *testing.T) {
	p := Mat4Translate(1, -2, 3).TransformPoint(geom.V3(1, 1, 1))
	if !near3(p, geom.V3(2, -1, 4)) {
		t.Errorf("translate point = %v, want (2, -1, 4)", p)
	}
	d := Mat4Translate(1, -2, 3).TransformDir(geom.V3(1, 0, 0))
	if !near3(d, geom.V3(1, 0, 0)) {
		t.Errorf("translate dir = %v, want unchanged (1, 0, 0)", d)
	}
}

func TestPerspectiveCenterProjection(t *testing.T) {
	// A point straight ahead of the eye must land on the NDC origin
	view := Mat4LookAt(geom.V3(0, -10, 0), geom.V3(0, 0, 0), geom.V3(0, 0, 1))
	proj := Mat4Perspective(45*math.Pi/180, 1, 0.1, 100)
	ndc := proj.Mul(view).TransformPoint(geom.V3(0, 0, 0))
	if math.Abs(ndc.X) > 1e-9 || math.Abs(ndc.Y) > 1e-9 {
		t.Errorf("center projects to (%g, %g), want origin", ndc.X, ndc.Y)
	}
	if ndc.Z < -1 || ndc.Z > 1 {
		t.Errorf("center depth %g outside [-1, 1]", ndc.Z)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color3
		wantErr bool
	}{
		{"#ffffff", Color3{1, 1, 1}, false},
		{"000000", Color3{0, 0, 0}, false},
		{"#add8e6", Color3{173.0 / 255, 216.0 / 255, 230.0 / 255}, false},
		{"#fff", Color3{}, true},
		{"#zzzzzz", Color3{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0.7, 1},
		{1, 1},
		{1.5, 2},
		{3, 5},
		{7, 10},
		{40, 50},
		{0.012, 0.02},
		{0, 1},
	}
	for _, tt := range tests {
		if got := niceStep(tt.raw); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("niceStep(%g) = %g, want %g", tt.raw, got, tt.want)
		}
	}
}

func near3(a, b geom.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}
