package geom

import "math"

// Vec3 is a 3D vector / point
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}
func (v Vec3) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-10 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t, v.Z + (o.Z-v.Z)*t}
}

// Bounds is an axis-aligned bounding box
type Bounds struct {
	Min, Max Vec3
}

func (b Bounds) Center() Vec3 { return b.Min.Add(b.Max).Scale(0.5) }
func (b Bounds) Size() Vec3   { return b.Max.Sub(b.Min) }

// Radius returns the distance from the center to the farthest corner
func (b Bounds) Radius() float64 { return b.Size().Len() / 2 }

// Pad returns the bounds grown by m on every side
func (b Bounds) Pad(m float64) Bounds {
	return Bounds{
		Min: Vec3{b.Min.X - m, b.Min.Y - m, b.Min.Z - m},
		Max: Vec3{b.Max.X + m, b.Max.Y + m, b.Max.Z + m},
	}
}
