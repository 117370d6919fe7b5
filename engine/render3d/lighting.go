package render3d

import (
	"math"

	"github.com/skamp931/frustum-viewer/engine/geom"
)

// DirectionalLight represents a sun-like light
type DirectionalLight struct {
	Direction geom.Vec3 // normalized direction TO the light (from surface)
	Color     Color3
	Intensity float64
}

// AmbientLight provides fill lighting
type AmbientLight struct {
	Color     Color3
	Intensity float64
}

// LightingSetup contains the scene lighting
type LightingSetup struct {
	Sun     DirectionalLight
	Fill    DirectionalLight // secondary fill light
	Ambient AmbientLight
	HasFill bool
}

// DefaultLighting returns a neutral studio-style setup for inspecting a
// single solid: key light high over the shoulder, cool fill, soft ambient.
func DefaultLighting() LightingSetup {
	return LightingSetup{
		Sun: DirectionalLight{
			Direction: geom.V3(-0.45, -0.35, 0.82).Normalize(),
			Color:     Color3{1.0, 0.98, 0.94},
			Intensity: 1.0,
		},
		Fill: DirectionalLight{
			Direction: geom.V3(0.6, 0.5, -0.2).Normalize(),
			Color:     Color3{0.75, 0.82, 1.0},
			Intensity: 0.35,
		},
		Ambient: AmbientLight{
			Color:     Color3{0.82, 0.84, 0.9},
			Intensity: 0.45,
		},
		HasFill: true,
	}
}

// ComputeLighting calculates the lit color for a surface. Shading is
// double-sided: a face seen from behind is lit by the flipped normal, so a
// translucent mesh shows no black backfaces.
func (ls *LightingSetup) ComputeLighting(normal geom.Vec3, baseColor Color3) Color3 {
	ambient := baseColor.Mul(ls.Ambient.Color).Scale(ls.Ambient.Intensity)

	ndotl := math.Abs(normal.Dot(ls.Sun.Direction))
	diffuse := baseColor.Mul(ls.Sun.Color).Scale(ndotl * ls.Sun.Intensity)

	result := ambient.Add(diffuse)

	if ls.HasFill {
		ndotf := math.Abs(normal.Dot(ls.Fill.Direction))
		fill := baseColor.Mul(ls.Fill.Color).Scale(ndotf * ls.Fill.Intensity)
		result = result.Add(fill)
	}

	result.R = math.Min(result.R, 1.0)
	result.G = math.Min(result.G, 1.0)
	result.B = math.Min(result.B, 1.0)

	return result
}
