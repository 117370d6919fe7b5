// Package scene owns the current frustum parameters and the mesh built from
// them. The mesh is rebuilt whole whenever a parameter changes and is
// immutable in between; views subscribe to the bus to hear about rebuilds.
package scene

import (
	"fmt"

	"github.com/skamp931/frustum-viewer/engine/geom"
)

// Params are the user-facing frustum dimensions. Diameters rather than radii:
// that is what the dashboard asks for, the builder takes the halved values.
type Params struct {
	Center         geom.Vec3
	TopDiameter    float64
	BottomDiameter float64
	Height         float64
	Segments       int
}

// DefaultParams mirrors the dimensions the dashboard starts with
func DefaultParams() Params {
	return Params{
		TopDiameter:    2.0,
		BottomDiameter: 1.0,
		Height:         5.0,
		Segments:       geom.DefaultSegments,
	}
}

func (p Params) TopRadius() float64    { return p.TopDiameter / 2 }
func (p Params) BottomRadius() float64 { return p.BottomDiameter / 2 }

// Build runs the mesh builder for these parameters
func (p Params) Build() (*geom.Mesh, error) {
	return geom.BuildFrustum(p.Center, p.TopRadius(), p.BottomRadius(), p.Height, p.Segments)
}

// Title is the one-line caption used above the plot
func (p Params) Title() string {
	return fmt.Sprintf("Top Ø %.2g m, Bottom Ø %.2g m, Height %.2g m",
		p.TopDiameter, p.BottomDiameter, p.Height)
}

// Scene holds the live parameters and the mesh built from them
type Scene struct {
	params Params
	mesh   *geom.Mesh
	bus    *EventBus
}

// New builds the initial mesh; invalid starting parameters are an error
func New(p Params) (*Scene, error) {
	m, err := p.Build()
	if err != nil {
		return nil, err
	}
	return &Scene{params: p, mesh: m, bus: NewEventBus()}, nil
}

func (s *Scene) Params() Params   { return s.params }
func (s *Scene) Mesh() *geom.Mesh { return s.mesh }
func (s *Scene) Bus() *EventBus   { return s.bus }

// Apply replaces the parameters and rebuilds the mesh. On validation failure
// the previous parameters and mesh stay in place and the error is returned
// (and emitted as EvtParamsRejected).
func (s *Scene) Apply(p Params) error {
	m, err := p.Build()
	if err != nil {
		s.bus.Emit(Event{Type: EvtParamsRejected, Payload: err})
		return err
	}
	s.params = p
	s.mesh = m
	s.bus.Emit(Event{Type: EvtMeshRebuilt, Payload: m})
	return nil
}

// Edit applies a mutation to a copy of the current parameters
func (s *Scene) Edit(f func(*Params)) error {
	p := s.params
	f(&p)
	return s.Apply(p)
}

// Summary returns the dimension readout shown beside the plot
func (s *Scene) Summary() []string {
	p := s.params
	m := s.mesh
	return []string{
		fmt.Sprintf("Top diameter:    %.3g m (radius %.3g m)", p.TopDiameter, p.TopRadius()),
		fmt.Sprintf("Bottom diameter: %.3g m (radius %.3g m)", p.BottomDiameter, p.BottomRadius()),
		fmt.Sprintf("Height:          %.3g m", p.Height),
		fmt.Sprintf("Segments:        %d", p.Segments),
		fmt.Sprintf("Mesh: %d vertices, %d faces, watertight=%t",
			m.VertexCount(), m.FaceCount(), m.Watertight()),
	}
}
