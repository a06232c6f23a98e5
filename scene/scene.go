package scene

import (
	"fmt"

	"wireframe/wiregl"
)

// State is the scene data the editor mutates between frames.
type State struct {
	Camera wiregl.Camera
	Sphere wiregl.Sphere
}

// Scene is a validated, ready-to-render configuration plus its mutable State.
//
// A Scene is not safe for concurrent use; the frame loop owns it.
type Scene struct {
	State State

	Projection wiregl.Projection
	Viewport   wiregl.Viewport
	Grid       wiregl.Grid
	SphereMesh wiregl.SphereMesh

	GridColor   wiregl.Color
	SphereColor wiregl.Color
	Background  wiregl.Color

	initial State
}

// New builds a Scene from c.
func New(c Config) (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	vp, err := wiregl.NewViewport(c.Viewport.Width, c.Viewport.Height)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	vp.MinDepth = c.Viewport.MinDepth
	vp.MaxDepth = c.Viewport.MaxDepth
	proj, err := wiregl.NewProjection(c.Projection.FovY, vp.Aspect(), c.Projection.Near, c.Projection.Far)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	grid, err := wiregl.NewGrid(c.Grid.HalfWidth, c.Grid.Subdivision)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	mesh, err := wiregl.NewSphereMesh(c.Sphere.Subdivision, c.Sphere.Diagonals)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	st := State{
		Camera: wiregl.Camera{
			Translate: c.Camera.Translate.vector(),
			Rotate:    c.Camera.Rotate.angles(),
		},
		Sphere: wiregl.Sphere{
			Center: c.Sphere.Center.vector(),
			Radius: c.Sphere.Radius,
		},
	}
	return &Scene{
		State:       st,
		Projection:  proj,
		Viewport:    vp,
		Grid:        grid,
		SphereMesh:  mesh,
		GridColor:   wiregl.Color(c.Grid.Color),
		SphereColor: wiregl.Color(c.Sphere.Color),
		Background:  wiregl.Color(c.Background),
		initial:     st,
	}, nil
}

// Reset restores the State the scene was built with.
func (s *Scene) Reset() { s.State = s.initial }

// Frame composes this frame's matrices from the current State.
func (s *Scene) Frame() wiregl.Frame {
	return wiregl.NewFrame(s.State.Camera, s.Projection, s.Viewport)
}

// Render draws the grid and then the sphere into sink.
func (s *Scene) Render(sink wiregl.LineSink) wiregl.Stats {
	f := s.Frame()
	st := s.Grid.Draw(f, sink, s.GridColor)
	return st.Add(s.SphereMesh.Draw(s.State.Sphere, f, sink, s.SphereColor))
}

// Size returns the viewport size in whole pixels.
func (s *Scene) Size() (w, h int) {
	return int(s.Viewport.Width), int(s.Viewport.Height)
}

// Orbit rotates the camera rig about the world Y axis by angle radians, keeping
// whatever the camera was looking at in view.
func (st State) Orbit(angle float32) State {
	st.Camera.Translate = wiregl.Transform(st.Camera.Translate, wiregl.MakeRotateY(angle))
	st.Camera.Rotate.Y += angle
	return st
}
