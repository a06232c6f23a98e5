package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wireframe/wiregl"
)

func TestNewDefaultScene(t *testing.T) {
	s, err := New(Default())
	require.NoError(t, err)

	assert.Equal(t, wiregl.V3(0, 1.9, -6.49), s.State.Camera.Translate)
	assert.Equal(t, wiregl.Sphere{Center: wiregl.V3(0, 1, 0), Radius: 1}, s.State.Sphere)
	assert.Equal(t, wiregl.DefaultGrid(), s.Grid)
	assert.Equal(t, wiregl.DefaultSphereMesh(), s.SphereMesh)
	assert.InDelta(t, 1280.0/720.0, s.Projection.Aspect, 1e-6)
	w, h := s.Size()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

func TestNewRejectsInvalid(t *testing.T) {
	c := Default()
	c.Grid.Subdivision = 0
	_, err := New(c)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSceneRender(t *testing.T) {
	s, err := New(Default())
	require.NoError(t, err)

	var rec wiregl.LineRecorder
	st := s.Render(&rec)

	assert.Equal(t, wiregl.Stats{Emitted: 22 + 512}, st)
	require.Len(t, rec.Lines, 534)
	assert.Equal(t, wiregl.ColorLightGray, rec.Lines[0].Color)
	assert.Equal(t, wiregl.ColorBlack, rec.Lines[533].Color)
}

func TestSceneReset(t *testing.T) {
	s, err := New(Default())
	require.NoError(t, err)
	initial := s.State

	s.State.Camera.Rotate.Y = 1
	s.State.Sphere.Radius = 3
	s.Reset()

	assert.Equal(t, initial, s.State)
}

func TestStateOrbitKeepsTargetCentered(t *testing.T) {
	s, err := New(Default())
	require.NoError(t, err)

	base, ok := s.Frame().Project(wiregl.V3(0, 1.9, 0))
	require.True(t, ok)

	s.State = s.State.Orbit(1.1)
	moved, ok := s.Frame().Project(wiregl.V3(0, 1.9, 0))
	require.True(t, ok)

	assert.InDelta(t, base.X, moved.X, 1e-2)
	assert.InDelta(t, base.Y, moved.Y, 1e-2)
	assert.InDelta(t, 6.49, s.State.Camera.Translate.Sub(wiregl.V3(0, 1.9, 0)).Len(), 1e-4)
}
