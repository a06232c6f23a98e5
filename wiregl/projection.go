package wiregl

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned by constructors given parameters that would
// produce a degenerate transform or tessellation.
var ErrInvalidParameter = errors.New("wiregl: invalid parameter")

// Projection describes a perspective projection.
type Projection struct {
	FovY   float32 // radians
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// NewProjection validates and returns a perspective projection.
func NewProjection(fovY, aspect, near, far float32) (Projection, error) {
	switch {
	case !finite(fovY) || fovY <= 0 || fovY >= math.Pi:
		return Projection{}, fmt.Errorf("%w: fov %v outside (0, π)", ErrInvalidParameter, fovY)
	case !finite(aspect) || aspect <= 0:
		return Projection{}, fmt.Errorf("%w: aspect %v", ErrInvalidParameter, aspect)
	case !finite(near) || near <= 0:
		return Projection{}, fmt.Errorf("%w: near %v must be positive", ErrInvalidParameter, near)
	case !finite(far) || far <= near:
		return Projection{}, fmt.Errorf("%w: far %v must exceed near %v", ErrInvalidParameter, far, near)
	}
	return Projection{FovY: fovY, Aspect: aspect, Near: near, Far: far}, nil
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() Matrix4x4 {
	return MakePerspectiveFovMatrix(p.FovY, p.Aspect, p.Near, p.Far)
}

// Viewport is a pixel-space render rectangle plus its depth range.
type Viewport struct {
	Left, Top     float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

// NewViewport returns a viewport anchored at the origin with depth range [0, 1].
func NewViewport(width, height int) (Viewport, error) {
	if width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("%w: viewport %dx%d", ErrInvalidParameter, width, height)
	}
	return Viewport{Width: float32(width), Height: float32(height), MaxDepth: 1}, nil
}

// Aspect returns Width / Height.
func (v Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

// Matrix returns the NDC to pixel transform.
func (v Viewport) Matrix() Matrix4x4 {
	return MakeViewportMatrix(v.Left, v.Top, v.Width, v.Height, v.MinDepth, v.MaxDepth)
}

// Camera is the viewer placement in world space.
type Camera struct {
	Translate Vector3
	Rotate    EulerAngles
}

// ViewMatrix returns the world to view transform.
//
// It is Translate(-t) · RotateY(-r.Y) · RotateX(-r.X), built directly rather than by
// inverting the camera matrix. Rotate.Z is ignored.
func (c Camera) ViewMatrix() Matrix4x4 {
	r := c.Rotate.Neg()
	return Multiply(MakeTranslateMatrix(c.Translate.Neg()), Multiply(MakeRotateY(r.Y), MakeRotateX(r.X)))
}
