// Package wiregl is a minimal, predictable software pipeline that turns world-space
// scene objects into screen-space line segments for wireframe rendering.
//
// Pipeline (fixed):
//
//	Scene state → View · Projection → NDC → Viewport → LineSink.
//
// Matrices are row-major and points are row vectors, so a point p is transformed as
// p · M and chains compose left to right: p · (A · B) applies A first.
//
// The package performs no clipping, culling or occlusion. Tessellators drop a
// segment only when one of its endpoints cannot be perspective-divided (see
// TransformChecked) and report it in Stats.
//
// All functions are pure and safe for concurrent use; the only side effect is the
// caller-provided LineSink.
package wiregl
