package wiregl

// Frame holds the matrices shared by every tessellator during one frame.
type Frame struct {
	ViewProjection Matrix4x4
	Viewport       Matrix4x4
}

// NewFrame composes the per-frame matrices. The world matrix is always identity.
func NewFrame(cam Camera, proj Projection, vp Viewport) Frame {
	return Frame{
		ViewProjection: Multiply(cam.ViewMatrix(), proj.Matrix()),
		Viewport:       vp.Matrix(),
	}
}

// Project maps a world-space point to pixel space.
//
// The point is divided twice: once by the projection w into NDC and once by the
// viewport w, which is 1 for well-formed viewport matrices.
func (f Frame) Project(p Vector3) (Vector3, bool) {
	ndc, ok := TransformChecked(p, f.ViewProjection)
	if !ok {
		return Vector3{}, false
	}
	return TransformChecked(ndc, f.Viewport)
}

// Stats counts the segments a tessellator produced.
type Stats struct {
	Emitted int
	Skipped int // at least one endpoint failed perspective division
}

// Total returns Emitted + Skipped.
func (s Stats) Total() int { return s.Emitted + s.Skipped }

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{Emitted: s.Emitted + o.Emitted, Skipped: s.Skipped + o.Skipped}
}

// screenPoint is a projected endpoint; ok is false when projection failed.
type screenPoint struct {
	world Vector3
	p     Vector3
	ok    bool
}

func (f Frame) screenPoint(p Vector3) screenPoint {
	sp, ok := f.Project(p)
	return screenPoint{world: p, p: sp, ok: ok}
}

// emit forwards the truncated pixel line a-b to sink, or counts it as skipped.
func emit(sink LineSink, a, b screenPoint, c Color, st *Stats) {
	if !a.ok || !b.ok {
		st.Skipped++
		Logger().Debug("wiregl: segment skipped", "a", a.world, "b", b.world)
		return
	}
	sink.DrawLine(int(a.p.X), int(a.p.Y), int(b.p.X), int(b.p.Y), c)
	st.Emitted++
}
