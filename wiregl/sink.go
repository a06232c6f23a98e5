package wiregl

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// LineSink receives pixel-space line segments.
//
// Implementations are called synchronously from the tessellators and must not
// retain references to pipeline state.
type LineSink interface {
	DrawLine(x0, y0, x1, y1 int, c Color)
}

// LineSinkFunc adapts a function to LineSink.
type LineSinkFunc func(x0, y0, x1, y1 int, c Color)

func (f LineSinkFunc) DrawLine(x0, y0, x1, y1 int, c Color) { f(x0, y0, x1, y1, c) }

// Line is one recorded segment.
type Line struct {
	X0, Y0, X1, Y1 int
	Color          Color
}

// LineRecorder is a LineSink that keeps every segment it receives.
type LineRecorder struct {
	Lines []Line
}

func (r *LineRecorder) DrawLine(x0, y0, x1, y1 int, c Color) {
	r.Lines = append(r.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

// Reset drops recorded lines, keeping the backing array.
func (r *LineRecorder) Reset() { r.Lines = r.Lines[:0] }

// Replay forwards every recorded line to sink in order.
func (r *LineRecorder) Replay(sink LineSink) {
	for _, l := range r.Lines {
		sink.DrawLine(l.X0, l.Y0, l.X1, l.Y1, l.Color)
	}
}

// Sum64 returns an xxhash digest of the recorded lines, for comparing frames.
func (r *LineRecorder) Sum64() uint64 {
	d := xxhash.New()
	var buf [20]byte
	for _, l := range r.Lines {
		binary.LittleEndian.PutUint32(buf[0:], uint32(int32(l.X0)))
		binary.LittleEndian.PutUint32(buf[4:], uint32(int32(l.Y0)))
		binary.LittleEndian.PutUint32(buf[8:], uint32(int32(l.X1)))
		binary.LittleEndian.PutUint32(buf[12:], uint32(int32(l.Y1)))
		binary.LittleEndian.PutUint32(buf[16:], uint32(l.Color))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Tee fans every segment out to all sinks.
type Tee []LineSink

func (t Tee) DrawLine(x0, y0, x1, y1 int, c Color) {
	for _, s := range t {
		s.DrawLine(x0, y0, x1, y1, c)
	}
}
