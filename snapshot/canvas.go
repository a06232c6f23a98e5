// Package snapshot renders scenes offscreen with gg and writes them as PNG.
package snapshot

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/gogpu/gg"

	"wireframe/scene"
	"wireframe/wiregl"
)

// Canvas is an anti-aliased wiregl.LineSink backed by a gg drawing context.
type Canvas struct {
	dc  *gg.Context
	err error
}

// NewCanvas returns a w x h canvas cleared to bg.
func NewCanvas(w, h int, bg wiregl.Color) *Canvas {
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(ggColor(bg))
	dc.SetLineWidth(1)
	return &Canvas{dc: dc}
}

func ggColor(c wiregl.Color) gg.RGBA {
	return gg.FromColor(c.NRGBA())
}

// DrawLine strokes a one pixel line through the centers of the end pixels.
// The first stroke error is kept and reported by Err.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col wiregl.Color) {
	if c.err != nil {
		return
	}
	c.dc.SetColor(col.NRGBA())
	c.dc.DrawLine(float64(x0)+0.5, float64(y0)+0.5, float64(x1)+0.5, float64(y1)+0.5)
	if err := c.dc.Stroke(); err != nil {
		c.err = fmt.Errorf("snapshot: stroke: %w", err)
	}
}

// Err returns the first error seen while drawing.
func (c *Canvas) Err() error { return c.err }

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas as PNG to path.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %q: %w", path, err)
	}
	return nil
}

// Close releases the drawing context.
func (c *Canvas) Close() error { return c.dc.Close() }

// Render draws s at its current state onto a fresh canvas.
func Render(s *scene.Scene) (*Canvas, wiregl.Stats, error) {
	w, h := s.Size()
	c := NewCanvas(w, h, s.Background)
	st := s.Render(c)
	if err := c.Err(); err != nil {
		_ = c.Close()
		return nil, st, err
	}
	if st.Skipped > 0 {
		slog.Warn("snapshot: segments skipped", "skipped", st.Skipped, "emitted", st.Emitted)
	}
	return c, st, nil
}

// WriteFile renders s and saves it to path.
func WriteFile(s *scene.Scene, path string) (wiregl.Stats, error) {
	c, st, err := Render(s)
	if err != nil {
		return st, err
	}
	defer c.Close()
	if err := c.SavePNG(path); err != nil {
		return st, err
	}
	slog.Debug("snapshot: written", "path", path, "lines", st.Emitted)
	return st, nil
}
