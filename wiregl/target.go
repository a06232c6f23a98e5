package wiregl

// Target is a minimal pixel surface for software line rendering.
//
// Implementations should ignore out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RasterSink is a LineSink that rasterizes segments into a Target with
// Bresenham's algorithm. Segments are clipped to the target bounds first, so
// far off-screen endpoints cost nothing.
type RasterSink struct {
	Target Target
}

func (r RasterSink) DrawLine(x0, y0, x1, y1 int, c Color) {
	if r.Target == nil {
		return
	}
	w, h := r.Target.Size()
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, w, h)
	if !ok {
		return
	}
	drawLine(r.Target, x0, y0, x1, y1, c)
}

func drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outCode(x, y, maxX, maxY float64) int {
	code := 0
	switch {
	case x < 0:
		code |= outLeft
	case x > maxX:
		code |= outRight
	}
	switch {
	case y < 0:
		code |= outTop
	case y > maxY:
		code |= outBottom
	}
	return code
}

// clipLine clips a segment to [0,w-1]x[0,h-1] (Cohen-Sutherland).
func clipLine(ix0, iy0, ix1, iy1, w, h int) (int, int, int, int, bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	maxX, maxY := float64(w-1), float64(h-1)
	x0, y0, x1, y1 := float64(ix0), float64(iy0), float64(ix1), float64(iy1)
	c0 := outCode(x0, y0, maxX, maxY)
	c1 := outCode(x1, y1, maxX, maxY)
	for {
		if c0|c1 == 0 {
			return int(x0 + 0.5), int(y0 + 0.5), int(x1 + 0.5), int(y1 + 0.5), true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x = x0 + (x1-x0)*(maxY-y0)/(y1-y0)
			y = maxY
		case out&outTop != 0:
			x = x0 + (x1-x0)*(0-y0)/(y1-y0)
			y = 0
		case out&outRight != 0:
			y = y0 + (y1-y0)*(maxX-x0)/(x1-x0)
			x = maxX
		default:
			y = y0 + (y1-y0)*(0-x0)/(x1-x0)
			x = 0
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = outCode(x0, y0, maxX, maxY)
		} else {
			x1, y1 = x, y
			c1 = outCode(x1, y1, maxX, maxY)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
