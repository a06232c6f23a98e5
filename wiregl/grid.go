package wiregl

import "fmt"

// Grid is a square line lattice on the y=0 plane centered at the origin.
type Grid struct {
	HalfWidth   float32
	Subdivision int
}

// DefaultGrid returns the 4x4 grid with 10 cells per side.
func DefaultGrid() Grid {
	return Grid{HalfWidth: 2, Subdivision: 10}
}

// NewGrid validates and returns a grid.
func NewGrid(halfWidth float32, subdivision int) (Grid, error) {
	if !finite(halfWidth) || halfWidth <= 0 {
		return Grid{}, fmt.Errorf("%w: grid half width %v", ErrInvalidParameter, halfWidth)
	}
	if subdivision <= 0 {
		return Grid{}, fmt.Errorf("%w: grid subdivision %d", ErrInvalidParameter, subdivision)
	}
	return Grid{HalfWidth: halfWidth, Subdivision: subdivision}, nil
}

// Segments returns the number of lines Draw produces: Subdivision+1 per axis.
func (g Grid) Segments() int {
	if g.Subdivision <= 0 {
		return 0
	}
	return 2 * (g.Subdivision + 1)
}

// Draw projects the grid through f and emits its lines to sink.
//
// Lines running along Z come first, then lines running along X.
func (g Grid) Draw(f Frame, sink LineSink, c Color) Stats {
	var st Stats
	if g.Subdivision <= 0 {
		return st
	}
	hw := g.HalfWidth
	every := (hw * 2) / float32(g.Subdivision)
	for x := 0; x <= g.Subdivision; x++ {
		offset := -hw + float32(x)*every
		emit(sink, f.screenPoint(V3(offset, 0, -hw)), f.screenPoint(V3(offset, 0, hw)), c, &st)
	}
	for z := 0; z <= g.Subdivision; z++ {
		offset := -hw + float32(z)*every
		emit(sink, f.screenPoint(V3(-hw, 0, offset)), f.screenPoint(V3(hw, 0, offset)), c, &st)
	}
	return st
}
