package wiregl

import (
	"fmt"
	"math"
)

// Sphere is a sphere in world space. A negative radius mirrors the mesh through
// the center; it is not rejected.
type Sphere struct {
	Center Vector3
	Radius float32
}

// SphereMesh tessellates a Sphere into a latitude/longitude wireframe.
//
// Each cell emits the edge toward the next latitude and the edge toward the next
// longitude. With Diagonals set it also emits the edge joining those two corners.
type SphereMesh struct {
	Subdivision int
	Diagonals   bool
}

// DefaultSphereMesh returns the 16x16 mesh without diagonals.
func DefaultSphereMesh() SphereMesh {
	return SphereMesh{Subdivision: 16}
}

// NewSphereMesh validates and returns a sphere mesh.
func NewSphereMesh(subdivision int, diagonals bool) (SphereMesh, error) {
	if subdivision <= 0 {
		return SphereMesh{}, fmt.Errorf("%w: sphere subdivision %d", ErrInvalidParameter, subdivision)
	}
	return SphereMesh{Subdivision: subdivision, Diagonals: diagonals}, nil
}

// Segments returns the number of lines Draw produces.
func (m SphereMesh) Segments() int {
	if m.Subdivision <= 0 {
		return 0
	}
	perCell := 2
	if m.Diagonals {
		perCell = 3
	}
	return m.Subdivision * m.Subdivision * perCell
}

// Point returns the surface point at latitude lat and longitude lon, in radians.
func (s Sphere) Point(lat, lon float32) Vector3 {
	cl := cosf(lat)
	return Vector3{
		X: s.Radius*cl*cosf(lon) + s.Center.X,
		Y: s.Radius*sinf(lat) + s.Center.Y,
		Z: s.Radius*cl*sinf(lon) + s.Center.Z,
	}
}

// Draw projects the mesh of s through f and emits its lines to sink.
func (m SphereMesh) Draw(s Sphere, f Frame, sink LineSink, c Color) Stats {
	var st Stats
	n := m.Subdivision
	if n <= 0 {
		return st
	}
	latEvery := float32(math.Pi) / float32(n)
	lonEvery := float32(math.Pi*2) / float32(n)
	for latIndex := 0; latIndex < n; latIndex++ {
		lat := -float32(math.Pi)/2 + latEvery*float32(latIndex)
		for lonIndex := 0; lonIndex < n; lonIndex++ {
			lon := lonEvery * float32(lonIndex)
			a := f.screenPoint(s.Point(lat, lon))
			b := f.screenPoint(s.Point(lat+latEvery, lon))
			cc := f.screenPoint(s.Point(lat, lon+lonEvery))
			emit(sink, a, b, c, &st)
			emit(sink, a, cc, c, &st)
			if m.Diagonals {
				emit(sink, b, cc, c, &st)
			}
		}
	}
	return st
}
