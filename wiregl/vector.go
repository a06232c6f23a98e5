package wiregl

import "math"

// Vector3 is a world-space point or displacement.
type Vector3 struct {
	X, Y, Z float32
}

// EulerAngles is a rotation in radians about the X, Y and Z axes.
//
// It is kept apart from Vector3 so an angle triple can't be used as a position.
type EulerAngles struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Mul(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3          { return Vector3{-v.X, -v.Y, -v.Z} }

// Len returns the Euclidean length of v.
func (v Vector3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Finite reports whether no component is NaN or infinite.
func (v Vector3) Finite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vector3) ApproxEqual(o Vector3, eps float32) bool {
	return absf(v.X-o.X) <= eps && absf(v.Y-o.Y) <= eps && absf(v.Z-o.Z) <= eps
}

func (a EulerAngles) Neg() EulerAngles { return EulerAngles{-a.X, -a.Y, -a.Z} }

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func sinf(rad float32) float32 { return float32(math.Sin(float64(rad))) }
func cosf(rad float32) float32 { return float32(math.Cos(float64(rad))) }
func tanf(rad float32) float32 { return float32(math.Tan(float64(rad))) }
