package wiregl

// WEpsilon is the smallest homogeneous |w| TransformChecked accepts.
const WEpsilon = 1e-6

// Matrix4x4 is a row-major 4x4 matrix used with row vectors: p' = p · M.
//
// Translation lives in the last row, M[3][0..2].
type Matrix4x4 struct {
	M [4][4]float32
}

// MakeIdentityMatrix returns the identity matrix.
func MakeIdentityMatrix() Matrix4x4 {
	var m Matrix4x4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

// MakeTranslateMatrix returns a translation by t.
func MakeTranslateMatrix(t Vector3) Matrix4x4 {
	m := MakeIdentityMatrix()
	m.M[3][0] = t.X
	m.M[3][1] = t.Y
	m.M[3][2] = t.Z
	return m
}

// MakeRotateX returns a rotation of angle radians about the X axis.
func MakeRotateX(angle float32) Matrix4x4 {
	c, s := cosf(angle), sinf(angle)
	m := MakeIdentityMatrix()
	m.M[1][1] = c
	m.M[1][2] = s
	m.M[2][1] = -s
	m.M[2][2] = c
	return m
}

// MakeRotateY returns a rotation of angle radians about the Y axis.
func MakeRotateY(angle float32) Matrix4x4 {
	c, s := cosf(angle), sinf(angle)
	m := MakeIdentityMatrix()
	m.M[0][0] = c
	m.M[0][2] = -s
	m.M[2][0] = s
	m.M[2][2] = c
	return m
}

// MakePerspectiveFovMatrix returns a perspective projection.
//
// The result is undefined when nearZ == farZ or fovY is a multiple of 2π;
// NewProjection rejects those inputs.
func MakePerspectiveFovMatrix(fovY, aspect, nearZ, farZ float32) Matrix4x4 {
	var m Matrix4x4
	f := 1 / tanf(fovY/2)
	m.M[0][0] = f / aspect
	m.M[1][1] = f
	m.M[2][2] = farZ / (nearZ - farZ)
	m.M[2][3] = -1
	m.M[3][2] = (nearZ * farZ) / (nearZ - farZ)
	return m
}

// MakeViewportMatrix maps NDC to pixel space.
//
// The Y axis is not flipped: NDC y=+1 lands on top+height.
func MakeViewportMatrix(left, top, width, height, minDepth, maxDepth float32) Matrix4x4 {
	var m Matrix4x4
	m.M[0][0] = width / 2
	m.M[1][1] = height / 2
	m.M[2][2] = maxDepth - minDepth
	m.M[3][0] = left + width/2
	m.M[3][1] = top + height/2
	m.M[3][2] = minDepth
	m.M[3][3] = 1
	return m
}

// Multiply returns m1 · m2. Applied to a row vector, m1 acts first.
func Multiply(m1, m2 Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m1.M[i][k] * m2.M[k][j]
			}
			out.M[i][j] = sum
		}
	}
	return out
}

// Multiply returns m · o.
func (m Matrix4x4) Multiply(o Matrix4x4) Matrix4x4 { return Multiply(m, o) }

// ApproxEqual reports whether every element of m is within eps of o.
func (m Matrix4x4) ApproxEqual(o Matrix4x4, eps float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if absf(m.M[i][j]-o.M[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func transform4(v Vector3, m Matrix4x4) (Vector3, float32) {
	r := Vector3{
		X: v.X*m.M[0][0] + v.Y*m.M[1][0] + v.Z*m.M[2][0] + m.M[3][0],
		Y: v.X*m.M[0][1] + v.Y*m.M[1][1] + v.Z*m.M[2][1] + m.M[3][1],
		Z: v.X*m.M[0][2] + v.Y*m.M[1][2] + v.Z*m.M[2][2] + m.M[3][2],
	}
	w := v.X*m.M[0][3] + v.Y*m.M[1][3] + v.Z*m.M[2][3] + m.M[3][3]
	return r, w
}

// Transform multiplies (v, 1) by m and divides by the resulting w.
//
// A zero w yields Inf or NaN components; use TransformChecked to detect it.
func Transform(v Vector3, m Matrix4x4) Vector3 {
	r, w := transform4(v, m)
	r.X /= w
	r.Y /= w
	r.Z /= w
	return r
}

// TransformChecked is Transform that reports false instead of dividing by a w
// within WEpsilon of zero or producing a non-finite point.
func TransformChecked(v Vector3, m Matrix4x4) (Vector3, bool) {
	r, w := transform4(v, m)
	if !finite(w) || absf(w) < WEpsilon {
		return Vector3{}, false
	}
	r = Vector3{X: r.X / w, Y: r.Y / w, Z: r.Z / w}
	if !r.Finite() {
		return Vector3{}, false
	}
	return r, true
}
