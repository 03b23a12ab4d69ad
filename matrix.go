package slint

import "github.com/chewxy/math32"

// Mat4 is a 4x4 transformation matrix in column-major order, the layout
// GPU uniform uploads expect: element (row r, column c) is at index c*4+r.
type Mat4 [16]float32

// Identity returns the identity transformation matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Ortho2D returns an orthographic projection for a surface of the given
// pixel size with the origin at the top-left corner and Y growing
// downwards. The near and far planes are at -1 and +1.
func Ortho2D(width, height float32) Mat4 {
	return Ortho(0, width, height, 0, -1, 1)
}

// Ortho returns a general orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	rml := right - left
	tmb := top - bottom
	fmn := far - near
	return Mat4{
		2 / rml, 0, 0, 0,
		0, 2 / tmb, 0, 0,
		0, 0, -2 / fmn, 0,
		-(right + left) / rml, -(top + bottom) / tmb, -(far + near) / fmn, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y float32) Mat4 {
	m := Identity()
	m[12] = x
	m[13] = y
	return m
}

// Scale returns a scaling matrix.
func Scale(x, y float32) Mat4 {
	m := Identity()
	m[0] = x
	m[5] = y
	return m
}

// Rotate returns a rotation matrix around the Z axis (angle in radians,
// positive is clockwise in the Y-down coordinate system).
func Rotate(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	m := Identity()
	m[0] = cos
	m[1] = sin
	m[4] = -sin
	m[5] = cos
	return m
}

// Mul returns the matrix product m * other. Applying the result to a
// vector applies other first, then m.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint applies the transformation to a 2D point (z=0, w=1).
func (m Mat4) TransformPoint(x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// MinX returns the left edge.
func (r Rect) MinX() float32 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float32 { return r.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return r.Y + r.Height }

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }
