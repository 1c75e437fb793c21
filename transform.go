package collage

import "math"

// Matrix represents a 2D affine transformation.
// It is a 2x3 matrix of homogeneous coordinates in row-major order:
//
//	| A  B  X |
//	| C  D  Y |
//
// representing the transformation:
//
//	x' = A*x + B*y + X
//	y' = C*x + D*y + Y
//
// The omitted bottom row is always 0 0 1.
//
// Multiply is the only composition primitive. Transforms compose
// left-to-right in drawing order: in m.Multiply(n), n is applied to points
// first and the result is then mapped through m, so a chain like
//
//	Translation(10, 0).Multiply(Rotation(theta))
//
// rotates a point about the origin and then translates it.
type Matrix struct {
	A, B, X float64
	C, D, Y float64
}

// Identity returns the identity transform. Transforming by the identity
// does not change anything, but it can come in handy as a default or base
// case.
//
//	/ 1 0 0 \
//	\ 0 1 0 /
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, X: 0,
		C: 0, D: 1, Y: 0,
	}
}

// NewMatrix creates a transformation matrix from its six coefficients.
// This lets you create transforms such as shears and reflections that have
// no dedicated constructor.
//
//	/ a b x \
//	\ c d y /
func NewMatrix(a, b, c, d, x, y float64) Matrix {
	return Matrix{A: a, B: b, X: x, C: c, D: d, Y: y}
}

// Rotation creates a counterclockwise rotation matrix for angle t in
// radians.
//
//	/ cos t  -sin t  0 \
//	\ sin t   cos t  0 /
func Rotation(t float64) Matrix {
	sin, cos := math.Sincos(t)
	return Matrix{
		A: cos, B: -sin, X: 0,
		C: sin, D: cos, Y: 0,
	}
}

// Translation creates a translation matrix.
//
//	/ 1 0 x \
//	\ 0 1 y /
func Translation(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, X: x,
		C: 0, D: 1, Y: y,
	}
}

// Scale creates a uniform scaling matrix.
//
//	/ s 0 0 \
//	\ 0 s 0 /
func Scale(s float64) Matrix {
	return Matrix{
		A: s, B: 0, X: 0,
		C: 0, D: s, Y: 0,
	}
}

// ScaleX creates a horizontal scaling matrix.
func ScaleX(s float64) Matrix {
	return Matrix{
		A: s, B: 0, X: 0,
		C: 0, D: 1, Y: 0,
	}
}

// ScaleY creates a vertical scaling matrix.
func ScaleY(s float64) Matrix {
	return Matrix{
		A: 1, B: 0, X: 0,
		C: 0, D: s, Y: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		X: m.A*other.X + m.B*other.Y + m.X,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		Y: m.C*other.X + m.D*other.Y + m.Y,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.X,
		Y: m.C*p.X + m.D*p.Y + m.Y,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.X == 0 &&
		m.C == 0 && m.D == 1 && m.Y == 0
}

// ScaleFactor returns the average absolute scale the matrix applies,
// computed from the determinant of its linear part. Backends use it to
// scale stroke widths drawn in device space.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}
