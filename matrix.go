package sketch

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix is a 2x3 affine transformation in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// mapping a point (x, y) to:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// This is the coefficient order used by ApplyMatrix and by canvas-style
// setTransform calls.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translation returns a matrix translating by (x, y).
func Translation(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scaling returns a matrix scaling by (x, y).
func Scaling(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotation returns a matrix rotating by angle radians about the origin.
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// ShearingX returns a matrix shearing along the x axis by angle radians.
// A point moves horizontally in proportion to tan(angle) of its y.
func ShearingX(angle float64) Matrix {
	return Matrix{A: 1, B: math.Tan(angle), E: 1}
}

// ShearingY returns a matrix shearing along the y axis by angle radians.
func ShearingY(angle float64) Matrix {
	return Matrix{A: 1, D: math.Tan(angle), E: 1}
}

// Mul returns m * other, composing other onto m. Applying the result is
// equivalent to applying other first, then m.
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Invert returns the inverse transformation, or the identity when the
// matrix is singular.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsFinite reports whether every coefficient is a finite number.
// ApplyMatrix rejects matrices for which this is false.
func (m Matrix) IsFinite() bool {
	for _, v := range [6]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Eq reports whether m and other agree within tol, coefficient by
// coefficient.
func (m Matrix) Eq(other Matrix, tol float64) bool {
	return math.Abs(m.A-other.A) <= tol &&
		math.Abs(m.B-other.B) <= tol &&
		math.Abs(m.C-other.C) <= tol &&
		math.Abs(m.D-other.D) <= tol &&
		math.Abs(m.E-other.E) <= tol &&
		math.Abs(m.F-other.F) <= tol
}

// Aff3 converts m to the x/image affine representation
// [a, b, c; d, e, f] in row-major order.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// FromAff3 builds a Matrix from an x/image affine.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{A: a[0], B: a[1], C: a[2], D: a[3], E: a[4], F: a[5]}
}
