package isohedral

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The combined transform applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// Approx returns true if two matrices are approximately equal within epsilon.
func (m Matrix) Approx(n Matrix, epsilon float64) bool {
	return math.Abs(m.A-n.A) < epsilon && math.Abs(m.B-n.B) < epsilon &&
		math.Abs(m.C-n.C) < epsilon && math.Abs(m.D-n.D) < epsilon &&
		math.Abs(m.E-n.E) < epsilon && math.Abs(m.F-n.F) < epsilon
}

// matchSegment returns the similarity transform that carries the canonical
// unit segment from (0,0) to (1,0) onto the segment from p to q.
func matchSegment(p, q Point) Matrix {
	return Matrix{
		A: q.X - p.X, B: p.Y - q.Y, C: p.X,
		D: q.Y - p.Y, E: q.X - p.X, F: p.Y,
	}
}

// orientations are the four ways a canonical edge can sit on the prototile
// boundary, indexed by 2*flip + rotate. Each maps the unit segment onto
// itself, flipping across its length and/or reversing its direction.
var orientations = [4]Matrix{
	{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0},   // keep
	{A: -1, B: 0, C: 1, D: 0, E: -1, F: 0}, // rotate by a half-turn
	{A: -1, B: 0, C: 1, D: 0, E: 1, F: 0},  // flip across the segment midpoint
	{A: 1, B: 0, C: 0, D: 0, E: -1, F: 0},  // flip across the segment itself
}

// halfU holds the sub-transforms for the two halves of a mirror-symmetric
// (U) edge: the second half is the first reflected across x = 1/2.
var halfU = [2]Matrix{
	{A: 0.5, B: 0, C: 0, D: 0, E: 0.5, F: 0},
	{A: -0.5, B: 0, C: 1, D: 0, E: 0.5, F: 0},
}

// halfS holds the sub-transforms for the two halves of a half-turn-symmetric
// (S) edge: the second half is the first rotated about the edge midpoint.
var halfS = [2]Matrix{
	{A: 0.5, B: 0, C: 0, D: 0, E: 0.5, F: 0},
	{A: -0.5, B: 0, C: 1, D: 0, E: -0.5, F: 0},
}
