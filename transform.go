package bough

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// The zero value is not the identity; use IdentityTransform or LoadIdentity.
// Operations post-multiply, so t.Translate(...).Rotate(...) yields t ∘ T ∘ R.
type Transform struct {
	m [6]float64
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{m: identityMatrix}
}

// TransformFromMatrix wraps a raw [a, b, c, d, tx, ty] matrix.
func TransformFromMatrix(m [6]float64) Transform {
	return Transform{m: m}
}

// Matrix returns the raw [a, b, c, d, tx, ty] values.
func (t *Transform) Matrix() [6]float64 {
	return t.m
}

// LoadIdentity resets t to the identity matrix.
func (t *Transform) LoadIdentity() *Transform {
	t.m = identityMatrix
	return t
}

// Multiply sets t = t ∘ other.
func (t *Transform) Multiply(other Transform) *Transform {
	t.m = multiplyAffine(t.m, other.m)
	return t
}

// Translate sets t = t ∘ Translate(x, y).
func (t *Transform) Translate(x, y float64) *Transform {
	m := &t.m
	m[4] += m[0]*x + m[2]*y
	m[5] += m[1]*x + m[3]*y
	return t
}

// Rotate sets t = t ∘ Rotate(angle). Angle is in radians, clockwise with Y down.
func (t *Transform) Rotate(angle float64) *Transform {
	if angle == 0 {
		return t
	}
	sin, cos := math.Sincos(angle)
	m := &t.m
	a, b, c, d := m[0], m[1], m[2], m[3]
	m[0] = a*cos + c*sin
	m[1] = b*cos + d*sin
	m[2] = c*cos - a*sin
	m[3] = d*cos - b*sin
	return t
}

// Scale sets t = t ∘ Scale(sx, sy).
func (t *Transform) Scale(sx, sy float64) *Transform {
	m := &t.m
	m[0] *= sx
	m[1] *= sx
	m[2] *= sy
	m[3] *= sy
	return t
}

// ApplyITRS overwrites t with Translate(x, y) ∘ Rotate(rotation) ∘ Scale(sx, sy)
// computed directly from identity.
func (t *Transform) ApplyITRS(x, y, rotation, sx, sy float64) *Transform {
	sin, cos := math.Sincos(rotation)
	t.m = [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, x, y}
	return t
}

// Apply transforms the point (x, y).
func (t *Transform) Apply(x, y float64) (float64, float64) {
	return transformPoint(t.m, x, y)
}

// Invert returns the inverse of t, or the identity if t is singular.
func (t *Transform) Invert() Transform {
	return Transform{m: invertAffine(t.m)}
}

// GeoM converts t to an ebiten.GeoM.
func (t *Transform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.m[0])
	g.SetElement(1, 0, t.m[1])
	g.SetElement(0, 1, t.m[2])
	g.SetElement(1, 1, t.m[3])
	g.SetElement(0, 2, t.m[4])
	g.SetElement(1, 2, t.m[5])
	return g
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
