package canvas

import "math"

// Affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

var Identity = Affine{1, 0, 0, 1, 0, 0}

// Mul returns m * n, so n is applied first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Apply maps a local point into the matrix's target space.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Invert returns the inverse matrix. Singular matrices invert to the
// identity and report false.
func (m Affine) Invert() (Affine, bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity, false
	}
	inv := 1 / det
	a := m[3] * inv
	b := -m[1] * inv
	c := -m[2] * inv
	d := m[0] * inv
	return Affine{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}, true
}

// ScaleFactor is the geometric mean of the axis scales, used for stroke
// widths under transform.
func (m Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}

func Translation(x, y float64) Affine { return Affine{1, 0, 0, 1, x, y} }

func Rotation(rad float64) Affine {
	sin, cos := math.Sincos(rad)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func Scaling(sx, sy float64) Affine { return Affine{sx, 0, 0, sy, 0, 0} }
