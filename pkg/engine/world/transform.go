package world

import (
	"golang.org/x/image/math/f64"
)

// Transform is a 2D affine node transform. Element layout follows f64.Aff3:
// x' = m[0]*x + m[1]*y + m[2], y' = m[3]*x + m[4]*y + m[5].
type Transform struct {
	m f64.Aff3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// TranslateScale returns a transform that scales first and then translates.
func TranslateScale(tx, ty, sx, sy float64) Transform {
	return Transform{m: f64.Aff3{sx, 0, tx, 0, sy, ty}}
}

// FlipY maps a y-up space of the given height into a y-down screen space.
func FlipY(height float64) Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, -1, height}}
}

// Aff3 exposes the raw matrix.
func (t Transform) Aff3() f64.Aff3 {
	return t.m
}

// Apply maps a point through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.m[0]*x + t.m[1]*y + t.m[2], t.m[3]*x + t.m[4]*y + t.m[5]
}

// Then returns the transform that applies t and then o.
func (t Transform) Then(o Transform) Transform {
	a, b := o.m, t.m
	return Transform{m: f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}}
}

// Inverse returns the inverse transform. ok is false for a singular matrix.
func (t Transform) Inverse() (Transform, bool) {
	m := t.m
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return Transform{}, false
	}
	inv := 1 / det
	return Transform{m: f64.Aff3{
		m[4] * inv,
		-m[1] * inv,
		(m[1]*m[5] - m[4]*m[2]) * inv,
		-m[3] * inv,
		m[0] * inv,
		(m[3]*m[2] - m[0]*m[5]) * inv,
	}}, true
}
