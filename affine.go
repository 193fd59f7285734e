package geom

import (
	"math"
)

// Affine is a 2D affine transform. The coefficients N0 through N5 are the
// columns of the augmented matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so N4 and N5 are the translation.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves every point where it is.
var Identity = Affine{N0: 1, N3: 1}

// Scale scales x and y about the origin.
func Scale(x, y float64) Affine { return Affine{N0: x, N3: y} }

// Translate moves every point by v.
func Translate(v Vec2) Affine { return Affine{N0: 1, N3: 1, N4: v.X, N5: v.Y} }

// Rotate rotates about the origin by th radians, turning the positive x axis
// towards the positive y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return rotation(cos, sin)
}

// rotation builds a rotation from the cosine and sine of its angle.
func rotation(cos, sin float64) Affine {
	return Affine{N0: cos, N1: sin, N2: -sin, N3: cos}
}

// AlignX returns the rigid transform that moves p0 to the origin and turns
// p1 onto the positive x axis. For coincident points it only translates.
//
// The rotation is taken from the direction p1−p0 and not from its angle, so
// inputs that are already axis-parallel map exactly.
func AlignX(p0, p1 Point) Affine {
	return alignTo(p0, p1, 1, 0)
}

// AlignY is like [AlignX] for the positive y axis.
func AlignY(p0, p1 Point) Affine {
	return alignTo(p0, p1, 0, 1)
}

// alignTo rotates the direction from p0 to p1 onto the unit vector (x, y).
func alignTo(p0, p1 Point, x, y float64) Affine {
	move := Translate(Vec2(p0).Negate())
	d := p1.Sub(p0)
	l := d.Hypot()
	if l == 0 {
		return move
	}
	// cos and sin of the angle from d to (x, y).
	dx, dy := d.X/l, d.Y/l
	cos := dx*x + dy*y
	sin := dx*y - dy*x
	return rotation(cos, sin).Mul(move)
}

// Mul returns the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Invert returns the inverse transform. Singular transforms invert to
// infinities and NaNs.
func (aff Affine) Invert() Affine {
	inv := 1 / (aff.N0*aff.N3 - aff.N1*aff.N2)
	return Affine{
		N0: inv * aff.N3,
		N1: -inv * aff.N1,
		N2: -inv * aff.N2,
		N3: inv * aff.N0,
		N4: inv * (aff.N2*aff.N5 - aff.N3*aff.N4),
		N5: inv * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}
