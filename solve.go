package geom

import "math"

// SolveQuadratic finds real roots of c0 + c1 x + c2 x² = 0 and returns them
// in ascending order.
//
// When c2 is too small to divide by, the linear equation c0 + c1 x = 0 is
// solved instead. An equation that is zero everywhere yields the single
// root 0.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	b, c := c1/c2, c0/c2
	if !finite(b, c) {
		return solveLinear(c0, c1)
	}

	var r0 float64
	switch disc := b*b - 4*c; {
	case math.IsInf(disc, 0):
		// b² overflowed, so x² + b x dominates and -b is close to a root.
		r0 = -b
	case disc < 0:
		return [2]float64{}, 0
	case disc == 0:
		return [2]float64{-0.5 * b}, 1
	default:
		// Pick the sign that avoids cancellation, then get the other root
		// from the product of the roots.
		r0 = -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	}
	r1 := c / r0
	if !finite(r1) {
		return [2]float64{r0}, 1
	}
	return [2]float64{min(r0, r1), max(r0, r1)}, 2
}

func solveLinear(c0, c1 float64) ([2]float64, int) {
	if r := -c0 / c1; finite(r) {
		return [2]float64{r}, 1
	}
	if c0 == 0 && c1 == 0 {
		return [2]float64{0}, 1
	}
	return [2]float64{}, 0
}

// SolveCubic finds real roots of c0 + c1 x + c2 x² + c3 x³ = 0, falling back
// to [SolveQuadratic] when c3 is too small to divide by. Roots are not
// sorted.
//
// The sign of the discriminant of the depressed cubic picks the method:
// Cardano's formula for a single real root, the trigonometric form for
// three. This follows Jim Blinn, "How to Solve a Cubic Equation".
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	inv := 1 / c3
	third := (1.0 / 3.0) * inv
	a, b, c := c2*third, c1*third, c0*inv
	if !finite(a, b, c) {
		q, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{q[0], q[1]}, n
	}

	// Hessian coefficients of the monic cubic x³ + 3a x² + 3b x + c.
	h0 := math.FMA(-a, a, b)
	h1 := math.FMA(-b, a, c)
	h2 := a*c - b*b
	disc := 4*h0*h2 - h1*h1
	q := math.FMA(-2*a, h0, h1)

	switch {
	case disc < 0:
		s := math.Sqrt(-0.25 * disc)
		m := -0.5 * q
		return [3]float64{math.Cbrt(m+s) + math.Cbrt(m-s) - a}, 1
	case disc == 0:
		r := math.Copysign(math.Sqrt(-h0), q)
		return [3]float64{r - a, -2*r - a}, 2
	}
	sin, cos := math.Sincos(math.Atan2(math.Sqrt(disc), -q) * (1.0 / 3.0))
	k := math.Sqrt(3) * sin
	scale := 2 * math.Sqrt(-h0)
	return [3]float64{
		math.FMA(scale, cos, -a),
		math.FMA(scale, 0.5*(k-cos), -a),
		math.FMA(scale, 0.5*(-cos-k), -a),
	}, 3
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}
	return true
}

// unitRoots filters roots to those lying within [0, 1], snapping values
// within eps of either end onto it.
func unitRoots(roots []float64, eps float64) []float64 {
	out := roots[:0]
	for _, r := range roots {
		switch {
		case r >= -eps && r < 0:
			r = 0
		case r > 1 && r <= 1+eps:
			r = 1
		}
		if r >= 0 && r <= 1 {
			out = append(out, r)
		}
	}
	return out
}
