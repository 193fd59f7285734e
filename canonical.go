package geom

import (
	"math"
)

// CanonicalType is the topological family of a curve.
//
// Cubic curves are classified by mapping their end point into the canonical
// basis in which the first three points are (0, 0), (0, 1), and (1, 1), as
// described by Stone and DeRose in "A Geometric Characterization of
// Parametric Cubic Curves" and popularized by Pomax's Primer on Bézier
// Curves. The classification is invariant under rotation and translation.
type CanonicalType int

const (
	// The curve has a NaN anchor or an unknown kind.
	CanonicalInvalid CanonicalType = iota
	// All points coincide.
	CanonicalPoint
	// All points are collinear.
	CanonicalLinear
	// A non-degenerate quadratic curve.
	CanonicalQuadratic
	// A cubic without inflections, loops, or cusps.
	CanonicalSimple
	CanonicalSingleInflection
	CanonicalDoubleInflection
	// A cubic that crosses itself.
	CanonicalLoop
	// A cubic whose loop closes exactly at its start point.
	CanonicalLoopAtStart
	// A cubic whose loop closes exactly at its end point.
	CanonicalLoopAtEnd
	// A cubic whose loop closes exactly at both ends.
	CanonicalLoopClosed
	CanonicalCusp
)

func (ct CanonicalType) String() string {
	switch ct {
	case CanonicalInvalid:
		return "Invalid"
	case CanonicalPoint:
		return "Point"
	case CanonicalLinear:
		return "Linear"
	case CanonicalQuadratic:
		return "Quadratic"
	case CanonicalSimple:
		return "Simple"
	case CanonicalSingleInflection:
		return "SingleInflection"
	case CanonicalDoubleInflection:
		return "DoubleInflection"
	case CanonicalLoop:
		return "Loop"
	case CanonicalLoopAtStart:
		return "LoopAtStart"
	case CanonicalLoopAtEnd:
		return "LoopAtEnd"
	case CanonicalLoopClosed:
		return "LoopClosed"
	case CanonicalCusp:
		return "Cusp"
	default:
		return "CanonicalType(?)"
	}
}

// Canonical classifies the curve.
func (c Curve) Canonical() CanonicalType {
	if !c.P0.IsValid() || !c.P1.IsValid() {
		return CanonicalInvalid
	}
	switch c.Kind {
	case LinearKind:
		if c.P0 == c.P1 {
			return CanonicalPoint
		}
		return CanonicalLinear
	case QuadraticKind:
		if !c.C0.IsValid() {
			return CanonicalInvalid
		}
		if c.P0 == c.C0 && c.C0 == c.P1 {
			return CanonicalPoint
		}
		if c.C0.Sub(c.P0).Cross(c.P1.Sub(c.P0)) == 0 {
			return CanonicalLinear
		}
		return CanonicalQuadratic
	case CubicKind:
		if !c.C0.IsValid() || !c.C1.IsValid() {
			return CanonicalInvalid
		}
		return c.canonicalCubic()
	default:
		return CanonicalInvalid
	}
}

func (c Curve) canonicalCubic() CanonicalType {
	if c.P0 == c.C0 && c.C0 == c.C1 && c.C1 == c.P1 {
		return CanonicalPoint
	}
	u := c.C0.Sub(c.P0)
	v := c.C1.Sub(c.P0)
	w := c.P1.Sub(c.P0)
	if u.Cross(v) == 0 && u.Cross(w) == 0 && v.Cross(w) == 0 {
		return CanonicalLinear
	}

	if pt, ok := c.CanonicalPoint(); ok {
		return classifyCanonical(pt)
	}
	// The first three points are collinear, so the canonical basis is
	// singular. Classify the reversed curve and mirror the result.
	if pt, ok := c.Reverse().CanonicalPoint(); ok {
		switch ct := classifyCanonical(pt); ct {
		case CanonicalLoopAtStart:
			return CanonicalLoopAtEnd
		case CanonicalLoopAtEnd:
			return CanonicalLoopAtStart
		default:
			return ct
		}
	}
	return CanonicalSimple
}

// CanonicalPoint maps a cubic curve's end point into the canonical basis
// where P0 = (0, 0), C0 = (0, 1), and C1 = (1, 1). It returns false if the
// curve isn't cubic or if P0, C0, and C1 are collinear.
func (c Curve) CanonicalPoint() (Point, bool) {
	if c.Kind != CubicKind {
		return Point{}, false
	}
	u := c.C0.Sub(c.P0)
	v := c.C1.Sub(c.P0)
	w := c.P1.Sub(c.P0)
	// Solve w = a·u + b·v with Cramer's rule. u maps to (0, 1) and v to
	// (1, 1), so w maps to (b, a+b).
	det := u.X*v.Y - u.Y*v.X
	if det == 0 {
		return Point{}, false
	}
	a := (w.X*v.Y - w.Y*v.X) / det
	b := (u.X*w.Y - u.Y*w.X) / det
	return Point{X: b, Y: a + b}, true
}

func classifyCanonical(pt Point) CanonicalType {
	x, y := pt.X, pt.Y
	if y > 1 {
		return CanonicalSingleInflection
	}
	if x > 1 {
		return CanonicalSimple
	}
	cusp := (-x*x + 2*x + 3) / 4
	if y == cusp {
		return CanonicalCusp
	}
	if y > cusp {
		return CanonicalDoubleInflection
	}

	var loop float64
	if x <= 0 {
		loop = (-x*x + 3*x) / 3
	} else {
		loop = (math.Sqrt(3*(4*x-x*x)) - x) / 2
	}
	switch {
	case x == 0 && y == 0:
		return CanonicalLoopClosed
	case y == loop && x <= 0:
		return CanonicalLoopAtStart
	case y == loop:
		return CanonicalLoopAtEnd
	case y > loop:
		return CanonicalLoop
	default:
		return CanonicalSimple
	}
}
