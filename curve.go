package geom

import (
	"fmt"
	"hash/maphash"
	"math"
	"slices"
)

type CurveKind int

const (
	// A straight line from P0 to P1.
	LinearKind CurveKind = iota + 1
	// A quadratic Bézier curve from P0 to P1 with control point C0.
	QuadraticKind
	// A cubic Bézier curve from P0 to P1 with control points C0 and C1.
	CubicKind
)

func (k CurveKind) String() string {
	switch k {
	case LinearKind:
		return "Linear"
	case QuadraticKind:
		return "Quadratic"
	case CubicKind:
		return "Cubic"
	default:
		return "InvalidCurve"
	}
}

// LengthStep is the parameter step used when measuring cubic curves.
//
// Cubic arc length has no closed form. [Curve.Length] and
// [Curve.ParameterAtLength] instead sum the lengths of the chords between
// samples taken every LengthStep.
const LengthStep = 0.01

// Curve is a single linear, quadratic, or cubic Bézier segment in absolute
// coordinates.
//
// Kind determines which control points are meaningful: linear curves use
// neither C0 nor C1, quadratic curves only use C0. The zero value is an
// invalid curve.
type Curve struct {
	Kind CurveKind
	P0   Point
	C0   Point
	C1   Point
	P1   Point
}

func Linear(p0, p1 Point) Curve {
	return Curve{Kind: LinearKind, P0: p0, P1: p1}
}

func Quadratic(p0, c, p1 Point) Curve {
	return Curve{Kind: QuadraticKind, P0: p0, C0: c, P1: p1}
}

func Cubic(p0, c0, c1, p1 Point) Curve {
	return Curve{Kind: CubicKind, P0: p0, C0: c0, C1: c1, P1: p1}
}

// Degree returns 1, 2, or 3 for linear, quadratic, and cubic curves, and 0
// for invalid ones.
func (c Curve) Degree() int {
	switch c.Kind {
	case LinearKind:
		return 1
	case QuadraticKind:
		return 2
	case CubicKind:
		return 3
	default:
		return 0
	}
}

// IsValid reports whether c has a known kind and none of its meaningful
// points are NaN.
func (c Curve) IsValid() bool {
	switch c.Kind {
	case LinearKind:
		return c.P0.IsValid() && c.P1.IsValid()
	case QuadraticKind:
		return c.P0.IsValid() && c.C0.IsValid() && c.P1.IsValid()
	case CubicKind:
		return c.P0.IsValid() && c.C0.IsValid() && c.C1.IsValid() && c.P1.IsValid()
	default:
		return false
	}
}

// Points returns the curve's meaningful points in order, starting with P0 and
// ending with P1.
func (c Curve) Points() []Point {
	switch c.Kind {
	case LinearKind:
		return []Point{c.P0, c.P1}
	case QuadraticKind:
		return []Point{c.P0, c.C0, c.P1}
	case CubicKind:
		return []Point{c.P0, c.C0, c.C1, c.P1}
	default:
		return nil
	}
}

// Value evaluates the curve at t. Invalid curves evaluate to [InvalidPoint].
func (c Curve) Value(t float64) Point {
	mt := 1 - t
	switch c.Kind {
	case LinearKind:
		return c.P0.Lerp(c.P1, t)
	case QuadraticKind:
		p := Vec2(c.P0).Mul(mt * mt).
			Add(Vec2(c.C0).Mul(2 * mt * t)).
			Add(Vec2(c.P1).Mul(t * t))
		return Point(p)
	case CubicKind:
		p := Vec2(c.P0).Mul(mt * mt * mt).
			Add(Vec2(c.C0).Mul(3 * mt * mt * t)).
			Add(Vec2(c.C1).Mul(3 * mt * t * t)).
			Add(Vec2(c.P1).Mul(t * t * t))
		return Point(p)
	default:
		return InvalidPoint
	}
}

// Derivative returns the curve's hodograph, a curve one degree lower whose
// value at t is the derivative of c at t.
//
// The derivative of a linear curve is constant; it is represented as a
// zero-length linear curve.
func (c Curve) Derivative() Curve {
	switch c.Kind {
	case LinearKind:
		d := Point(c.P1.Sub(c.P0))
		return Linear(d, d)
	case QuadraticKind:
		return Linear(
			Point(c.C0.Sub(c.P0).Mul(2)),
			Point(c.P1.Sub(c.C0).Mul(2)),
		)
	case CubicKind:
		return Quadratic(
			Point(c.C0.Sub(c.P0).Mul(3)),
			Point(c.C1.Sub(c.C0).Mul(3)),
			Point(c.P1.Sub(c.C1).Mul(3)),
		)
	default:
		return Curve{}
	}
}

// Tangent returns the first derivative at t. It is not normalized.
func (c Curve) Tangent(t float64) Vec2 {
	return Vec2(c.Derivative().Value(t))
}

// Normal returns the tangent at t rotated by 90°. It is not normalized.
func (c Curve) Normal(t float64) Vec2 {
	return c.Tangent(t).Perp()
}

// Curvature returns the signed curvature at t. Linear curves have zero
// curvature, as do points where the first derivative vanishes.
func (c Curve) Curvature(t float64) float64 {
	if c.Kind == LinearKind || !c.IsValid() {
		return 0
	}
	d1 := c.Derivative()
	d := d1.Value(t)
	dd := d1.Derivative().Value(t)
	den := math.Pow(d.X*d.X+d.Y*d.Y, 1.5)
	if den == 0 {
		return 0
	}
	return (d.X*dd.Y - dd.X*d.Y) / den
}

// Extrema holds the parameters in [0, 1] at which a curve's x and y
// coordinates reach a local extremum, in ascending order.
type Extrema struct {
	X []float64
	Y []float64
}

// Extrema returns the parameters where the derivative of each coordinate is
// zero. For cubic curves this also includes the points where the second
// derivative is zero, which is where the first derivative is extremal.
func (c Curve) Extrema() Extrema {
	var e Extrema
	switch c.Kind {
	case QuadraticKind:
		e.X = quadExtrema(c.P0.X, c.C0.X, c.P1.X)
		e.Y = quadExtrema(c.P0.Y, c.C0.Y, c.P1.Y)
	case CubicKind:
		e.X = cubicExtrema(c.P0.X, c.C0.X, c.C1.X, c.P1.X)
		e.Y = cubicExtrema(c.P0.Y, c.C0.Y, c.C1.Y, c.P1.Y)
	}
	return e
}

func quadExtrema(p0, c, p1 float64) []float64 {
	a := c - p0
	b := p1 - c
	den := a - b
	if den == 0 {
		return nil
	}
	return unitRoots([]float64{a / den}, 0)
}

func cubicExtrema(p0, c0, c1, p1 float64) []float64 {
	a := c0 - p0
	b := c1 - c0
	c := p1 - c1
	// 1/3 of the derivative is a + 2(b-a)t + (a-2b+c)t².
	roots, n := SolveQuadratic(a, 2*(b-a), a-2*b+c)
	out := unitRoots(roots[:n], 0)
	if den := a - 2*b + c; den != 0 {
		out = append(out, unitRoots([]float64{(a - b) / den}, 0)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// inflectionEpsilon is the magnitude below which inflection coefficients are
// treated as zero.
const inflectionEpsilon = 1e-6

// Inflections returns the parameters in [0, 1] at which a cubic curve's
// curvature changes sign. Linear and quadratic curves have none.
func (c Curve) Inflections() ([2]float64, int) {
	if c.Kind != CubicKind {
		return [2]float64{}, 0
	}
	p := c.AxisAligned()
	a := p.C1.X * p.C0.Y
	b := p.P1.X * p.C0.Y
	cc := p.C0.X * p.C1.Y
	d := p.P1.X * p.C1.Y
	v1 := 18 * (-3*a + 2*b + 3*cc - d)
	v2 := 18 * (3*a - b - 3*cc)
	v3 := 18 * (cc - a)

	var out [2]float64
	n := 0
	push := func(t float64) {
		if t >= 0 && t <= 1 {
			out[n] = t
			n++
		}
	}
	if math.Abs(v1) <= inflectionEpsilon {
		if math.Abs(v2) > inflectionEpsilon {
			push(-v3 / v2)
		}
		return out, n
	}
	disc := v2*v2 - 4*v1*v3
	if disc < 0 {
		return out, 0
	}
	sq := math.Sqrt(disc)
	d2 := 2 * v1
	push((sq - v2) / d2)
	push(-(v2 + sq) / d2)
	if n == 2 && out[0] > out[1] {
		out[0], out[1] = out[1], out[0]
	}
	return out, n
}

// Bounds returns the exact bounding box of the curve.
func (c Curve) Bounds() Rect {
	if !c.IsValid() {
		return Rect{}
	}
	r := NewRectFromPoints(c.P0, c.P1)
	e := c.Extrema()
	for _, t := range e.X {
		r = r.UnionPoint(c.Value(t))
	}
	for _, t := range e.Y {
		r = r.UnionPoint(c.Value(t))
	}
	return r
}

// ApproximateBounds returns the bounding box of the control polygon. It
// always encloses [Curve.Bounds] and is cheaper to compute.
func (c Curve) ApproximateBounds() Rect {
	pts := c.Points()
	if len(pts) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Length returns the arc length of the curve.
//
// Linear and quadratic lengths are exact. Cubic lengths are approximated by
// a polyline with a fixed parameter step of [LengthStep].
func (c Curve) Length() float64 {
	switch c.Kind {
	case LinearKind:
		return c.P0.Distance(c.P1)
	case QuadraticKind:
		return quadLength(c.P0, c.C0, c.P1)
	case CubicKind:
		return c.polylineLength()
	default:
		return 0
	}
}

func lengthSteps() int {
	return int(math.Round(1 / LengthStep))
}

func (c Curve) polylineLength() float64 {
	n := lengthSteps()
	var l float64
	prev := c.P0
	for i := 1; i <= n; i++ {
		pt := c.Value(float64(i) / float64(n))
		l += prev.Distance(pt)
		prev = pt
	}
	return l
}

// quadLength computes the arc length of a quadratic Bézier analytically.
// Nearly straight curves, where the analytic formula is unstable, use
// Legendre-Gauss quadrature instead.
func quadLength(p0, p1, p2 Point) float64 {
	d2 := Vec2(p0).Sub(Vec2(p1).Mul(2)).Add(Vec2(p2))
	a := d2.Hypot2()
	d1 := p1.Sub(p0)
	c := d1.Hypot2()
	if a < 5e-4*c || a == 0 {
		// Quadrature formula from Behdad in
		// https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(p0).Mul(-0.492943519233745).
			Add(Vec2(p1).Mul(0.430331482911935)).
			Add(Vec2(p2).Mul(0.0626120363218102)).
			Hypot()
		v1 := p2.Sub(p0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(p0).Mul(-0.0626120363218102).
			Sub(Vec2(p1).Mul(0.430331482911935)).
			Add(Vec2(p2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// Sharp kink.
		return v0
	}
	arg := ((2.0*a+b)*a2 + 2.0*sabc) / baC2
	if arg <= 0 {
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(arg)
}

// ParameterAtLength returns the parameter at which the arc length measured
// from P0 reaches d. Values of d outside [0, Length()] are clamped.
//
// Quadratic and cubic curves are walked along the same polyline that
// [Curve.Length] uses for cubics, so that
// c.Value(c.ParameterAtLength(c.Length()*x)) tracks the point x of the way
// along the curve.
func (c Curve) ParameterAtLength(d float64) float64 {
	if !c.IsValid() || d <= 0 {
		return 0
	}
	switch c.Kind {
	case LinearKind:
		l := c.Length()
		if d >= l {
			return 1
		}
		return d / l
	case QuadraticKind:
		exact := c.Length()
		if exact == 0 {
			return 0
		}
		// Scale the target onto the polyline, which is slightly shorter
		// than the curve.
		return c.polylineParameter(d * c.polylineLength() / exact)
	default:
		return c.polylineParameter(d)
	}
}

func (c Curve) polylineParameter(d float64) float64 {
	n := lengthSteps()
	var acc float64
	prev := c.P0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := c.Value(t)
		seg := prev.Distance(pt)
		if acc+seg >= d {
			if seg == 0 {
				return t
			}
			t0 := float64(i-1) / float64(n)
			return t0 + (d-acc)/seg*(t-t0)
		}
		acc += seg
		prev = pt
	}
	return 1
}

// Nearest returns the parameter of the point on the curve closest to pt and
// the distance to it.
//
// Linear curves are solved exactly. Other curves are sampled every
// [LengthStep] and the closest sample wins.
func (c Curve) Nearest(pt Point) (t, dist float64) {
	switch c.Kind {
	case LinearKind:
		d := c.P1.Sub(c.P0)
		l2 := d.Hypot2()
		if l2 == 0 {
			return 0, pt.Distance(c.P0)
		}
		t = min(max(pt.Sub(c.P0).Dot(d)/l2, 0), 1)
		return t, pt.Distance(c.Value(t))
	case QuadraticKind, CubicKind:
		n := lengthSteps()
		best := math.Inf(1)
		for i := 0; i <= n; i++ {
			ti := float64(i) / float64(n)
			if d := pt.DistanceSquared(c.Value(ti)); d < best {
				best = d
				t = ti
			}
		}
		return t, math.Sqrt(best)
	default:
		return 0, math.NaN()
	}
}

// Split subdivides the curve at t using De Casteljau's algorithm. The end
// of the first curve and the start of the second are both exactly c.Value(t).
func (c Curve) Split(t float64) (Curve, Curve) {
	m := c.Value(t)
	switch c.Kind {
	case LinearKind:
		return Linear(c.P0, m), Linear(m, c.P1)
	case QuadraticKind:
		a := c.P0.Lerp(c.C0, t)
		b := c.C0.Lerp(c.P1, t)
		return Quadratic(c.P0, a, m), Quadratic(m, b, c.P1)
	case CubicKind:
		a := c.P0.Lerp(c.C0, t)
		b := c.C0.Lerp(c.C1, t)
		cc := c.C1.Lerp(c.P1, t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(cc, t)
		return Cubic(c.P0, a, ab, m), Cubic(m, bc, cc, c.P1)
	default:
		return Curve{}, Curve{}
	}
}

// Subsegment returns the part of the curve between t0 and t1. If t1 < t0 the
// result runs backwards.
func (c Curve) Subsegment(t0, t1 float64) Curve {
	if t1 < t0 {
		return c.Subsegment(t1, t0).Reverse()
	}
	if t0 >= 1 {
		end := c.Value(1)
		return Curve{Kind: c.Kind, P0: end, C0: end, C1: end, P1: end}.normalized()
	}
	_, right := c.Split(t0)
	left, _ := right.Split((t1 - t0) / (1 - t0))
	return left
}

// normalized clears the control points a curve's kind doesn't use.
func (c Curve) normalized() Curve {
	switch c.Kind {
	case LinearKind:
		c.C0, c.C1 = Point{}, Point{}
	case QuadraticKind:
		c.C1 = Point{}
	}
	return c
}

// Reverse returns the same curve traversed from P1 to P0.
func (c Curve) Reverse() Curve {
	switch c.Kind {
	case LinearKind:
		return Linear(c.P1, c.P0)
	case QuadraticKind:
		return Quadratic(c.P1, c.C0, c.P0)
	case CubicKind:
		return Cubic(c.P1, c.C1, c.C0, c.P0)
	default:
		return c
	}
}

func (c Curve) Transform(aff Affine) Curve {
	c.P0 = c.P0.Transform(aff)
	c.P1 = c.P1.Transform(aff)
	switch c.Kind {
	case QuadraticKind:
		c.C0 = c.C0.Transform(aff)
	case CubicKind:
		c.C0 = c.C0.Transform(aff)
		c.C1 = c.C1.Transform(aff)
	}
	return c
}

// AxisAligned returns the curve translated so that P0 is at the origin and
// rotated so that P1 lies on the positive x axis.
func (c Curve) AxisAligned() Curve {
	return c.Transform(AlignX(c.P0, c.P1))
}

// AxisAlignedY is like [Curve.AxisAligned] but rotates P1 onto the positive y
// axis.
func (c Curve) AxisAlignedY() Curve {
	return c.Transform(AlignY(c.P0, c.P1))
}

// Equal reports whether two curves have the same kind and the same
// meaningful points.
func (c Curve) Equal(o Curve) bool {
	if c.Kind != o.Kind {
		return false
	}
	a, b := c.Points(), o.Points()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (c Curve) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	c.writeHash(&h)
	return h.Sum64()
}

func (c Curve) writeHash(h *maphash.Hash) {
	h.WriteByte(byte(c.Kind))
	for _, pt := range c.Points() {
		pt.writeHash(h)
	}
}

func (c Curve) String() string {
	switch c.Kind {
	case LinearKind:
		return fmt.Sprintf("Linear(%s, %s)", c.P0, c.P1)
	case QuadraticKind:
		return fmt.Sprintf("Quadratic(%s, %s, %s)", c.P0, c.C0, c.P1)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", c.P0, c.C0, c.C1, c.P1)
	default:
		return "InvalidCurve"
	}
}
