package geom

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization. Angles are in radians.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// NewArcFromSVG converts an arc given in SVG endpoint parameterization into
// center parameterization. xRotation is in degrees.
//
// Radii too small to span from start to end are scaled up uniformly until
// they do. It returns false if either radius is zero or start and end
// coincide, in which case SVG draws a straight line or nothing at all.
//
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes.
func NewArcFromSVG(start Point, rx, ry, xRotation float64, largeArc, sweep bool, end Point) (Arc, bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || start == end {
		return Arc{}, false
	}

	rot := xRotation * math.Pi / 180
	sin, cos := math.Sincos(rot)
	hx := (start.X - end.X) / 2
	hy := (start.Y - end.Y) / 2
	x1p := cos*hx + sin*hy
	y1p := -sin*hx + cos*hy

	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(max(num/den, 0))
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	center := Point{
		X: cos*cxp - sin*cyp + (start.X+end.X)/2,
		Y: sin*cxp + cos*cyp + (start.Y+end.Y)/2,
	}

	u := Vec2{X: (x1p - cxp) / rx, Y: (y1p - cyp) / ry}
	v := Vec2{X: -(x1p + cxp) / rx, Y: -(y1p + cyp) / ry}
	theta := u.Angle()
	delta := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec2{X: rx, Y: ry},
		StartAngle: theta,
		SweepAngle: delta,
		XRotation:  rot,
	}, true
}

// StartPoint returns the point at StartAngle.
func (a Arc) StartPoint() Point {
	return a.Center.Translate(a.offset(a.StartAngle))
}

// EndPoint returns the point at StartAngle + SweepAngle.
func (a Arc) EndPoint() Point {
	return a.Center.Translate(a.offset(a.StartAngle + a.SweepAngle))
}

// CubicElements approximates the arc with cubic Béziers, each spanning at
// most 90°. The first element starts at [Arc.StartPoint]; no MoveTo is
// emitted.
func (a Arc) CubicElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		segs := max(1, int(math.Ceil(math.Abs(a.SweepAngle)/(math.Pi/2)-1e-9)))
		step := a.SweepAngle / float64(segs)
		// Tangent length, relative to the radii, that makes a cubic match a
		// circular arc of the given step.
		k := math.Copysign(4.0/3.0*math.Tan(math.Abs(step)/4), step)

		at := func(th float64) Point { return a.Center.Translate(a.offset(th)) }
		arm := func(th float64) Vec2 { return a.offset(th + math.Pi/2).Mul(k) }
		th := a.StartAngle
		from := at(th)
		for i := 1; i <= segs; i++ {
			next := a.StartAngle + float64(i)*step
			to := at(next)
			el := CubicTo(from.Translate(arm(th)), to.Translate(arm(next).Negate()), to)
			if !yield(el) {
				return
			}
			from, th = to, next
		}
	}
}

// offset returns the vector from the center to the point at angle th on the
// unrotated ellipse, after rotating it by the arc's x rotation.
func (a Arc) offset(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return rotateVec(Vec2{X: a.Radii.X * cos, Y: a.Radii.Y * sin}, a.XRotation)
}

func rotateVec(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
