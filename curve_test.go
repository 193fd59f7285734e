package geom

import (
	"hash/maphash"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	testLine  = Linear(Pt(0, 0), Pt(3, 4))
	testQuad  = Quadratic(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	testCubic = Cubic(Pt(0, -10), Pt(10, 20), Pt(20, -20), Pt(30, 10))
)

func TestCurveValue(t *testing.T) {
	for _, c := range []Curve{testLine, testQuad, testCubic} {
		if got := c.Value(0); got != c.P0 {
			t.Errorf("%v: got %v at t=0, want %v", c, got, c.P0)
		}
		if got := c.Value(1); got != c.P1 {
			t.Errorf("%v: got %v at t=1, want %v", c, got, c.P1)
		}
	}
	diff(t, Pt(1.5, 2), testLine.Value(0.5))
	diff(t, Pt(1, 1), testQuad.Value(0.5))
	diff(t, Pt(15, 0), testCubic.Value(0.5))

	if got := (Curve{}).Value(0.5); got.IsValid() {
		t.Errorf("invalid curve evaluated to %v", got)
	}
}

func TestCurveDerivative(t *testing.T) {
	diff(t, Linear(Pt(3, 4), Pt(3, 4)), testLine.Derivative())
	diff(t, Linear(Pt(2, 4), Pt(2, -4)), testQuad.Derivative())
	diff(t,
		Quadratic(Pt(3, 6), Pt(6, 3), Pt(3, -9)),
		Cubic(Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0)).Derivative())

	if got := testQuad.Tangent(0.5); got != Vec(2, 0) {
		t.Errorf("got tangent %v, want %v", got, Vec(2, 0))
	}
	if got := testQuad.Normal(0.5); got != Vec(0, 2) {
		t.Errorf("got normal %v, want %v", got, Vec(0, 2))
	}
}

func TestCurveCurvature(t *testing.T) {
	if got := testLine.Curvature(0.5); got != 0 {
		t.Errorf("got curvature %v for a line, want 0", got)
	}
	// y = 2x - x², whose curvature at its apex is -2.
	if got := testQuad.Curvature(0.5); !near(got, -2, 1e-12) {
		t.Errorf("got curvature %v, want -2", got)
	}
	// The curve reverses direction at its middle, where the derivative
	// vanishes.
	cusp := Quadratic(Pt(0, 0), Pt(1, 0), Pt(0, 0))
	if got := cusp.Curvature(0.5); got != 0 {
		t.Errorf("got curvature %v where the derivative vanishes, want 0", got)
	}
}

func TestCurveExtrema(t *testing.T) {
	diff(t, Extrema{}, testLine.Extrema(), cmpopts.EquateEmpty())
	diff(t, Extrema{Y: []float64{0.5}}, testQuad.Extrema(), cmpopts.EquateEmpty())

	want := Extrema{Y: []float64{
		(140 - math.Sqrt(2800)) / 280,
		0.5,
		(140 + math.Sqrt(2800)) / 280,
	}}
	diff(t, want, testCubic.Extrema(), cmpopts.EquateEmpty(), approx(1e-9))

	// Extrema of each coordinate are sorted and within [0, 1].
	c := Cubic(Pt(0, 0), Pt(-5, 10), Pt(15, 10), Pt(10, 0))
	e := c.Extrema()
	for _, ts := range [][]float64{e.X, e.Y} {
		for i, v := range ts {
			if v < 0 || v > 1 {
				t.Errorf("extremum %v outside [0, 1]", v)
			}
			if i > 0 && ts[i-1] >= v {
				t.Errorf("extrema %v not strictly ascending", ts)
			}
		}
	}
}

func TestCurveInflections(t *testing.T) {
	if _, n := testQuad.Inflections(); n != 0 {
		t.Errorf("got %d inflections for a quadratic curve, want 0", n)
	}

	s := Cubic(Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0))
	ts, n := s.Inflections()
	if n != 1 || !near(ts[0], 0.5, 1e-12) {
		t.Errorf("got inflections %v, want [0.5]", ts[:n])
	}

	tests := []struct {
		c    Curve
		want int
	}{
		{Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(-1, 0.5)), 2},
		{Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(0.5, 2)), 1},
		{Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(0.5, 0.5)), 0},
		{Cubic(Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(0.5, 0.92)), 0},
	}
	for _, tt := range tests {
		ts, n := tt.c.Inflections()
		if n != tt.want {
			t.Errorf("%v: got %d inflections, want %d", tt.c, n, tt.want)
			continue
		}
		for _, v := range ts[:n] {
			before := tt.c.Curvature(v - 0.01)
			after := tt.c.Curvature(v + 0.01)
			if (before > 0) == (after > 0) {
				t.Errorf("%v: curvature doesn't change sign around %v", tt.c, v)
			}
		}
		if n == 2 && ts[0] > ts[1] {
			t.Errorf("%v: inflections %v not ascending", tt.c, ts)
		}
	}
}

func TestCurveBounds(t *testing.T) {
	diff(t, Rect{0, 0, 3, 4}, testLine.Bounds())
	diff(t, Rect{0, 0, 2, 1}, testQuad.Bounds())
	diff(t, Rect{0, 0, 2, 2}, testQuad.ApproximateBounds())

	for _, c := range []Curve{testLine, testQuad, testCubic} {
		exact := c.Bounds()
		if !c.ApproximateBounds().ContainsRect(exact) {
			t.Errorf("%v: approximate bounds %v don't enclose %v", c, c.ApproximateBounds(), exact)
		}
		for i := 0; i <= 100; i++ {
			pt := c.Value(float64(i) / 100)
			b := exact.Inflate(1e-9, 1e-9)
			if pt.X < b.X0 || pt.X > b.X1 || pt.Y < b.Y0 || pt.Y > b.Y1 {
				t.Errorf("%v: %v lies outside the bounds %v", c, pt, exact)
			}
		}
	}
}

func TestCurveLength(t *testing.T) {
	if got := testLine.Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
	straightQuad := Quadratic(Pt(0, 0), Pt(1, 0), Pt(2, 0))
	if got := straightQuad.Length(); !near(got, 2, 1e-12) {
		t.Errorf("got length %v, want 2", got)
	}
	straightCubic := Cubic(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0))
	if got := straightCubic.Length(); !near(got, 3, 1e-12) {
		t.Errorf("got length %v, want 3", got)
	}

	// The closed form agrees with a fine polyline.
	exact := testQuad.Length()
	if poly := testQuad.polylineLength(); !near(exact, poly, 1e-3) || poly > exact {
		t.Errorf("got exact length %v and polyline length %v", exact, poly)
	}
	if got := (Curve{}).Length(); got != 0 {
		t.Errorf("got length %v for invalid curve, want 0", got)
	}
}

func TestCurveParameterAtLength(t *testing.T) {
	if got := testLine.ParameterAtLength(2.5); got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
	for _, c := range []Curve{testLine, testQuad, testCubic} {
		l := c.Length()
		if got := c.ParameterAtLength(-1); got != 0 {
			t.Errorf("%v: got %v for negative length, want 0", c, got)
		}
		if got := c.ParameterAtLength(l * 2); got != 1 {
			t.Errorf("%v: got %v past the end, want 1", c, got)
		}
		if got := c.ParameterAtLength(l); !near(got, 1, 1e-9) {
			t.Errorf("%v: got %v at full length, want 1", c, got)
		}

		prev := 0.0
		for i := 1; i < 10; i++ {
			d := l * float64(i) / 10
			tt := c.ParameterAtLength(d)
			if tt <= prev {
				t.Errorf("%v: parameters not increasing, %v after %v", c, tt, prev)
			}
			prev = tt
			// Measure the length up to tt independently.
			if got := c.Subsegment(0, tt).Length(); !near(got, d, l*0.01) {
				t.Errorf("%v: length up to %v is %v, want %v", c, tt, got, d)
			}
		}
	}
}

func TestCurveNearest(t *testing.T) {
	l := Linear(Pt(0, 0), Pt(10, 0))
	tt, d := l.Nearest(Pt(3, 4))
	if tt != 0.3 || d != 4 {
		t.Errorf("got (%v, %v), want (0.3, 4)", tt, d)
	}
	tt, d = l.Nearest(Pt(-5, 0))
	if tt != 0 || d != 5 {
		t.Errorf("got (%v, %v), want (0, 5)", tt, d)
	}

	tt, d = testQuad.Nearest(Pt(1, 3))
	if tt != 0.5 || d != 2 {
		t.Errorf("got (%v, %v), want (0.5, 2)", tt, d)
	}
}

func TestCurveSplit(t *testing.T) {
	for _, c := range []Curve{testLine, testQuad, testCubic} {
		for _, tt := range []float64{0, 0.1, 1.0 / 3.0, 0.5, 0.9, 1} {
			a, b := c.Split(tt)
			m := c.Value(tt)
			if a.P1 != m || b.P0 != m {
				t.Errorf("%v split at %v: got halves meeting at %v and %v, want %v", c, tt, a.P1, b.P0, m)
			}
			if a.P0 != c.P0 || b.P1 != c.P1 {
				t.Errorf("%v split at %v: halves don't span the curve", c, tt)
			}
			if a.Kind != c.Kind || b.Kind != c.Kind {
				t.Errorf("%v split at %v: halves changed kind", c, tt)
			}
		}

		a, b := c.Split(0.5)
		if got, want := a.Value(0.5), c.Value(0.25); !nearPoint(got, want, 1e-9) {
			t.Errorf("%v: first half evaluates to %v, want %v", c, got, want)
		}
		if got, want := b.Value(0.5), c.Value(0.75); !nearPoint(got, want, 1e-9) {
			t.Errorf("%v: second half evaluates to %v, want %v", c, got, want)
		}
	}
}

func TestCurveSubsegment(t *testing.T) {
	for _, c := range []Curve{testLine, testQuad, testCubic} {
		s := c.Subsegment(0.25, 0.75)
		for i := 0; i <= 4; i++ {
			u := float64(i) / 4
			want := c.Value(0.25 + u*0.5)
			if got := s.Value(u); !nearPoint(got, want, 1e-9) {
				t.Errorf("%v: subsegment at %v is %v, want %v", c, u, got, want)
			}
		}

		r := c.Subsegment(0.75, 0.25)
		if !nearPoint(r.P0, c.Value(0.75), 1e-9) || !nearPoint(r.P1, c.Value(0.25), 1e-9) {
			t.Errorf("%v: reversed subsegment runs from %v to %v", c, r.P0, r.P1)
		}

		end := c.Subsegment(1, 1)
		if end.P0 != c.P1 || end.P1 != c.P1 {
			t.Errorf("%v: got %v for the subsegment at the end", c, end)
		}
	}
}

func TestCurveReverse(t *testing.T) {
	for _, c := range []Curve{testLine, testQuad, testCubic} {
		r := c.Reverse()
		for _, tt := range []float64{0, 0.3, 0.5, 1} {
			if got, want := r.Value(tt), c.Value(1-tt); !nearPoint(got, want, 1e-9) {
				t.Errorf("%v reversed: got %v at %v, want %v", c, got, tt, want)
			}
		}
		diff(t, c, r.Reverse())
	}
}

func TestCurveAxisAligned(t *testing.T) {
	for _, c := range []Curve{testLine, testQuad, testCubic} {
		a := c.AxisAligned()
		chord := c.P0.Distance(c.P1)
		if !nearPoint(a.P0, Point{}, 1e-12) {
			t.Errorf("%v: aligned curve starts at %v", c, a.P0)
		}
		if !nearPoint(a.P1, Pt(chord, 0), 1e-9) {
			t.Errorf("%v: aligned curve ends at %v, want %v", c, a.P1, Pt(chord, 0))
		}
		if !near(a.Length(), c.Length(), 1e-9) {
			t.Errorf("%v: alignment changed the length from %v to %v", c, c.Length(), a.Length())
		}

		ay := c.AxisAlignedY()
		if !nearPoint(ay.P1, Pt(0, chord), 1e-9) {
			t.Errorf("%v: y-aligned curve ends at %v, want %v", c, ay.P1, Pt(0, chord))
		}
	}
}

func TestCurveEqual(t *testing.T) {
	seed := maphash.MakeSeed()
	a := Quadratic(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	b := a
	// Unused control points don't matter.
	b.C1 = Pt(100, 100)
	if !a.Equal(b) {
		t.Errorf("%v and %v aren't equal", a, b)
	}
	if a.Hash(seed) != b.Hash(seed) {
		t.Errorf("equal curves hash differently")
	}

	c := Cubic(Pt(0, 0), Pt(1, 1), Pt(1, 1), Pt(2, 0))
	if a.Equal(c) {
		t.Errorf("curves of different kinds are equal")
	}
	if a.Equal(Quadratic(Pt(0, 0), Pt(1, 1), Pt(2, 1))) {
		t.Errorf("curves with different points are equal")
	}
}

func TestCurveString(t *testing.T) {
	tests := []struct {
		c    Curve
		want string
	}{
		{Linear(Pt(0, 0), Pt(1, 2)), "Linear((0, 0), (1, 2))"},
		{testQuad, "Quadratic((0, 0), (1, 2), (2, 0))"},
		{Curve{}, "InvalidCurve"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestCurveIsValid(t *testing.T) {
	if (Curve{}).IsValid() {
		t.Error("zero curve is valid")
	}
	if Linear(Pt(0, 0), InvalidPoint).IsValid() {
		t.Error("curve with NaN point is valid")
	}
	// NaN in an unused control point is fine.
	l := Linear(Pt(0, 0), Pt(1, 1))
	l.C0 = InvalidPoint
	if !l.IsValid() {
		t.Error("linear curve with NaN control point is invalid")
	}
	for _, c := range []Curve{testLine, testQuad, testCubic} {
		if got, want := c.Degree(), len(c.Points())-1; got != want {
			t.Errorf("%v: got degree %d, want %d", c, got, want)
		}
	}
}
