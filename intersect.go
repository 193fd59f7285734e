package geom

import (
	"cmp"
	"math"
	"slices"
)

// IntersectionTolerance is the parameter span below which the subdivision
// search for intersections between two non-linear curves stops splitting.
const IntersectionTolerance = 0.001

// crossingSpan bounds the parameter extent, on either curve, of the
// neighbouring subdivision leaves that are grouped into a single crossing.
// Curves that overlap along a stretch produce one crossing per span.
const crossingSpan = 8 * IntersectionTolerance

// rootEpsilon widens [0, 1] when accepting polynomial roots, absorbing the
// rounding error of roots that lie exactly on a curve's end.
const rootEpsilon = 1e-9

// CurveIntersection is a point shared by two curves.
type CurveIntersection struct {
	// T is the parameter on the receiver and U the parameter on the argument
	// of [Curve.Intersect].
	T, U  float64
	Point Point
}

// maxIntersections returns the number of hits after which the subdivision
// search between curves of the given kinds stops.
func maxIntersections(a, b CurveKind) int {
	switch {
	case a == QuadraticKind && b == QuadraticKind:
		return 2
	case a == CubicKind && b == CubicKind:
		return 9
	default:
		return 6
	}
}

// Intersect returns the points at which c and o cross.
//
// The method depends on the curves' degrees. Two lines are solved exactly. A
// line and a curve are solved by aligning the line with the x axis and
// finding the roots of the other curve's y coordinate. Two curves are
// recursively subdivided, discarding pairs of halves whose control polygons'
// bounding boxes don't overlap, until both halves are shorter than
// [IntersectionTolerance] in parameter space. Neighbouring halves around one
// crossing are reported once, and hits closer than [IntersectionTolerance] on
// both curves are merged. The search stops after 2 hits
// between two quadratics, 6 between a quadratic and a cubic, and 9 between
// two cubics.
//
// Collinear overlapping lines have no single crossing and report none.
func (c Curve) Intersect(o Curve) []CurveIntersection {
	if !c.IsValid() || !o.IsValid() {
		return nil
	}
	switch {
	case c.Kind == LinearKind && o.Kind == LinearKind:
		return intersectLines(c, o)
	case c.Kind == LinearKind:
		return intersectLineCurve(c, o, false)
	case o.Kind == LinearKind:
		return intersectLineCurve(o, c, true)
	default:
		return intersectCurves(c, o)
	}
}

func intersectLines(a, b Curve) []CurveIntersection {
	r := a.P1.Sub(a.P0)
	s := b.P1.Sub(b.P0)
	det := r.Cross(s)
	if det == 0 {
		// Parallel or degenerate.
		return nil
	}
	w := b.P0.Sub(a.P0)
	t := w.Cross(s) / det
	u := w.Cross(r) / det
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return nil
	}
	return []CurveIntersection{{T: t, U: u, Point: a.Value(t)}}
}

// intersectLineCurve intersects the line l with the quadratic or cubic curve
// c. If swapped is true, c is the receiver of the original call and the
// parameters are reported in that order.
func intersectLineCurve(l, c Curve, swapped bool) []CurveIntersection {
	length := l.P0.Distance(l.P1)
	if length == 0 {
		return nil
	}
	aligned := c.Transform(AlignX(l.P0, l.P1))

	var buf [3]float64
	var roots []float64
	switch aligned.Kind {
	case QuadraticKind:
		y0, y1, y2 := aligned.P0.Y, aligned.C0.Y, aligned.P1.Y
		r, n := SolveQuadratic(y0, 2*(y1-y0), y0-2*y1+y2)
		roots = append(buf[:0], r[:n]...)
	case CubicKind:
		y0, y1, y2, y3 := aligned.P0.Y, aligned.C0.Y, aligned.C1.Y, aligned.P1.Y
		r, n := SolveCubic(
			y0,
			3*(y1-y0),
			3*(y0-2*y1+y2),
			-y0+3*y1-3*y2+y3,
		)
		roots = append(buf[:0], r[:n]...)
	}

	slices.Sort(roots)
	var out []CurveIntersection
	for _, t := range unitRoots(roots, rootEpsilon) {
		u := aligned.Value(t).X / length
		if u < -rootEpsilon || u > 1+rootEpsilon {
			continue
		}
		u = min(max(u, 0), 1)
		hit := CurveIntersection{T: u, U: t, Point: c.Value(t)}
		if swapped {
			hit.T, hit.U = hit.U, hit.T
		}
		out = append(out, hit)
	}
	return out
}

type intersectionWork struct {
	a, b   Curve
	t0, t1 float64
	u0, u1 float64
}

// crossing is a group of neighbouring leaves of the subdivision search that
// belong to the same intersection.
type crossing struct {
	// Parameter extent of the grouped leaves.
	t0, t1 float64
	u0, u1 float64
	// Midpoint parameters of the leaf whose curve pieces lie closest
	// together, and the distance between them.
	t, u float64
	dist float64
}

// canMerge reports whether c and o lie at most one leaf apart on both
// curves and would together stay within crossingSpan.
func (c crossing) canMerge(o crossing) bool {
	const gap = IntersectionTolerance
	return o.t0 <= c.t1+gap && c.t0 <= o.t1+gap &&
		o.u0 <= c.u1+gap && c.u0 <= o.u1+gap &&
		max(c.t1, o.t1)-min(c.t0, o.t0) <= crossingSpan &&
		max(c.u1, o.u1)-min(c.u0, o.u0) <= crossingSpan
}

func (c crossing) merge(o crossing) crossing {
	out := crossing{
		t0: min(c.t0, o.t0), t1: max(c.t1, o.t1),
		u0: min(c.u0, o.u0), u1: max(c.u1, o.u1),
		t: c.t, u: c.u, dist: c.dist,
	}
	if o.dist < c.dist {
		out.t, out.u, out.dist = o.t, o.u, o.dist
	}
	return out
}

// addCrossing adds x to cs, merging it with every crossing it joins.
func addCrossing(cs []crossing, x crossing) []crossing {
	for {
		i := slices.IndexFunc(cs, x.canMerge)
		if i < 0 {
			return append(cs, x)
		}
		x = cs[i].merge(x)
		cs = slices.Delete(cs, i, i+1)
	}
}

// intersectCurves finds intersections between two non-linear curves by
// bounding box subdivision. It uses an explicit stack so that the depth of
// the search doesn't depend on the goroutine stack.
//
// Several neighbouring leaves overlap around a single crossing. They are
// grouped, and each group is reported once, at its closest leaf. Groups are
// then de-duplicated at [IntersectionTolerance].
func intersectCurves(a, b Curve) []CurveIntersection {
	limit := maxIntersections(a.Kind, b.Kind)
	var cs []crossing
	stack := []intersectionWork{{a: a, b: b, t0: 0, t1: 1, u0: 0, u1: 1}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !w.a.ApproximateBounds().Overlaps(w.b.ApproximateBounds()) {
			continue
		}
		if w.t1-w.t0 < IntersectionTolerance && w.u1-w.u0 < IntersectionTolerance {
			t := 0.5 * (w.t0 + w.t1)
			u := 0.5 * (w.u0 + w.u1)
			cs = addCrossing(cs, crossing{
				t0: w.t0, t1: w.t1, u0: w.u0, u1: w.u1,
				t: t, u: u, dist: a.Value(t).Distance(b.Value(u)),
			})
			if len(cs) > limit {
				// The newest crossing is the one past the limit.
				cs = cs[:limit]
				Logger().Debug("intersection search stopped at the result limit",
					"a", a.Kind, "b", b.Kind, "limit", limit)
				break
			}
			continue
		}

		a0, a1 := w.a.Split(0.5)
		b0, b1 := w.b.Split(0.5)
		tm := 0.5 * (w.t0 + w.t1)
		um := 0.5 * (w.u0 + w.u1)
		// Pushed in reverse so that pairs near the start of a are visited
		// first.
		stack = append(stack,
			intersectionWork{a: a1, b: b1, t0: tm, t1: w.t1, u0: um, u1: w.u1},
			intersectionWork{a: a1, b: b0, t0: tm, t1: w.t1, u0: w.u0, u1: um},
			intersectionWork{a: a0, b: b1, t0: w.t0, t1: tm, u0: um, u1: w.u1},
			intersectionWork{a: a0, b: b0, t0: w.t0, t1: tm, u0: w.u0, u1: um},
		)
	}

	slices.SortFunc(cs, func(x, y crossing) int { return cmp.Compare(x.t, y.t) })
	var out []CurveIntersection
	for _, c := range cs {
		if hasIntersection(out, c.t, c.u) {
			continue
		}
		out = append(out, CurveIntersection{T: c.t, U: c.u, Point: a.Value(c.t)})
	}
	return out
}

func hasIntersection(hits []CurveIntersection, t, u float64) bool {
	for _, h := range hits {
		if math.Abs(h.T-t) < IntersectionTolerance && math.Abs(h.U-u) < IntersectionTolerance {
			return true
		}
	}
	return false
}
