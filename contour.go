package geom

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// ContourCurve is a curve whose start point is implied by its position in a
// [Contour]: it starts where the previous curve ended, or at the contour's
// start point if it is the first curve.
//
// Its methods take the implied start point as their first argument.
type ContourCurve struct {
	Kind CurveKind
	C0   Point
	C1   Point
	P    Point
}

func ContourLine(p Point) ContourCurve {
	return ContourCurve{Kind: LinearKind, P: p}
}

func ContourQuad(c, p Point) ContourCurve {
	return ContourCurve{Kind: QuadraticKind, C0: c, P: p}
}

func ContourCubic(c0, c1, p Point) ContourCurve {
	return ContourCurve{Kind: CubicKind, C0: c0, C1: c1, P: p}
}

// Curve returns the absolute curve starting at p0.
func (cc ContourCurve) Curve(p0 Point) Curve {
	switch cc.Kind {
	case LinearKind:
		return Linear(p0, cc.P)
	case QuadraticKind:
		return Quadratic(p0, cc.C0, cc.P)
	case CubicKind:
		return Cubic(p0, cc.C0, cc.C1, cc.P)
	default:
		return Curve{}
	}
}

func (cc ContourCurve) Value(p0 Point, t float64) Point { return cc.Curve(p0).Value(t) }
func (cc ContourCurve) Length(p0 Point) float64         { return cc.Curve(p0).Length() }
func (cc ContourCurve) Bounds(p0 Point) Rect            { return cc.Curve(p0).Bounds() }
func (cc ContourCurve) ApproximateBounds(p0 Point) Rect { return cc.Curve(p0).ApproximateBounds() }
func (cc ContourCurve) Curvature(p0 Point, t float64) float64 {
	return cc.Curve(p0).Curvature(t)
}

func (cc ContourCurve) Nearest(p0, pt Point) (t, dist float64) {
	return cc.Curve(p0).Nearest(pt)
}

// Split splits the curve at t. The second half starts at the split point,
// which is the end point of the first half.
func (cc ContourCurve) Split(p0 Point, t float64) (ContourCurve, ContourCurve) {
	a, b := cc.Curve(p0).Split(t)
	return contourCurveOf(a), contourCurveOf(b)
}

func contourCurveOf(c Curve) ContourCurve {
	switch c.Kind {
	case LinearKind:
		return ContourLine(c.P1)
	case QuadraticKind:
		return ContourQuad(c.C0, c.P1)
	case CubicKind:
		return ContourCubic(c.C0, c.C1, c.P1)
	default:
		return ContourCurve{}
	}
}

// Contour is one subpath: a chain of curves that starts at Start, with each
// curve starting where the previous one ended. A closed contour implicitly
// returns to Start.
type Contour struct {
	Start  Point
	Closed bool
	Curves []ContourCurve
}

// Count returns the number of curves in the contour.
func (c *Contour) Count() int {
	return len(c.Curves)
}

func (c *Contour) IsClosed() bool {
	return c.Closed
}

func (c *Contour) StartPoint() Point {
	return c.Start
}

// EndPoint returns the point the contour ends at. That is the start point
// for closed and empty contours, and the last curve's end point otherwise.
func (c *Contour) EndPoint() Point {
	if c.Closed || len(c.Curves) == 0 {
		return c.Start
	}
	return c.Curves[len(c.Curves)-1].P
}

// startOf returns the implied start point of curve i.
func (c *Contour) startOf(i int) Point {
	if i == 0 {
		return c.Start
	}
	return c.Curves[i-1].P
}

// Curve returns curve i in absolute coordinates. It returns false if i is out
// of range.
func (c *Contour) Curve(i int) (Curve, bool) {
	if i < 0 || i >= len(c.Curves) {
		return Curve{}, false
	}
	return c.Curves[i].Curve(c.startOf(i)), true
}

// Value evaluates the contour at t ∈ [0, 1]. Each curve covers an equal
// share of the parameter range regardless of its length. Empty contours
// evaluate to their start point.
func (c *Contour) Value(t float64) Point {
	n := len(c.Curves)
	if n == 0 {
		return c.Start
	}
	i, local := splitParameter(t, n)
	cv, _ := c.Curve(i)
	return cv.Value(local)
}

// splitParameter maps t ∈ [0, 1] onto one of n equal parts, returning the
// part's index and the parameter within it.
func splitParameter(t float64, n int) (int, float64) {
	t = min(max(t, 0), 1)
	f := t * float64(n)
	i := int(f)
	if i >= n {
		return n - 1, 1
	}
	return i, f - float64(i)
}

// Length returns the total length of the contour's curves plus, for closed
// contours, the closing line.
func (c *Contour) Length() float64 {
	var l float64
	for i, cc := range c.Curves {
		l += cc.Length(c.startOf(i))
	}
	if c.Closed && len(c.Curves) > 0 {
		l += c.Curves[len(c.Curves)-1].P.Distance(c.Start)
	}
	return l
}

// Bounds returns the exact bounding box of the contour.
func (c *Contour) Bounds() Rect {
	r := NewRectFromPoints(c.Start, c.Start)
	for i, cc := range c.Curves {
		r = r.Union(cc.Bounds(c.startOf(i)))
	}
	return r
}

func (c *Contour) Equal(o *Contour) bool {
	if c.Closed != o.Closed || !c.Start.Equal(o.Start) || len(c.Curves) != len(o.Curves) {
		return false
	}
	for i := range c.Curves {
		a, _ := c.Curve(i)
		b, _ := o.Curve(i)
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

func (c *Contour) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	c.writeHash(&h)
	return h.Sum64()
}

func (c *Contour) writeHash(h *maphash.Hash) {
	c.Start.writeHash(h)
	if c.Closed {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
	for i := range c.Curves {
		cv, _ := c.Curve(i)
		cv.writeHash(h)
	}
}

func (c *Contour) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Contour(start=%s, closed=%t", c.Start, c.Closed)
	for i := range c.Curves {
		cv, _ := c.Curve(i)
		fmt.Fprintf(&sb, ", %s", cv)
	}
	sb.WriteString(")")
	return sb.String()
}
