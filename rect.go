package geom

import (
	"fmt"
	"hash/maphash"
	"math"
)

// Rect is an axis-aligned rectangle with corners (X0, Y0) and (X1, Y1).
//
// A standardized rect has X0 ≤ X1 and Y0 ≤ Y1. Rects built by this package
// are standardized, except by [NewRectFromOrigin]; the set operations assume
// standardized operands.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the standardized rect spanned by p0 and p1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{X0: p0.X, Y0: p0.Y, X1: p1.X, Y1: p1.Y}.Standardize()
}

// NewRectFromOrigin returns the rect at origin with the given size, which may
// be negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	far := origin.Translate(size.Vec2())
	return Rect{X0: origin.X, Y0: origin.Y, X1: far.X, Y1: far.Y}
}

// Standardize orders the corners so that the size is non-negative.
func (r Rect) Standardize() Rect {
	r.X0, r.X1 = min(r.X0, r.X1), max(r.X0, r.X1)
	r.Y0, r.Y1 = min(r.Y0, r.Y1), max(r.Y0, r.Y1)
	return r
}

func (r Rect) Origin() Point   { return Point{X: r.X0, Y: r.Y0} }
func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Size() Size      { return Size{Width: r.Width(), Height: r.Height()} }
func (r Rect) Area() float64   { return r.Size().Area() }
func (r Rect) IsEmpty() bool   { return r.Size().IsEmpty() }
func (r Rect) Center() Point   { return r.Origin().Midpoint(Point{X: r.X1, Y: r.Y1}) }

// Contains reports whether pt lies in the half-open rect [X0, X1) × [Y0, Y1).
func (r Rect) Contains(pt Point) bool {
	return r.X0 <= pt.X && pt.X < r.X1 && r.Y0 <= pt.Y && pt.Y < r.Y1
}

// ContainsRect reports whether o lies within r. Shared edges count.
func (r Rect) ContainsRect(o Rect) bool {
	return r.X0 <= o.X0 && o.X1 <= r.X1 && r.Y0 <= o.Y0 && o.Y1 <= r.Y1
}

// Overlaps reports whether r and o have at least one point in common,
// treating both as closed. Rects that merely touch overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// Union returns the bounding box of r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{X0: min(r.X0, o.X0), Y0: min(r.Y0, o.Y0), X1: max(r.X1, o.X1), Y1: max(r.Y1, o.Y1)}
}

// UnionPoint returns the bounding box of r and pt. Starting from the empty
// rect at the first point, repeated calls accumulate a bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return r.Union(Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y})
}

// Intersect returns the area shared by r and o. For disjoint rects, the
// result has zero width or height and lies on the far edge of the gap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{X0: max(r.X0, o.X0), Y0: max(r.Y0, o.Y0), X1: min(r.X1, o.X1), Y1: min(r.Y1, o.Y1)}
	out.X1 = max(out.X0, out.X1)
	out.Y1 = max(out.Y0, out.Y1)
	return out
}

// Inflate moves the left and right edges outwards by dx and the top and
// bottom edges by dy. Negative values shrink the rect.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X0: r.X0 - dx, Y0: r.Y0 - dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{X0: r.X0 + v.X, Y0: r.Y0 + v.Y, X1: r.X1 + v.X, Y1: r.Y1 + v.Y}
}

// IsNaN reports whether any coordinate is NaN.
func (r Rect) IsNaN() bool {
	for _, f := range [...]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

func (r Rect) Equal(o Rect) bool { return r == o }

// Hash returns a hash consistent with [Rect.Equal].
func (r Rect) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, f := range [...]float64{r.X0, r.Y0, r.X1, r.Y1} {
		writeFloat(&h, f)
	}
	return h.Sum64()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s, %s}", r.Origin(), r.Size())
}
