package geom

import (
	"fmt"
	"hash/maphash"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// InvalidPoint marks the absence of a point. Both of its coordinates are NaN,
// so it never compares equal to anything, including itself; use
// [Point.IsValid] to test for it.
var InvalidPoint = Point{X: math.NaN(), Y: math.NaN()}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsValid reports whether neither coordinate is NaN.
func (pt Point) IsValid() bool {
	return !pt.IsNaN()
}

func (pt Point) String() string {
	if !pt.IsValid() {
		return "(invalid)"
	}
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Equal reports whether the two points have identical coordinates. Unlike
// ==, two invalid points are considered equal.
func (pt Point) Equal(o Point) bool {
	if !pt.IsValid() || !o.IsValid() {
		return !pt.IsValid() && !o.IsValid()
	}
	return pt == o
}

// Hash returns a hash of the point that is consistent with [Point.Equal].
func (pt Point) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	pt.writeHash(&h)
	return h.Sum64()
}

func (pt Point) writeHash(h *maphash.Hash) {
	if !pt.IsValid() {
		h.WriteByte(0)
		return
	}
	h.WriteByte(1)
	writeFloat(h, pt.X)
	writeFloat(h, pt.Y)
}

func writeFloat(h *maphash.Hash, f float64) {
	if f == 0 {
		// -0 and +0 compare equal.
		f = 0
	}
	b := math.Float64bits(f)
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(b >> (8 * i))
	}
	h.Write(buf[:])
}

// Translate returns pt moved by v.
func (pt Point) Translate(v Vec2) Point { return Point{X: pt.X + v.X, Y: pt.Y + v.Y} }

// Sub returns the vector pointing from o to pt.
func (pt Point) Sub(o Point) Vec2 { return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y} }

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Lerp returns the point at t along the line from pt to o. It returns pt
// exactly at t = 0 and o exactly at t = 1.
func (pt Point) Lerp(o Point, t float64) Point {
	if t == 1 {
		return o
	}
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Midpoint(o Point) Point { return pt.Lerp(o, 0.5) }

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 { return o.Sub(pt).Hypot() }

func (pt Point) DistanceSquared(o Point) float64 { return o.Sub(pt).Hypot2() }

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool { return math.IsNaN(pt.X) || math.IsNaN(pt.Y) }
