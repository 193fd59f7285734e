package geom

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, as opposed to a [Point], which is a
// position.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }
func (v Vec2) Negate() Vec2       { return Vec2{X: -v.X, Y: -v.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the cross product of v and o. It is
// positive when o points counter-clockwise of v in a y-up space, and zero
// when the vectors are parallel.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns the direction of v in radians, in the range [-π, π].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Perp returns v turned a quarter turn towards the positive y axis.
func (v Vec2) Perp() Vec2 { return Vec2{X: -v.Y, Y: v.X} }
