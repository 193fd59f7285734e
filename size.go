package geom

import "fmt"

// Size is the extent of a [Rect]. Either dimension is negative for a rect
// that hasn't been standardized.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

func (sz Size) String() string { return fmt.Sprintf("%g×%g", sz.Width, sz.Height) }

// Vec2 returns the size as the vector from a rect's origin to its far corner.
func (sz Size) Vec2() Vec2 { return Vec2{X: sz.Width, Y: sz.Height} }

// Area is negative when exactly one dimension is.
func (sz Size) Area() float64 { return sz.Width * sz.Height }

// IsEmpty reports whether the size covers no area.
func (sz Size) IsEmpty() bool { return sz.Area() == 0 }
