package geom

// DefaultFlatness is the flatness threshold used when none is specified.
const DefaultFlatness = 1.001

// Subdivision stops at this depth even if a piece isn't flat yet, which
// bounds a single curve's polyline to 2¹⁶ segments.
const maxFlattenDepth = 16

// Flatten approximates c by a polyline, returning its points from c.P0 to
// c.P1 inclusive.
//
// The curve is recursively split in half until each piece is flat, that is
// until the length of its control polygon divided by the length of its chord
// drops below flatness. Values of flatness not greater than 1 select
// [DefaultFlatness]. Linear curves, and curves whose control points lie on the
// chord between their end points, flatten to exactly two points. A collinear
// curve whose control points lie past its end points doubles back on itself.
// It is subdivided like any other curve, so that the polyline follows the
// overshoot.
func Flatten(c Curve, flatness float64) []Point {
	if !c.IsValid() {
		return nil
	}
	if flatness <= 1 {
		flatness = DefaultFlatness
	}
	f := flattener{flatness: flatness}
	out := f.flatten([]Point{c.P0}, c, 0)
	if f.truncated {
		Logger().Debug("flattening reached the subdivision limit", "curve", c, "flatness", flatness)
	}
	return out
}

type flattener struct {
	flatness  float64
	truncated bool
}

func (f *flattener) flatten(dst []Point, c Curve, depth int) []Point {
	if isFlat(c, f.flatness) {
		return append(dst, c.P1)
	}
	if depth >= maxFlattenDepth {
		f.truncated = true
		return append(dst, c.P1)
	}
	a, b := c.Split(0.5)
	dst = f.flatten(dst, a, depth+1)
	return f.flatten(dst, b, depth+1)
}

func isFlat(c Curve, flatness float64) bool {
	if c.Kind == LinearKind {
		return true
	}
	pts := c.Points()
	var poly float64
	for i := 1; i < len(pts); i++ {
		poly += pts[i-1].Distance(pts[i])
	}
	if poly == 0 {
		return true
	}
	if onChord(c.P0, c.P1, pts[1:len(pts)-1]) {
		return true
	}
	chord := c.P0.Distance(c.P1)
	if chord == 0 {
		return false
	}
	return poly/chord < flatness
}

// onChord reports whether all of pts lie exactly on the segment from p0 to
// p1.
func onChord(p0, p1 Point, pts []Point) bool {
	d := p1.Sub(p0)
	l2 := d.Hypot2()
	if l2 == 0 {
		return false
	}
	for _, pt := range pts {
		v := pt.Sub(p0)
		if d.Cross(v) != 0 {
			return false
		}
		if p := d.Dot(v); p < 0 || p > l2 {
			return false
		}
	}
	return true
}
