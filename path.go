package geom

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move to the point without drawing, starting a new subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current point to P0.
	LineToKind
	// Draw a quadratic Bézier from the current point to P1, with control
	// point P0.
	QuadToKind
	// Draw a cubic Bézier from the current point to P2, with control points
	// P0 and P1.
	CubicToKind
	// Draw a line back to the start of the subpath and close it.
	ClosePathKind
)

// PathElement is a single drawing command of a [Path].
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(ctrl, end Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: ctrl, P1: end}
}

func CubicTo(c0, c1, end Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: c0, P1: c1, P2: end}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

// points returns the element's meaningful points.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case QuadToKind:
		return []Point{el.P0, el.P1}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// IsValid reports whether the element has a known kind and no NaN points.
func (el PathElement) IsValid() bool {
	if el.Kind < MoveToKind || el.Kind > ClosePathKind {
		return false
	}
	for _, pt := range el.points() {
		if !pt.IsValid() {
			return false
		}
	}
	return true
}

func (el PathElement) Equal(o PathElement) bool {
	if el.Kind != o.Kind {
		return false
	}
	a, b := el.points(), o.points()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	default:
		return el
	}
}

// contourCurve converts a drawing element to the curve it adds to its
// contour.
func (el PathElement) contourCurve() (ContourCurve, bool) {
	switch el.Kind {
	case LineToKind:
		return ContourLine(el.P0), true
	case QuadToKind:
		return ContourQuad(el.P0, el.P1), true
	case CubicToKind:
		return ContourCubic(el.P0, el.P1, el.P2), true
	default:
		return ContourCurve{}, false
	}
}

// PathOptions configures a [Path].
type PathOptions struct {
	// Flatness is the threshold at which curves are considered flat enough
	// to be approximated by a line when computing polylines. See [Flatten].
	// Values not greater than 1 select [DefaultFlatness].
	Flatness float64
}

// elementState records how appending an element changed the contours, so
// that removing it can undo exactly that.
type elementState struct {
	// Index of the contour the element belongs to, or -1.
	contour int
	// The element opened a contour, explicitly or implicitly.
	opened bool
	// The element closed its contour.
	closed bool
}

// Path is a sequence of drawing commands that make up zero or more
// subpaths, or contours.
//
// Besides its elements, a path maintains a flattened polyline per element,
// a [Contour] per subpath, and the bounding box of all polylines. All of
// these are updated together by [Path.AppendElement] and
// [Path.RemoveElement].
//
// The zero value is an empty path using [DefaultFlatness]. A Path must not be
// mutated concurrently with any other use.
type Path struct {
	flatness  float64
	elements  []PathElement
	states    []elementState
	polylines [][]Point
	contours  []Contour
	bounds    Rect
	hasBounds bool
}

func NewPath(opts PathOptions) *Path {
	return &Path{flatness: opts.Flatness}
}

// Flatness returns the flatness threshold used for computing polylines.
func (p *Path) Flatness() float64 {
	if p.flatness <= 1 {
		return DefaultFlatness
	}
	return p.flatness
}

// CurrentPoint returns the point the next drawing element starts at. That is
// the end of the last element, the start of the subpath after a close, and
// the origin for an empty path.
func (p *Path) CurrentPoint() Point {
	if len(p.contours) == 0 {
		return Point{}
	}
	c := &p.contours[len(p.contours)-1]
	return c.EndPoint()
}

// openContour returns the index of the last contour if it can still be
// extended.
func (p *Path) openContour() (int, bool) {
	if len(p.contours) == 0 {
		return -1, false
	}
	i := len(p.contours) - 1
	if p.contours[i].Closed {
		return -1, false
	}
	return i, true
}

// AppendElement adds el to the end of the path and updates the polylines,
// contours, and bounds accordingly. It reports false and leaves the path
// unchanged if the element is invalid.
//
// A MoveTo always starts a new contour. Line, quadratic, and cubic elements
// extend the last contour, first opening a new one at the current point if
// there is none or it has been closed. A ClosePath closes the last contour;
// if there is no open contour, it has no effect on the contours and its
// polyline is empty.
func (p *Path) AppendElement(el PathElement) bool {
	if !el.IsValid() {
		return false
	}
	cur := p.CurrentPoint()
	st := elementState{contour: -1}
	var poly []Point

	switch el.Kind {
	case MoveToKind:
		p.contours = append(p.contours, Contour{Start: el.P0})
		st.contour = len(p.contours) - 1
		st.opened = true

	case LineToKind, QuadToKind, CubicToKind:
		i, ok := p.openContour()
		if !ok {
			p.contours = append(p.contours, Contour{Start: cur})
			i = len(p.contours) - 1
			st.opened = true
		}
		st.contour = i
		cc, _ := el.contourCurve()
		p.contours[i].Curves = append(p.contours[i].Curves, cc)
		if el.Kind == LineToKind {
			poly = []Point{cur, el.P0}
		} else {
			poly = Flatten(cc.Curve(cur), p.Flatness())
		}

	case ClosePathKind:
		if i, ok := p.openContour(); ok {
			c := &p.contours[i]
			poly = []Point{cur, c.Start}
			c.Closed = true
			st.contour = i
			st.closed = true
		}
	}

	p.elements = append(p.elements, el)
	p.states = append(p.states, st)
	p.polylines = append(p.polylines, poly)
	for _, pt := range poly {
		p.includeBounds(pt)
	}
	return true
}

func (p *Path) includeBounds(pt Point) {
	if !p.hasBounds {
		p.bounds = NewRectFromPoints(pt, pt)
		p.hasBounds = true
		return
	}
	p.bounds = p.bounds.UnionPoint(pt)
}

// RemoveElement removes the last element, undoing its effect on the
// polylines and contours, and recomputes the bounds from the remaining
// polylines. It returns the removed element, or false if the path is empty.
func (p *Path) RemoveElement() (PathElement, bool) {
	n := len(p.elements)
	if n == 0 {
		return PathElement{}, false
	}
	el := p.elements[n-1]
	st := p.states[n-1]
	p.elements = p.elements[:n-1]
	p.states = p.states[:n-1]
	p.polylines[n-1] = nil
	p.polylines = p.polylines[:n-1]

	switch el.Kind {
	case MoveToKind:
		p.contours = p.contours[:len(p.contours)-1]
	case LineToKind, QuadToKind, CubicToKind:
		c := &p.contours[st.contour]
		c.Curves = c.Curves[:len(c.Curves)-1]
		if st.opened {
			p.contours = p.contours[:len(p.contours)-1]
		}
	case ClosePathKind:
		if st.closed {
			p.contours[st.contour].Closed = false
		}
	}

	p.hasBounds = false
	p.bounds = Rect{}
	for _, poly := range p.polylines {
		for _, pt := range poly {
			p.includeBounds(pt)
		}
	}
	return el, true
}

// MoveTo appends a [MoveTo] element.
func (p *Path) MoveTo(pt Point) { p.AppendElement(MoveTo(pt)) }

// LineTo appends a [LineTo] element.
func (p *Path) LineTo(pt Point) { p.AppendElement(LineTo(pt)) }

// QuadTo appends a [QuadTo] element.
func (p *Path) QuadTo(ctrl, end Point) { p.AppendElement(QuadTo(ctrl, end)) }

// CubicTo appends a [CubicTo] element.
func (p *Path) CubicTo(c0, c1, end Point) { p.AppendElement(CubicTo(c0, c1, end)) }

// Close appends a [ClosePath] element.
func (p *Path) Close() { p.AppendElement(ClosePath()) }

// ArcTo appends an elliptical arc from the current point to end, using the
// parameters of the SVG arc command. xRotation is in degrees. The arc is
// approximated by cubic elements spanning at most 90° each.
//
// If either radius is zero a line is appended instead. If end is the
// current point nothing is appended.
func (p *Path) ArcTo(rx, ry, xRotation float64, largeArc, sweep bool, end Point) {
	start := p.CurrentPoint()
	if start == end {
		return
	}
	arc, ok := NewArcFromSVG(start, rx, ry, xRotation, largeArc, sweep, end)
	if !ok {
		p.LineTo(end)
		return
	}
	els := slices.Collect(arc.CubicElements())
	// Land exactly on end rather than on its trigonometric approximation.
	els[len(els)-1].P2 = end
	for _, el := range els {
		p.AppendElement(el)
	}
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Element returns element i. It returns false if i is out of range.
func (p *Path) Element(i int) (PathElement, bool) {
	if i < 0 || i >= len(p.elements) {
		return PathElement{}, false
	}
	return p.elements[i], true
}

// Elements returns an iterator over the path's elements.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, el := range p.elements {
			if !yield(el) {
				return
			}
		}
	}
}

// PolylineCount returns the number of polylines, which is always the number
// of elements.
func (p *Path) PolylineCount() int {
	return len(p.polylines)
}

// Polyline returns the flattened points of element i, or nil if i is out of
// range. MoveTo elements have empty polylines; every other element's
// polyline starts at the point the element started at.
func (p *Path) Polyline(i int) []Point {
	if i < 0 || i >= len(p.polylines) {
		return nil
	}
	return slices.Clone(p.polylines[i])
}

// ContourCount returns the number of subpaths.
func (p *Path) ContourCount() int {
	return len(p.contours)
}

// Contour returns a copy of contour i. It returns false if i is out of
// range.
func (p *Path) Contour(i int) (Contour, bool) {
	if i < 0 || i >= len(p.contours) {
		return Contour{}, false
	}
	c := p.contours[i]
	c.Curves = slices.Clone(c.Curves)
	return c, true
}

// Contours returns an iterator over copies of the path's contours.
func (p *Path) Contours() iter.Seq2[int, Contour] {
	return func(yield func(int, Contour) bool) {
		for i := range p.contours {
			c, _ := p.Contour(i)
			if !yield(i, c) {
				return
			}
		}
	}
}

// Bounds returns the bounding box of all polylines. Because it is computed
// from polylines, it may be slightly smaller than the path's exact bounds.
// It returns false if the path has no polyline points, for example because
// it consists only of MoveTo elements.
func (p *Path) Bounds() (Rect, bool) {
	return p.bounds, p.hasBounds
}

// Value evaluates the path at t ∈ [0, 1]. Each contour covers an equal share
// of the parameter range, as does each curve within a contour. An empty path
// evaluates to [InvalidPoint].
func (p *Path) Value(t float64) Point {
	n := len(p.contours)
	if n == 0 {
		return InvalidPoint
	}
	i, local := splitParameter(t, n)
	return p.contours[i].Value(local)
}

// Length returns the summed length of all contours. See [Contour.Length].
func (p *Path) Length() float64 {
	var l float64
	for i := range p.contours {
		l += p.contours[i].Length()
	}
	return l
}

// ContainsPoint reports whether pt lies inside the path according to the
// even-odd rule. Only closed contours are considered, using their
// polylines.
func (p *Path) ContainsPoint(pt Point) bool {
	inside := false
	for i, poly := range p.polylines {
		st := p.states[i]
		if st.contour < 0 || !p.contours[st.contour].Closed {
			continue
		}
		for j := 1; j < len(poly); j++ {
			a, b := poly[j-1], poly[j]
			if (a.Y > pt.Y) == (b.Y > pt.Y) {
				continue
			}
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// PathIntersection is a point where the polylines of two paths cross.
type PathIntersection struct {
	// Element is the index of the element in the receiver of
	// [Path.Intersect], OtherElement the index in its argument.
	Element      int
	OtherElement int
	Point        Point
}

// Intersect returns the points at which the polylines of p and o cross.
//
// Unlike [Curve.Intersect], this only compares the line segments of the
// paths' polylines, so its precision is bounded by the flattening of both
// paths. Points found more than once, for example where a crossing falls on
// a polyline vertex, are reported once.
func (p *Path) Intersect(o *Path) []PathIntersection {
	ob := polylineBounds(o.polylines)
	var out []PathIntersection
	for i, a := range p.polylines {
		if len(a) < 2 {
			continue
		}
		ab := NewRectFromPoints(a[0], a[0])
		for _, pt := range a[1:] {
			ab = ab.UnionPoint(pt)
		}
		for j, b := range o.polylines {
			if len(b) < 2 || !ab.Overlaps(ob[j]) {
				continue
			}
			out = intersectPolylines(out, i, j, a, b)
		}
	}
	return out
}

func polylineBounds(polys [][]Point) []Rect {
	out := make([]Rect, len(polys))
	for i, poly := range polys {
		if len(poly) == 0 {
			continue
		}
		r := NewRectFromPoints(poly[0], poly[0])
		for _, pt := range poly[1:] {
			r = r.UnionPoint(pt)
		}
		out[i] = r
	}
	return out
}

func intersectPolylines(out []PathIntersection, i, j int, a, b []Point) []PathIntersection {
	for k := 1; k < len(a); k++ {
		la := Linear(a[k-1], a[k])
		for m := 1; m < len(b); m++ {
			lb := Linear(b[m-1], b[m])
			for _, hit := range la.Intersect(lb) {
				dup := slices.ContainsFunc(out, func(o PathIntersection) bool {
					return o.Point == hit.Point
				})
				if !dup {
					out = append(out, PathIntersection{Element: i, OtherElement: j, Point: hit.Point})
				}
			}
		}
	}
	return out
}

// Equal reports whether two paths consist of equal elements.
func (p *Path) Equal(o *Path) bool {
	return slices.EqualFunc(p.elements, o.elements, PathElement.Equal)
}

// Hash returns a hash consistent with [Path.Equal].
func (p *Path) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, el := range p.elements {
		h.WriteByte(byte(el.Kind))
		for _, pt := range el.points() {
			pt.writeHash(&h)
		}
	}
	return h.Sum64()
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	return SVG(p.Elements(), SVGOptions{})
}
