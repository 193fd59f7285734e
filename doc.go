// Package geom provides 2D Bézier curves and paths built from them, along
// with the geometric queries 2D graphics code commonly needs: evaluation,
// classification, bounds, length, flattening, containment, and intersection.
//
// # Curves
//
// [Curve] is a single linear, quadratic, or cubic Bézier segment in absolute
// coordinates. Besides evaluation and its derivatives, it can compute its
// [Curve.Extrema] and [Curve.Inflections], exact and approximate bounds, arc
// length and its inverse, and the closest point to a given point. Cubic curves
// can be classified into their topological family (simple, inflected, looped,
// cusped) with [Curve.Canonical].
//
// [Curve.Intersect] finds the intersections of two curves. Lines are solved
// exactly, a line and a curve by root finding, and two curves by recursive
// subdivision to within [IntersectionTolerance].
//
// # Contours and paths
//
// A [Path] is a sequence of [PathElement] drawing commands, modelled after
// those of SVG and PostScript. As elements are appended, the path maintains
// a flattened polyline for each element, a [Contour] for each subpath, and
// the bounding box of the polylines. Removing the last element undoes all of
// these.
//
// Paths can be evaluated, tested for containment with [Path.ContainsPoint],
// and intersected with each other with [Path.Intersect]. The latter works on
// polylines and is therefore only as precise as the paths' flattening, unlike
// [Curve.Intersect].
//
// Paths can be read from and written to SVG path data with [ParseSVG] and
// [SVG].
//
// # Conventions
//
// Functions don't return errors. Results that don't exist are signalled by a
// boolean, by [InvalidPoint], or by an empty slice. Curves, contours, and
// points are values and safe for concurrent use; a Path isn't.
package geom
