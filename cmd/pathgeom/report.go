package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"honnef.co/go/geom"
)

type point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func pointOf(pt geom.Point) point { return point{X: pt.X, Y: pt.Y} }

type rect struct {
	Min point `yaml:"min,flow"`
	Max point `yaml:"max,flow"`
}

type curveReport struct {
	Kind   string  `yaml:"kind"`
	Length float64 `yaml:"length"`
	// Only set for cubic curves.
	Canonical string `yaml:"canonical,omitempty"`
}

type contourReport struct {
	Start  point         `yaml:"start,flow"`
	Closed bool          `yaml:"closed"`
	Length float64       `yaml:"length"`
	Curves []curveReport `yaml:"curves"`
}

type intersectionReport struct {
	Element      int   `yaml:"element"`
	OtherElement int   `yaml:"other_element"`
	Point        point `yaml:"point,flow"`
}

type report struct {
	Path          string               `yaml:"path"`
	Elements      int                  `yaml:"elements"`
	Length        float64              `yaml:"length"`
	Bounds        *rect                `yaml:"bounds,omitempty"`
	Contours      []contourReport      `yaml:"contours"`
	Contains      *bool                `yaml:"contains,omitempty"`
	Intersections []intersectionReport `yaml:"intersections,omitempty"`
}

type query struct {
	contains *geom.Point
	other    *geom.Path
}

func buildReport(p *geom.Path, q query, opts geom.SVGOptions) report {
	r := report{
		Path:     geom.SVG(p.Elements(), opts),
		Elements: p.Len(),
		Length:   p.Length(),
		Contours: []contourReport{},
	}
	if b, ok := p.Bounds(); ok {
		r.Bounds = &rect{
			Min: point{X: b.X0, Y: b.Y0},
			Max: point{X: b.X1, Y: b.Y1},
		}
	}
	for _, c := range p.Contours() {
		cr := contourReport{
			Start:  pointOf(c.Start),
			Closed: c.Closed,
			Length: c.Length(),
			Curves: make([]curveReport, 0, c.Count()),
		}
		for i := range c.Count() {
			cv, _ := c.Curve(i)
			cur := curveReport{
				Kind:   cv.Kind.String(),
				Length: cv.Length(),
			}
			if cv.Kind == geom.CubicKind {
				cur.Canonical = cv.Canonical().String()
			}
			cr.Curves = append(cr.Curves, cur)
		}
		r.Contours = append(r.Contours, cr)
	}
	if q.contains != nil {
		in := p.ContainsPoint(*q.contains)
		r.Contains = &in
	}
	if q.other != nil {
		for _, x := range p.Intersect(q.other) {
			r.Intersections = append(r.Intersections, intersectionReport{
				Element:      x.Element,
				OtherElement: x.OtherElement,
				Point:        pointOf(x.Point),
			})
		}
	}
	return r
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, r report) error {
	ew := &errWriter{w: w}
	ew.printf("path: %s\n", r.Path)
	ew.printf("elements: %d\n", r.Elements)
	ew.printf("length: %g\n", r.Length)
	if r.Bounds != nil {
		ew.printf("bounds: (%g, %g) - (%g, %g)\n", r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Max.X, r.Bounds.Max.Y)
	}
	for i, c := range r.Contours {
		ew.printf("contour %d: start (%g, %g), closed %t, length %g\n", i, c.Start.X, c.Start.Y, c.Closed, c.Length)
		for j, cv := range c.Curves {
			ew.printf("  curve %d: %s, length %g", j, cv.Kind, cv.Length)
			if cv.Canonical != "" {
				ew.printf(", %s", cv.Canonical)
			}
			ew.printf("\n")
		}
	}
	if r.Contains != nil {
		ew.printf("contains: %t\n", *r.Contains)
	}
	for _, x := range r.Intersections {
		ew.printf("intersection: elements %d and %d at (%g, %g)\n", x.Element, x.OtherElement, x.Point.X, x.Point.Y)
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
