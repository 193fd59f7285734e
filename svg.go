package geom

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// svgArgs is the number of arguments each SVG path command takes.
var svgArgs = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'Q': 4,
	'T': 2,
	'C': 6,
	'S': 4,
	'A': 7,
	'Z': 0,
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t' || b[i] == '\f') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParseSVG builds a path from SVG path data, as found in the d attribute of
// an SVG path element.
//
// All commands of SVG 1.1 are supported, in their absolute and relative
// forms. Like SVG renderers, ParseSVG is fault tolerant: it stops at the
// first malformed command or argument and returns the path built up to that
// point. The reason for stopping is logged at debug level; see [SetLogger].
func ParseSVG(d string) *Path {
	return ParseSVGOptions(d, PathOptions{})
}

// ParseSVGOptions is like [ParseSVG] but creates the path with the given
// options.
func ParseSVGOptions(d string, opts PathOptions) *Path {
	p := NewPath(opts)
	b := []byte(d)
	fail := func(pos int, reason string) *Path {
		Logger().Debug("stopped parsing SVG path data", "pos", pos, "reason", reason)
		return p
	}

	var (
		args     [7]float64
		cur      Point // current point
		start    Point // start of the current subpath
		quadCtrl Point // control point of the last Q or T
		cubeCtrl Point // second control point of the last C or S
		prevCmd  byte
	)
	i := skipCommaWhitespace(b)
	for i < len(b) {
		cmd := prevCmd
		if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' || !isNumberStart(b[i]) {
			cmd = b[i]
			i++
			i += skipCommaWhitespace(b[i:])
		}
		upper := cmd
		if cmd >= 'a' && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := svgArgs[upper]
		if !ok {
			return fail(i-1, fmt.Sprintf("unknown command %q", cmd))
		}

		for j := range n {
			if upper == 'A' && (j == 3 || j == 4) {
				// Flags are single digits and need no separator.
				if i >= len(b) || (b[i] != '0' && b[i] != '1') {
					return fail(i, "arc flag must be 0 or 1")
				}
				args[j] = float64(b[i] - '0')
				i++
			} else {
				f, m := pstrconv.ParseFloat(b[i:])
				if m == 0 {
					return fail(i, fmt.Sprintf("command %q expects %d numbers", cmd, n))
				}
				args[j] = f
				i += m
			}
			i += skipCommaWhitespace(b[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Point{X: cur.X + x, Y: cur.Y + y}
			}
			return Point{X: x, Y: y}
		}
		next := cur
		switch upper {
		case 'M':
			next = abs(args[0], args[1])
			p.MoveTo(next)
			start = next
			// Further coordinate pairs are implicit lines.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p.Close()
			next = start
		case 'L':
			next = abs(args[0], args[1])
			p.LineTo(next)
		case 'H':
			next.X = args[0]
			if rel {
				next.X += cur.X
			}
			p.LineTo(next)
		case 'V':
			next.Y = args[0]
			if rel {
				next.Y += cur.Y
			}
			p.LineTo(next)
		case 'C':
			c0 := abs(args[0], args[1])
			c1 := abs(args[2], args[3])
			next = abs(args[4], args[5])
			p.CubicTo(c0, c1, next)
			cubeCtrl = c1
		case 'S':
			c0 := cur
			if prev := prevCmd | 0x20; prev == 'c' || prev == 's' {
				c0 = reflect(cur, cubeCtrl)
			}
			c1 := abs(args[0], args[1])
			next = abs(args[2], args[3])
			p.CubicTo(c0, c1, next)
			cubeCtrl = c1
		case 'Q':
			c := abs(args[0], args[1])
			next = abs(args[2], args[3])
			p.QuadTo(c, next)
			quadCtrl = c
		case 'T':
			c := cur
			if prev := prevCmd | 0x20; prev == 'q' || prev == 't' {
				c = reflect(cur, quadCtrl)
			}
			next = abs(args[0], args[1])
			p.QuadTo(c, next)
			quadCtrl = c
		case 'A':
			next = abs(args[5], args[6])
			p.ArcTo(args[0], args[1], args[2], args[3] == 1, args[4] == 1, next)
		}
		prevCmd = cmd
		cur = next
	}
	return p
}

// reflect returns the reflection of ctrl about pt.
func reflect(pt, ctrl Point) Point {
	return Point{X: 2*pt.X - ctrl.X, Y: 2*pt.Y - ctrl.Y}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to SVG path data.
//
// See [WriteSVG] for a version that writes to an [io.Writer].
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG writes a sequence of path elements to w as SVG path data, using
// absolute commands only.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic(fmt.Sprintf("unhandled element kind %d", el.Kind))
		}
	}
	return err
}
