// Command pathgeom reports on SVG path data: its elements, contours, bounds,
// and length, and optionally whether it contains a point and where it
// crosses another path.
//
// Usage:
//
//	pathgeom [flags] <path data | ->
//
// Settings can also be read from a TOML file given with -config. Flags that
// are set explicitly override the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
	"honnef.co/go/geom"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pathgeom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: pathgeom [flags] <path data | ->\n")
		fs.PrintDefaults()
	}
	defaults := defaultConfig()
	configPath := fs.String("config", "", "read settings from TOML `file`")
	flatness := fs.Float64("flatness", defaults.Flatness, "flatness threshold for polylines")
	format := fs.String("format", defaults.Format, "report format, yaml or text")
	precision := fs.Int("precision", defaults.Precision, "maximum decimal places of printed path data")
	logLevel := fs.String("log-level", defaults.LogLevel, "minimum log `level`")
	contains := fs.String("contains", "", "test whether the path contains the point `x,y`")
	intersect := fs.String("intersect", "", "intersect with the path `data`")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "flatness":
			cfg.Flatness = *flatness
		case "format":
			cfg.Format = *format
		case "precision":
			cfg.Precision = *precision
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	level, _ := cfg.level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	geom.SetLogger(logger)
	defer geom.SetLogger(nil)

	var q query
	if *contains != "" {
		pt, err := parsePoint(*contains)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		q.contains = &pt
	}
	popts := geom.PathOptions{Flatness: cfg.Flatness}
	if *intersect != "" {
		q.other = geom.ParseSVGOptions(*intersect, popts)
	}

	d := fs.Arg(0)
	if d == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "reading path data: %s\n", err)
			return 1
		}
		d = string(b)
	}
	p := geom.ParseSVGOptions(d, popts)
	logger.Debug("parsed path", "elements", p.Len(), "contours", p.ContourCount())

	r := buildReport(p, q, geom.SVGOptions{MaxPrecision: cfg.Precision})
	if cfg.Format == "text" {
		err = writeText(stdout, r)
	} else {
		err = writeYAML(stdout, r)
	}
	if err != nil {
		fmt.Fprintf(stderr, "writing report: %s\n", err)
		return 1
	}
	return 0
}

// parsePoint parses a point written as "x,y".
func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := parseNumber(strings.TrimSpace(xs))
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := parseNumber(strings.TrimSpace(ys))
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return geom.Pt(x, y), nil
}

func parseNumber(s string) (float64, error) {
	f, n := pstrconv.ParseFloat([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}
