package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and structs made of them, to within eps.
func approx(eps float64) cmp.Option {
	return cmpopts.EquateApprox(0, eps)
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func nearPoint(a, b Point, eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps)
}
