package geom

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(-5, 0, 0, 1)), []float64{math.Cbrt(5)})
	checkRoots(t, slice(SolveCubic(-5.0, -1.0, 0.0, 1.0)), []float64{1.90416085913492})
	checkRoots(t, slice(SolveCubic(0.0, -1.0, 0.0, 1.0)), []float64{-1.0, 0.0, 1.0})
	checkRoots(t, slice(SolveCubic(-2.0, -3.0, 0.0, 1.0)), []float64{-1.0, 2.0})
	checkRoots(t, slice(SolveCubic(2.0, -3.0, 0.0, 1.0)), []float64{-2.0, 1.0})
	checkRoots(t, slice(SolveCubic(2.0-1e-12, 5.0, 4.0, 1.0)),
		[]float64{
			-1.9999999999989995,
			-1.0000010000848456,
			-0.9999989999161546,
		},
	)
	checkRoots(t, slice(SolveCubic(2.0+1e-12, 5.0, 4.0, 1.0)), []float64{-2.0})
	// Degenerates to a quadratic and then a linear equation.
	checkRoots(t, slice(SolveCubic(-4, 0, 1, 0)), []float64{-2, 2})
	checkRoots(t, slice(SolveCubic(-1, 3, 0, 0)), []float64{1.0 / 3.0})
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 0.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(0.0, 0.0, 0.0)), []float64{0})

	// Roots come out in ascending order.
	if roots, n := SolveQuadratic(-6, -1, 1); n != 2 || roots != [2]float64{-2, 3} {
		t.Errorf("got %v (%d roots), want [-2 3]", roots, n)
	}
	// The squared linear coefficient overflows.
	big := math.Ldexp(1, 600)
	if roots, n := SolveQuadratic(-1, big, 1); n != 2 || roots != [2]float64{-big, 1 / big} {
		t.Errorf("got %v (%d roots), want [%v %v]", roots, n, -big, 1/big)
	}
}

func TestUnitRoots(t *testing.T) {
	got := unitRoots([]float64{-0.5, -1e-10, 0.25, 1 + 1e-10, 1.5}, 1e-9)
	diff(t, []float64{0, 0.25, 1}, got)

	got = unitRoots([]float64{-1e-10, 1 + 1e-10}, 0)
	if len(got) != 0 {
		t.Errorf("got %v, want no roots", got)
	}
}
