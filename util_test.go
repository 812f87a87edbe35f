package motion

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(t *testing.T, want, got, tol float64) {
	t.Helper()
	if math.Abs(want-got) > tol {
		t.Errorf("got %g, want %g (tolerance %g)", got, want, tol)
	}
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	len2 := ab.Hypot2()
	if len2 == 0 {
		return p.Distance(a)
	}
	u := clamp(p.Sub(a).Dot(ab)/len2, 0, 1)
	return p.Distance(a.Translate(ab.Mul(u)))
}
