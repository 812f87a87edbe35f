package motion

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	approx(t, 5, Pt(0, 0).Distance(Pt(3, 4)), 1e-12)
	approx(t, 25, Pt(0, 0).DistanceSquared(Pt(3, 4)), 1e-12)
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, -4)
	diff(t, a, a.Lerp(b, 0))
	diff(t, b, a.Lerp(b, 1))
	diff(t, Pt(5, -2), a.Lerp(b, 0.5))
	diff(t, a.Midpoint(b), a.Lerp(b, 0.5))
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported as non-finite")
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(1)).IsFinite() {
		t.Error("non-finite point reported as finite")
	}
}

func TestVecAngleCross(t *testing.T) {
	approx(t, math.Pi/2, Vec(0, 1).Angle(), 1e-12)
	approx(t, 1, Vec(1, 0).Cross(Vec(0, 1)), 1e-12)
	approx(t, 0, Vec(1, 1).Cross(Vec(2, 2)), 1e-12)
	approx(t, 1, Vec(3, 4).Normalize().Hypot(), 1e-12)
}
