package motion

import (
	"math"
	"testing"
)

func TestSolveIKRoundTrip(t *testing.T) {
	arm := NewArm(Pt(0, 0), 100, 100)
	targets := []Point{
		Pt(150, 0),
		Pt(50, 50),
		Pt(-80, 120),
		Pt(0, 199),
		Pt(10, -60),
	}
	for _, target := range targets {
		arm.SolveIK(target)
		if got := arm.EndEffector(); got.Distance(target) > 1e-9 {
			t.Errorf("end effector at %v, want %v", got, target)
		}
	}
}

func TestSolveIKDeterministic(t *testing.T) {
	arm := NewArm(Pt(10, -5), 80, 60)
	p := Pt(70, 40)
	first := arm.SolveIK(p)
	second := arm.SolveIK(p)
	diff(t, first, second)
}

func TestSolveIKUnreachableClamps(t *testing.T) {
	arm := NewArm(Pt(0, 0), 100, 100)
	arm.SolveIK(Pt(500, 0))
	// Projected onto the reachable boundary along the target direction.
	got := arm.EndEffector()
	if got.Distance(Pt(200, 0)) > 1e-9 {
		t.Errorf("end effector at %v, want (200, 0)", got)
	}
}

func TestSolveIKElbowUp(t *testing.T) {
	arm := NewArm(Pt(0, 0), 100, 100)
	arm.SolveIK(Pt(100, 0))
	if e := arm.Elbow(); e.Y <= 0 {
		t.Errorf("elbow at %v, want it above the chord", e)
	}
}

func TestSolveIKDegenerateTarget(t *testing.T) {
	// The base itself is unreachable for unequal limbs; the solver must
	// still return finite angles.
	arm := NewArm(Pt(0, 0), 100, 40)
	angles := arm.SolveIK(Pt(0, 0))
	for _, a := range angles {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			t.Fatalf("got non-finite angle %g", a)
		}
	}
}

func TestArmValid(t *testing.T) {
	if !NewArm(Pt(0, 0), 1, 2).valid() {
		t.Error("valid arm rejected")
	}
	if NewArm(Pt(0, 0), 0, 2).valid() {
		t.Error("zero limb accepted")
	}
	if NewArm(Pt(0, 0), math.NaN(), 2).valid() {
		t.Error("NaN limb accepted")
	}
	if NewArm(Pt(math.Inf(1), 0), 1, 2).valid() {
		t.Error("non-finite base accepted")
	}
}
