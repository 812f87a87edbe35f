package motion

import "math"

// Arm is a two-link planar arm anchored at Base.
//
// Angles holds the shoulder angle (world frame, radians) and the elbow angle
// (relative to the first limb). The engine is the sole mutator of Angles
// during playback, via [Arm.SolveIK].
type Arm struct {
	Base   Point      `json:"base"`
	Limbs  [2]float64 `json:"limbs"`
	Angles [2]float64 `json:"angles"`
}

// NewArm returns an arm with the given base position and limb lengths.
func NewArm(base Point, l1, l2 float64) *Arm {
	return &Arm{Base: base, Limbs: [2]float64{l1, l2}}
}

// Reach returns the maximum distance the arm can cover from its base.
func (a *Arm) Reach() float64 {
	return a.Limbs[0] + a.Limbs[1]
}

func (a *Arm) valid() bool {
	for _, l := range a.Limbs {
		if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
			return false
		}
	}
	return a.Base.IsFinite()
}

// SolveIK computes joint angles placing the end effector at target, stores
// them into the arm, and returns them.
//
// Targets beyond the arm's reach are projected onto the reachable boundary;
// there is no failure mode. The elbow-up branch is chosen deterministically,
// so equal targets always produce equal angles.
func (a *Arm) SolveIK(target Point) [2]float64 {
	l1, l2 := a.Limbs[0], a.Limbs[1]
	d := target.Sub(a.Base)
	dist := d.Hypot()
	if dist > l1+l2 {
		dist = l1 + l2
	}
	if dist < 1e-12 {
		dist = 1e-12
	}

	// Law of cosines. The acos arguments are clamped to [-1, 1] so that
	// floating-point drift near the reach boundary cannot produce NaN.
	shoulder := d.Angle() + math.Acos(clamp((l1*l1+dist*dist-l2*l2)/(2*l1*dist), -1, 1))
	elbow := math.Acos(clamp((l1*l1+l2*l2-dist*dist)/(2*l1*l2), -1, 1)) - math.Pi

	a.Angles = [2]float64{shoulder, elbow}
	return a.Angles
}

// Elbow returns the current elbow joint position implied by Angles.
func (a *Arm) Elbow() Point {
	return Pt(
		a.Base.X+a.Limbs[0]*math.Cos(a.Angles[0]),
		a.Base.Y+a.Limbs[0]*math.Sin(a.Angles[0]),
	)
}

// EndEffector returns the current end effector position implied by Angles.
func (a *Arm) EndEffector() Point {
	e := a.Elbow()
	th := a.Angles[0] + a.Angles[1]
	return Pt(
		e.X+a.Limbs[1]*math.Cos(th),
		e.Y+a.Limbs[1]*math.Sin(th),
	)
}
