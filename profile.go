package motion

import "math"

// tempoAmplitude scales how strongly a tempo intensity of ±1 warps progress
// along the path.
const tempoAmplitude = 2.5

// Limits bounds the velocity profile, in scene units per second (squared for
// Accel). The zero value selects the defaults.
type Limits struct {
	MinSpeed float64
	MaxSpeed float64
	Accel    float64
}

// Default velocity profile bounds.
const (
	DefaultMinSpeed = 10.0
	DefaultMaxSpeed = 120.0
	DefaultAccel    = 400.0
)

func (l Limits) withDefaults() Limits {
	if l.MinSpeed <= 0 {
		l.MinSpeed = DefaultMinSpeed
	}
	if l.MaxSpeed <= l.MinSpeed {
		l.MaxSpeed = DefaultMaxSpeed
	}
	if l.Accel <= 0 {
		l.Accel = DefaultAccel
	}
	return l
}

// profile is the timing part of a schedule: per-sample cumulative time,
// normalized speed fraction, and acceleration-bounded velocity.
type profile struct {
	times []float64
	fracs []float64
	vels  []float64
}

// buildProfile plans velocities and times over uniformly arc-spaced samples.
//
// The tempo map warps normalized arc position into a biased progress
// function; its derivative, rescaled into [0, 1], becomes the speed fraction
// at each sample. Desired velocities interpolate the Limits by that fraction
// and are then bounded by a forward and a backward sweep so that no adjacent
// transition exceeds the acceleration limit in either direction. Times come
// from trapezoidal integration, rescaled exactly to totalDuration when one
// is given (> 0).
func buildProfile(samples []Point, tempo ParamMap, lim Limits, totalDuration float64) profile {
	lim = lim.withDefaults()
	n := len(samples)
	p := profile{
		times: make([]float64, n),
		fracs: make([]float64, n),
		vels:  make([]float64, n),
	}
	if n == 0 {
		return p
	}
	if n == 1 {
		p.fracs[0] = 0.5
		return p
	}

	// Biased progress and its derivative with respect to s.
	u := make([]float64, n)
	for i := range u {
		s := float64(i) / float64(n-1)
		u[i] = tempoWarp(s, intensity(tempo, s))
	}
	ds := 1.0 / float64(n-1)
	deriv := make([]float64, n)
	deriv[0] = (u[1] - u[0]) / ds
	deriv[n-1] = (u[n-1] - u[n-2]) / ds
	for i := 1; i < n-1; i++ {
		deriv[i] = (u[i+1] - u[i-1]) / (2 * ds)
	}

	// Normalize the derivative into [0, 1] against its own range. A flat
	// derivative (constant tempo) normalizes to 0.5.
	lo, hi := deriv[0], deriv[0]
	for _, d := range deriv[1:] {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	for i, d := range deriv {
		if hi-lo < 1e-12 {
			p.fracs[i] = 0.5
		} else {
			p.fracs[i] = (d - lo) / (hi - lo)
		}
	}

	desired := make([]float64, n)
	for i, f := range p.fracs {
		desired[i] = lim.MinSpeed + f*(lim.MaxSpeed-lim.MinSpeed)
	}

	dists := make([]float64, n-1)
	for i := range dists {
		dists[i] = samples[i].Distance(samples[i+1])
	}

	// Forward sweep bounds acceleration, backward sweep bounds deceleration;
	// each sample keeps the minimum surviving both passes.
	v := p.vels
	v[0] = desired[0]
	for i := 1; i < n; i++ {
		v[i] = math.Min(desired[i], math.Sqrt(v[i-1]*v[i-1]+2*lim.Accel*dists[i-1]))
	}
	for i := n - 2; i >= 0; i-- {
		v[i] = math.Min(v[i], math.Sqrt(v[i+1]*v[i+1]+2*lim.Accel*dists[i]))
	}

	for i := 1; i < n; i++ {
		avg := math.Max(0.5*(v[i-1]+v[i]), 1e-9)
		p.times[i] = p.times[i-1] + dists[i-1]/avg
	}

	if totalDuration > 0 && p.times[n-1] > 0 {
		k := totalDuration / p.times[n-1]
		for i := range p.times {
			p.times[i] *= k
			p.vels[i] /= k
		}
		p.times[n-1] = totalDuration
	}
	return p
}

// tempoWarp biases where progress accumulates along the path. Positive
// intensity back-loads progress (accelerating feel), negative front-loads it
// (decelerating feel), zero is the identity.
func tempoWarp(s, i float64) float64 {
	switch {
	case i > 0:
		return math.Pow(s, 1+i*tempoAmplitude)
	case i < 0:
		return 1 - math.Pow(1-s, 1+(-i)*tempoAmplitude)
	default:
		return s
	}
}
