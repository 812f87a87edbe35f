package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(n int, length float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(length*float64(i)/float64(n-1), 0)
	}
	return pts
}

func TestProfileMonotonicTime(t *testing.T) {
	samples := line(50, 300)
	p := buildProfile(samples, Constant(0.8), Limits{}, 0)
	require.Len(t, p.times, 50)
	assert.Zero(t, p.times[0])
	for i := 1; i < len(p.times); i++ {
		assert.GreaterOrEqual(t, p.times[i], p.times[i-1])
	}
}

func TestProfileAccelerationBound(t *testing.T) {
	lim := Limits{MinSpeed: 10, MaxSpeed: 500, Accel: 50}
	samples := line(200, 1000)
	p := buildProfile(samples, Constant(1), lim, 0)
	for i := 1; i < len(p.vels); i++ {
		ds := samples[i-1].Distance(samples[i])
		dv2 := math.Abs(p.vels[i]*p.vels[i] - p.vels[i-1]*p.vels[i-1])
		assert.LessOrEqualf(t, dv2, 2*lim.Accel*ds+1e-9,
			"transition %d exceeds the acceleration limit", i)
	}
}

func TestProfileSpeedFractionRange(t *testing.T) {
	p := buildProfile(line(80, 200), Constant(-0.6), Limits{}, 0)
	for _, f := range p.fracs {
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
	}
}

func TestProfileDurationExact(t *testing.T) {
	for _, want := range []float64{0.5, 2, 7.25} {
		p := buildProfile(line(64, 150), Constant(0.3), Limits{}, want)
		assert.InDelta(t, want, p.times[len(p.times)-1], 1e-9)
	}
}

func TestProfileFlatTempoIsHalf(t *testing.T) {
	// A constant tempo yields a constant progress derivative, which must
	// normalize to a flat 0.5.
	p := buildProfile(line(40, 100), Constant(0), Limits{}, 2)
	for _, f := range p.fracs {
		assert.InDelta(t, 0.5, f, 1e-9)
	}
}

func TestProfileTempoMirrored(t *testing.T) {
	// Tempo +1 and -1 on the same path must produce mirrored speed-fraction
	// profiles.
	n := 101
	pos := buildProfile(line(n, 400), Constant(1), Limits{}, 0)
	neg := buildProfile(line(n, 400), Constant(-1), Limits{}, 0)
	for i := 0; i < n; i++ {
		assert.InDeltaf(t, pos.fracs[n-1-i], neg.fracs[i], 1e-9,
			"fraction mismatch at sample %d", i)
	}
}

func TestProfileVelocityIntegratesArcLength(t *testing.T) {
	// Trapezoidal integration of velocity over the times must reproduce the
	// path's arc length, with and without a duration override.
	samples := line(120, 500)
	for _, duration := range []float64{0, 3} {
		p := buildProfile(samples, Constant(0.5), Limits{}, duration)
		var got float64
		for i := 1; i < len(p.times); i++ {
			got += 0.5 * (p.vels[i-1] + p.vels[i]) * (p.times[i] - p.times[i-1])
		}
		assert.InDelta(t, 500, got, 1e-6)
	}
}

func TestProfileDegenerate(t *testing.T) {
	p := buildProfile(nil, nil, Limits{}, 1)
	assert.Empty(t, p.times)

	p = buildProfile([]Point{Pt(1, 1)}, nil, Limits{}, 1)
	require.Len(t, p.times, 1)
	assert.Equal(t, 0.5, p.fracs[0])
}

func TestTempoWarp(t *testing.T) {
	for _, s := range []float64{0, 0.3, 0.7, 1} {
		assert.Equal(t, s, tempoWarp(s, 0))
	}
	// Positive intensity back-loads progress, negative front-loads it.
	assert.Less(t, tempoWarp(0.5, 1), 0.5)
	assert.Greater(t, tempoWarp(0.5, -1), 0.5)
	// Warp symmetry: u_neg(s) = 1 - u_pos(1-s).
	for _, s := range []float64{0.1, 0.4, 0.9} {
		assert.InDelta(t, 1-tempoWarp(1-s, 0.8), tempoWarp(s, -0.8), 1e-12)
	}
}
