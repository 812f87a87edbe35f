package motion

import "sort"

// DefaultScheduleSize is the default number of uniformly arc-spaced samples
// in a built schedule.
const DefaultScheduleSize = 240

// Schedule is a fully built, time-parameterized motion plan: four aligned
// sequences of equal length. Times are non-decreasing with Times[0] == 0,
// SpeedFraction values lie in [0, 1], and Velocity values are ≥ 0, scaled so
// that integrating them over Times reproduces the path's arc length.
//
// A schedule is always rebuilt in full; there is no partial update. Playback
// only ever reads one.
type Schedule struct {
	Positions     []Point   `json:"positions"`
	Times         []float64 `json:"times"`
	SpeedFraction []float64 `json:"speed_fraction"`
	Velocity      []float64 `json:"velocity"`
}

// buildSchedule runs the full pipeline: oversample the waypoint curve, blend
// its corners, resample uniformly in arc length, then plan velocities and
// times.
func buildSchedule(waypoints []Point, directness, tempo ParamMap, baseline, size int, lim Limits, totalDuration float64) *Schedule {
	samples := SamplePath(waypoints, baseline, directness)
	samples = SmoothCorners(samples, waypoints, baseline)
	samples = ResampleUniform(samples, size)
	prof := buildProfile(samples, tempo, lim, totalDuration)
	return &Schedule{
		Positions:     samples,
		Times:         prof.times,
		SpeedFraction: prof.fracs,
		Velocity:      prof.vels,
	}
}

// Len returns the number of samples in the schedule.
func (s *Schedule) Len() int {
	return len(s.Positions)
}

// Duration returns the schedule's final time, 0 for an empty schedule.
func (s *Schedule) Duration() float64 {
	if len(s.Times) == 0 {
		return 0
	}
	return s.Times[len(s.Times)-1]
}

// At samples the schedule at time t, clamped into [0, Duration], linearly
// interpolating position, speed fraction, and velocity between the
// bracketing samples.
func (s *Schedule) At(t float64) (pos Point, frac, vel float64) {
	n := s.Len()
	if n == 0 {
		return Point{}, 0, 0
	}
	if t <= s.Times[0] {
		return s.Positions[0], s.SpeedFraction[0], s.Velocity[0]
	}
	if t >= s.Times[n-1] {
		return s.Positions[n-1], s.SpeedFraction[n-1], s.Velocity[n-1]
	}
	i := sort.SearchFloat64s(s.Times, t)
	span := s.Times[i] - s.Times[i-1]
	u := 0.0
	if span > 0 {
		u = (t - s.Times[i-1]) / span
	}
	pos = s.Positions[i-1].Lerp(s.Positions[i], u)
	frac = s.SpeedFraction[i-1] + u*(s.SpeedFraction[i]-s.SpeedFraction[i-1])
	vel = s.Velocity[i-1] + u*(s.Velocity[i]-s.Velocity[i-1])
	return pos, frac, vel
}
