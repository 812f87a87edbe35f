package motion

import (
	"sort"

	"go.uber.org/zap"
)

// msEpochThreshold decides whether recorded timestamps are milliseconds or
// seconds: a logged session spanning this many units or more is assumed to
// be in milliseconds.
const msEpochThreshold = 100

// Replay plays back literal recorded frames without rebuilding any schedule
// or invoking inverse kinematics: positions and angles are trusted as
// recorded and linearly interpolated between the nearest two frames at each
// tick.
//
// Frame timestamps, when present, are kept proportional; millisecond epochs
// are detected by scale and converted. When the engine has a total duration
// override, elapsed playback is rescaled so the replay ends at exactly that
// duration; frames without usable timestamps are spaced evenly instead.
func (e *Engine) Replay(frames []Frame) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	if len(frames) == 0 {
		return ErrReplayEmpty
	}
	e.stopLocked()

	track := newReplayTrack(frames, e.totalDuration)
	run := &playbackRun{cancel: make(chan struct{})}
	e.run = run
	e.log.Info("replay started",
		zap.Int("frames", len(frames)),
		zap.Float64("duration", track.duration()))
	go e.runLoop(run, track.duration(), track.at, false)
	return nil
}

// replayTrack is a time-indexed sequence of recorded frames with normalized
// timestamps: times start at 0, are expressed in seconds, and are rescaled
// to the requested total duration when one is given.
type replayTrack struct {
	times  []float64
	frames []Frame
}

func newReplayTrack(frames []Frame, totalDuration float64) *replayTrack {
	t := &replayTrack{
		times:  make([]float64, len(frames)),
		frames: append([]Frame(nil), frames...),
	}

	span := frames[len(frames)-1].T - frames[0].T
	if len(frames) > 1 && span > 0 {
		for i, f := range frames {
			t.times[i] = f.T - frames[0].T
		}
		if span >= msEpochThreshold {
			// Recorded in milliseconds.
			for i := range t.times {
				t.times[i] /= 1000
			}
		}
	} else if len(frames) > 1 {
		// No usable timestamps: space frames evenly.
		d := totalDuration
		if d <= 0 {
			d = defaultReplayDuration
		}
		for i := range t.times {
			t.times[i] = d * float64(i) / float64(len(frames)-1)
		}
	}

	if totalDuration > 0 && t.duration() > 0 {
		k := totalDuration / t.duration()
		for i := range t.times {
			t.times[i] *= k
		}
		t.times[len(t.times)-1] = totalDuration
	}
	return t
}

// defaultReplayDuration spaces timestamp-less replays when no duration
// override is set.
const defaultReplayDuration = 2.0

func (t *replayTrack) duration() float64 {
	return t.times[len(t.times)-1]
}

// at interpolates the recorded frames at elapsed time tt, clamped into the
// track's range. Position and angles interpolate linearly between the
// bracketing frames.
func (t *replayTrack) at(tt float64) Frame {
	n := len(t.frames)
	if tt <= t.times[0] {
		f := t.frames[0]
		f.T = t.times[0]
		return f
	}
	if tt >= t.times[n-1] {
		f := t.frames[n-1]
		f.T = t.times[n-1]
		return f
	}
	i := sort.SearchFloat64s(t.times, tt)
	span := t.times[i] - t.times[i-1]
	u := 0.0
	if span > 0 {
		u = (tt - t.times[i-1]) / span
	}
	a, b := t.frames[i-1], t.frames[i]
	return Frame{
		T:             tt,
		Position:      a.Position.Lerp(b.Position, u),
		Angles:        [2]float64{lerp(a.Angles[0], b.Angles[0], u), lerp(a.Angles[1], b.Angles[1], u)},
		SpeedFraction: lerp(a.SpeedFraction, b.SpeedFraction, u),
		Velocity:      lerp(a.Velocity, b.Velocity, u),
	}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
