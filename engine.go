package motion

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultFrameInterval is the default tick spacing of the playback loop.
const DefaultFrameInterval = time.Second / 60

// Frame is one instantaneous playback sample. Frames are emitted to the
// registered observer once per tick and are not retained by the engine.
type Frame struct {
	T             float64    `json:"t"`
	Position      Point      `json:"position"`
	Angles        [2]float64 `json:"angles"`
	SpeedFraction float64    `json:"speed_fraction"`
	Velocity      float64    `json:"velocity"`
}

// Engine turns a sparse waypoint path plus two intensity curves into a dense
// time-parameterized schedule and plays it back frame by frame, driving the
// arm's inverse kinematics.
//
// An engine is bound to one [Arm] and a pair of [ParamMap]s (directness and
// tempo). Waypoint or curve changes always rebuild the schedule in full and
// stop any in-flight playback first, so a tick never observes a half-updated
// schedule. The engine is not meant to be driven by more than one logical
// caller at a time, but its methods are safe to call from the playback
// observer.
type Engine struct {
	mu         sync.Mutex
	arm        *Arm
	directness ParamMap
	tempo      ParamMap

	waypoints     []Point
	schedule      *Schedule
	totalDuration float64

	onFrame   func(Frame)
	run       *playbackRun
	destroyed bool

	baseline      int
	scheduleSize  int
	limits        Limits
	frameInterval time.Duration
	clock         Clock
	log           *zap.Logger
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithLimits sets the velocity profile bounds.
func WithLimits(lim Limits) Option {
	return func(e *Engine) { e.limits = lim }
}

// WithBaselineSamples sets the per-segment oversampling density.
func WithBaselineSamples(n int) Option {
	return func(e *Engine) { e.baseline = n }
}

// WithScheduleSize sets the number of uniformly arc-spaced samples in a
// built schedule.
func WithScheduleSize(n int) Option {
	return func(e *Engine) { e.scheduleSize = n }
}

// WithFrameInterval sets the playback tick spacing.
func WithFrameInterval(d time.Duration) Option {
	return func(e *Engine) { e.frameInterval = d }
}

// WithClock substitutes the wall clock driving playback.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// NewEngine returns an engine bound to arm and the two intensity curves.
// Either curve may be nil, which reads as a flat 0.
func NewEngine(arm *Arm, directness, tempo ParamMap, opts ...Option) *Engine {
	e := &Engine{
		arm:           arm,
		directness:    directness,
		tempo:         tempo,
		baseline:      DefaultBaselineSamples,
		scheduleSize:  DefaultScheduleSize,
		frameInterval: DefaultFrameInterval,
		clock:         realClock{},
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetOnFrame registers the playback observer. The slot holds a single
// callback, last writer wins; replacing it does not affect a frame an
// in-flight tick has already computed. A nil callback silences playback.
func (e *Engine) SetOnFrame(fn func(Frame)) {
	e.mu.Lock()
	e.onFrame = fn
	e.mu.Unlock()
}

// SetPathPoints replaces the waypoint list wholesale and rebuilds the
// schedule. Any active playback is stopped first.
func (e *Engine) SetPathPoints(points []Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.waypoints = append([]Point(nil), points...)
	e.rebuildLocked()
}

// UpdateMaps replaces either intensity curve; a nil argument keeps the
// current one. Any active playback is stopped and the schedule rebuilt.
func (e *Engine) UpdateMaps(directness, tempo ParamMap) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	if directness != nil {
		e.directness = directness
	}
	if tempo != nil {
		e.tempo = tempo
	}
	e.rebuildLocked()
}

// SetTotalDuration overrides the schedule's duration; d ≤ 0 clears the
// override and lets the intrinsic computed duration stand. Any active
// playback is stopped and the schedule rebuilt.
func (e *Engine) SetTotalDuration(d float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	if d <= 0 {
		d = 0
	}
	e.totalDuration = d
	e.rebuildLocked()
}

// Schedule returns the most recently built schedule, or nil if none has been
// built. The caller must treat it as read-only.
func (e *Engine) Schedule() *Schedule {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.schedule
}

// Play stops any running playback, replaces the waypoint path, rebuilds the
// schedule synchronously, and starts the tick loop. Each tick interpolates
// the schedule at elapsed wall time, solves inverse kinematics for the
// interpolated position, and emits a [Frame] to the observer. The loop
// self-terminates once elapsed time reaches the schedule duration; no frame
// is emitted after that.
func (e *Engine) Play(points []Point) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return ErrDestroyed
	}
	if len(points) == 0 {
		return ErrEmptyPath
	}
	if !e.arm.valid() {
		return ErrInvalidArm
	}
	e.stopLocked()
	e.waypoints = append([]Point(nil), points...)
	e.rebuildLocked()

	sched := e.schedule
	run := &playbackRun{cancel: make(chan struct{})}
	e.run = run
	e.log.Info("playback started",
		zap.Float64("duration", sched.Duration()),
		zap.Int("samples", sched.Len()))
	go e.runLoop(run, sched.Duration(), func(t float64) Frame {
		pos, frac, vel := sched.At(t)
		return Frame{T: t, Position: pos, SpeedFraction: frac, Velocity: vel}
	}, true)
	return nil
}

// Stop cancels any pending tick. It is idempotent; a tick that already fired
// before cancellation was observed becomes a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopLocked()
	e.mu.Unlock()
}

// Destroy stops playback and clears the observer. Idempotent; the engine
// refuses further playback afterwards.
func (e *Engine) Destroy() {
	e.mu.Lock()
	e.stopLocked()
	e.onFrame = nil
	e.destroyed = true
	e.mu.Unlock()
}

func (e *Engine) stopLocked() {
	if e.run != nil {
		close(e.run.cancel)
		e.run = nil
		e.log.Debug("playback stopped")
	}
}

func (e *Engine) rebuildLocked() {
	if len(e.waypoints) == 0 {
		e.schedule = &Schedule{}
		return
	}
	e.schedule = buildSchedule(e.waypoints, e.directness, e.tempo,
		e.baseline, e.scheduleSize, e.limits, e.totalDuration)
	e.log.Debug("schedule rebuilt",
		zap.Int("waypoints", len(e.waypoints)),
		zap.Int("samples", e.schedule.Len()),
		zap.Float64("duration", e.schedule.Duration()))
}

// playbackRun identifies one playback. Cancellation compares run identity:
// a tick belonging to a superseded run emits nothing.
type playbackRun struct {
	cancel chan struct{}
}

// runLoop drives one playback to completion or cancellation. sample must be
// safe to call without the engine lock.
func (e *Engine) runLoop(run *playbackRun, duration float64, sample func(t float64) Frame, solveIK bool) {
	start := e.clock.Now()
	for {
		elapsed := e.clock.Now().Sub(start).Seconds()
		last := elapsed >= duration
		if last {
			elapsed = duration
		}
		if !e.emit(run, sample(elapsed), solveIK) {
			return
		}
		if last {
			e.finish(run)
			return
		}
		select {
		case <-run.cancel:
			return
		case <-e.clock.Tick(e.frameInterval):
		}
	}
}

// emit delivers one frame, solving IK for its position first if requested.
// It reports false if the run has been superseded, in which case nothing is
// emitted and the arm is left untouched.
func (e *Engine) emit(run *playbackRun, f Frame, solveIK bool) bool {
	e.mu.Lock()
	if e.run != run {
		e.mu.Unlock()
		return false
	}
	if solveIK {
		f.Angles = e.arm.SolveIK(f.Position)
	}
	cb := e.onFrame
	e.mu.Unlock()
	if cb != nil {
		cb(f)
	}
	return true
}

func (e *Engine) finish(run *playbackRun) {
	e.mu.Lock()
	if e.run == run {
		e.run = nil
		e.log.Info("playback finished")
	}
	e.mu.Unlock()
}
