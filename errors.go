package motion

import "errors"

// Errors reported for caller-input problems that should short-circuit before
// any playback starts. Everything else in this package degrades gracefully
// instead of failing: unreachable IK targets clamp, non-finite parameter-map
// values coerce to 0, and degenerate geometry falls back to safe uniforms.
var (
	// ErrEmptyPath is returned when playback is requested with no waypoints.
	ErrEmptyPath = errors.New("motion: empty path")
	// ErrInvalidArm is returned when the arm has non-finite or non-positive
	// limb lengths.
	ErrInvalidArm = errors.New("motion: invalid arm geometry")
	// ErrReplayEmpty is returned when replay is requested with no frames.
	ErrReplayEmpty = errors.New("motion: no frames to replay")
	// ErrDestroyed is returned when a destroyed engine is asked to play.
	ErrDestroyed = errors.New("motion: engine destroyed")
)
