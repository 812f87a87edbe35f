// Package motion turns sparse 2D waypoint paths into dense, time-parameterized
// motion schedules for a simulated two-link planar arm, and plays them back
// frame by frame.
//
// Two caller-supplied intensity curves shape the result: directness (signed
// path curvature) and tempo (signed local acceleration bias), both expressed
// as a [ParamMap] over normalized path position. The pipeline is
//
//	waypoints → SamplePath → SmoothCorners → ResampleUniform → velocity profile → Schedule
//
// [SamplePath] oversamples a curve through the waypoints with Catmull-Rom
// tangents scaled by directness, [SmoothCorners] blends the joints with a
// Gaussian window, [ResampleUniform] re-spaces everything uniformly in arc
// length, and the velocity profile converts the tempo curve into
// acceleration-bounded per-sample velocities and cumulative times.
//
// [Engine] owns the built [Schedule] and drives a clock-based tick loop that
// interpolates it, solves the arm's inverse kinematics per frame, and emits
// [Frame] values to a registered observer. [Engine.Replay] is a lighter mode
// that interpolates literal recorded frames without any kinematics.
//
// The package favors graceful degradation over errors: unreachable arm
// targets clamp to the reach boundary, degenerate paths fall back to safe
// uniform behavior, and non-finite curve values read as zero.
package motion
