package motion

import "time"

// Clock abstracts the host timer that drives playback: read the current wall
// time, and schedule a wake-up after a delay. The real clock is the default;
// tests substitute a manual one.
type Clock interface {
	Now() time.Time
	// Tick returns a channel that receives once, after d has elapsed.
	Tick(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Tick(d time.Duration) <-chan time.Time { return time.After(d) }
