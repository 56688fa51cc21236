package timing

import "time"

// Limiter controls how often the editor loop ticks.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	WaitForNextFrame()

	// Reset resets the timing state.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// TargetFPS is the rate input is polled and the scene redrawn.
const TargetFPS = 60

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Second / TargetFPS
}
