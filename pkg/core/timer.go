package core

import "time"

// FixedStep gates simulation updates so that at least one step delay of
// wall-clock time passes between two generations.
type FixedStep struct {
	delay time.Duration
	last  time.Time
}

// NewFixedStep constructs a FixedStep with the given minimum delay.
func NewFixedStep(delay time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetDelay(delay)
	return fs
}

// SetDelay changes the minimum delay. Negative values are treated as zero.
func (f *FixedStep) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	f.delay = delay
}

// Delay returns the configured minimum delay.
func (f *FixedStep) Delay() time.Duration { return f.delay }

// Ready reports whether a step is due at now and records it if so.
func (f *FixedStep) Ready(now time.Time) bool {
	if !f.last.IsZero() && now.Sub(f.last) < f.delay {
		return false
	}
	f.last = now
	return true
}

// ShouldStep is Ready evaluated against the current time.
func (f *FixedStep) ShouldStep() bool {
	return f.Ready(time.Now())
}

// Reset forgets the last step so the next check fires immediately.
func (f *FixedStep) Reset() { f.last = time.Time{} }
