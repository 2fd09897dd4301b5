package retry

import (
	"time"

	"go.uber.org/zap"
)

// FixedInterval waits a constant-magnitude, independently jittered amount on
// every step. The sequence never exhausts.
type FixedInterval struct {
	window  window
	current time.Duration
	src     Source
	logger  *zap.SugaredLogger
}

// NewFixed builds a fixed strategy around gap. The gap is deliberately not
// range-checked; only the bounded strategies enforce the interval limits.
func NewFixed(gap time.Duration, opts ...Option) *FixedInterval {
	s := newSettings(opts)

	return &FixedInterval{
		window: newWindow(gap, s.randomness),
		src:    s.src,
		logger: s.logger,
	}
}

// Current returns the wait committed by the last MoveNext.
func (f *FixedInterval) Current() time.Duration {
	return f.current
}

// MoveNext redraws the wait from the jitter window. It always succeeds.
func (f *FixedInterval) MoveNext() bool {
	millis := f.window.draw(f.src)
	f.current = durationFromMillis(millis)

	f.logger.Debugw("fixed interval advanced", "millis", millis)

	return true
}

// Reset zeroes the committed wait; the jitter window is retained.
func (f *FixedInterval) Reset() {
	f.current = 0
}
