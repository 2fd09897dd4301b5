package retry

import (
	"time"

	"go.uber.org/zap"
)

// IncrementalInterval grows the wait by one random draw per step, starting
// from min. The sequence is non-decreasing and exhausts once a candidate
// would exceed max.
type IncrementalInterval struct {
	window  window
	min     time.Duration
	max     time.Duration
	current time.Duration
	src     Source
	logger  *zap.SugaredLogger
}

// NewIncremental builds a linear strategy from the base gap and the
// inclusive [min, max] bounds. All three durations must lie within
// [MinDuration, MaxDuration] and max must not be below min.
func NewIncremental(gap, max, min time.Duration, opts ...Option) (*IncrementalInterval, error) {
	if err := validate(gap, max, min); err != nil {
		return nil, err
	}

	s := newSettings(opts)

	return &IncrementalInterval{
		window: newWindow(gap, s.randomness),
		min:    min,
		max:    max,
		src:    s.src,
		logger: s.logger,
	}, nil
}

// nextInterval floors the first step at min, then adds one random draw per
// call.
func (i *IncrementalInterval) nextInterval() time.Duration {
	if i.current < i.min {
		return i.min
	}

	millis := i.window.draw(i.src)
	next := addDurations(i.current, durationFromMillis(millis))

	i.logger.Debugw("incremental interval computed", "millis", millis, "next", next)

	return next
}

// Current returns the wait committed by the last successful MoveNext.
func (i *IncrementalInterval) Current() time.Duration {
	return i.current
}

// MoveNext commits the next wait when it still fits under max. Once a
// candidate exceeds max the sequence stays exhausted until Reset; the
// committed wait is left frozen so callers can still observe it.
func (i *IncrementalInterval) MoveNext() bool {
	if i.current >= i.max {
		return false
	}

	next := i.nextInterval()
	if next > i.max {
		return false
	}

	i.current = next

	return true
}

// Reset zeroes the committed wait so the next MoveNext floors at min again.
func (i *IncrementalInterval) Reset() {
	i.current = 0
}
