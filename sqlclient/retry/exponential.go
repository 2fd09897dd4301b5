package retry

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// ExponentialInterval grows the wait convexly: step n proposes
// min + (n²−1)·draw, so a unit draw yields min, min+3, min+8, min+15 and so
// on. The sequence exhausts once a candidate would exceed max.
type ExponentialInterval struct {
	window    window
	min       time.Duration
	max       time.Duration
	current   time.Duration
	stepCount uint64
	src       Source
	logger    *zap.SugaredLogger
}

// NewExponential builds an exponential strategy from the base gap and the
// inclusive [min, max] bounds. All three durations must lie within
// [MinDuration, MaxDuration] and max must not be below min.
func NewExponential(gap, max, min time.Duration, opts ...Option) (*ExponentialInterval, error) {
	if err := validate(gap, max, min); err != nil {
		return nil, err
	}

	s := newSettings(opts)

	return &ExponentialInterval{
		window:    newWindow(gap, s.randomness),
		min:       min,
		max:       max,
		stepCount: 1,
		src:       s.src,
		logger:    s.logger,
	}, nil
}

// nextInterval proposes min + (stepCount²−1)·draw. The step counter advances
// even when the candidate is later rejected, so a sequence that has produced
// an over-max candidate only restarts its growth curve through Reset.
func (e *ExponentialInterval) nextInterval() time.Duration {
	exponent := e.stepCount*e.stepCount - 1
	millis := e.window.draw(e.src)

	var delta uint64
	if millis != 0 && exponent > math.MaxUint64/millis {
		delta = math.MaxUint64
	} else {
		delta = exponent * millis
	}

	next := addDurations(e.min, durationFromMillis(delta))

	e.logger.Debugw("exponential interval computed",
		"step", e.stepCount, "millis", millis, "next", next)

	e.stepCount++

	return next
}

// Current returns the wait committed by the last successful MoveNext.
func (e *ExponentialInterval) Current() time.Duration {
	return e.current
}

// MoveNext commits the next wait when it still fits under max. Once a
// candidate exceeds max the sequence stays exhausted until Reset; the
// committed wait is left frozen so callers can still observe it.
func (e *ExponentialInterval) MoveNext() bool {
	if e.current >= e.max {
		return false
	}

	next := e.nextInterval()
	if next > e.max {
		return false
	}

	e.current = next

	return true
}

// Reset zeroes the committed wait and rewinds the step counter to one.
func (e *ExponentialInterval) Reset() {
	e.current = 0
	e.stepCount = 1
}
