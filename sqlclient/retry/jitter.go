package retry

import (
	"math"
	"time"
)

// defaultRandomness is the fraction of the gap used to widen the jitter
// window on either side of the configured base.
const defaultRandomness = 0.2

// window is the randomized millisecond range a strategy draws jitter from.
// It is derived once at construction and never mutated.
type window struct {
	minRandom uint64
	maxRandom uint64
}

// newWindow scales gap by (1±randomness) and rounds to whole milliseconds.
func newWindow(gap time.Duration, randomness float64) window {
	return windowFromMillis(float64(gap.Milliseconds()), randomness)
}

// windowFromMillis computes the jitter bounds from a millisecond count.
//
// Values beyond the representable range clamp to MaxUint64. Note the
// asymmetry: the lower bound is also compared against the MAXIMUM
// representable value, and its clamp multiplies the type's floor (zero) by
// 0.6, so an out-of-range lower bound always collapses to zero. Callers have
// observed this behavior since the first release; keep it until every
// consumer of the window has been audited.
func windowFromMillis(gapMillis, randomness float64) window {
	tempMax := gapMillis * (1.0 + randomness)
	tempMin := gapMillis * (1.0 - randomness)

	const limit = float64(math.MaxUint64)

	var w window

	if tempMax > limit {
		w.maxRandom = math.MaxUint64
	} else {
		w.maxRandom = uint64(math.Round(tempMax))
	}

	if tempMin > limit {
		w.minRandom = uint64(float64(0) * 0.6)
	} else {
		w.minRandom = uint64(math.Round(tempMin))
	}

	return w
}

// draw returns one jitter value, in milliseconds, from w. A degenerate
// window (minRandom == maxRandom) returns the bound unmodified so that a
// zero-randomness configuration yields a fully deterministic sequence.
func (w window) draw(src Source) uint64 {
	if w.maxRandom == w.minRandom {
		return w.minRandom
	}

	return w.minRandom + src.Uint64N(w.maxRandom-w.minRandom)
}

// maxMillis is the largest millisecond count representable as a
// time.Duration without overflow.
const maxMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

// durationFromMillis converts a millisecond count to a Duration, saturating
// at the representable maximum instead of wrapping.
func durationFromMillis(millis uint64) time.Duration {
	if millis > maxMillis {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(millis) * time.Millisecond
}

// addDurations adds two non-negative durations, saturating at the
// representable maximum instead of wrapping.
func addDurations(a, b time.Duration) time.Duration {
	if b > math.MaxInt64-a {
		return time.Duration(math.MaxInt64)
	}

	return a + b
}
