package retry

import (
	"time"

	"github.com/opentds/lib-sqlclient/sqlclient"
)

const (
	// MinDuration is the smallest legal gap, min, or max interval.
	MinDuration time.Duration = 0
	// MaxDuration is the largest legal gap, min, or max interval.
	MaxDuration = 120 * time.Second
)

// Interval produces successive wait durations for one connection-retry
// sequence.
//
// An instance is owned by the goroutine driving its retry loop and is not
// safe for concurrent mutation; distinct instances may run on distinct
// goroutines because the backing random Source is goroutine-safe.
type Interval interface {
	// Current returns the wait committed by the last successful MoveNext.
	Current() time.Duration
	// MoveNext advances to the next wait. It returns false once the
	// sequence is exhausted; Current is left unchanged in that case.
	MoveNext() bool
	// Reset returns the sequence to its initial state.
	Reset()
}

// validate rejects interval bounds outside [MinDuration, MaxDuration] or an
// inverted min/max pair. The branch order, and therefore the parameter each
// violation is reported against, is load-bearing for callers that key off
// the parameter name.
func validate(gap, max, min time.Duration) error {
	switch {
	case min < MinDuration || max > MaxDuration:
		return sqlclient.NewArgumentOutOfRangeError("min", "min must be between %v and %v", MinDuration, MaxDuration)
	case max < MinDuration || max > MaxDuration:
		return sqlclient.NewArgumentOutOfRangeError("max", "max must be between %v and %v", MinDuration, MaxDuration)
	case gap < MinDuration || gap > MaxDuration:
		return sqlclient.NewArgumentOutOfRangeError("gap", "gap must be between %v and %v", MinDuration, MaxDuration)
	case max < min:
		return sqlclient.NewArgumentOutOfRangeError("max", "max must be greater than min")
	}

	return nil
}
