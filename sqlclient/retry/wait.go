package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wait blocks for d but respects context cancellation. It returns nil when
// the wait completes, an error wrapping ctx.Err() otherwise. Zero and
// negative durations return immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context done: %w", ctx.Err())
	}
}

// Do runs op, retrying transient failures with waits drawn from iv.
//
// The transient predicate decides whether an error is worth retrying; Do
// never classifies errors itself, and a nil predicate treats every failure
// as permanent. Permanent failures are returned as-is. When iv exhausts,
// the last failure is returned wrapped. iv is Reset before the first
// attempt, so a strategy instance can be reused across calls.
func Do(ctx context.Context, iv Interval, transient func(error) bool, op func(context.Context) error, opts ...Option) error {
	s := newSettings(opts)
	sequence := uuid.NewString()

	iv.Reset()

	for attempt := 1; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}

		if transient == nil || !transient(err) {
			return err
		}

		if !iv.MoveNext() {
			return fmt.Errorf("retry attempts exhausted: %w", err)
		}

		wait := iv.Current()

		s.logger.Debugw("retrying after transient failure",
			"sequence", sequence, "attempt", attempt, "wait", wait, "error", err)

		recordWait(ctx, strategyName(iv), wait)

		if err := Wait(ctx, wait); err != nil {
			return err
		}
	}
}

// strategyName labels an Interval for telemetry.
func strategyName(iv Interval) string {
	switch iv.(type) {
	case *NoneInterval:
		return "none"
	case *FixedInterval:
		return "fixed"
	case *IncrementalInterval:
		return "incremental"
	case *ExponentialInterval:
		return "exponential"
	default:
		return "custom"
	}
}
