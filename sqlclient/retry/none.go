package retry

import "time"

// NoneInterval retries immediately: every wait is zero and the sequence
// never exhausts.
type NoneInterval struct{}

// NewNone builds the no-wait strategy.
func NewNone() *NoneInterval {
	return &NoneInterval{}
}

// Current always returns zero.
func (*NoneInterval) Current() time.Duration {
	return 0
}

// MoveNext always succeeds; there is no state to advance.
func (*NoneInterval) MoveNext() bool {
	return true
}

// Reset is a no-op.
func (*NoneInterval) Reset() {}
