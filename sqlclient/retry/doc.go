// Package retry generates the wait intervals used between connection
// attempts after a transient failure.
//
// Four strategies are provided: NoneInterval retries immediately,
// FixedInterval waits a jittered constant, IncrementalInterval grows
// linearly, and ExponentialInterval grows convexly. All implement the
// Interval capability (Current, MoveNext, Reset). A retry loop calls
// MoveNext on each failure and, when it returns true, waits Current()
// before the next attempt; false means the sequence is exhausted.
//
// Deciding whether a failure is transient belongs to the caller; this
// package only answers how long to wait once that decision is made.
package retry
