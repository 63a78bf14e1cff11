package core

import "time"

// Clock returns the current wall-clock time.
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a Clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
