// Package clock knows how to get the current civil UTC time and how to
// represent it as text.
//
// The calendar arithmetic doesn't depend on the standard library calendar,
// it decomposes the seconds elapsed since the unix epoch by itself.
package clock

import "time"

// Clock returns the current civil timestamp.
type Clock interface {
	Now() Timestamp
}

// Func is a helper to use plain functions as a Clock.
type Func func() Timestamp

// Now satisfies Clock.
func (f Func) Now() Timestamp { return f() }

// Fixed returns a clock that always returns the same timestamp.
func Fixed(ts Timestamp) Clock {
	return Func(func() Timestamp { return ts })
}

// System is the clock backed by the host wall clock.
var System Clock = systemClock{}

type systemClock struct{}

// Now reads the host clock. If the host returns a time before the epoch
// the zero timestamp is returned instead of failing.
func (systemClock) Now() Timestamp {
	return FromUnix(time.Now().Unix())
}
