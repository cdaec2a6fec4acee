package ratelimit

import "time"

// Clock abstracts time.Now so bucket refill can be driven by a fake clock
// in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
