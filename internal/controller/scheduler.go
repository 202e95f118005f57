package controller

import "time"

// Scheduler runs fn once after delay unless the returned stop function is
// called first. stop reports whether it prevented fn from running.
// Implementations must not call fn synchronously from AfterFunc.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) (stop func() bool)
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

func (ClockScheduler) AfterFunc(delay time.Duration, fn func()) func() bool {
	return time.AfterFunc(delay, fn).Stop
}
