package quiz

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled callback. Safe to call more than once; after
// the first call the callback will not run again.
type CancelFunc func()

// Scheduler abstracts timer wiring so sessions can be driven by a
// deterministic fake in tests instead of wall-clock timers.
type Scheduler interface {
	// ScheduleTick invokes fn repeatedly every interval until cancelled.
	ScheduleTick(interval time.Duration, fn func()) CancelFunc
	// ScheduleDelayed invokes fn once after delay unless cancelled first.
	ScheduleDelayed(delay time.Duration, fn func()) CancelFunc
}

// TimerScheduler is the production Scheduler backed by the time package.
type TimerScheduler struct{}

func (TimerScheduler) ScheduleTick(interval time.Duration, fn func()) CancelFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

func (TimerScheduler) ScheduleDelayed(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
