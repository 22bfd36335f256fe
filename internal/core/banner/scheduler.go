package banner

import "time"

// Scheduler defers a function call. The store uses it for the deletion
// half of Remove and for auto-dismiss timers. Scheduled calls are not
// cancellable; the store's removal path is a no-op on stale fires, so
// cancellation is never required for correctness.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler schedules with time.AfterFunc. Callbacks run on a timer
// goroutine; the store's own locking makes that safe.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
