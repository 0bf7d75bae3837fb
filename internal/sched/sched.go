// README: Scheduler abstraction so simulated delays are test-controllable.
package sched

import "time"

// Handle cancels a scheduled callback. Stop is idempotent and safe to call
// after the callback has fired.
type Handle interface {
	Stop()
}

// Scheduler defers work. Once fires fn a single time after d; Every fires fn
// repeatedly with period d until the handle is stopped.
type Scheduler interface {
	Once(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
}
