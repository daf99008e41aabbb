// Package ticker defines how the presenter arms and disarms its periodic
// tick. Callbacks always run on the caller's event loop, one at a time.
package ticker

import "time"

// Scheduler starts periodic callbacks.
type Scheduler interface {
	// Every calls fn once per period until the returned handle is stopped.
	Every(period time.Duration, fn func()) Handle
}

// Handle is a live periodic callback.
type Handle interface {
	// Stop prevents any future call. Stopping twice is a no-op.
	Stop()
}
