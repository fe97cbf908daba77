// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the timers used by the client. Anything that would
// call time.AfterFunc takes a Clock instead.
type Clock interface {
	// AfterFunc calls f once d has elapsed and returns a Timer that
	// can cancel the call. The real clock runs f in its own
	// goroutine; the fake clock runs it inside Advance.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stopFunc func() bool
}

// Stop cancels the pending call. Returns false if the call already
// ran or the timer was already stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopFunc == nil {
		return false
	}
	return t.stopFunc()
}
