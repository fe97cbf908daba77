// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable timer source for the rollcall
// client. Notice expiry and card highlight timers are scheduled through
// a [Clock] so that tests can drive them deterministically.
//
// Production code uses [Real]. Tests use [Fake], whose time only moves
// when [FakeClock.Advance] is called:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	notifier := roster.NewNotifier(sink, fake, 5*time.Second, roster.CancelPending)
//	notifier.Show("Signed up", roster.NoticeSuccess)
//	fake.Advance(5 * time.Second) // hide fires synchronously here
package clock
