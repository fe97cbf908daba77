// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"fmt"
	"sync"
	"time"

	"github.com/bureau-foundation/rollcall/lib/clock"
)

// NoticeKind styles a notice.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota + 1
	NoticeError
)

func (kind NoticeKind) String() string {
	switch kind {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	default:
		return "none"
	}
}

// Notice is the single notice slot. The zero value is hidden.
type Notice struct {
	Text    string
	Kind    NoticeKind
	Visible bool
}

// NoticeExpiry selects how a new notice treats the previous one's hide
// timer.
type NoticeExpiry int

const (
	// CancelPending stops the previous hide timer, so every notice is
	// visible for the full delay.
	CancelPending NoticeExpiry = iota

	// Overlapping leaves earlier hide timers running. A notice shown
	// shortly after another is hidden when the first one's timer
	// fires, which can be well before its own delay elapses.
	Overlapping
)

func (expiry NoticeExpiry) String() string {
	if expiry == Overlapping {
		return "overlapping"
	}
	return "cancel-pending"
}

// ParseNoticeExpiry is the inverse of NoticeExpiry.String.
func ParseNoticeExpiry(value string) (NoticeExpiry, error) {
	switch value {
	case "cancel-pending":
		return CancelPending, nil
	case "overlapping":
		return Overlapping, nil
	}
	return CancelPending, fmt.Errorf("unknown notice expiry %q", value)
}

// DefaultNoticeDelay is how long a notice stays visible.
const DefaultNoticeDelay = 5 * time.Second

// Notifier drives a NoticeSink: one slot, overwritten by every Show,
// hidden after a delay. Safe for concurrent use.
type Notifier struct {
	sink   NoticeSink
	clock  clock.Clock
	delay  time.Duration
	expiry NoticeExpiry

	mu      sync.Mutex
	current Notice
	timer   *clock.Timer
	shown   uint64
}

// NewNotifier returns a Notifier writing to sink. A non-positive delay
// uses DefaultNoticeDelay; a nil clock uses the real clock.
func NewNotifier(sink NoticeSink, clk clock.Clock, delay time.Duration, expiry NoticeExpiry) *Notifier {
	if delay <= 0 {
		delay = DefaultNoticeDelay
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &Notifier{sink: sink, clock: clk, delay: delay, expiry: expiry}
}

// Show replaces the current notice with text and schedules it to hide.
func (notifier *Notifier) Show(text string, kind NoticeKind) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	if notifier.expiry == CancelPending {
		notifier.timer.Stop()
	}
	notifier.shown++
	sequence := notifier.shown
	notifier.current = Notice{Text: text, Kind: kind, Visible: true}
	notifier.sink.SetNotice(notifier.current)
	notifier.timer = notifier.clock.AfterFunc(notifier.delay, func() {
		notifier.hide(sequence)
	})
}

// Current returns the notice as last delivered to the sink.
func (notifier *Notifier) Current() Notice {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.current
}

func (notifier *Notifier) hide(sequence uint64) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	// Stop can lose the race against a timer that already fired.
	if notifier.expiry == CancelPending && sequence != notifier.shown {
		return
	}
	if !notifier.current.Visible {
		return
	}
	notifier.current.Visible = false
	notifier.sink.SetNotice(notifier.current)
}
