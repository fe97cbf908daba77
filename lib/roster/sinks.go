// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"

	"github.com/bureau-foundation/rollcall/lib/activity"
	"github.com/bureau-foundation/rollcall/lib/activityclient"
)

// Service is the activity service as the controller sees it.
// *activityclient.Client satisfies it.
type Service interface {
	Fetch(ctx context.Context) (activity.Snapshot, error)
	Signup(ctx context.Context, name, email string) (activityclient.Result, error)
	Unregister(ctx context.Context, name, email string) (activityclient.Result, error)
}

// ListSink displays the activity cards.
//
// Sink methods are called with controller state locked and must not
// call back into the Controller.
type ListSink interface {
	// ReplaceCards discards whatever is displayed (cards, failure
	// message, highlight) and shows cards. generation increases with
	// every call.
	ReplaceCards(generation uint64, cards []Card)

	// ShowFailure replaces the whole list area with text.
	ShowFailure(text string)

	// SetHighlight turns the highlight on the card named name on or
	// off. It applies only if generation is still the displayed one,
	// and reports whether a card was changed.
	SetHighlight(generation uint64, name string, on bool) bool
}

// SelectorSink displays the activity selector.
type SelectorSink interface {
	ReplaceOptions(options []Option)
}

// NoticeSink displays the transient notice.
type NoticeSink interface {
	SetNotice(notice Notice)
}

// FormSink owns the signup form fields.
type FormSink interface {
	// Reset clears the email and returns the selector to its default
	// option.
	Reset()
}

// Confirmer asks the user a yes/no question and blocks until it is
// answered. Nothing else in the UI may be operated while it is open.
type Confirmer interface {
	Confirm(question string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(question string) bool { return f(question) }
