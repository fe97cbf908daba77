// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package roster keeps a view of activity enrollment in sync with the
// activity service.
//
// The [Controller] owns the synchronization protocol. It never draws
// anything itself: it is constructed with injected sinks ([ListSink],
// [SelectorSink], [NoticeSink], [FormSink]) and a blocking [Confirmer],
// and every visible change goes through them. The terminal UI in
// lib/rosterui implements the sinks; tests implement them with
// recording fakes.
//
// The protocol:
//
//   - [Controller.Refresh] fetches the whole snapshot and replaces the
//     rendered cards and selector options wholesale. Nothing is patched
//     in place. A failed fetch replaces the list with a fixed failure
//     message and leaves the selector alone.
//   - [Controller.Signup] and [Controller.Unregister] send one mutation,
//     show the outcome through the [Notifier], and refresh only when
//     the service accepted the change. Unregister asks the [Confirmer]
//     first; a declined prompt sends nothing.
//   - After a successful signup the matching card is highlighted for
//     [Config.HighlightDuration]. The highlight is tied to the card
//     generation it was applied to, so a later refresh that replaced
//     the cards is never touched by the removal.
//
// Each refresh takes a token from an increasing counter. Under
// [LatestIssued] (the default) a result whose token has been
// superseded is dropped, so two overlapping refreshes cannot leave the
// older snapshot on screen. [LastResolved] applies every result in the
// order it arrives.
//
// Participant rows carry a [MutationRequest] value built by the pure
// [UnregisterRequest] function. UIs dispatch that value through
// [Controller.Dispatch] rather than holding callbacks.
//
// User-facing text is localized through golang.org/x/text/message; see
// [NewStrings].
package roster
