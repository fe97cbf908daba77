// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bureau-foundation/rollcall/lib/activity"
	"github.com/bureau-foundation/rollcall/lib/activityclient"
	"github.com/bureau-foundation/rollcall/lib/clock"
)

// RefreshOrdering decides which of several overlapping refreshes ends
// up on screen.
type RefreshOrdering int

const (
	// LatestIssued applies a result only if no later refresh has been
	// started since. The screen always converges on the newest request.
	LatestIssued RefreshOrdering = iota

	// LastResolved applies every result as it arrives, so a slow older
	// response can overwrite a newer one.
	LastResolved
)

func (ordering RefreshOrdering) String() string {
	if ordering == LastResolved {
		return "last-resolved"
	}
	return "latest-issued"
}

// ParseRefreshOrdering is the inverse of RefreshOrdering.String.
func ParseRefreshOrdering(value string) (RefreshOrdering, error) {
	switch value {
	case "latest-issued":
		return LatestIssued, nil
	case "last-resolved":
		return LastResolved, nil
	}
	return LatestIssued, fmt.Errorf("unknown refresh ordering %q", value)
}

// DefaultHighlightDuration is how long a card stays highlighted after
// a successful signup.
const DefaultHighlightDuration = 1500 * time.Millisecond

// Config holds configuration for creating a Controller.
type Config struct {
	// Service is the activity service. Required.
	Service Service

	// List, Selector, and Notice are the output surfaces. Required.
	List     ListSink
	Selector SelectorSink
	Notice   NoticeSink

	// Form is reset after a successful signup. Optional.
	Form FormSink

	// Confirm gates every unregister. Required.
	Confirm Confirmer

	// Clock drives notice expiry and highlight removal. Defaults to
	// the real clock.
	Clock clock.Clock

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Locale selects the language of fixed user-facing text. Empty
	// means English.
	Locale string

	// NoticeDelay defaults to DefaultNoticeDelay.
	NoticeDelay time.Duration

	// HighlightDuration defaults to DefaultHighlightDuration.
	HighlightDuration time.Duration

	RefreshOrdering RefreshOrdering
	NoticeExpiry    NoticeExpiry
}

// RefreshOutcome reports what one Refresh did.
type RefreshOutcome struct {
	// Token is the refresh's position in issue order, starting at 1.
	Token uint64

	// Applied is false when the result was dropped as stale.
	Applied bool

	// Failed is true when the fetch failed and the failure message was
	// shown instead of cards.
	Failed bool

	// Generation is the card generation this refresh rendered. Zero
	// unless Applied and not Failed.
	Generation uint64
}

// MutationOutcome reports what one Signup, Unregister, or Dispatch did.
type MutationOutcome struct {
	// Declined is true when the Confirmer said no. Nothing was sent.
	Declined bool

	// Sent is true when a request reached the transport.
	Sent bool

	// Accepted is true when the service answered 2xx with a message.
	Accepted bool

	// Refresh is the refresh that followed an accepted mutation.
	Refresh RefreshOutcome

	// Highlighted is true when a signup's card was found and
	// highlighted.
	Highlighted bool
}

// Controller keeps the sinks in sync with the activity service. Safe
// for concurrent use; overlapping mutations are neither queued nor
// merged.
type Controller struct {
	service   Service
	list      ListSink
	selector  SelectorSink
	form      FormSink
	confirm   Confirmer
	notifier  *Notifier
	clock     clock.Clock
	logger    *slog.Logger
	text      *Strings
	highlight time.Duration
	ordering  RefreshOrdering

	mu         sync.Mutex
	issued     uint64
	generation uint64
	failed     bool
	displayed  activity.Snapshot
}

// NewController validates config and returns a Controller. Nothing is
// fetched until the first Refresh.
func NewController(config Config) (*Controller, error) {
	switch {
	case config.Service == nil:
		return nil, errors.New("roster: Service is required")
	case config.List == nil:
		return nil, errors.New("roster: List sink is required")
	case config.Selector == nil:
		return nil, errors.New("roster: Selector sink is required")
	case config.Notice == nil:
		return nil, errors.New("roster: Notice sink is required")
	case config.Confirm == nil:
		return nil, errors.New("roster: Confirm is required")
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	highlight := config.HighlightDuration
	if highlight <= 0 {
		highlight = DefaultHighlightDuration
	}
	form := config.Form
	if form == nil {
		form = noForm{}
	}

	return &Controller{
		service:   config.Service,
		list:      config.List,
		selector:  config.Selector,
		form:      form,
		confirm:   config.Confirm,
		notifier:  NewNotifier(config.Notice, clk, config.NoticeDelay, config.NoticeExpiry),
		clock:     clk,
		logger:    logger,
		text:      NewStrings(config.Locale),
		highlight: highlight,
		ordering:  config.RefreshOrdering,
	}, nil
}

// Strings returns the localized text the controller renders with.
func (controller *Controller) Strings() *Strings { return controller.text }

// Notice returns the current notice.
func (controller *Controller) Notice() Notice { return controller.notifier.Current() }

// Refresh fetches the full snapshot and replaces the list and selector
// with it. A failure is shown in the list and logged; it is never
// returned.
func (controller *Controller) Refresh(ctx context.Context) RefreshOutcome {
	controller.mu.Lock()
	controller.issued++
	token := controller.issued
	controller.mu.Unlock()

	snapshot, err := controller.service.Fetch(ctx)

	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.ordering == LatestIssued && token != controller.issued {
		controller.logger.Debug("discarding stale refresh",
			"token", token,
			"latest", controller.issued,
			"error", err,
		)
		return RefreshOutcome{Token: token}
	}

	if err != nil {
		controller.logger.Warn("fetching activities failed", "token", token, "error", err)
		controller.failed = true
		controller.displayed = activity.Snapshot{}
		controller.list.ShowFailure(controller.text.LoadFailed())
		return RefreshOutcome{Token: token, Applied: true, Failed: true}
	}

	view := BuildView(snapshot, controller.text)
	controller.generation++
	controller.failed = false
	controller.displayed = snapshot
	controller.list.ReplaceCards(controller.generation, view.Cards)
	controller.selector.ReplaceOptions(view.Options)
	controller.logger.Debug("activities rendered",
		"token", token,
		"generation", controller.generation,
		"activities", len(view.Cards),
	)
	return RefreshOutcome{Token: token, Applied: true, Generation: controller.generation}
}

// Signup enrolls email in name. In order: send, show the outcome,
// reset the form, wait for the refresh, highlight the card. A rejected
// or failed request shows an error and does not refresh.
func (controller *Controller) Signup(ctx context.Context, name, email string) MutationOutcome {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		controller.notifier.Show(controller.text.MissingFields(), NoticeError)
		return MutationOutcome{}
	}

	result, err := controller.service.Signup(ctx, name, email)
	if err != nil {
		controller.reportFailure("signup", name, email, err,
			controller.text.SignupFallback(), controller.text.SignupTransport())
		return MutationOutcome{Sent: true}
	}

	controller.logger.Info("signed up", "activity", name, "email", email)
	controller.notifier.Show(result.Message, NoticeSuccess)
	controller.form.Reset()

	outcome := MutationOutcome{Sent: true, Accepted: true}
	outcome.Refresh = controller.Refresh(ctx)
	outcome.Highlighted = controller.highlightCard(name)
	return outcome
}

// Unregister removes email from name after the Confirmer agrees. A
// declined prompt sends nothing and changes nothing.
func (controller *Controller) Unregister(ctx context.Context, name, email string) MutationOutcome {
	if !controller.confirm.Confirm(controller.text.ConfirmUnregister(email, name)) {
		controller.logger.Debug("unregister declined", "activity", name, "email", email)
		return MutationOutcome{Declined: true}
	}

	result, err := controller.service.Unregister(ctx, name, email)
	if err != nil {
		controller.reportFailure("unregister", name, email, err,
			controller.text.UnregisterFallback(), controller.text.UnregisterTransport())
		return MutationOutcome{Sent: true}
	}

	controller.logger.Info("unregistered", "activity", name, "email", email)
	controller.notifier.Show(result.Message, NoticeSuccess)

	outcome := MutationOutcome{Sent: true, Accepted: true}
	outcome.Refresh = controller.Refresh(ctx)
	return outcome
}

// Dispatch performs request. Requests of an unknown kind are logged
// and ignored.
func (controller *Controller) Dispatch(ctx context.Context, request MutationRequest) MutationOutcome {
	switch request.Kind {
	case MutationSignup:
		return controller.Signup(ctx, request.Activity, request.Email)
	case MutationUnregister:
		return controller.Unregister(ctx, request.Activity, request.Email)
	default:
		controller.logger.Error("unknown mutation kind", "kind", request.Kind)
		return MutationOutcome{}
	}
}

// highlightCard highlights name in whatever generation is displayed
// now and schedules its removal. If the displayed list is a failure
// message, or a newer snapshot no longer has the card, nothing happens.
func (controller *Controller) highlightCard(name string) bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.failed || controller.generation == 0 {
		return false
	}
	generation := controller.generation
	if !controller.list.SetHighlight(generation, name, true) {
		return false
	}
	controller.clock.AfterFunc(controller.highlight, func() {
		controller.mu.Lock()
		defer controller.mu.Unlock()
		controller.list.SetHighlight(generation, name, false)
	})
	return true
}

// reportFailure shows the outcome of a mutation that did not succeed.
// A service rejection shows its detail verbatim when it has one;
// anything else shows the transport fallback.
//
// A 404 means the screen is out of date with the service. It is logged
// at Warn along with whether the displayed list still shows the
// activity, which separates a vanished activity from a vanished
// participant.
func (controller *Controller) reportFailure(operation, name, email string, err error, fallback, transport string) {
	if apiError, ok := activityclient.IsAPIError(err); ok {
		text := apiError.Detail
		if text == "" {
			text = fallback
		}
		if activityclient.IsNotFound(err) {
			controller.mu.Lock()
			_, listed := controller.displayed.Lookup(name)
			controller.mu.Unlock()
			controller.logger.Warn(operation+" target not found",
				"activity", name,
				"email", email,
				"listed", listed,
				"detail", apiError.Detail,
			)
		} else {
			controller.logger.Info(operation+" rejected",
				"activity", name,
				"email", email,
				"status", apiError.StatusCode,
				"detail", apiError.Detail,
			)
		}
		controller.notifier.Show(text, NoticeError)
		return
	}

	controller.logger.Error(operation+" failed", "activity", name, "email", email, "error", err)
	controller.notifier.Show(transport, NoticeError)
}

type noForm struct{}

func (noForm) Reset() {}
