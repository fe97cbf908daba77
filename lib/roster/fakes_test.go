// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/bureau-foundation/rollcall/lib/activity"
	"github.com/bureau-foundation/rollcall/lib/activityclient"
	"github.com/bureau-foundation/rollcall/lib/clock"
)

// eventLog records the order in which the controller touched its
// collaborators.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (log *eventLog) add(format string, args ...any) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.events = append(log.events, fmt.Sprintf(format, args...))
}

func (log *eventLog) snapshot() []string {
	log.mu.Lock()
	defer log.mu.Unlock()
	return append([]string(nil), log.events...)
}

type fakeService struct {
	log *eventLog

	mu               sync.Mutex
	snapshot         activity.Snapshot
	fetchErr         error
	fetchHook        func(call int) (activity.Snapshot, error)
	signupResult     activityclient.Result
	signupErr        error
	unregisterResult activityclient.Result
	unregisterErr    error
	fetches          int
	signups          int
	unregisters      int
}

func (service *fakeService) Fetch(ctx context.Context) (activity.Snapshot, error) {
	service.log.add("fetch")
	service.mu.Lock()
	service.fetches++
	call := service.fetches
	hook := service.fetchHook
	snapshot, err := service.snapshot, service.fetchErr
	service.mu.Unlock()

	if hook != nil {
		return hook(call)
	}
	return snapshot, err
}

func (service *fakeService) Signup(ctx context.Context, name, email string) (activityclient.Result, error) {
	service.log.add("signup %s %s", name, email)
	service.mu.Lock()
	defer service.mu.Unlock()
	service.signups++
	return service.signupResult, service.signupErr
}

func (service *fakeService) Unregister(ctx context.Context, name, email string) (activityclient.Result, error) {
	service.log.add("unregister %s %s", name, email)
	service.mu.Lock()
	defer service.mu.Unlock()
	service.unregisters++
	return service.unregisterResult, service.unregisterErr
}

func (service *fakeService) counts() (fetches, signups, unregisters int) {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.fetches, service.signups, service.unregisters
}

type highlightCall struct {
	generation uint64
	name       string
	on         bool
}

// fakeList behaves like a real list: highlight changes only land on
// the displayed generation.
type fakeList struct {
	log *eventLog

	mu          sync.Mutex
	generation  uint64
	cards       []Card
	failure     string
	highlighted map[string]bool
	calls       []highlightCall
	replaces    int
}

func (list *fakeList) ReplaceCards(generation uint64, cards []Card) {
	list.log.add("replace %d", generation)
	list.mu.Lock()
	defer list.mu.Unlock()
	list.generation = generation
	list.cards = cards
	list.failure = ""
	list.highlighted = make(map[string]bool)
	list.replaces++
}

func (list *fakeList) ShowFailure(text string) {
	list.log.add("failure")
	list.mu.Lock()
	defer list.mu.Unlock()
	list.cards = nil
	list.failure = text
	list.highlighted = make(map[string]bool)
}

func (list *fakeList) SetHighlight(generation uint64, name string, on bool) bool {
	list.log.add("highlight %s %v", name, on)
	list.mu.Lock()
	defer list.mu.Unlock()
	list.calls = append(list.calls, highlightCall{generation, name, on})
	if generation != list.generation || list.failure != "" {
		return false
	}
	for _, card := range list.cards {
		if card.Name == name {
			list.highlighted[name] = on
			return true
		}
	}
	return false
}

func (list *fakeList) state() (cards []Card, failure string, highlighted map[string]bool) {
	list.mu.Lock()
	defer list.mu.Unlock()
	copied := make(map[string]bool, len(list.highlighted))
	for name, on := range list.highlighted {
		copied[name] = on
	}
	return list.cards, list.failure, copied
}

type fakeSelector struct {
	mu      sync.Mutex
	options []Option
	calls   int
}

func (selector *fakeSelector) ReplaceOptions(options []Option) {
	selector.mu.Lock()
	defer selector.mu.Unlock()
	selector.options = options
	selector.calls++
}

type fakeNotice struct {
	log *eventLog

	mu      sync.Mutex
	history []Notice
}

func (sink *fakeNotice) SetNotice(notice Notice) {
	sink.log.add("notice %s %v", notice.Kind, notice.Visible)
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.history = append(sink.history, notice)
}

func (sink *fakeNotice) last() Notice {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if len(sink.history) == 0 {
		return Notice{}
	}
	return sink.history[len(sink.history)-1]
}

type fakeForm struct {
	log    *eventLog
	resets int
}

func (form *fakeForm) Reset() {
	form.log.add("reset")
	form.resets++
}

type fakeConfirmer struct {
	answer    bool
	questions []string
}

func (confirmer *fakeConfirmer) Confirm(question string) bool {
	confirmer.questions = append(confirmer.questions, question)
	return confirmer.answer
}

// harness wires a Controller to fakes on a fake clock.
type harness struct {
	log        *eventLog
	service    *fakeService
	list       *fakeList
	selector   *fakeSelector
	notice     *fakeNotice
	form       *fakeForm
	confirmer  *fakeConfirmer
	clock      *clock.FakeClock
	controller *Controller
}

func newHarness(t *testing.T, mutate func(*Config)) *harness {
	t.Helper()
	log := &eventLog{}
	h := &harness{
		log:       log,
		service:   &fakeService{log: log, snapshot: testSnapshot()},
		list:      &fakeList{log: log},
		selector:  &fakeSelector{options: []Option{DefaultOption(NewStrings(""))}},
		notice:    &fakeNotice{log: log},
		form:      &fakeForm{log: log},
		confirmer: &fakeConfirmer{answer: true},
		clock:     clock.Fake(time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)),
	}
	config := Config{
		Service:  h.service,
		List:     h.list,
		Selector: h.selector,
		Notice:   h.notice,
		Form:     h.form,
		Confirm:  h.confirmer,
		Clock:    h.clock,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if mutate != nil {
		mutate(&config)
	}
	controller, err := NewController(config)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	h.controller = controller
	return h
}

func testSnapshot() activity.Snapshot {
	return activity.Snapshot{Entries: []activity.Entry{
		{Name: "Chess Club", Details: activity.Details{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{Name: "Basketball Team", Details: activity.Details{
			Description:     "Practice and compete",
			Schedule:        "Wednesdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		}},
	}}
}
