// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"context"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/rollcall/lib/roster"
	"github.com/bureau-foundation/rollcall/lib/tui"
)

// Sender delivers messages to a running bubbletea program.
// *tea.Program satisfies it.
type Sender interface {
	Send(message tea.Msg)
}

// Messages posted by Sinks.
type (
	cardsMsg struct {
		generation uint64
		cards      []roster.Card
	}
	failureMsg struct {
		text string
	}
	highlightMsg struct {
		generation uint64
		name       string
		on         bool
	}
	optionsMsg struct {
		options []roster.Option
	}
	noticeMsg struct {
		notice roster.Notice
	}
	formResetMsg struct{}
	confirmMsg   struct {
		question string
		reply    chan<- bool
	}
)

// Sinks implements roster.ListSink, SelectorSink, NoticeSink,
// FormSink, and Confirmer on top of a tea.Program.
//
// Every string bound for the screen passes through tui.Sanitize here,
// so text the service sent never reaches the terminal raw. Mutation
// requests and option values are left untouched: they go back to the
// controller, not to the screen.
//
// Sinks mirrors the displayed card generation and names so SetHighlight
// can report synchronously whether the card exists, which the
// controller needs before it schedules removal.
type Sinks struct {
	ctx    context.Context
	sender atomic.Pointer[Sender]

	mu         sync.Mutex
	generation uint64
	failed     bool
	names      map[string]bool
}

var (
	_ roster.ListSink     = (*Sinks)(nil)
	_ roster.SelectorSink = (*Sinks)(nil)
	_ roster.NoticeSink   = (*Sinks)(nil)
	_ roster.FormSink     = (*Sinks)(nil)
	_ roster.Confirmer    = (*Sinks)(nil)
)

// NewSinks returns Sinks that deliver nothing until SetSender is
// called. Pending confirmations answer "no" once ctx is done.
func NewSinks(ctx context.Context) *Sinks {
	return &Sinks{ctx: ctx, names: make(map[string]bool)}
}

// SetSender connects the sinks to the program. Safe to call from any
// goroutine.
func (sinks *Sinks) SetSender(sender Sender) {
	sinks.sender.Store(&sender)
}

func (sinks *Sinks) send(message tea.Msg) bool {
	sender := sinks.sender.Load()
	if sender == nil {
		return false
	}
	(*sender).Send(message)
	return true
}

// ReplaceCards implements roster.ListSink.
func (sinks *Sinks) ReplaceCards(generation uint64, cards []roster.Card) {
	sinks.mu.Lock()
	sinks.generation = generation
	sinks.failed = false
	sinks.names = make(map[string]bool, len(cards))
	for _, card := range cards {
		sinks.names[card.Name] = true
	}
	sinks.mu.Unlock()

	sinks.send(cardsMsg{generation: generation, cards: sanitizeCards(cards)})
}

// ShowFailure implements roster.ListSink.
func (sinks *Sinks) ShowFailure(text string) {
	sinks.mu.Lock()
	sinks.failed = true
	sinks.names = make(map[string]bool)
	sinks.mu.Unlock()

	sinks.send(failureMsg{text: tui.Sanitize(text)})
}

// SetHighlight implements roster.ListSink.
func (sinks *Sinks) SetHighlight(generation uint64, name string, on bool) bool {
	sinks.mu.Lock()
	found := !sinks.failed && generation == sinks.generation && sinks.names[name]
	sinks.mu.Unlock()

	if !found {
		return false
	}
	sinks.send(highlightMsg{generation: generation, name: tui.Sanitize(name), on: on})
	return true
}

// ReplaceOptions implements roster.SelectorSink.
func (sinks *Sinks) ReplaceOptions(options []roster.Option) {
	sanitized := make([]roster.Option, len(options))
	for index, option := range options {
		sanitized[index] = roster.Option{Value: option.Value, Label: tui.Sanitize(option.Label)}
	}
	sinks.send(optionsMsg{options: sanitized})
}

// SetNotice implements roster.NoticeSink.
func (sinks *Sinks) SetNotice(notice roster.Notice) {
	notice.Text = tui.Sanitize(notice.Text)
	sinks.send(noticeMsg{notice: notice})
}

// Reset implements roster.FormSink.
func (sinks *Sinks) Reset() {
	sinks.send(formResetMsg{})
}

// Confirm implements roster.Confirmer. It opens the modal and blocks
// until the user answers. Without a program, or once the context is
// done, the answer is no.
func (sinks *Sinks) Confirm(question string) bool {
	reply := make(chan bool, 1)
	if !sinks.send(confirmMsg{question: tui.Sanitize(question), reply: reply}) {
		return false
	}
	select {
	case answer := <-reply:
		return answer
	case <-sinks.ctx.Done():
		return false
	}
}

// sanitizeCards returns a copy of cards with every displayed string
// sanitized. Highlight names go through the same function, so the
// model still matches them against card names.
func sanitizeCards(cards []roster.Card) []roster.Card {
	sanitized := make([]roster.Card, len(cards))
	for index, card := range cards {
		card.Name = tui.Sanitize(card.Name)
		card.Description = tui.Sanitize(card.Description)
		card.Schedule = tui.Sanitize(card.Schedule)
		card.Availability = tui.Sanitize(card.Availability)
		card.Placeholder = tui.Sanitize(card.Placeholder)
		rows := make([]roster.ParticipantRow, len(card.Participants))
		for rowIndex, row := range card.Participants {
			row.Email = tui.Sanitize(row.Email)
			row.Label = tui.Sanitize(row.Label)
			rows[rowIndex] = row
		}
		card.Participants = rows
		sanitized[index] = card
	}
	return sanitized
}
