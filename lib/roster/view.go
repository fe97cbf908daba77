// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package roster

import "github.com/bureau-foundation/rollcall/lib/activity"

// Option is one entry of the activity selector. The default option
// has an empty Value.
type Option struct {
	Value string
	Label string
}

// ParticipantRow is one enrolled email and its delete control.
type ParticipantRow struct {
	Email string

	// Label is the accessible description of the delete control.
	Label string

	// Action is dispatched when the control is activated.
	Action MutationRequest
}

// Card is the rendered form of one activity.
type Card struct {
	// Name is the activity name exactly as the service sent it. UIs
	// locate cards by comparing Name, never by rendered text.
	Name string

	Description  string
	Schedule     string
	SpotsLeft    int
	Availability string

	// Participants is in enrollment order. Empty when Placeholder is
	// set.
	Participants []ParticipantRow

	// Placeholder replaces the participant list for an activity
	// nobody has joined.
	Placeholder string
}

// View is everything one snapshot renders to.
type View struct {
	Cards []Card

	// Options starts with the default option, followed by one option
	// per activity in snapshot order.
	Options []Option
}

// BuildView renders snapshot. It is deterministic and keeps no state:
// SpotsLeft is recomputed from the snapshot every time.
func BuildView(snapshot activity.Snapshot, text *Strings) View {
	view := View{
		Cards:   make([]Card, 0, len(snapshot.Entries)),
		Options: make([]Option, 0, len(snapshot.Entries)+1),
	}
	view.Options = append(view.Options, DefaultOption(text))

	for _, entry := range snapshot.Entries {
		spots := entry.Details.SpotsLeft()
		card := Card{
			Name:         entry.Name,
			Description:  entry.Details.Description,
			Schedule:     entry.Details.Schedule,
			SpotsLeft:    spots,
			Availability: text.SpotsLeft(spots),
			Participants: make([]ParticipantRow, 0, len(entry.Details.Participants)),
		}
		for _, email := range entry.Details.Participants {
			card.Participants = append(card.Participants, ParticipantRow{
				Email:  email,
				Label:  text.UnregisterLabel(email, entry.Name),
				Action: UnregisterRequest(entry.Name, email),
			})
		}
		if len(card.Participants) == 0 {
			card.Placeholder = text.NoParticipants()
		}

		view.Cards = append(view.Cards, card)
		view.Options = append(view.Options, Option{Value: entry.Name, Label: entry.Name})
	}
	return view
}

// DefaultOption is the selector's empty first option. A selector that
// has never received a snapshot shows only this.
func DefaultOption(text *Strings) Option {
	return Option{Value: "", Label: text.DefaultOption()}
}
