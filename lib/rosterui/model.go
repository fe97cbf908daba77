// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/rollcall/lib/roster"
	"github.com/bureau-foundation/rollcall/lib/tui"
)

// Controller is the part of *roster.Controller the model drives.
type Controller interface {
	Refresh(ctx context.Context) roster.RefreshOutcome
	Dispatch(ctx context.Context, request roster.MutationRequest) roster.MutationOutcome
}

// FocusRegion identifies what receives keys.
type FocusRegion int

const (
	// FocusCards moves between participant rows.
	FocusCards FocusRegion = iota
	// FocusEmail sends keys to the email input.
	FocusEmail
	// FocusSelector cycles the activity selector.
	FocusSelector
	// FocusDropdown routes keys to the open activity dropdown.
	FocusDropdown
)

// DefaultTitle is the header text when none is set.
const DefaultTitle = "Mergington High School Activities"

// confirmRequest is a Confirm call waiting for an answer.
type confirmRequest struct {
	modal tui.ConfirmModal
	reply chan<- bool
}

// rowRef addresses one participant row.
type rowRef struct {
	card int
	row  int
}

// Model is the top-level bubbletea model.
type Model struct {
	ctx        context.Context
	controller Controller
	text       *roster.Strings
	theme      tui.Theme
	keys       KeyMap
	title      string

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Card list, replaced wholesale by cardsMsg or failureMsg.
	loaded      bool
	generation  uint64
	cards       []roster.Card
	failure     string
	highlighted map[string]bool
	cursor      int // Index into rows().

	// Signup form.
	options  []roster.Option
	selected int
	dropdown *tui.Dropdown
	email    textinput.Model

	focus FocusRegion

	notice     roster.Notice
	logSummary string
	logLevel   slog.Level

	// Pending confirmations, oldest first. The modal shows the first.
	confirms []confirmRequest

	// Unregister requests dispatched and not yet finished. A second
	// press on the same row is ignored until the first completes.
	unregistering map[roster.MutationRequest]bool
}

// dispatchDoneMsg reports that a Dispatch call returned.
type dispatchDoneMsg struct {
	request roster.MutationRequest
}

// NewModel returns a Model driving controller. ctx bounds every
// request the model starts.
func NewModel(ctx context.Context, controller Controller, text *roster.Strings) Model {
	email := textinput.New()
	email.Placeholder = "your-email@mergington.edu"
	email.Prompt = ""
	email.CharLimit = 254

	return Model{
		ctx:           ctx,
		controller:    controller,
		text:          text,
		theme:         tui.DefaultTheme,
		keys:          DefaultKeyMap,
		title:         DefaultTitle,
		highlighted:   make(map[string]bool),
		unregistering: make(map[roster.MutationRequest]bool),
		options:       []roster.Option{roster.DefaultOption(text)},
		email:         email,
	}
}

// SetTitle replaces the header text.
func (model *Model) SetTitle(title string) { model.title = title }

// SetTheme replaces the color theme.
func (model *Model) SetTheme(theme tui.Theme) { model.theme = theme }

// Init implements tea.Model. Loads the first snapshot.
func (model Model) Init() tea.Cmd {
	return tea.Batch(model.refreshCmd(), textinput.Blink)
}

func (model Model) refreshCmd() tea.Cmd {
	ctx, controller := model.ctx, model.controller
	return func() tea.Msg {
		controller.Refresh(ctx)
		return nil
	}
}

func (model Model) dispatchCmd(request roster.MutationRequest) tea.Cmd {
	ctx, controller := model.ctx, model.controller
	return func() tea.Msg {
		controller.Dispatch(ctx, request)
		return dispatchDoneMsg{request: request}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.email.Width = max(10, min(40, model.width/3))

	case cardsMsg:
		model.replaceCards(message.generation, message.cards)

	case failureMsg:
		model.loaded = true
		model.cards = nil
		model.failure = message.text
		model.highlighted = make(map[string]bool)
		model.cursor = 0

	case highlightMsg:
		if message.generation == model.generation {
			if message.on {
				model.highlighted[message.name] = true
			} else {
				delete(model.highlighted, message.name)
			}
		}

	case optionsMsg:
		// A rebuilt selector starts over at the default option.
		model.options = message.options
		model.selected = 0
		if model.focus == FocusDropdown {
			model.dropdown = nil
			model.focus = FocusSelector
		}

	case noticeMsg:
		model.notice = message.notice

	case formResetMsg:
		model.email.SetValue("")
		model.selected = 0

	case confirmMsg:
		modal := tui.NewConfirmModal(message.question, model.theme)
		modal.YesLabel, modal.NoLabel = model.text.Yes(), model.text.No()
		model.confirms = append(model.confirms, confirmRequest{modal: modal, reply: message.reply})

	case dispatchDoneMsg:
		delete(model.unregistering, message.request)

	case logRecordMsg:
		model.logSummary = message.summary
		model.logLevel = message.level
		summary := message.summary
		return model, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{summary: summary}
		})

	case logRecordFadeMsg:
		if model.logSummary == message.summary {
			model.logSummary = ""
		}

	default:
		if model.focus == FocusEmail {
			var cmd tea.Cmd
			model.email, cmd = model.email.Update(message)
			return model, cmd
		}
	}
	return model, nil
}

// replaceCards swaps in a new generation. The cursor follows the
// focused participant if it is still listed.
func (model *Model) replaceCards(generation uint64, cards []roster.Card) {
	var focused roster.MutationRequest
	rows := model.rows()
	if model.cursor < len(rows) {
		ref := rows[model.cursor]
		focused = model.cards[ref.card].Participants[ref.row].Action
	}

	model.loaded = true
	model.generation = generation
	model.cards = cards
	model.failure = ""
	model.highlighted = make(map[string]bool)

	model.cursor = 0
	rows = model.rows()
	for index, ref := range rows {
		if cards[ref.card].Participants[ref.row].Action == focused {
			model.cursor = index
			break
		}
	}
}

// rows flattens every participant row in display order.
func (model Model) rows() []rowRef {
	var rows []rowRef
	for cardIndex, card := range model.cards {
		for rowIndex := range card.Participants {
			rows = append(rows, rowRef{card: cardIndex, row: rowIndex})
		}
	}
	return rows
}

// focusedRow returns the participant under the cursor.
func (model Model) focusedRow() (roster.ParticipantRow, bool) {
	rows := model.rows()
	if model.cursor < 0 || model.cursor >= len(rows) {
		return roster.ParticipantRow{}, false
	}
	ref := rows[model.cursor]
	return model.cards[ref.card].Participants[ref.row], true
}

func (model Model) selectedOption() roster.Option {
	if model.selected < 0 || model.selected >= len(model.options) {
		return roster.Option{}
	}
	return model.options[model.selected]
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal takes every key while it is open.
	if len(model.confirms) > 0 {
		return model.handleConfirmKeys(message)
	}
	if model.focus == FocusDropdown {
		return model.handleDropdownKeys(message)
	}

	switch {
	case key.Matches(message, model.keys.ForceQuit):
		return model, tea.Quit
	case key.Matches(message, model.keys.FocusNext):
		return model, model.setFocus((model.focus + 1) % FocusDropdown)
	case key.Matches(message, model.keys.FocusPrevious):
		return model, model.setFocus((model.focus + FocusDropdown - 1) % FocusDropdown)
	}

	if model.focus == FocusEmail {
		return model.handleEmailKeys(message)
	}

	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(message, model.keys.Refresh):
		return model, model.refreshCmd()
	}

	if model.focus == FocusSelector {
		return model.handleSelectorKeys(message)
	}
	return model.handleCardKeys(message)
}

func (model *Model) setFocus(focus FocusRegion) tea.Cmd {
	model.focus = focus
	if focus == FocusEmail {
		return model.email.Focus()
	}
	model.email.Blur()
	return nil
}

func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := &model.confirms[0]
	done, answer := pending.modal.Update(message)
	if !done {
		return model, nil
	}
	pending.reply <- answer
	model.confirms = model.confirms[1:]
	return model, nil
}

// handleDropdownKeys navigates with the arrow keys only, so every
// letter can go into the filter query.
func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.ForceQuit):
		return model, tea.Quit
	case message.Type == tea.KeyUp:
		model.dropdown.MoveUp()
	case message.Type == tea.KeyDown:
		model.dropdown.MoveDown()
	case key.Matches(message, model.keys.Submit),
		message.Type == tea.KeySpace && model.dropdown.Query == "":
		if option, ok := model.dropdown.Selected(); ok {
			for index, candidate := range model.options {
				if candidate.Value == option.Value {
					model.selected = index
					break
				}
			}
		}
		model.dropdown = nil
		model.focus = FocusSelector
	case key.Matches(message, model.keys.Back):
		if model.dropdown.Query != "" {
			model.dropdown.SetQuery("")
			break
		}
		model.dropdown = nil
		model.focus = FocusSelector
	case message.Type == tea.KeyBackspace:
		if query := []rune(model.dropdown.Query); len(query) > 0 {
			model.dropdown.SetQuery(string(query[:len(query)-1]))
		}
	case message.Type == tea.KeySpace:
		model.dropdown.SetQuery(model.dropdown.Query + " ")
	case message.Type == tea.KeyRunes:
		model.dropdown.SetQuery(model.dropdown.Query + string(message.Runes))
	}
	return model, nil
}

func (model Model) handleEmailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Submit):
		return model, model.submitCmd()
	case key.Matches(message, model.keys.Back):
		return model, model.setFocus(FocusCards)
	}
	var cmd tea.Cmd
	model.email, cmd = model.email.Update(message)
	return model, cmd
}

func (model Model) handleSelectorKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.SelectorPrevious), key.Matches(message, model.keys.Up):
		model.selected = (model.selected - 1 + len(model.options)) % len(model.options)
	case key.Matches(message, model.keys.SelectorNext), key.Matches(message, model.keys.Down):
		model.selected = (model.selected + 1) % len(model.options)
	case key.Matches(message, model.keys.SelectorOpen):
		options := make([]tui.DropdownOption, len(model.options))
		for index, option := range model.options {
			options[index] = tui.DropdownOption{Label: option.Label, Value: option.Value}
		}
		anchorX, anchorY := model.selectorAnchor()
		model.dropdown = tui.NewDropdown(options, model.selectedOption().Value, anchorX, anchorY-len(options))
		if model.dropdown.AnchorY < 0 {
			model.dropdown.AnchorY = 0
		}
		model.focus = FocusDropdown
	case key.Matches(message, model.keys.Submit):
		return model, model.submitCmd()
	case key.Matches(message, model.keys.Back):
		return model, model.setFocus(FocusCards)
	}
	return model, nil
}

func (model Model) handleCardKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := model.rows()
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(rows)-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.Unregister):
		if row, ok := model.focusedRow(); ok && !model.unregistering[row.Action] {
			model.unregistering[row.Action] = true
			return model, model.dispatchCmd(row.Action)
		}
	}
	return model, nil
}

// submitCmd sends the form as it stands. Empty fields are the
// controller's to reject.
func (model Model) submitCmd() tea.Cmd {
	return model.dispatchCmd(roster.SignupRequest(model.selectedOption().Value, model.email.Value()))
}

// Focus returns the focused region.
func (model Model) Focus() FocusRegion { return model.focus }

// Confirming reports whether the modal is open.
func (model Model) Confirming() bool { return len(model.confirms) > 0 }
