// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/rollcall/lib/roster"
	"github.com/bureau-foundation/rollcall/lib/tui"
)

// Rows outside the card pane: header, two separators, form, notice,
// help.
const chromeHeight = 6

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))

	sections := []string{
		model.renderHeader(),
		separator,
		model.renderBody(),
		separator,
		model.renderForm(),
		model.renderNotice(),
		model.renderHelp(),
	}
	output := strings.Join(sections, "\n")

	if model.dropdown != nil {
		output = tui.SpliceOverlay(output, model.dropdown.Render(model.theme),
			model.dropdown.AnchorX, model.dropdown.AnchorY)
	}
	if len(model.confirms) > 0 {
		lines, anchorX, anchorY := model.confirms[0].modal.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	return output
}

func (model Model) bodyHeight() int {
	return max(1, model.height-chromeHeight)
}

func (model Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render(" " + model.title)

	if !model.loaded || model.failure != "" {
		return title
	}
	count := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render(model.text.ActivityCount(len(model.cards)) + " ")
	gap := model.width - ansi.StringWidth(title) - ansi.StringWidth(count)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + count
}

// renderBody draws the visible slice of the card list plus a
// scrollbar, scrolled so the focused row is on screen.
func (model Model) renderBody() string {
	height := model.bodyHeight()
	contentWidth := max(1, model.width-1)

	var lines []string
	cursorLine := 0
	switch {
	case !model.loaded:
		lines = []string{lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(" " + model.text.Loading())}
	case model.failure != "":
		lines = []string{lipgloss.NewStyle().Foreground(model.theme.ErrorForeground).Render(" " + model.failure)}
	default:
		lines, cursorLine = model.renderCards(contentWidth)
	}

	offset := 0
	if cursorLine >= height {
		offset = cursorLine - height + 1
	}
	visible := make([]string, height)
	for index := range visible {
		line := ""
		if offset+index < len(lines) {
			line = ansi.Truncate(lines[offset+index], contentWidth, "…")
		}
		visible[index] = tui.PadLine(line, contentWidth, lipgloss.NewStyle())
	}

	scrollbar := tui.RenderScrollbar(model.theme, height, len(lines), height, offset, model.focus == FocusCards)
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(visible, "\n"), scrollbar)
}

// renderCards returns every card line and the line index of the
// focused participant row.
func (model Model) renderCards(width int) ([]string, int) {
	normal := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	name := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	selected := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground)

	focused, hasFocused := model.focusedRow()

	var lines []string
	cursorLine := 0
	for _, card := range model.cards {
		var block []string
		block = append(block, name.Render(" "+card.Name))
		if card.Description != "" {
			block = append(block, normal.Render("   "+card.Description))
		}
		block = append(block,
			faint.Render("   "+model.text.ScheduleLabel()+" ")+normal.Render(card.Schedule),
			faint.Render("   "+model.text.AvailabilityLabel()+" ")+
				lipgloss.NewStyle().Foreground(model.theme.SpotsColor(card.SpotsLeft)).Render(card.Availability),
			faint.Render("   "+model.text.ParticipantsLabel()),
		)

		if card.Placeholder != "" {
			block = append(block, faint.Italic(true).Render("     "+card.Placeholder))
		}
		for _, row := range card.Participants {
			isFocused := model.focus == FocusCards && hasFocused && row.Action == focused.Action
			if isFocused {
				cursorLine = len(lines) + len(block)
				block = append(block, selected.Render(" ›   "+row.Email+"  [x]"))
				continue
			}
			block = append(block, normal.Render("     • "+row.Email))
		}

		if model.highlighted[card.Name] {
			accent := lipgloss.NewStyle().Background(model.theme.HighlightBackground)
			for index, line := range block {
				block[index] = accent.Render(tui.PadLine(line, width, accent))
			}
		}
		lines = append(lines, block...)
		lines = append(lines, "")
	}
	return lines, cursorLine
}

// formPrefix is the text before the email input.
func (model Model) formPrefix() string {
	return " " + model.text.EmailLabel() + " "
}

// activityLabel is the text between the email input and the selector.
func (model Model) activityLabel() string {
	return "   " + model.text.ActivityLabel() + " "
}

func (model Model) renderForm() string {
	label := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	accent := lipgloss.NewStyle().Foreground(model.theme.AccentForeground).Bold(true)

	formPrefix, activityLabel := model.formPrefix(), model.activityLabel()
	emailLabel := label.Render(formPrefix)
	if model.focus == FocusEmail {
		emailLabel = accent.Render(formPrefix)
	}
	activity := label.Render(activityLabel)
	selector := "‹ " + model.selectedOption().Label + " ›"
	if model.focus == FocusSelector || model.focus == FocusDropdown {
		activity = accent.Render(activityLabel)
		selector = accent.Render(selector)
	}
	return emailLabel + model.email.View() + activity + selector
}

// selectorAnchor is where the selector starts on screen, for placing
// the dropdown above it.
func (model Model) selectorAnchor() (int, int) {
	formLine := model.height - 3
	x := ansi.StringWidth(model.formPrefix()) + model.email.Width + 1 + ansi.StringWidth(model.activityLabel())
	return x, formLine
}

func (model Model) renderNotice() string {
	if model.notice.Visible {
		color := model.theme.SuccessForeground
		if model.notice.Kind == roster.NoticeError {
			color = model.theme.ErrorForeground
		}
		return lipgloss.NewStyle().Foreground(color).Bold(true).Render(" " + model.notice.Text)
	}
	if model.logSummary != "" {
		color := model.theme.WarningForeground
		if model.logLevel >= slog.LevelError {
			color = model.theme.ErrorForeground
		}
		return lipgloss.NewStyle().Foreground(color).Render(" " + model.logSummary)
	}
	return ""
}

func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	var help string
	switch model.focus {
	case FocusCards:
		help = " " + model.text.HelpList()
		if row, ok := model.focusedRow(); ok {
			help += "  · " + row.Label
		}
	case FocusEmail:
		help = " " + model.text.HelpEmail()
	case FocusSelector:
		help = " " + model.text.HelpSelector()
	case FocusDropdown:
		help = " " + model.text.HelpDropdown()
	}
	if len(model.confirms) > 0 {
		help = " " + model.text.HelpConfirm()
	}
	return style.Render(help)
}
