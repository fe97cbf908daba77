// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmModal is a centered yes/no question. While it is open the
// owning model must route every key to Update; nothing else on screen
// may react.
type ConfirmModal struct {
	Question string

	// Yes is true while the "Yes" button is focused.
	Yes bool

	// YesLabel and NoLabel are the button captions.
	YesLabel string
	NoLabel  string

	theme Theme
}

// NewConfirmModal returns a modal with "Yes" focused, matching the
// default button of a browser confirm dialog.
func NewConfirmModal(question string, theme Theme) ConfirmModal {
	return ConfirmModal{Question: question, Yes: true, YesLabel: "Yes", NoLabel: "No", theme: theme}
}

// Update handles one key. done is true once the user has answered, and
// answer is their choice. y and n answer directly; left, right, and
// tab move between buttons; enter takes the focused button; esc and
// ctrl+c decline.
func (modal *ConfirmModal) Update(message tea.KeyMsg) (done, answer bool) {
	switch message.String() {
	case "y", "Y":
		return true, true
	case "n", "N", "esc", "ctrl+c":
		return true, false
	case "enter":
		return true, modal.Yes
	case "left", "right", "tab", "shift+tab", "h", "l":
		modal.Yes = !modal.Yes
	}
	return false, false
}

// Modal chrome: 2 columns of border and 2 of padding horizontally.
const (
	confirmChromeWidth = 4
	confirmMinInner    = 24
	confirmMargin      = 4
)

// Render produces the modal lines and the anchor that centers them on
// a screen of the given size. Long questions wrap.
func (modal ConfirmModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := max(confirmMinInner, min(ansi.StringWidth(modal.Question), screenWidth-confirmMargin*2-confirmChromeWidth))

	fill := lipgloss.NewStyle().Background(modal.theme.OverlayBackground)
	text := lipgloss.NewStyle().
		Foreground(modal.theme.OverlayForeground).
		Background(modal.theme.OverlayBackground)
	button := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.OverlayBackground).
		Padding(0, 1)
	focused := button.
		Foreground(modal.theme.SelectedForeground).
		Background(modal.theme.SelectedBackground).
		Bold(true)

	var lines []string
	for _, line := range strings.Split(ansi.Wordwrap(modal.Question, innerWidth, ""), "\n") {
		lines = append(lines, PadLine(text.Render(line), innerWidth, fill))
	}
	lines = append(lines, PadLine("", innerWidth, fill))

	yes, no := button, button
	if modal.Yes {
		yes = focused
	} else {
		no = focused
	}
	buttons := yes.Render(modal.YesLabel) + fill.Render("  ") + no.Render(modal.NoLabel)
	if gap := innerWidth - ansi.StringWidth(buttons); gap > 0 {
		buttons = fill.Render(strings.Repeat(" ", gap)) + buttons
	}
	lines = append(lines, buttons)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		BorderBackground(modal.theme.OverlayBackground).
		Background(modal.theme.OverlayBackground).
		Padding(0, 1)
	rendered := strings.Split(border.Render(strings.Join(lines, "\n")), "\n")

	anchorX, anchorY := Center(screenWidth, screenHeight, ansi.StringWidth(rendered[0]), len(rendered))
	return rendered, anchorX, anchorY
}
