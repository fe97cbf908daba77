// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"
)

// DropdownOption is one entry of a dropdown.
type DropdownOption struct {
	Label string // Display text.
	Value string // Value reported on selection.
}

// Dropdown is a floating menu anchored at a screen position. The
// owning model routes keys to it while it is open: up/down move,
// enter selects, escape dismisses, and typed text narrows the options
// by fuzzy match.
type Dropdown struct {
	// Options are the entries currently shown, best match first
	// while a query is set.
	Options []DropdownOption
	Cursor  int
	AnchorX int
	AnchorY int

	// Query is the filter text. Empty shows every option in order.
	Query string

	all  []DropdownOption
	slab *util.Slab
}

// NewDropdown opens a dropdown with the cursor on the option whose
// value is current (or the first option).
func NewDropdown(options []DropdownOption, current string, anchorX, anchorY int) *Dropdown {
	dropdown := &Dropdown{Options: options, all: options, AnchorX: anchorX, AnchorY: anchorY}
	for index, option := range options {
		if option.Value == current {
			dropdown.Cursor = index
			break
		}
	}
	return dropdown
}

// MoveUp moves the cursor up one entry, wrapping to the bottom.
func (dropdown *Dropdown) MoveUp() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor = (dropdown.Cursor - 1 + len(dropdown.Options)) % len(dropdown.Options)
}

// MoveDown moves the cursor down one entry, wrapping to the top.
func (dropdown *Dropdown) MoveDown() {
	if len(dropdown.Options) == 0 {
		return
	}
	dropdown.Cursor = (dropdown.Cursor + 1) % len(dropdown.Options)
}

// SetQuery filters the options to those fuzzy-matching query, ordered
// by score with ties kept in their original order. The cursor moves
// to the best match.
func (dropdown *Dropdown) SetQuery(query string) {
	dropdown.Query = query
	dropdown.Cursor = 0
	if query == "" {
		dropdown.Options = dropdown.all
		return
	}
	if dropdown.slab == nil {
		dropdown.slab = NewFuzzySlab()
	}

	type scored struct {
		option DropdownOption
		score  int
	}
	pattern := []rune(query)
	var matches []scored
	for _, option := range dropdown.all {
		if result := FuzzyMatch(option.Label, pattern, dropdown.slab); result.Matched {
			matches = append(matches, scored{option: option, score: result.Score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	dropdown.Options = make([]DropdownOption, len(matches))
	for index, match := range matches {
		dropdown.Options[index] = match.option
	}
}

// Selected returns the option under the cursor. ok is false for an
// empty dropdown.
func (dropdown *Dropdown) Selected() (DropdownOption, bool) {
	if dropdown.Cursor < 0 || dropdown.Cursor >= len(dropdown.Options) {
		return DropdownOption{}, false
	}
	return dropdown.Options[dropdown.Cursor], true
}

// Width is the rendered width in columns: " > " marker, the widest
// label or query line, and one column of padding on the right. It does
// not shrink while filtering.
func (dropdown *Dropdown) Width() int {
	widest := ansi.StringWidth(dropdown.Query) + 2
	for _, option := range dropdown.all {
		widest = max(widest, ansi.StringWidth(option.Label))
	}
	return 3 + widest + 1
}

// Render produces the dropdown lines for SpliceOverlay. Every line has
// the same width and a solid background; the cursor line uses the
// selection colors.
func (dropdown *Dropdown) Render(theme Theme) []string {
	width := dropdown.Width()
	normal := lipgloss.NewStyle().
		Foreground(theme.OverlayForeground).
		Background(theme.OverlayBackground)
	selected := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)

	lines := make([]string, 0, len(dropdown.Options)+1)
	if dropdown.Query != "" {
		query := lipgloss.NewStyle().
			Foreground(theme.AccentForeground).
			Background(theme.OverlayBackground)
		lines = append(lines, query.Render(padTo(" / "+dropdown.Query+"_", width)))
		if len(dropdown.Options) == 0 {
			lines = append(lines, normal.Render(padTo("   no matches", width)))
		}
	}
	for index, option := range dropdown.Options {
		style, marker := normal, " "
		if index == dropdown.Cursor {
			style, marker = selected, ">"
		}
		lines = append(lines, style.Render(padTo(" "+marker+" "+option.Label, width)))
	}
	return lines
}

// padTo right-pads text with spaces to width columns, truncating text
// that is wider.
func padTo(text string, width int) string {
	text = ansi.Truncate(text, width, "")
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
