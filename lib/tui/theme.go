// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette for rollcall's terminal UI. All colors
// are ANSI 256-color codes.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Focused row and the open dropdown entry.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentForeground lipgloss.Color // Focused pane markers, scrollbar thumb.

	// Notice kinds.
	SuccessForeground lipgloss.Color
	ErrorForeground   lipgloss.Color
	WarningForeground lipgloss.Color

	// HighlightBackground tints a card that was just signed up for.
	HighlightBackground lipgloss.Color

	// Availability colors for the spots-left line.
	SpotsOpen lipgloss.Color // Comfortable room left.
	SpotsLow  lipgloss.Color // LowSpotsThreshold or fewer.
	SpotsNone lipgloss.Color // Full or oversubscribed.

	// Overlay boxes (modal, dropdown).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// LowSpotsThreshold is the spots-left count at or below which
// availability renders with SpotsLow.
const LowSpotsThreshold = 3

// SpotsColor returns the availability color for spotsLeft. Negative
// counts are treated as full.
func (theme Theme) SpotsColor(spotsLeft int) lipgloss.Color {
	switch {
	case spotsLeft <= 0:
		return theme.SpotsNone
	case spotsLeft <= LowSpotsThreshold:
		return theme.SpotsLow
	default:
		return theme.SpotsOpen
	}
}

// DefaultTheme is the built-in scheme for dark 256-color terminals.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	AccentForeground: lipgloss.Color("75"), // blue

	SuccessForeground: lipgloss.Color("114"), // green
	ErrorForeground:   lipgloss.Color("196"), // red
	WarningForeground: lipgloss.Color("220"), // amber

	HighlightBackground: lipgloss.Color("58"), // dark amber tint

	SpotsOpen: lipgloss.Color("114"),
	SpotsLow:  lipgloss.Color("208"), // orange
	SpotsNone: lipgloss.Color("196"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}
