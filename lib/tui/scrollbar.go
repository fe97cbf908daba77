// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a one-column scrollbar of height rows for a
// viewport showing visibleLines of totalLines starting at offset. When
// everything fits the thumb fills the track. The thumb uses the accent
// color when focused.
func RenderScrollbar(theme Theme, height, totalLines, visibleLines, offset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.BorderColor
	if focused {
		thumbColor = theme.AccentForeground
	}
	track := lipgloss.NewStyle().Foreground(theme.BorderColor).Render("│")
	thumb := lipgloss.NewStyle().Foreground(thumbColor).Render("┃")

	lines := make([]string, height)
	if totalLines <= visibleLines || totalLines <= 0 {
		for index := range lines {
			lines[index] = thumb
		}
		return strings.Join(lines, "\n")
	}

	thumbSize := max(1, height*visibleLines/totalLines)
	thumbOffset := 0
	if scrollable, travel := totalLines-visibleLines, height-thumbSize; scrollable > 0 && travel > 0 {
		thumbOffset = min(offset*travel/scrollable, travel)
	}

	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumb
		} else {
			lines[index] = track
		}
	}
	return strings.Join(lines, "\n")
}
