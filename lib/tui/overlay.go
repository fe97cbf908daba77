// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay lines, starting at (anchorX, anchorY). Truncation is
// ANSI-aware so styling on either side of the overlay survives.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		lineIndex := anchorY + index
		if lineIndex < 0 || lineIndex >= len(viewLines) {
			continue
		}
		viewLine := viewLines[lineIndex]

		var result strings.Builder
		if anchorX > 0 {
			prefix := ansi.Truncate(viewLine, anchorX, "")
			result.WriteString(prefix)
			// Short lines need padding so the overlay lands at anchorX.
			if gap := anchorX - ansi.StringWidth(prefix); gap > 0 {
				result.WriteString(strings.Repeat(" ", gap))
			}
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < ansi.StringWidth(viewLine) {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}
		viewLines[lineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// PadLine pads styled content with fill-styled spaces to width
// columns. Content already at or over width is returned unchanged.
func PadLine(content string, width int, fill lipgloss.Style) string {
	contentWidth := ansi.StringWidth(content)
	if contentWidth >= width {
		return content
	}
	return content + fill.Render(strings.Repeat(" ", width-contentWidth))
}

// Center returns the top-left anchor that centers a box of the given
// size on the screen, clamped to the screen origin.
func Center(screenWidth, screenHeight, boxWidth, boxHeight int) (int, int) {
	return max(0, (screenWidth-boxWidth)/2), max(0, (screenHeight-boxHeight)/2)
}
