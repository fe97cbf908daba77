// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize makes untrusted text safe to draw: escape sequences (CSI,
// OSC, DCS) are removed, tabs and line breaks become spaces, and every
// other C0, DEL, or C1 control character is dropped. Text from a
// remote service must pass through here before it reaches the
// terminal, since an embedded OSC or CSI sequence would otherwise be
// executed by the operator's terminal.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, ansi.Strip(text))
}
