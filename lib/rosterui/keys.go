// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings outside the confirmation modal. The
// modal has fixed keys (y/n, enter, esc).
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	FocusNext     key.Binding
	FocusPrevious key.Binding

	// Unregister removes the focused participant (cards pane).
	Unregister key.Binding

	// Submit sends the signup form (email field or selector).
	Submit key.Binding

	// Selector cycling and the dropdown (selector focused).
	SelectorPrevious key.Binding
	SelectorNext     key.Binding
	SelectorOpen     key.Binding

	// Back leaves the form for the cards pane, or closes the dropdown.
	Back key.Binding

	Refresh key.Binding

	// Quit works everywhere except the email field, which takes q as
	// text. ForceQuit works everywhere.
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	FocusPrevious: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Unregister: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "unregister"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "sign up"),
	),
	SelectorPrevious: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous activity"),
	),
	SelectorNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next activity"),
	),
	SelectorOpen: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "choose activity"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r", "ctrl+r"),
		key.WithHelp("r", "refresh"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
