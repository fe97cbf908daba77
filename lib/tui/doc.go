// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal components for rollcall's
// bubbletea front end: the color theme, ANSI-aware overlay splicing,
// a fuzzy-filtered dropdown menu, a scrollbar, and the yes/no
// confirmation modal. Fuzzy matching uses fzf's scoring so results
// rank the way fzf users expect.
//
// Components here know nothing about activities. lib/rosterui owns the
// layout and feeds these pieces plain strings.
package tui
