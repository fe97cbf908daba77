// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rosterui is the bubbletea front end for the roster
// controller: a scrollable list of activity cards, a signup form, and
// a notice line.
//
// [Sinks] implements every roster sink by posting messages to the
// running tea.Program, so the controller can run in command goroutines
// while all screen state stays inside [Model.Update]. Confirm blocks
// the calling goroutine until the user answers the modal; while the
// modal is open every key goes to it.
//
// Wiring, in order:
//
//	sinks := rosterui.NewSinks(ctx)
//	controller, _ := roster.NewController(roster.Config{List: sinks, Selector: sinks, ...})
//	program := tea.NewProgram(rosterui.NewModel(ctx, controller, controller.Strings()))
//	sinks.SetSender(program)
//	program.Run()
package rosterui
