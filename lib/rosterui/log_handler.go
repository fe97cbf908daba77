// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bureau-foundation/rollcall/lib/tui"
)

// logRecordMsg carries one log record to the status line.
type logRecordMsg struct {
	summary string
	level   slog.Level
}

// logRecordFadeMsg clears the log record from the status line.
type logRecordFadeMsg struct {
	summary string
}

// logRecordFadeDelay is how long a log record stays on the status line.
const logRecordFadeDelay = 5 * time.Second

// TUILogHandler is a slog.Handler that shows records on the status
// line of the running program. The terminal is owned by bubbletea
// while the UI runs, so anything written to stderr would corrupt the
// screen.
//
// Records arriving before SetSender are dropped. Handlers derived via
// WithAttrs/WithGroup share the sender, so one SetSender call reaches
// all of them.
type TUILogHandler struct {
	level  slog.Leveler
	sender *atomic.Pointer[Sender]
	attrs  []slog.Attr
	groups []string
}

// NewTUILogHandler returns a handler for records at or above level.
func NewTUILogHandler(level slog.Leveler) *TUILogHandler {
	return &TUILogHandler{level: level, sender: &atomic.Pointer[Sender]{}}
}

// SetSender connects the handler to the program.
func (handler *TUILogHandler) SetSender(sender Sender) {
	handler.sender.Store(&sender)
}

// Enabled implements slog.Handler.
func (handler *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle formats the record as "message (key=value, ...)" and sends it.
func (handler *TUILogHandler) Handle(_ context.Context, record slog.Record) error {
	sender := handler.sender.Load()
	if sender == nil {
		return nil
	}

	prefix := strings.Join(handler.groups, ".")
	if prefix != "" {
		prefix += "."
	}
	var parts []string
	for _, attr := range handler.attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, fmt.Sprintf("%s%s=%s", prefix, attr.Key, attr.Value))
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}
	(*sender).Send(logRecordMsg{summary: tui.Sanitize(summary), level: record.Level})
	return nil
}

// WithAttrs implements slog.Handler.
func (handler *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := handler.clone()
	prefix := strings.Join(handler.groups, ".")
	for _, attr := range attrs {
		if prefix != "" {
			attr.Key = prefix + "." + attr.Key
		}
		derived.attrs = append(derived.attrs, attr)
	}
	return derived
}

// WithGroup implements slog.Handler.
func (handler *TUILogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	derived := handler.clone()
	derived.groups = append(derived.groups, name)
	return derived
}

func (handler *TUILogHandler) clone() *TUILogHandler {
	return &TUILogHandler{
		level:  handler.level,
		sender: handler.sender,
		attrs:  append([]slog.Attr(nil), handler.attrs...),
		groups: append([]string(nil), handler.groups...),
	}
}
