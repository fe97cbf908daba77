// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger writing to stderr.
// See [NewLogger].
func NewCommandLogger(level slog.Leveler) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger creates a structured logger writing to file. When file is
// a terminal, uses slog.TextHandler for human-readable output. When it
// is piped or redirected, uses slog.JSONHandler so that scripts and
// log collectors get one object per line.
func NewLogger(file *os.File, level slog.Leveler) *slog.Logger {
	if level == nil {
		level = slog.LevelInfo
	}
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(file.Fd())) {
		handler = slog.NewTextHandler(file, options)
	} else {
		handler = slog.NewJSONHandler(file, options)
	}
	return slog.New(handler)
}

// OpenFileLogHandler creates a JSON handler appending to path. The
// returned function closes the file.
func OpenFileLogHandler(path string, level slog.Leveler) (slog.Handler, func(), error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return handler, func() { file.Close() }, nil
}

// FanoutHandler is a slog.Handler that sends each record to multiple
// underlying handlers. A record is enabled if any sub-handler is
// enabled for that level.
type FanoutHandler []slog.Handler

func (handlers FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (handlers FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (handlers FanoutHandler) WithGroup(name string) slog.Handler {
	derived := make(FanoutHandler, len(handlers))
	for index, handler := range handlers {
		derived[index] = handler.WithGroup(name)
	}
	return derived
}
