// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// rollcall-mock-service serves an in-memory activity service for
// local development and demos of the rollcall client. It answers the
// same three endpoints as the real service with the same status codes
// and detail messages. State starts from a YAML seed file or the
// built-in Mergington roster and is lost on exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/rollcall/lib/activity"
	"github.com/bureau-foundation/rollcall/lib/activitytest"
	"github.com/bureau-foundation/rollcall/lib/cli"
	"github.com/bureau-foundation/rollcall/lib/netutil"
	"github.com/bureau-foundation/rollcall/lib/version"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// stop signal.
const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(cli.Report(os.Stderr, run()))
}

func run() error {
	var listenAddress string
	var seedPath string
	var logLevel string

	flagSet := pflag.NewFlagSet("rollcall-mock-service", pflag.ContinueOnError)
	flagSet.StringVarP(&listenAddress, "listen", "l", "127.0.0.1:8000", "address to serve HTTP on")
	flagSet.StringVar(&seedPath, "seed", "", "YAML file with the initial activities (default: built-in roster)")
	flagSet.StringVar(&logLevel, "log-level", "info", "minimum log level: debug, info, warn, error")
	flagSet.BoolP("help", "h", false, "show help")

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print(os.Stdout, "rollcall-mock-service")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return cli.Validation("invalid --log-level %q", logLevel).WithHint("Use debug, info, warn, or error.")
	}
	logger := cli.NewCommandLogger(level)

	seed, err := loadSeed(seedPath)
	if err != nil {
		return err
	}
	logger.Debug("seeded activities", "activities", seed.Names())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return cli.Transient("listening on %s: %w", listenAddress, err).
			WithHint("Another process may hold the port. Pick a different one with --listen.")
	}

	return serve(ctx, listener, activitytest.NewService(seed, logger), logger)
}

func loadSeed(path string) (activity.Snapshot, error) {
	if path == "" {
		return activitytest.DefaultSeed(), nil
	}
	seed, err := activitytest.LoadSeed(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return activity.Snapshot{}, cli.NotFound("%w", err)
		}
		return activity.Snapshot{}, cli.Validation("%w", err)
	}
	return seed, nil
}

// serve runs an HTTP server on listener until ctx is cancelled, then
// drains in-flight requests.
func serve(ctx context.Context, listener net.Listener, handler http.Handler, logger *slog.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()
	logger.Info("activity service listening", "address", "http://"+listener.Addr().String())

	select {
	case err := <-serveErr:
		if netutil.IsServerClosed(err) {
			return nil
		}
		return cli.Internal("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownContext, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownContext); err != nil {
		return cli.Internal("shutting down: %w", err)
	}
	if err := <-serveErr; err != nil && !netutil.IsServerClosed(err) {
		return cli.Internal("serving: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `rollcall-mock-service: in-memory activity service for rollcall.

Usage:
  rollcall-mock-service [flags]

Examples:
  # Serve the built-in roster on the default port
  rollcall-mock-service

  # Serve a custom roster on another port
  rollcall-mock-service --listen 127.0.0.1:9000 --seed activities.yaml

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
