// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bureau-foundation/rollcall/lib/activityclient"
	"github.com/bureau-foundation/rollcall/lib/activitytest"
	"github.com/bureau-foundation/rollcall/lib/cli"
	"github.com/bureau-foundation/rollcall/lib/testutil"
)

func TestServeUntilCancelled(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := activitytest.NewService(activitytest.DefaultSeed(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, listener, service, logger)
	}()

	client, err := activityclient.NewClient(activityclient.Config{
		BaseURL:        "http://" + listener.Addr().String(),
		RequestTimeout: 5 * time.Second,
		Logger:         logger,
	})
	if err != nil {
		t.Fatal(err)
	}
	snapshot, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(snapshot.Entries) != len(activitytest.DefaultSeed().Entries) {
		t.Errorf("got %d activities", len(snapshot.Entries))
	}

	cancel()
	if err := testutil.RequireReceive(t, done, 5*time.Second, "serve did not return after cancel"); err != nil {
		t.Errorf("serve returned %v", err)
	}

	if _, err := http.Get("http://" + listener.Addr().String() + "/activities"); err == nil {
		t.Error("server still accepting connections after shutdown")
	}
}

func TestLoadSeed(t *testing.T) {
	seed, err := loadSeed("")
	if err != nil || len(seed.Entries) == 0 {
		t.Fatalf("default seed: %v, %d entries", err, len(seed.Entries))
	}

	var toolErr *cli.ToolError
	_, err = loadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryNotFound {
		t.Errorf("missing seed: err = %v, want not-found", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("activities:\n  - name: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = loadSeed(bad)
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryValidation {
		t.Errorf("invalid seed: err = %v, want validation", err)
	}
}
