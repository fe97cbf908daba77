// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for rollcall packages.
//
// [RequireReceive], [RequireSend], and [RequireClosed] wrap the
// select-with-deadline pattern so tests that wait on goroutines (the
// roster controller's background refreshes, the terminal UI's confirm
// reply channel) never call time.After directly. They are the only
// place in the test suite where wall-clock time is used; everything
// else runs on clock.Fake.
//
// [UniqueID] returns increasing identifiers for building distinct
// emails and activity names inside one test binary.
//
// All helpers call t.Fatalf on failure.
package testutil
