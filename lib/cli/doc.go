// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli holds the pieces shared by the rollcall binaries'
// entry points: categorized errors with operator hints, the
// [ExitError] convention for handled non-zero exits, and slog handler
// construction for terminals, pipes, and log files.
//
// Commands return errors; main calls [Report] once, which prints the
// message and any hint to stderr and picks the process exit code.
package cli
