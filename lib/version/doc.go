// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the rollcall
// binaries.
//
// Three package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// When GitCommit is not injected, the VCS revision recorded by the Go
// toolchain in the binary's build info is used instead, so a plain
// "go install" still reports its commit.
//
//   - [Info] -- "0.1.0-dev (abc1234, 2026-02-10T...)"
//   - [Full] -- Info plus Go version and GOOS/GOARCH
//   - [Print] -- the --version output line for a named binary
package version
