// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the rollcall
// client.
//
// Values are layered in a fixed order: built-in defaults ([Default]),
// then an optional file, then ROLLCALL_* environment variables. The
// command line applies its own flags last. The file is named by the
// ROLLCALL_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]); there is no automatic discovery.
//
// Files ending in .json or .jsonc are read as JSON with comments and
// trailing commas; anything else is read as YAML. Both use the same
// snake_case keys, and durations are written as Go duration strings
// ("5s", "1500ms").
//
// Key exports:
//
//   - [Config] -- master struct with Service, Display, and Log sections
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- checks every field and joins the errors
//
// This package depends on no other rollcall packages.
package config
